/*
main.go - CLI entry point

PURPOSE:
  fincli is the operator's command-line companion to finserver: import
  ledger CSVs, audit and reconcile them, run forecasts, and check
  budgets against the same SQLite database the server uses.

SEE ALSO:
  - root.go: Command tree and shared flags
  - cmd/finserver/main.go: HTTP server entry point
*/
package main

func main() {
	Execute()
}
