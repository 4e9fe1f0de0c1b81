/*
audit.go - Compliance checks over constructed entries

PURPOSE:
  Second-line verification for entries that may have been assembled outside
  the validated NewEntry path (store reads, hand-built fixtures, API
  payloads). Reports issues instead of failing fast so one bad row does not
  hide the rest.
*/
package ledger

import "fmt"

// AuditResult summarizes a verification pass over a set of entries.
type AuditResult struct {
	Passed   bool
	Issues   []string
	Verified int
}

// VerifyEntries checks each entry for required fields, non-negative
// amounts, and a 3-letter currency code. Entries that fail a check are
// reported and excluded from the verified count.
func VerifyEntries(entries []Entry) AuditResult {
	var issues []string
	verified := 0

	for _, e := range entries {
		switch {
		case e.ID == "" || e.Account == "" || e.Description == "":
			id := e.ID
			if id == "" {
				id = "unknown"
			}
			issues = append(issues, fmt.Sprintf("entry %s missing required fields", id))
		case e.Debit.IsNegative() || e.Credit.IsNegative():
			issues = append(issues, fmt.Sprintf("entry %s has negative amount", e.ID))
		case e.Currency != "" && len(e.Currency) != 3:
			issues = append(issues, fmt.Sprintf("entry %s has invalid currency code: %s", e.ID, e.Currency))
		default:
			verified++
		}
	}

	return AuditResult{
		Passed:   len(issues) == 0,
		Issues:   issues,
		Verified: verified,
	}
}

// DetectDuplicates flags entries that share date, account, and amounts.
// The first occurrence is kept silent; repeats are reported.
func DetectDuplicates(entries []Entry) []string {
	seen := make(map[string]int)
	var duplicates []string

	for _, e := range entries {
		key := fmt.Sprintf("%s-%s-%s-%s",
			e.Date.Format("2006-01-02"), e.Account, e.Debit.String(), e.Credit.String())
		if seen[key] > 0 {
			duplicates = append(duplicates, fmt.Sprintf("duplicate entry: %s (%s)", e.ID, key))
		}
		seen[key]++
	}

	return duplicates
}
