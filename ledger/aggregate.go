/*
aggregate.go - Cross-file per-account rollups

PURPOSE:
  Combines any number of ledger files into per-account balances: debit sum,
  credit sum, and net (debit - credit) per account.

INVARIANTS:
  - Input order is irrelevant: sums are commutative, and results are sorted
    by account name for deterministic output
  - Inputs are never mutated
  - Empty input yields an empty result with the defined schema, never an
    error; callers must not need to special-case "no data"
*/
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AccountBalance is one row of an aggregation result.
type AccountBalance struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Net     decimal.Decimal
}

// Aggregate groups all entries from all supplied files by account and sums
// debit and credit per account. Results are sorted by account name.
func Aggregate(files []*File) []AccountBalance {
	type sums struct {
		debit  decimal.Decimal
		credit decimal.Decimal
	}

	byAccount := make(map[string]sums)
	for _, f := range files {
		for _, e := range f.Entries {
			s := byAccount[e.Account]
			s.debit = s.debit.Add(e.Debit)
			s.credit = s.credit.Add(e.Credit)
			byAccount[e.Account] = s
		}
	}

	balances := make([]AccountBalance, 0, len(byAccount))
	for account, s := range byAccount {
		balances = append(balances, AccountBalance{
			Account: account,
			Debit:   s.debit,
			Credit:  s.credit,
			Net:     s.debit.Sub(s.credit),
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Account < balances[j].Account
	})
	return balances
}
