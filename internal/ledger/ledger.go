// Package ledger computes balances and summaries from an account's
// movements. Every function is pure and recomputes from scratch.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

var (
	hundred = decimal.NewFromInt(100)
	// interestFloor discards individual interest amounts below one unit.
	interestFloor = decimal.NewFromInt(1)
)

// Summary holds the derived figures shown for an account.
type Summary struct {
	Balance  decimal.Decimal
	In       decimal.Decimal
	Out      decimal.Decimal
	Interest decimal.Decimal
}

// Balance returns the sum of all movements.
func Balance(acct model.Account) decimal.Decimal {
	return decimal.Sum(decimal.Zero, acct.Movements...)
}

// TotalIn returns the sum of deposits.
func TotalIn(acct model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range acct.Movements {
		if m.IsPositive() {
			total = total.Add(m)
		}
	}
	return total
}

// TotalOut returns the absolute sum of withdrawals.
func TotalOut(acct model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range acct.Movements {
		if m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total.Abs()
}

// InterestEarned sums deposit*rate/100 over deposits whose individual
// interest is at least 1. Smaller amounts are dropped, not rounded.
func InterestEarned(acct model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range acct.Movements {
		if !m.IsPositive() {
			continue
		}
		interest := m.Mul(acct.InterestRate).Div(hundred)
		if interest.GreaterThanOrEqual(interestFloor) {
			total = total.Add(interest)
		}
	}
	return total
}

// Summarize computes every derived figure for acct.
func Summarize(acct model.Account) Summary {
	return Summary{
		Balance:  Balance(acct),
		In:       TotalIn(acct),
		Out:      TotalOut(acct),
		Interest: InterestEarned(acct),
	}
}

// HasDepositOfAtLeast reports whether any single movement is >= threshold.
func HasDepositOfAtLeast(acct model.Account, threshold decimal.Decimal) bool {
	for _, m := range acct.Movements {
		if m.GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}
