package model

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Account is one customer account. Values are never edited in place; every
// mutation produces a new Account that the store persists.
type Account struct {
	Owner        string
	Username     string
	PIN          int
	InterestRate decimal.Decimal   // percentage applied to each deposit
	Movements    []decimal.Decimal // positive = deposit, negative = withdrawal
}

// NewAccount builds an Account and derives its username from owner.
func NewAccount(owner string, pin int, interestRate decimal.Decimal, movements ...decimal.Decimal) Account {
	return Account{
		Owner:        owner,
		Username:     DeriveUsername(owner),
		PIN:          pin,
		InterestRate: interestRate,
		Movements:    append([]decimal.Decimal(nil), movements...),
	}
}

// DeriveUsername returns the lowercase initials of each whitespace-separated
// word in owner. "Sai Kumar" -> "sk".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// WithMovement returns a copy of a with amount appended to its movements.
// The receiver's slice is never shared with the result.
func (a Account) WithMovement(amount decimal.Decimal) Account {
	next := a.Clone()
	next.Movements = append(next.Movements, amount)
	return next
}

// Clone returns a deep copy of a.
func (a Account) Clone() Account {
	cp := a
	cp.Movements = make([]decimal.Decimal, len(a.Movements), len(a.Movements)+1)
	copy(cp.Movements, a.Movements)
	return cp
}

// FirstName returns the first word of the owner's name.
func (a Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
