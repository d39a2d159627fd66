package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// DefaultSeed returns the accounts a fresh process starts with.
func DefaultSeed() []model.Account {
	return []model.Account{
		model.NewAccount("Sai Kumar", 1111, decimal.RequireFromString("1.2"),
			ints(200, 450, -400, 3000, -650, -130, 70, 1300)...),
		model.NewAccount("Sharath Reddy", 2222, decimal.RequireFromString("1.5"),
			ints(5000, 3400, -150, -790, -3210, -1000, 8500, -30)...),
		model.NewAccount("Steven Paul", 3333, decimal.RequireFromString("0.7"),
			ints(200, -200, 340, -300, -20, 50, 400, -460)...),
		model.NewAccount("Sarah Connor", 4444, decimal.NewFromInt(1),
			ints(430, 1000, 700, 50, 90)...),
	}
}

// Seed returns the accounts at path, or DefaultSeed when path is empty.
func Seed(path string) ([]model.Account, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	return LoadSeed(path)
}

func ints(vals ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}
