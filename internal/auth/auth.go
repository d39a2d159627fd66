// Package auth checks login credentials against the account store. The PIN
// is a toy credential and not a security boundary.
package auth

import (
	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/numeric"
)

// AccountFinder looks up accounts by username.
type AccountFinder interface {
	Find(username string) (model.Account, bool)
}

// Authenticator resolves credential pairs to accounts.
type Authenticator struct {
	accounts AccountFinder
}

// New creates an Authenticator.
func New(accounts AccountFinder) *Authenticator {
	return &Authenticator{accounts: accounts}
}

// Login returns the account matching req. A non-numeric PIN never matches.
func (a *Authenticator) Login(req model.LoginRequest) (model.Account, error) {
	acct, ok := a.accounts.Find(req.Username)
	if !ok {
		return model.Account{}, model.Reject(model.ErrAuthFailure, "unknown username")
	}
	if !numeric.Parse(req.PIN).EqualInt(acct.PIN) {
		return model.Account{}, model.Reject(model.ErrAuthFailure, "pin mismatch")
	}
	return acct, nil
}
