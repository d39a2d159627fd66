// Package bank executes transfers, loans and closures against the account
// store. Each operation validates and writes inside one store unit, so a
// rejected request leaves every account untouched.
package bank

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/numeric"
)

// loanDepositRatio is the share of a requested loan that some single past
// movement must reach.
var loanDepositRatio = decimal.New(1, -1)

// Engine runs account operations.
type Engine struct {
	store *accounts.Store
}

// NewEngine creates an Engine over store.
func NewEngine(store *accounts.Store) *Engine {
	return &Engine{store: store}
}

// Transfer moves req.Amount from the account named from to req.To.
func (e *Engine) Transfer(from string, req model.TransferRequest) error {
	amount := numeric.Parse(req.Amount)
	if !amount.IsPositive() {
		return model.Reject(model.ErrTransferRejected, "amount must be a positive number")
	}

	return e.store.Update(func(tx *accounts.Tx) error {
		sender, ok := tx.Find(from)
		if !ok {
			return model.Reject(model.ErrTransferRejected, "unknown sender")
		}
		receiver, ok := tx.Find(req.To)
		if !ok {
			return model.Reject(model.ErrTransferRejected, "unknown receiver")
		}
		if receiver.Username == sender.Username {
			return model.Reject(model.ErrTransferRejected, "cannot transfer to own account")
		}
		if ledger.Balance(sender).LessThan(amount.Value) {
			return model.Reject(model.ErrTransferRejected, "insufficient balance")
		}

		if err := tx.Replace(sender.WithMovement(amount.Value.Neg())); err != nil {
			return err
		}
		return tx.Replace(receiver.WithMovement(amount.Value))
	})
}

// RequestLoan credits req.Amount to username when some movement is at least
// a tenth of the requested amount.
func (e *Engine) RequestLoan(username string, req model.LoanRequest) error {
	amount := numeric.Parse(req.Amount)
	if !amount.IsPositive() {
		return model.Reject(model.ErrLoanRejected, "amount must be a positive number")
	}

	return e.store.Update(func(tx *accounts.Tx) error {
		acct, ok := tx.Find(username)
		if !ok {
			return model.Reject(model.ErrLoanRejected, "unknown account")
		}
		if !ledger.HasDepositOfAtLeast(acct, amount.Value.Mul(loanDepositRatio)) {
			return model.Reject(model.ErrLoanRejected, "no deposit of at least 10% of the requested amount")
		}
		return tx.Replace(acct.WithMovement(amount.Value))
	})
}

// CloseAccount removes username from the store once req confirms both the
// username and the PIN.
func (e *Engine) CloseAccount(username string, req model.CloseRequest) error {
	return e.store.Update(func(tx *accounts.Tx) error {
		acct, ok := tx.Find(username)
		if !ok {
			return model.Reject(model.ErrClosureRejected, "unknown account")
		}
		if req.Username != acct.Username {
			return model.Reject(model.ErrClosureRejected, "username confirmation mismatch")
		}
		if !numeric.Parse(req.PIN).EqualInt(acct.PIN) {
			return model.Reject(model.ErrClosureRejected, "pin confirmation mismatch")
		}
		tx.Remove(username)
		return nil
	})
}
