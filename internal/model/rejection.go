package model

import (
	"errors"
	"fmt"
)

// Rejection kinds. A rejected operation leaves every account exactly as it
// was before the call.
var (
	ErrAuthFailure      = errors.New("authentication failed")
	ErrTransferRejected = errors.New("transfer rejected")
	ErrLoanRejected     = errors.New("loan rejected")
	ErrClosureRejected  = errors.New("closure rejected")

	// ErrNoSession is returned when an operation needs a logged-in account.
	ErrNoSession = errors.New("no active session")
)

// Rejection describes why a request was refused.
type Rejection struct {
	Kind   error
	Reason string
}

// Reject returns a Rejection of the given kind.
func Reject(kind error, reason string) *Rejection {
	return &Rejection{Kind: kind, Reason: reason}
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Kind, r.Reason)
}

func (r *Rejection) Unwrap() error {
	return r.Kind
}
