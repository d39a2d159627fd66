// Package session tracks the single logged-in account. It stores only the
// username; the account itself is always re-read from the store.
package session

import (
	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/auth"
	"github.com/bankist-dev/bankist/internal/bank"
	"github.com/bankist-dev/bankist/internal/model"
)

// Session is the current-account context of one user.
type Session struct {
	store   *accounts.Store
	auth    *auth.Authenticator
	engine  *bank.Engine
	current string
}

// New creates an empty Session over store.
func New(store *accounts.Store) *Session {
	return &Session{
		store:  store,
		auth:   auth.New(store),
		engine: bank.NewEngine(store),
	}
}

// Login makes the matching account current. A failed attempt leaves any
// existing session in place.
func (s *Session) Login(req model.LoginRequest) error {
	acct, err := s.auth.Login(req)
	if err != nil {
		return err
	}
	s.current = acct.Username
	return nil
}

// Logout clears the session.
func (s *Session) Logout() {
	s.current = ""
}

// Active reports whether an account is logged in.
func (s *Session) Active() bool {
	_, ok := s.Current()
	return ok
}

// Username returns the current username, or "" when empty.
func (s *Session) Username() string {
	return s.current
}

// Current returns a fresh snapshot of the logged-in account.
func (s *Session) Current() (model.Account, bool) {
	if s.current == "" {
		return model.Account{}, false
	}
	acct, ok := s.store.Find(s.current)
	if !ok {
		s.current = ""
		return model.Account{}, false
	}
	return acct, true
}

// Transfer sends money from the current account.
func (s *Session) Transfer(req model.TransferRequest) error {
	if s.current == "" {
		return model.ErrNoSession
	}
	return s.engine.Transfer(s.current, req)
}

// RequestLoan asks for a loan on the current account.
func (s *Session) RequestLoan(req model.LoanRequest) error {
	if s.current == "" {
		return model.ErrNoSession
	}
	return s.engine.RequestLoan(s.current, req)
}

// Close closes the current account and ends the session.
func (s *Session) Close(req model.CloseRequest) error {
	if s.current == "" {
		return model.ErrNoSession
	}
	if err := s.engine.CloseAccount(s.current, req); err != nil {
		return err
	}
	s.current = ""
	return nil
}
