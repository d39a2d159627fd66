package auth

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/model"
)

// mockAccounts implements AccountFinder for testing.
type mockAccounts map[string]model.Account

func (m mockAccounts) Find(username string) (model.Account, bool) {
	a, ok := m[username]
	return a, ok
}

func newMockAccounts(accts ...model.Account) mockAccounts {
	m := make(mockAccounts)
	for _, a := range accts {
		m[a.Username] = a
	}
	return m
}

func TestLogin(t *testing.T) {
	a := New(newMockAccounts(model.NewAccount("Sai Kumar", 1111, decimal.Zero)))

	acct, err := a.Login(model.LoginRequest{Username: "sk", PIN: "1111"})
	require.NoError(t, err)
	assert.Equal(t, "Sai Kumar", acct.Owner)
}

func TestLogin_Failures(t *testing.T) {
	a := New(newMockAccounts(model.NewAccount("Sai Kumar", 1111, decimal.Zero)))

	tests := []struct {
		name   string
		req    model.LoginRequest
		reason string
	}{
		{"unknown user", model.LoginRequest{Username: "zz", PIN: "1111"}, "unknown username"},
		{"wrong pin", model.LoginRequest{Username: "sk", PIN: "2222"}, "pin mismatch"},
		{"non-numeric pin", model.LoginRequest{Username: "sk", PIN: "one"}, "pin mismatch"},
		{"empty pin", model.LoginRequest{Username: "sk", PIN: ""}, "pin mismatch"},
		{"username is case sensitive", model.LoginRequest{Username: "SK", PIN: "1111"}, "unknown username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Login(tt.req)
			require.ErrorIs(t, err, model.ErrAuthFailure)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestLogin_PINWithWhitespace(t *testing.T) {
	a := New(newMockAccounts(model.NewAccount("Sarah Connor", 4444, decimal.Zero)))
	_, err := a.Login(model.LoginRequest{Username: "sc", PIN: " 4444 "})
	assert.NoError(t, err)
}
