package accounts

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bankist-dev/bankist/internal/model"
)

// ErrNotFound is returned from a Tx when a staged write targets an account
// that does not exist.
var ErrNotFound = errors.New("account not found")

// Store provides in-memory lookup over the set of accounts. It is the only
// owner of account identity; callers receive copies.
type Store struct {
	mu    sync.RWMutex
	order []string
	byKey map[string]model.Account
}

// NewStore creates a Store from a seed set. Usernames must be unique.
func NewStore(seed []model.Account) (*Store, error) {
	s := &Store{byKey: make(map[string]model.Account, len(seed))}
	for _, a := range seed {
		if a.Owner == "" {
			return nil, fmt.Errorf("account with empty owner")
		}
		if a.Username == "" {
			a.Username = model.DeriveUsername(a.Owner)
		}
		if _, dup := s.byKey[a.Username]; dup {
			return nil, fmt.Errorf("duplicate username %q (owner %q)", a.Username, a.Owner)
		}
		s.byKey[a.Username] = a.Clone()
		s.order = append(s.order, a.Username)
	}
	return s, nil
}

// Find returns an account by username.
func (s *Store) Find(username string) (model.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byKey[username]
	if !ok {
		return model.Account{}, false
	}
	return a.Clone(), true
}

// Replace overwrites the account with the same username. It reports false
// and changes nothing when no such account exists.
func (s *Store) Replace(acct model.Account) bool {
	err := s.Update(func(tx *Tx) error {
		return tx.Replace(acct)
	})
	return err == nil
}

// Remove deletes an account. Removing a missing account is a no-op.
func (s *Store) Remove(username string) {
	_ = s.Update(func(tx *Tx) error {
		tx.Remove(username)
		return nil
	})
}

// All returns all accounts in seed order.
func (s *Store) All() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Account, 0, len(s.order))
	for _, u := range s.order {
		out = append(out, s.byKey[u].Clone())
	}
	return out
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Update runs fn under the store's write lock. Writes staged on the Tx are
// applied together when fn returns nil and discarded otherwise, so no
// reader ever sees part of a unit.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{store: s, staged: make(map[string]*model.Account)}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// Tx is a unit of work opened by Store.Update.
type Tx struct {
	store  *Store
	staged map[string]*model.Account // nil value = removal
	keys   []string
}

// Find returns the account as seen by this unit, including staged writes.
func (tx *Tx) Find(username string) (model.Account, bool) {
	if a, ok := tx.staged[username]; ok {
		if a == nil {
			return model.Account{}, false
		}
		return a.Clone(), true
	}
	a, ok := tx.store.byKey[username]
	if !ok {
		return model.Account{}, false
	}
	return a.Clone(), true
}

// Replace stages an overwrite of an existing account.
func (tx *Tx) Replace(acct model.Account) error {
	if _, ok := tx.Find(acct.Username); !ok {
		return fmt.Errorf("replacing %q: %w", acct.Username, ErrNotFound)
	}
	cp := acct.Clone()
	tx.stage(acct.Username, &cp)
	return nil
}

// Remove stages the deletion of an account.
func (tx *Tx) Remove(username string) {
	if _, ok := tx.Find(username); !ok {
		return
	}
	tx.stage(username, nil)
}

func (tx *Tx) stage(username string, acct *model.Account) {
	if _, seen := tx.staged[username]; !seen {
		tx.keys = append(tx.keys, username)
	}
	tx.staged[username] = acct
}

func (tx *Tx) commit() {
	s := tx.store
	for _, u := range tx.keys {
		acct := tx.staged[u]
		if acct != nil {
			s.byKey[u] = *acct
			continue
		}
		delete(s.byKey, u)
		for i, name := range s.order {
			if name == u {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
