package accounts

import (
	"context"
	"fmt"
	"sync"
)

// Account is a directory entry served to route handlers.
type Account struct {
	ID      int64  `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
}

// Directory is an in-memory account lookup, seeded once at startup and
// read-only afterwards.
type Directory struct {
	mu       sync.RWMutex
	accounts map[int64]Account
}

// NewDirectory builds a directory holding the given accounts.
func NewDirectory(seed []Account) *Directory {
	d := &Directory{accounts: make(map[int64]Account, len(seed))}
	for _, acc := range seed {
		d.accounts[acc.ID] = acc
	}
	return d
}

// Get returns the account with the given id, or ErrAccountNotFound.
func (d *Directory) Get(_ context.Context, id int64) (Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	acc, ok := d.accounts[id]
	if !ok {
		return Account{}, fmt.Errorf("%w: %d", ErrAccountNotFound, id)
	}
	return acc, nil
}
