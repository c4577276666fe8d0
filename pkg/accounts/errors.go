package accounts

import "errors"

var (
	// ErrInvalidAccountID indicates the supplied id has no usable numeric prefix.
	ErrInvalidAccountID = errors.New("invalid account id")
	// ErrAccountNotFound indicates the directory holds no such account.
	ErrAccountNotFound = errors.New("account not found")
)
