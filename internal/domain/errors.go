package domain

import "errors"

var (
	// ErrExhausted is returned when every pool word is already in the ledger.
	ErrExhausted       = errors.New("no eligible words left")
	ErrNoWordSelected  = errors.New("no word selected")
	ErrInvalidDuration = errors.New("invalid timer duration")
	ErrInvalidPool     = errors.New("invalid word pool")
)
