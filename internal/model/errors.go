package model

import "errors"

// ErrInvalidPIN indicates a PIN that is not exactly four decimal digits.
// It aborts client construction; operational failures never raise it.
var ErrInvalidPIN = errors.New("PIN must be 4 digits")
