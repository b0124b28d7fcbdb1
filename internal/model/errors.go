package model

import "errors"

// Sentinel errors returned by the marketplace. Callers match them with errors.Is;
// operations wrap them with the offending value for display.
var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidBalance    = errors.New("balance cannot be negative")
	ErrInvalidAmount     = errors.New("amount cannot be negative")
	ErrUnknownField      = errors.New("unknown filter field")
	ErrInvalidThreshold  = errors.New("invalid filter threshold")
	ErrInvalidDriveType  = errors.New("invalid drive type")
	ErrInvalidSpec       = errors.New("invalid car spec")
)
