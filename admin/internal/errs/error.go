package errs

import (
	"errors"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrAlreadyExists  = errors.New("already exists")
	ErrAlreadySettled = errors.New("penalty already settled")
	ErrUnpaidPenalty  = errors.New("unpaid penalty blocks return")
	ErrItemMismatch   = errors.New("item set does not match active items")
	ErrUnavailable    = errors.New("item is not available")
	ErrLLMUnavailable = errors.New("llm backend unavailable")
	ErrInvalidState   = errors.New("invalid state transition")
)

// Validation wraps ErrValidation with a field-level message.
func Validation(msg string) error {
	return &FieldError{Msg: msg}
}

type FieldError struct {
	Msg string
}

func (e *FieldError) Error() string { return e.Msg }

func (e *FieldError) Unwrap() error { return ErrValidation }

// MismatchError lists what the caller sent against what is actually active.
type MismatchError struct {
	Expected []string `json:"expected"`
	Provided []string `json:"provided"`
}

func (e *MismatchError) Error() string { return ErrItemMismatch.Error() }

func (e *MismatchError) Unwrap() error { return ErrItemMismatch }

// UnpaidError carries the blocking penalty ids.
type UnpaidError struct {
	PenaltyIDs []int64 `json:"penalty_ids"`
}

func (e *UnpaidError) Error() string { return ErrUnpaidPenalty.Error() }

func (e *UnpaidError) Unwrap() error { return ErrUnpaidPenalty }
