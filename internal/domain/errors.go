package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTicketAlreadySold  = errors.New("ticket is already sold")
	ErrShowSlotTaken      = errors.New("a show is already scheduled for this day and time")
	ErrInvalidDay         = errors.New("invalid day of week")
	ErrInvalidTime        = errors.New("invalid time of day")
)

// DataAccessError wraps any failure of the underlying store.
type DataAccessError struct {
	Op  string
	Err error
}

func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("can't %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func IsDataAccessError(err error) bool {
	var daErr *DataAccessError
	return errors.As(err, &daErr)
}
