package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrCorruptData    = errors.New("corrupt ticket data")
	ErrUnknownStorage = errors.New("unknown storage backend")
)
