package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrInvalidStep     = errors.New("operation not allowed in current step")
)
