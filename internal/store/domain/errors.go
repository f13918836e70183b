package domain

import "errors"

var (
	ErrUnknownStatus    = errors.New("unknown order status")
	ErrStatusRegression = errors.New("order status cannot move backwards")
)
