package errs

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyExist      = errors.New("user already exists")
	ErrInsufficientFunds = errors.New("not enough funds on account")
)
