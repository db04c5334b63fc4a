package extension

import "errors"

var (
	ErrActionNotFound  = errors.New("action not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrMethodNotFound  = errors.New("method not found in service")
)
