package types

import "fmt"

func NewMethodNotFoundError(name string) error {
	return fmt.Errorf("method %v not found", name)
}

func NewInvalidInputError(in interface{}) error {
	return fmt.Errorf("invalid input %T", in)
}

func NewInvalidOutputError(out interface{}) error {
	return fmt.Errorf("invalid output %T", out)
}

// NewBindingError reports a context value that could not be assigned to an input field
func NewBindingError(key, field string, err error) error {
	return fmt.Errorf("failed to bind %v to input field %v: %w", key, field, err)
}
