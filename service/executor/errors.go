package executor

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrUnknownField is returned when an action binds or reads a field the method input or output lacks
var ErrUnknownField = errors.New("unknown field")

// ActionError wraps a failure of a named action, the underlying error is never translated
type ActionError struct {
	Action string
	// Code is the service API error code, empty when the failure did not come from the service
	Code string
	Err  error
}

// Error returns error message
func (e *ActionError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("action %v failed (%v): %v", e.Action, e.Code, e.Err)
	}
	return fmt.Sprintf("action %v failed: %v", e.Action, e.Err)
}

// Unwrap returns the underlying error
func (e *ActionError) Unwrap() error {
	return e.Err
}

// NewActionError creates an action error, the API error code is taken from err when present
func NewActionError(action string, err error) *ActionError {
	ret := &ActionError{Action: action, Err: err}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		ret.Code = apiErr.ErrorCode()
	}
	return ret
}
