package state

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/s3flow/model/types"
)

// Name is the service name
const Name = "system/state"

// Service provides actions that only move values within the context
type Service struct{}

// CopyInput defines the value to copy
type CopyInput struct {
	Value interface{} `json:"value"`
}

// CopyOutput holds the copied value
type CopyOutput struct {
	Value interface{} `json:"value"`
}

// New creates a new state service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "copy",
			Description: "Returns the bound value so that it can be stored under another key.",
			Input:       reflect.TypeOf(&CopyInput{}),
			Output:      reflect.TypeOf(&CopyOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "copy":
		return s.copy, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) copy(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*CopyInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*CopyOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	output.Value = input.Value
	return nil
}
