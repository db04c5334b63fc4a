package types

import (
	"context"
	"reflect"
	"sort"
	"strings"
)

type Signatures []Signature

// Lookup returns a signature by method name, method names are case-insensitive
func (s Signatures) Lookup(name string) *Signature {
	for i := range s {
		sig := &s[i]
		if strings.EqualFold(sig.Name, name) {
			return sig
		}
	}
	return nil
}

// Names returns sorted method names
func (s Signatures) Names() []string {
	var result = make([]string, 0, len(s))
	for _, sig := range s {
		result = append(result, sig.Name)
	}
	sort.Strings(result)
	return result
}

// Signature method signature
type Signature struct {
	Name        string
	Description string
	Input       reflect.Type
	Output      reflect.Type
}

// Executable is a function that can be executed
type Executable func(context context.Context, input, output interface{}) error
