package flow

import (
	"fmt"

	"github.com/viant/s3flow/model/state"
)

// Step runs a single named action
type Step struct {
	Action string `json:"action" yaml:"action"`
	// Set parameters are applied to the context before the action runs
	Set state.Parameters `json:"set,omitempty" yaml:"set,omitempty"`
}

// Flow represents an ordered list of actions sharing one context
type Flow struct {
	Source      string           `json:"source,omitempty" yaml:"source,omitempty"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Init        state.Parameters `json:"init,omitempty" yaml:"init,omitempty"`
	Steps       []*Step          `json:"steps" yaml:"steps"`
}

// Validate performs structural validation, it does not check that actions exist
func (f *Flow) Validate() error {
	if len(f.Steps) == 0 {
		return fmt.Errorf("flow %v has no steps", f.Name)
	}
	for i, step := range f.Steps {
		if step == nil || step.Action == "" {
			return fmt.Errorf("flow %v: step[%d] has no action", f.Name, i)
		}
	}
	return nil
}

// Actions returns action names in step order
func (f *Flow) Actions() []string {
	var result = make([]string, 0, len(f.Steps))
	for _, step := range f.Steps {
		result = append(result, step.Action)
	}
	return result
}

// New creates a flow
func New(name string, actions ...string) *Flow {
	ret := &Flow{Name: name}
	for _, name := range actions {
		ret.Steps = append(ret.Steps, &Step{Action: name})
	}
	return ret
}
