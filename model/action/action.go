package action

import "fmt"

// Binding maps a context key to an input field of the action method
type Binding struct {
	Key   string `json:"key" yaml:"key"`
	Field string `json:"field" yaml:"field"`
}

// Action represents a named unit of work: read bound keys from the context,
// call a single service method and store its output under the result key.
type Action struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Service     string     `json:"service" yaml:"service"`
	Method      string     `json:"method" yaml:"method"`
	Inputs      []*Binding `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	// Result is the context key the output is stored under, it may reference
	// other context keys with ${key}
	Result string `json:"result" yaml:"result"`
	// ResultField, when set, stores only the named output field
	ResultField string `json:"resultField,omitempty" yaml:"resultField,omitempty"`
}

// Bind adds an input binding
func (a *Action) Bind(key, field string) *Action {
	a.Inputs = append(a.Inputs, &Binding{Key: key, Field: field})
	return a
}

// WithResult sets result key
func (a *Action) WithResult(key string) *Action {
	a.Result = key
	return a
}

// WithResultField sets the output field stored under the result key
func (a *Action) WithResultField(field string) *Action {
	a.ResultField = field
	return a
}

// WithDescription sets description
func (a *Action) WithDescription(description string) *Action {
	a.Description = description
	return a
}

// Keys returns bound context keys
func (a *Action) Keys() []string {
	var result = make([]string, 0, len(a.Inputs))
	for _, input := range a.Inputs {
		result = append(result, input.Key)
	}
	return result
}

// Validate checks that the action definition is complete
func (a *Action) Validate() error {
	switch {
	case a.Name == "":
		return fmt.Errorf("action name was empty")
	case a.Service == "":
		return fmt.Errorf("action %v: service was empty", a.Name)
	case a.Method == "":
		return fmt.Errorf("action %v: method was empty", a.Name)
	case a.Result == "":
		return fmt.Errorf("action %v: result key was empty", a.Name)
	}
	for _, input := range a.Inputs {
		if input.Key == "" || input.Field == "" {
			return fmt.Errorf("action %v: incomplete input binding %+v", a.Name, *input)
		}
	}
	return nil
}

// New creates an action calling service method
func New(name, service, method string) *Action {
	return &Action{Name: name, Service: service, Method: method}
}

// Actions represents action collection
type Actions []*Action

// Lookup returns an action by name
func (a Actions) Lookup(name string) *Action {
	for _, candidate := range a {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}
