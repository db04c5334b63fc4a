package extension

import (
	"fmt"
	"sort"
	"sync"

	"github.com/viant/s3flow/model/action"
	"github.com/viant/s3flow/model/types"
)

// Actions provides service and named action registry
type Actions struct {
	services map[string]types.Service
	actions  map[string]*action.Action
	mux      sync.RWMutex
}

// Lookup returns a service by name
func (s *Actions) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Register registers a service
func (s *Actions) Register(service types.Service) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.services[service.Name()] = service
}

// RegisterAction registers named actions, a later definition replaces an earlier one with the same name
func (s *Actions) RegisterAction(actions ...*action.Action) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, anAction := range actions {
		if err := anAction.Validate(); err != nil {
			return err
		}
		s.actions[anAction.Name] = anAction
	}
	return nil
}

// Action returns a named action
func (s *Actions) Action(name string) *action.Action {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.actions[name]
}

// Resolve returns named action with its service and method signature
func (s *Actions) Resolve(name string) (*action.Action, types.Service, *types.Signature, error) {
	anAction := s.Action(name)
	if anAction == nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrActionNotFound, name)
	}
	service := s.Lookup(anAction.Service)
	if service == nil {
		return nil, nil, nil, fmt.Errorf("%w: %v (action %v)", ErrServiceNotFound, anAction.Service, name)
	}
	signature := service.Methods().Lookup(anAction.Method)
	if signature == nil {
		return nil, nil, nil, fmt.Errorf("%w: %v.%v (action %v)", ErrMethodNotFound, anAction.Service, anAction.Method, name)
	}
	return anAction, service, signature, nil
}

// ActionNames returns sorted registered action names
func (s *Actions) ActionNames() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	result := make([]string, 0, len(s.actions))
	for name := range s.actions {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// ServiceNames returns sorted registered service names
func (s *Actions) ServiceNames() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	result := make([]string, 0, len(s.services))
	for name := range s.services {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// NewActions creates a new action registry
func NewActions() *Actions {
	return &Actions{
		services: make(map[string]types.Service),
		actions:  make(map[string]*action.Action),
	}
}
