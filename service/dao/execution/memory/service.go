package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/viant/s3flow/model/execution"
	"github.com/viant/s3flow/service/dao"
	"github.com/viant/s3flow/service/dao/criteria"
)

// Service implements in-memory execution history, records are cloned on the way in and out
type Service struct {
	executions map[string]*execution.Execution
	mux        sync.RWMutex
}

var _ dao.Service[string, execution.Execution] = (*Service)(nil)

// Save persists a clone of the execution
func (s *Service) Save(_ context.Context, e *execution.Execution) error {
	if e == nil {
		return dao.ErrNilEntity
	}
	if e.ID == "" {
		return dao.ErrInvalidID
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.executions[e.ID] = e.Clone()
	return nil
}

// Load returns a copy of the execution or dao.ErrNotFound
func (s *Service) Load(_ context.Context, id string) (*execution.Execution, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	s.mux.RLock()
	e, ok := s.executions[id]
	s.mux.RUnlock()
	if !ok {
		return nil, dao.ErrNotFound
	}
	return e.Clone(), nil
}

// Delete removes an execution
func (s *Service) Delete(_ context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.executions[id]; !ok {
		return dao.ErrNotFound
	}
	delete(s.executions, id)
	return nil
}

// List returns executions ordered by schedule time, optionally filtered by
// "Action" and "State" parameters
func (s *Service) List(_ context.Context, parameters ...*dao.Parameter) ([]*execution.Execution, error) {
	s.mux.RLock()
	out := make([]*execution.Execution, 0, len(s.executions))
	for _, e := range s.executions {
		if !criteria.Match("Action", e.Action, parameters) || !criteria.Match("State", string(e.State), parameters) {
			continue
		}
		out = append(out, e.Clone())
	}
	s.mux.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out, nil
}

// New creates an empty execution history
func New() *Service {
	return &Service{executions: map[string]*execution.Execution{}}
}
