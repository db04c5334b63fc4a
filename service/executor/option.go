package executor

import (
	"github.com/viant/s3flow/model/execution"
	"github.com/viant/s3flow/service/dao"
)

// Option is used to customise the executor
type Option func(*Service)

// WithListener overrides the listener, nil disables it
func WithListener(l Listener) Option {
	return func(s *Service) {
		s.listener = l
	}
}

// WithExecutionStore sets the execution history store
func WithExecutionStore(store dao.Service[string, execution.Execution]) Option {
	return func(s *Service) {
		s.store = store
	}
}
