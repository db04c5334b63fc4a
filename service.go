package s3flow

import (
	"context"
	"fmt"

	"github.com/viant/s3flow/extension"
	"github.com/viant/s3flow/internal/idgen"
	"github.com/viant/s3flow/model/action"
	"github.com/viant/s3flow/model/execution"
	"github.com/viant/s3flow/model/flow"
	"github.com/viant/s3flow/model/types"
	"github.com/viant/s3flow/runtime/state"
	"github.com/viant/s3flow/service/action/aws/s3"
	astate "github.com/viant/s3flow/service/action/system/state"
	"github.com/viant/s3flow/service/dao"
	"github.com/viant/s3flow/service/executor"
	sflow "github.com/viant/s3flow/service/flow"
	"github.com/viant/s3flow/tracing"

	"github.com/viant/afs/storage"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Service exposes named S3 actions and sequential flows over a key-value context
type Service struct {
	config            *Config
	client            s3.Client
	s3Service         *s3.Service
	actions           *extension.Actions
	executor          *executor.Service
	flow              *sflow.Service
	s3Options         []s3.Option
	executorOptions   []executor.Option
	extensionServices []types.Service
	extensionActions  []*action.Action
	flowFsOptions     []storage.Option
	tracingExporter   sdktrace.SpanExporter
}

// Config returns the effective config
func (s *Service) Config() *Config {
	return s.config
}

// S3 returns the S3 action service
func (s *Service) S3() *s3.Service {
	return s.s3Service
}

// Actions returns registered actions sorted by name
func (s *Service) Actions() action.Actions {
	names := s.actions.ActionNames()
	result := make(action.Actions, 0, len(names))
	for _, name := range names {
		result = append(result, s.actions.Action(name))
	}
	return result
}

// Registry returns the service and action registry
func (s *Service) Registry() *extension.Actions {
	return s.actions
}

// Execute runs a named action against the supplied context
func (s *Service) Execute(ctx context.Context, actionName string, aState types.State) (*execution.Execution, error) {
	return s.executor.Execute(ctx, actionName, aState)
}

// LoadFlow loads a flow definition
func (s *Service) LoadFlow(ctx context.Context, URL string) (*flow.Flow, error) {
	return s.flow.Load(ctx, URL)
}

// Run runs flow steps in order, it stops on the first failure
func (s *Service) Run(ctx context.Context, aFlow *flow.Flow, aState types.State) ([]*execution.Execution, error) {
	return s.flow.Run(ctx, aFlow, aState)
}

// Executions returns recorded executions, optionally filtered by "Action" and "State"
func (s *Service) Executions(ctx context.Context, parameters ...*dao.Parameter) ([]*execution.Execution, error) {
	return s.executor.Executions(ctx, parameters...)
}

// NewState creates a context seeded with values
func (s *Service) NewState(values map[string]interface{}) *state.Session {
	return state.NewSession(idgen.New(), state.WithValues(values))
}

func (s *Service) init(ctx context.Context) error {
	if err := s.config.Validate(); err != nil {
		return err
	}
	tracingCfg := s.config.Tracing
	switch {
	case s.tracingExporter != nil:
		if err := tracing.InitWithExporter(tracingCfg.ServiceName, tracingCfg.ServiceVersion, s.tracingExporter); err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
	case tracingCfg.Enabled():
		if err := tracing.Init(tracingCfg.ServiceName, tracingCfg.ServiceVersion, tracingCfg.OutputFile); err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
	}
	if s.client == nil {
		client, err := s3.NewClient(ctx, &s.config.AWS)
		if err != nil {
			return err
		}
		s.client = client
	}
	s3Options := []s3.Option{s3.WithWaitTimeout(s.config.WaitTimeout())}
	if s.config.AWS.Region != "" {
		s3Options = append(s3Options, s3.WithRegion(s.config.AWS.Region))
	}
	s.s3Service = s3.New(s.client, append(s3Options, s.s3Options...)...)

	s.actions = extension.NewActions()
	s.actions.Register(s.s3Service)
	s.actions.Register(astate.New())
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}
	if err := s.actions.RegisterAction(s3.Catalog()...); err != nil {
		return err
	}
	if s.config.LegacyActions {
		if err := s.actions.RegisterAction(s3.LegacyCatalog()...); err != nil {
			return err
		}
	}
	if err := s.actions.RegisterAction(s.extensionActions...); err != nil {
		return err
	}
	s.executor = executor.New(s.actions, s.executorOptions...)
	s.flow = sflow.New(s.executor, sflow.WithBaseURL(s.config.FlowBaseURL), sflow.WithFsOptions(s.flowFsOptions...))
	return nil
}

// New creates a service, the S3 client is created from config unless WithClient is used
func New(ctx context.Context, options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}
