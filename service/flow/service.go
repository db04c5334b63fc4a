package flow

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/s3flow/internal/expr"
	"github.com/viant/s3flow/internal/yml"
	"github.com/viant/s3flow/model/execution"
	"github.com/viant/s3flow/model/flow"
	"github.com/viant/s3flow/model/state"
	"github.com/viant/s3flow/model/types"
	"gopkg.in/yaml.v3"
)

// Executor runs a named action against a context
type Executor interface {
	Execute(ctx context.Context, actionName string, aState types.State) (*execution.Execution, error)
}

// Service loads and runs flows
type Service struct {
	executor  Executor
	fs        afs.Service
	baseURL   string
	fsOptions []storage.Option
}

// Load reads a flow definition, ".yaml" is appended when URL has no extension.
// ${env.KEY} expressions are expanded before decoding.
func (s *Service) Load(ctx context.Context, URL string) (*flow.Flow, error) {
	if path.Ext(URL) == "" {
		URL += ".yaml"
	}
	if s.baseURL != "" && url.IsRelative(URL) {
		URL = url.Join(s.baseURL, URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load flow from %s: %w", URL, err)
	}
	aFlow, err := s.Decode([]byte(expr.ExpandEnv(string(data))))
	if err != nil {
		return nil, fmt.Errorf("failed to decode flow from %s: %w", URL, err)
	}
	aFlow.Source = URL
	if aFlow.Name == "" {
		base := path.Base(URL)
		aFlow.Name = strings.TrimSuffix(base, path.Ext(base))
	}
	return aFlow, nil
}

// Decode decodes YAML flow definition, init and set keep document order
func (s *Service) Decode(data []byte) (*flow.Flow, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	aFlow := &flow.Flow{}
	root := (*yml.Node)(&node).Root()
	err := root.Pairs(func(key string, valueNode *yml.Node) error {
		switch strings.ToLower(key) {
		case "name":
			aFlow.Name = valueNode.Value
		case "description":
			aFlow.Description = valueNode.Value
		case "init":
			params, err := parseParameters(valueNode)
			if err != nil {
				return fmt.Errorf("failed to parse init: %w", err)
			}
			aFlow.Init = params
		case "steps":
			return valueNode.Items(func(index int, stepNode *yml.Node) error {
				step, err := parseStep(stepNode)
				if err != nil {
					return fmt.Errorf("failed to parse step[%d]: %w", index, err)
				}
				aFlow.Steps = append(aFlow.Steps, step)
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err = aFlow.Validate(); err != nil {
		return nil, err
	}
	return aFlow, nil
}

// parseStep accepts either a bare action name or a mapping with action and set
func parseStep(node *yml.Node) (*flow.Step, error) {
	if node.Kind == yaml.ScalarNode {
		return &flow.Step{Action: node.Value}, nil
	}
	step := &flow.Step{}
	err := node.Pairs(func(key string, valueNode *yml.Node) error {
		switch strings.ToLower(key) {
		case "action":
			step.Action = valueNode.Value
		case "set":
			set, err := parseParameters(valueNode)
			if err != nil {
				return err
			}
			step.Set = set
		default:
			return fmt.Errorf("unsupported step attribute %v", key)
		}
		return nil
	})
	return step, err
}

func parseParameters(node *yml.Node) (state.Parameters, error) {
	var params state.Parameters
	err := node.Pairs(func(key string, valueNode *yml.Node) error {
		params.Add(key, valueNode.Interface())
		return nil
	})
	return params, err
}

// Run applies flow init to the context, then for each step applies its set
// parameters and executes its action. It stops on the first failed step and returns
// the executions of the steps that ran.
func (s *Service) Run(ctx context.Context, aFlow *flow.Flow, aState types.State) ([]*execution.Execution, error) {
	if err := aFlow.Validate(); err != nil {
		return nil, err
	}
	aFlow.Init.Apply(aState)
	var executions []*execution.Execution
	for i, step := range aFlow.Steps {
		if err := ctx.Err(); err != nil {
			return executions, err
		}
		step.Set.Apply(aState)
		anExecution, err := s.executor.Execute(ctx, step.Action, aState)
		if anExecution != nil {
			executions = append(executions, anExecution)
		}
		if err != nil {
			return executions, fmt.Errorf("flow %v: step[%d] %v: %w", aFlow.Name, i, step.Action, err)
		}
	}
	return executions, nil
}

// New creates a flow service
func New(executor Executor, options ...Option) *Service {
	ret := &Service{executor: executor}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}
