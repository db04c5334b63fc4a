package executor

import (
	"context"
	"fmt"
	"log"
	"reflect"

	"github.com/viant/s3flow/extension"
	"github.com/viant/s3flow/internal/clock"
	"github.com/viant/s3flow/internal/idgen"
	"github.com/viant/s3flow/model/action"
	"github.com/viant/s3flow/model/execution"
	"github.com/viant/s3flow/model/types"
	"github.com/viant/s3flow/runtime/state"
	"github.com/viant/s3flow/service/dao"
	"github.com/viant/s3flow/service/dao/execution/memory"
	"github.com/viant/s3flow/tracing"
	"github.com/viant/structology/conv"
)

// Service executes named actions
type Service struct {
	actions   *extension.Actions
	converter *conv.Converter
	listener  Listener
	store     dao.Service[string, execution.Execution]
}

// Execute runs the named action: bound context values become the method input and the
// output is stored under the expanded result key. On failure nothing is written to the
// context and the error is returned as *ActionError. The returned execution is never nil
// once the action is resolved.
func (s *Service) Execute(ctx context.Context, actionName string, aState types.State) (*execution.Execution, error) {
	anAction, service, signature, err := s.actions.Resolve(actionName)
	if err != nil {
		return nil, err
	}
	anExecution := execution.New(idgen.New(), anAction.Name, anAction.Service, signature.Name, clock.Now())
	anExecution.Start(clock.Now())

	input, output, err := s.prepare(anAction, signature, aState, anExecution)
	if err != nil {
		return s.fail(ctx, anExecution, input, output, err)
	}
	method, err := service.Method(signature.Name)
	if err != nil {
		return s.fail(ctx, anExecution, input, output, err)
	}

	spanCtx, span := tracing.StartSpan(ctx, "action/"+anAction.Name, tracing.KindClient)
	span.WithAttributes(map[string]string{
		"action.service":    anAction.Service,
		"action.method":     signature.Name,
		"action.result_key": anExecution.ResultKey,
		"execution.id":      anExecution.ID,
	})
	err = method(spanCtx, input, output)
	tracing.EndSpan(span, err)
	if err != nil {
		return s.fail(ctx, anExecution, input, output, err)
	}

	result, err := resultValue(anAction, output)
	if err != nil {
		return s.fail(ctx, anExecution, input, output, err)
	}
	aState.Set(anExecution.ResultKey, result)
	anExecution.Output = output
	anExecution.Complete(clock.Now())
	s.notify(anExecution, input, output)
	s.save(ctx, anExecution)
	return anExecution, nil
}

// Executions returns recorded executions, optionally filtered by "Action" and "State"
func (s *Service) Executions(ctx context.Context, parameters ...*dao.Parameter) ([]*execution.Execution, error) {
	return s.store.List(ctx, parameters...)
}

// prepare expands the result key and builds typed input and output, it runs before
// the method so that an incomplete context fails the action without a service call
func (s *Service) prepare(anAction *action.Action, signature *types.Signature, aState types.State, anExecution *execution.Execution) (interface{}, interface{}, error) {
	resultKey, err := state.Expand(anAction.Result, aState)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to expand result key: %w", err)
	}
	anExecution.ResultKey = resultKey
	if anAction.ResultField != "" {
		if _, ok := signature.Output.Elem().FieldByName(anAction.ResultField); !ok {
			return nil, nil, fmt.Errorf("%w: %v.%v", ErrUnknownField, signature.Output.Elem().Name(), anAction.ResultField)
		}
	}
	input, err := s.bind(anAction, signature.Input, aState)
	anExecution.Input = input
	if err != nil {
		return input, nil, err
	}
	output := reflect.New(signature.Output.Elem()).Interface()
	return input, output, nil
}

// bind assigns bound context values to input fields, missing keys leave the zero value
func (s *Service) bind(anAction *action.Action, inputType reflect.Type, aState types.State) (interface{}, error) {
	inputPtr := reflect.New(inputType.Elem())
	inputValue := inputPtr.Elem()
	for _, binding := range anAction.Inputs {
		value, ok := aState.Get(binding.Key)
		if !ok || value == nil {
			continue
		}
		field := inputValue.FieldByName(binding.Field)
		if !field.IsValid() || !field.CanSet() {
			return inputPtr.Interface(), types.NewBindingError(binding.Key, binding.Field, ErrUnknownField)
		}
		rawValue := reflect.ValueOf(value)
		if rawValue.Type().AssignableTo(field.Type()) {
			field.Set(rawValue)
			continue
		}
		if err := s.converter.Convert(value, field.Addr().Interface()); err != nil {
			return inputPtr.Interface(), types.NewBindingError(binding.Key, binding.Field, err)
		}
	}
	return inputPtr.Interface(), nil
}

func resultValue(anAction *action.Action, output interface{}) (interface{}, error) {
	if anAction.ResultField == "" {
		return output, nil
	}
	field := reflect.ValueOf(output).Elem().FieldByName(anAction.ResultField)
	if !field.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownField, anAction.ResultField)
	}
	return field.Interface(), nil
}

func (s *Service) fail(ctx context.Context, anExecution *execution.Execution, input, output interface{}, err error) (*execution.Execution, error) {
	actionErr := NewActionError(anExecution.Action, err)
	anExecution.Fail(clock.Now(), actionErr)
	s.notify(anExecution, input, output)
	s.save(ctx, anExecution)
	return anExecution, actionErr
}

func (s *Service) notify(anExecution *execution.Execution, input, output interface{}) {
	if s.listener != nil {
		s.listener(anExecution, input, output)
	}
}

func (s *Service) save(ctx context.Context, anExecution *execution.Execution) {
	if err := s.store.Save(ctx, anExecution); err != nil {
		log.Printf("failed to record execution %v of %v: %v", anExecution.ID, anExecution.Action, err)
	}
}

// New creates an executor for the registered actions
func New(actions *extension.Actions, opts ...Option) *Service {
	options := conv.DefaultOptions()
	options.ClonePointerData = true
	options.IgnoreUnmapped = true
	options.AccessUnexported = true

	s := &Service{
		actions:   actions,
		converter: conv.NewConverter(options),
		listener:  LogListener,
	}
	for _, o := range opts {
		o(s)
	}
	if s.store == nil {
		s.store = memory.New()
	}
	return s
}
