package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/viant/s3flow"
	"github.com/viant/s3flow/model/execution"
)

// ServiceFlags holds flags shared by commands creating the service
type ServiceFlags struct {
	ConfigURL string
	Region    string
	Endpoint  string
	PathStyle bool
	Legacy    bool
	TraceFile string
}

func serviceFlags(cmd *cobra.Command) (*ServiceFlags, error) {
	flags := &ServiceFlags{}
	var err error
	if flags.ConfigURL, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}
	if flags.Region, err = cmd.Flags().GetString("region"); err != nil {
		return nil, err
	}
	if flags.Endpoint, err = cmd.Flags().GetString("endpoint"); err != nil {
		return nil, err
	}
	if flags.PathStyle, err = cmd.Flags().GetBool("path-style"); err != nil {
		return nil, err
	}
	if flags.Legacy, err = cmd.Flags().GetBool("legacy"); err != nil {
		return nil, err
	}
	if flags.TraceFile, err = cmd.Flags().GetString("trace-file"); err != nil {
		return nil, err
	}
	return flags, nil
}

// Options converts flags to service options, flags override config values
func (f *ServiceFlags) Options(ctx context.Context) ([]s3flow.Option, error) {
	var options []s3flow.Option
	if f.ConfigURL != "" {
		cfg, err := s3flow.LoadConfig(ctx, f.ConfigURL)
		if err != nil {
			return nil, err
		}
		options = append(options, s3flow.WithConfig(cfg))
	}
	if f.Region != "" {
		options = append(options, s3flow.WithRegion(f.Region))
	}
	if f.Endpoint != "" {
		options = append(options, s3flow.WithEndpoint(f.Endpoint, f.PathStyle))
	}
	if f.Legacy {
		options = append(options, s3flow.WithLegacyActions(true))
	}
	if f.TraceFile != "" {
		options = append(options, s3flow.WithTracing("s3flow", "", f.TraceFile))
	}
	options = append(options, s3flow.WithListener(logListener))
	return options, nil
}

func newService(cmd *cobra.Command, extra ...s3flow.Option) (*s3flow.Service, error) {
	flags, err := serviceFlags(cmd)
	if err != nil {
		return nil, err
	}
	options, err := flags.Options(cmd.Context())
	if err != nil {
		return nil, err
	}
	srv, err := s3flow.New(cmd.Context(), append(options, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return srv, nil
}

func logListener(exec *execution.Execution, _, _ interface{}) {
	if exec.Error != "" {
		slog.Error("action failed", "action", exec.Action, "method", exec.Method, "elapsed", exec.Elapsed(), "error", exec.Error)
		return
	}
	slog.Info("action completed", "action", exec.Action, "method", exec.Method, "result", exec.ResultKey, "elapsed", exec.Elapsed())
	slog.Debug("action execution", "id", exec.ID, "input", exec.Input)
}
