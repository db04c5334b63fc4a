package s3flow

import (
	"time"

	"github.com/viant/afs/storage"
	"github.com/viant/s3flow/model/action"
	"github.com/viant/s3flow/model/types"
	"github.com/viant/s3flow/service/action/aws/s3"
	"github.com/viant/s3flow/service/executor"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents service option
type Option func(s *Service)

// WithConfig replaces the config, options applied after it refine it
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithClient sets the S3 client, no client is created from config
func WithClient(client s3.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithRegion sets the AWS region
func WithRegion(region string) Option {
	return func(s *Service) {
		s.config.AWS.Region = region
	}
}

// WithEndpoint sets a custom S3 endpoint, e.g. LocalStack or MinIO
func WithEndpoint(endpoint string, usePathStyle bool) Option {
	return func(s *Service) {
		s.config.AWS.Endpoint = endpoint
		s.config.AWS.UsePathStyle = usePathStyle
	}
}

// WithWaitTimeout sets the default max wait of the wait actions, rounded up to whole seconds
func WithWaitTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.config.WaitTimeoutSec = int((timeout + time.Second - 1) / time.Second)
	}
}

// WithLegacyActions registers the earlier action names alongside the current catalog
func WithLegacyActions(enabled bool) Option {
	return func(s *Service) {
		s.config.LegacyActions = enabled
	}
}

// WithS3Options passes options to the S3 action service
func WithS3Options(options ...s3.Option) Option {
	return func(s *Service) {
		s.s3Options = append(s.s3Options, options...)
	}
}

// WithListener sets the executor listener, nil disables it
func WithListener(listener executor.Listener) Option {
	return func(s *Service) {
		s.executorOptions = append(s.executorOptions, executor.WithListener(listener))
	}
}

// WithExecutorOptions passes options to the executor
func WithExecutorOptions(options ...executor.Option) Option {
	return func(s *Service) {
		s.executorOptions = append(s.executorOptions, options...)
	}
}

// WithExtensionServices registers additional action services
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = append(s.extensionServices, services...)
	}
}

// WithExtensionActions registers additional named actions, they replace catalog actions with the same name
func WithExtensionActions(actions ...*action.Action) Option {
	return func(s *Service) {
		s.extensionActions = append(s.extensionActions, actions...)
	}
}

// WithFlowBaseURL sets the location relative flow URLs are resolved against
func WithFlowBaseURL(URL string) Option {
	return func(s *Service) {
		s.config.FlowBaseURL = URL
	}
}

// WithFlowFsOptions sets storage options used when loading flows
func WithFlowFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.flowFsOptions = options
	}
}

// WithTracing configures span export to outputFile, stdout when empty
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.config.Tracing = TracingConfig{ServiceName: serviceName, ServiceVersion: serviceVersion, OutputFile: outputFile}
	}
}

// WithTracingExporter configures tracing with a custom span exporter, it takes precedence
// over the tracing config
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.config.Tracing.ServiceName = serviceName
		s.config.Tracing.ServiceVersion = serviceVersion
		s.tracingExporter = exporter
	}
}
