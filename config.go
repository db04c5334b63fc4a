package s3flow

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/s3flow/internal/expr"
	"github.com/viant/s3flow/service/action/aws/s3"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the service settings
type Config struct {
	AWS s3.Config `json:"aws" yaml:"aws"`
	// WaitTimeoutSec is the default max wait of waitForBucket and waitForObject
	WaitTimeoutSec int `json:"waitTimeoutSec,omitempty" yaml:"waitTimeoutSec,omitempty"`
	// LegacyActions registers the earlier action names alongside the current catalog
	LegacyActions bool          `json:"legacyActions,omitempty" yaml:"legacyActions,omitempty"`
	FlowBaseURL   string        `json:"flowBaseURL,omitempty" yaml:"flowBaseURL,omitempty"`
	Tracing       TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`
}

// TracingConfig enables span export to a file (or stdout) when ServiceName is set
type TracingConfig struct {
	ServiceName    string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty"`
	OutputFile     string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// Enabled returns true when tracing is configured
func (c *TracingConfig) Enabled() bool {
	return c.ServiceName != ""
}

// WaitTimeout returns wait timeout as duration
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.WaitTimeoutSec) * time.Second
}

// DefaultConfig returns config with default values
func DefaultConfig() *Config {
	return &Config{
		WaitTimeoutSec: int(s3.DefaultWaitTimeout / time.Second),
	}
}

// Validate returns an error describing invalid settings or nil
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.WaitTimeoutSec < 0 {
		return fmt.Errorf("waitTimeoutSec must be >= 0")
	}
	if c.AWS.MaxAttempts < 0 {
		return fmt.Errorf("aws.maxAttempts must be >= 0")
	}
	if c.AWS.CredentialsKey != "" && c.AWS.CredentialsURL == "" {
		return fmt.Errorf("aws.credentialsKey requires aws.credentialsURL")
	}
	return nil
}

// LoadConfig loads YAML (or JSON) config from URL on top of DefaultConfig,
// ${env.KEY} expressions are expanded before decoding
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal([]byte(expr.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config from %s: %w", URL, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return cfg, nil
}
