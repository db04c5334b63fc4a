package s3

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/viant/afs"
)

// Option represents service option
type Option func(s *Service)

// WithRegion sets region used as bucket location constraint
func WithRegion(region string) Option {
	return func(s *Service) {
		s.region = region
	}
}

// WithFs sets file system used to open upload sources given as URL
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithWaitTimeout sets default max wait duration for wait methods
func WithWaitTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.waitTimeout = timeout
		}
	}
}

// WithWaitDelay sets waiter polling delay bounds
func WithWaitDelay(minDelay, maxDelay time.Duration) Option {
	return func(s *Service) {
		s.waitMinDelay = minDelay
		s.waitMaxDelay = maxDelay
	}
}

// WithUploaderOptions customises the managed uploader (part size, concurrency)
func WithUploaderOptions(options ...func(*manager.Uploader)) Option {
	return func(s *Service) {
		s.uploaderOptions = append(s.uploaderOptions, options...)
	}
}
