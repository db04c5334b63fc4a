package flow

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
)

// Option represents flow service option
type Option func(s *Service)

// WithFs sets the file system used to load flows
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithBaseURL sets location relative flow URLs are resolved against
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}

// WithFsOptions sets storage options passed to every download, e.g. *embed.FS
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.fsOptions = append(s.fsOptions, options...)
	}
}
