package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadInput defines parameters for streaming an object
type UploadInput struct {
	Bucket      string      `json:"bucket" description:"bucket name"`
	Key         string      `json:"key" description:"object key"`
	Body        interface{} `json:"body,omitempty" description:"io.Reader, []byte or string content"`
	Source      string      `json:"source,omitempty" description:"afs URL to stream from when body is not set"`
	ContentType string      `json:"contentType,omitempty"`
}

// Upload streams body, or the source URL content, to an object. Large bodies are sent
// as multipart upload. Only readers opened from the source URL are closed.
func (s *Service) Upload(ctx context.Context, input *UploadInput, output *manager.UploadOutput) error {
	reader, err := s.openBody(ctx, input)
	if err != nil {
		return err
	}
	defer reader.Close()
	params := &s3.PutObjectInput{
		Bucket: aws.String(input.Bucket),
		Key:    aws.String(input.Key),
		Body:   reader,
	}
	if input.ContentType != "" {
		params.ContentType = aws.String(input.ContentType)
	}
	uploader := manager.NewUploader(s.client, s.uploaderOptions...)
	result, err := uploader.Upload(ctx, params)
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

func (s *Service) openBody(ctx context.Context, input *UploadInput) (io.ReadCloser, error) {
	if input.Body == nil {
		if input.Source == "" {
			return nil, fmt.Errorf("upload body and source were empty")
		}
		reader, err := s.fs.OpenURL(ctx, input.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to open upload source %v: %w", input.Source, err)
		}
		return reader, nil
	}
	switch actual := input.Body.(type) {
	case io.Reader:
		return io.NopCloser(actual), nil
	case []byte:
		return io.NopCloser(bytes.NewReader(actual)), nil
	case string:
		return io.NopCloser(strings.NewReader(actual)), nil
	default:
		return nil, fmt.Errorf("unsupported upload body type %T", input.Body)
	}
}
