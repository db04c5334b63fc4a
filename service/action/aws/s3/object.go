package s3

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// PutObjectInput defines parameters for storing an object
type PutObjectInput struct {
	Bucket      string      `json:"bucket" description:"bucket name"`
	Key         string      `json:"key" description:"object key"`
	Body        interface{} `json:"body" description:"string, []byte, io.Reader or any JSON encodable value"`
	ContentType string      `json:"contentType,omitempty" description:"detected from content when empty"`
}

// CopyObjectInput defines parameters for copying an object
type CopyObjectInput struct {
	Bucket     string `json:"bucket" description:"destination bucket"`
	CopySource string `json:"copySource" description:"source in bucket/key form"`
	Key        string `json:"key" description:"destination key"`
}

// GetObjectInput defines parameters for retrieving an object
type GetObjectInput struct {
	Bucket string `json:"bucket" description:"bucket name"`
	Key    string `json:"key" description:"object key"`
}

// GetObjectOutput represents retrieved object, the body is read in full
type GetObjectOutput struct {
	Body          []byte            `json:"body,omitempty"`
	ContentType   *string           `json:"contentType,omitempty"`
	ContentLength *int64            `json:"contentLength,omitempty"`
	ETag          *string           `json:"eTag,omitempty"`
	LastModified  *time.Time        `json:"lastModified,omitempty"`
	VersionId     *string           `json:"versionId,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// DeleteObjectInput defines parameters for deleting an object
type DeleteObjectInput struct {
	Bucket string `json:"bucket" description:"bucket name"`
	Key    string `json:"key" description:"object key"`
}

// DeleteObjectsInput defines parameters for deleting objects
type DeleteObjectsInput struct {
	Bucket string   `json:"bucket" description:"bucket name"`
	Keys   []string `json:"keys" description:"object keys"`
}

// ListObjectsInput defines parameters for listing objects
type ListObjectsInput struct {
	Bucket  string `json:"bucket" description:"bucket name"`
	MaxKeys int    `json:"maxKeys,omitempty" description:"max number of keys returned, service default when zero"`
}

// WaitForObjectInput defines parameters for waiting on object existence
type WaitForObjectInput struct {
	Bucket     string `json:"bucket" description:"bucket name"`
	Key        string `json:"key" description:"object key"`
	TimeoutSec int    `json:"timeoutSec,omitempty" description:"max wait time, service default when zero"`
}

// PutObject stores an object
func (s *Service) PutObject(ctx context.Context, input *PutObjectInput, output *s3.PutObjectOutput) error {
	data, err := asBytes(input.Body)
	if err != nil {
		return err
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = DetectContentType(input.Key, data)
	}
	result, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(input.Bucket),
		Key:         aws.String(input.Key),
		Body:        newReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

// CopyObject copies an object
func (s *Service) CopyObject(ctx context.Context, input *CopyObjectInput, output *s3.CopyObjectOutput) error {
	result, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(input.Bucket),
		CopySource: aws.String(input.CopySource),
		Key:        aws.String(input.Key),
	})
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

// GetObject retrieves an object
func (s *Service) GetObject(ctx context.Context, input *GetObjectInput, output *GetObjectOutput) error {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(input.Bucket),
		Key:    aws.String(input.Key),
	})
	if err != nil {
		return err
	}
	if result.Body != nil {
		defer result.Body.Close()
		if output.Body, err = io.ReadAll(result.Body); err != nil {
			return fmt.Errorf("failed to read s3://%v/%v: %w", input.Bucket, input.Key, err)
		}
	}
	output.ContentType = result.ContentType
	output.ContentLength = result.ContentLength
	output.ETag = result.ETag
	output.LastModified = result.LastModified
	output.VersionId = result.VersionId
	output.Metadata = result.Metadata
	return nil
}

// DeleteObject deletes an object
func (s *Service) DeleteObject(ctx context.Context, input *DeleteObjectInput, output *s3.DeleteObjectOutput) error {
	result, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(input.Bucket),
		Key:    aws.String(input.Key),
	})
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

// DeleteObjects deletes all keys with one request
func (s *Service) DeleteObjects(ctx context.Context, input *DeleteObjectsInput, output *s3.DeleteObjectsOutput) error {
	objects := make([]s3types.ObjectIdentifier, 0, len(input.Keys))
	for _, key := range input.Keys {
		objects = append(objects, s3types.ObjectIdentifier{Key: aws.String(key)})
	}
	result, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(input.Bucket),
		Delete: &s3types.Delete{Objects: objects},
	})
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

// ListObjects lists objects
func (s *Service) ListObjects(ctx context.Context, input *ListObjectsInput, output *s3.ListObjectsOutput) error {
	params := &s3.ListObjectsInput{Bucket: aws.String(input.Bucket)}
	if input.MaxKeys > 0 {
		params.MaxKeys = aws.Int32(int32(input.MaxKeys))
	}
	result, err := s.client.ListObjects(ctx, params)
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

// WaitForObject polls HeadObject until the object exists or the wait time elapses
func (s *Service) WaitForObject(ctx context.Context, input *WaitForObjectInput, output *s3.HeadObjectOutput) error {
	waiter := s3.NewObjectExistsWaiter(s.client, func(o *s3.ObjectExistsWaiterOptions) {
		if s.waitMinDelay > 0 {
			o.MinDelay = s.waitMinDelay
		}
		if s.waitMaxDelay > 0 {
			o.MaxDelay = s.waitMaxDelay
		}
	})
	params := &s3.HeadObjectInput{Bucket: aws.String(input.Bucket), Key: aws.String(input.Key)}
	result, err := waiter.WaitForOutput(ctx, params, s.maxWait(input.TimeoutSec))
	if err != nil {
		return err
	}
	*output = *result
	return nil
}
