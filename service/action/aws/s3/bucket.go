package s3

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// CreateBucketInput defines parameters for creating a bucket
type CreateBucketInput struct {
	Bucket string `json:"bucket" description:"bucket name"`
}

// DeleteBucketInput defines parameters for deleting a bucket
type DeleteBucketInput struct {
	Bucket string `json:"bucket" description:"bucket name"`
}

// ListBucketsInput defines parameters for listing buckets
type ListBucketsInput struct{}

// WaitForBucketInput defines parameters for waiting on bucket existence
type WaitForBucketInput struct {
	Bucket     string `json:"bucket" description:"bucket name"`
	TimeoutSec int    `json:"timeoutSec,omitempty" description:"max wait time, service default when zero"`
}

// CreateBucket creates a bucket; outside us-east-1 the service region is sent as location constraint
func (s *Service) CreateBucket(ctx context.Context, input *CreateBucketInput, output *s3.CreateBucketOutput) error {
	params := &s3.CreateBucketInput{Bucket: aws.String(input.Bucket)}
	if s.region != "" && s.region != DefaultRegion {
		params.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(s.region),
		}
	}
	result, err := s.client.CreateBucket(ctx, params)
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

// DeleteBucket deletes a bucket
func (s *Service) DeleteBucket(ctx context.Context, input *DeleteBucketInput, output *s3.DeleteBucketOutput) error {
	result, err := s.client.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(input.Bucket)})
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

// ListBuckets lists buckets
func (s *Service) ListBuckets(ctx context.Context, _ *ListBucketsInput, output *s3.ListBucketsOutput) error {
	result, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

// WaitForBucket polls HeadBucket until the bucket exists or the wait time elapses
func (s *Service) WaitForBucket(ctx context.Context, input *WaitForBucketInput, output *s3.HeadBucketOutput) error {
	waiter := s3.NewBucketExistsWaiter(s.client, func(o *s3.BucketExistsWaiterOptions) {
		if s.waitMinDelay > 0 {
			o.MinDelay = s.waitMinDelay
		}
		if s.waitMaxDelay > 0 {
			o.MaxDelay = s.waitMaxDelay
		}
	})
	result, err := waiter.WaitForOutput(ctx, &s3.HeadBucketInput{Bucket: aws.String(input.Bucket)}, s.maxWait(input.TimeoutSec))
	if err != nil {
		return err
	}
	*output = *result
	return nil
}

func (s *Service) maxWait(timeoutSec int) time.Duration {
	if timeoutSec > 0 {
		return time.Duration(timeoutSec) * time.Second
	}
	return s.waitTimeout
}
