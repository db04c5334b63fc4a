package s3

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/viant/afs"
	"github.com/viant/s3flow/model/types"
)

// Name is the action service name
const Name = "aws/s3"

// DefaultWaitTimeout matches 20 attempts with 5s delay
const DefaultWaitTimeout = 100 * time.Second

// Service provides S3 operations, each method calls one SDK operation
type Service struct {
	client          Client
	region          string
	fs              afs.Service
	waitTimeout     time.Duration
	waitMinDelay    time.Duration
	waitMaxDelay    time.Duration
	uploaderOptions []func(*manager.Uploader)
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "createBucket",
			Description: "Creates a bucket.",
			Input:       reflect.TypeOf(&CreateBucketInput{}),
			Output:      reflect.TypeOf(&s3.CreateBucketOutput{}),
		},
		{
			Name:        "deleteBucket",
			Description: "Deletes an empty bucket.",
			Input:       reflect.TypeOf(&DeleteBucketInput{}),
			Output:      reflect.TypeOf(&s3.DeleteBucketOutput{}),
		},
		{
			Name:        "listBuckets",
			Description: "Lists buckets owned by the caller.",
			Input:       reflect.TypeOf(&ListBucketsInput{}),
			Output:      reflect.TypeOf(&s3.ListBucketsOutput{}),
		},
		{
			Name:        "waitForBucket",
			Description: "Polls until the bucket exists.",
			Input:       reflect.TypeOf(&WaitForBucketInput{}),
			Output:      reflect.TypeOf(&s3.HeadBucketOutput{}),
		},
		{
			Name:        "putObject",
			Description: "Stores body as an object.",
			Input:       reflect.TypeOf(&PutObjectInput{}),
			Output:      reflect.TypeOf(&s3.PutObjectOutput{}),
		},
		{
			Name:        "upload",
			Description: "Streams body to an object using managed (multipart) upload.",
			Input:       reflect.TypeOf(&UploadInput{}),
			Output:      reflect.TypeOf(&manager.UploadOutput{}),
		},
		{
			Name:        "copyObject",
			Description: "Copies an object.",
			Input:       reflect.TypeOf(&CopyObjectInput{}),
			Output:      reflect.TypeOf(&s3.CopyObjectOutput{}),
		},
		{
			Name:        "getObject",
			Description: "Retrieves an object with its content.",
			Input:       reflect.TypeOf(&GetObjectInput{}),
			Output:      reflect.TypeOf(&GetObjectOutput{}),
		},
		{
			Name:        "deleteObject",
			Description: "Deletes an object.",
			Input:       reflect.TypeOf(&DeleteObjectInput{}),
			Output:      reflect.TypeOf(&s3.DeleteObjectOutput{}),
		},
		{
			Name:        "deleteObjects",
			Description: "Deletes objects in a single request.",
			Input:       reflect.TypeOf(&DeleteObjectsInput{}),
			Output:      reflect.TypeOf(&s3.DeleteObjectsOutput{}),
		},
		{
			Name:        "listObjects",
			Description: "Lists objects in a bucket.",
			Input:       reflect.TypeOf(&ListObjectsInput{}),
			Output:      reflect.TypeOf(&s3.ListObjectsOutput{}),
		},
		{
			Name:        "waitForObject",
			Description: "Polls until the object exists.",
			Input:       reflect.TypeOf(&WaitForObjectInput{}),
			Output:      reflect.TypeOf(&s3.HeadObjectOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "createbucket":
		return s.createBucket, nil
	case "deletebucket":
		return s.deleteBucket, nil
	case "listbuckets":
		return s.listBuckets, nil
	case "waitforbucket":
		return s.waitForBucket, nil
	case "putobject":
		return s.putObject, nil
	case "upload":
		return s.upload, nil
	case "copyobject":
		return s.copyObject, nil
	case "getobject":
		return s.getObject, nil
	case "deleteobject":
		return s.deleteObject, nil
	case "deleteobjects":
		return s.deleteObjects, nil
	case "listobjects":
		return s.listObjects, nil
	case "waitforobject":
		return s.waitForObject, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) createBucket(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*CreateBucketInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.CreateBucketOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.CreateBucket(ctx, input, output)
}

func (s *Service) deleteBucket(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*DeleteBucketInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.DeleteBucketOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.DeleteBucket(ctx, input, output)
}

func (s *Service) listBuckets(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*ListBucketsInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.ListBucketsOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.ListBuckets(ctx, input, output)
}

func (s *Service) waitForBucket(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*WaitForBucketInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.HeadBucketOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.WaitForBucket(ctx, input, output)
}

func (s *Service) putObject(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*PutObjectInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.PutObjectOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.PutObject(ctx, input, output)
}

func (s *Service) upload(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*UploadInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*manager.UploadOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.Upload(ctx, input, output)
}

func (s *Service) copyObject(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*CopyObjectInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.CopyObjectOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.CopyObject(ctx, input, output)
}

func (s *Service) getObject(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*GetObjectInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*GetObjectOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.GetObject(ctx, input, output)
}

func (s *Service) deleteObject(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*DeleteObjectInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.DeleteObjectOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.DeleteObject(ctx, input, output)
}

func (s *Service) deleteObjects(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*DeleteObjectsInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.DeleteObjectsOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.DeleteObjects(ctx, input, output)
}

func (s *Service) listObjects(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*ListObjectsInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.ListObjectsOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.ListObjects(ctx, input, output)
}

func (s *Service) waitForObject(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*WaitForObjectInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*s3.HeadObjectOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.WaitForObject(ctx, input, output)
}

// Region returns the region used for bucket location constraints
func (s *Service) Region() string {
	return s.region
}

// New creates a new S3 action service
func New(client Client, options ...Option) *Service {
	ret := &Service{client: client, waitTimeout: DefaultWaitTimeout}
	if sdkClient, ok := client.(*s3.Client); ok {
		ret.region = sdkClient.Options().Region
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}
