package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/s3flow/internal/testutil"
)

func TestService_Method(t *testing.T) {
	srv := New(&testutil.MockS3Client{})
	for _, signature := range srv.Methods() {
		method, err := srv.Method(signature.Name)
		assert.NoError(t, err, signature.Name)
		assert.NotNil(t, method, signature.Name)
	}
	_, err := srv.Method("PUTOBJECT")
	assert.NoError(t, err)
	_, err = srv.Method("restoreObject")
	assert.Error(t, err)
	assert.Equal(t, Name, srv.Name())
}

func TestService_InvalidIO(t *testing.T) {
	srv := New(&testutil.MockS3Client{})
	method, err := srv.Method("createBucket")
	require.NoError(t, err)
	assert.Error(t, method(context.Background(), &DeleteBucketInput{}, &s3.CreateBucketOutput{}))
	assert.Error(t, method(context.Background(), &CreateBucketInput{}, &s3.DeleteBucketOutput{}))
}

func TestService_CreateBucket(t *testing.T) {
	testCases := []struct {
		name               string
		region             string
		expectedConstraint string
		err                error
	}{
		{name: "default region", region: "us-east-1"},
		{name: "no region"},
		{name: "other region", region: "eu-west-1", expectedConstraint: "eu-west-1"},
		{name: "error", region: "us-east-1", err: errors.New("BucketAlreadyExists")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var actual *s3.CreateBucketInput
			client := &testutil.MockS3Client{CreateBucketFunc: func(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
				actual = params
				if tc.err != nil {
					return nil, tc.err
				}
				return &s3.CreateBucketOutput{Location: aws.String("/bucket1")}, nil
			}}
			srv := New(client, WithRegion(tc.region))
			output := &s3.CreateBucketOutput{}
			err := srv.CreateBucket(context.Background(), &CreateBucketInput{Bucket: "bucket1"}, output)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bucket1", aws.ToString(actual.Bucket))
			assert.Equal(t, "/bucket1", aws.ToString(output.Location))
			if tc.expectedConstraint == "" {
				assert.Nil(t, actual.CreateBucketConfiguration)
				return
			}
			require.NotNil(t, actual.CreateBucketConfiguration)
			assert.EqualValues(t, tc.expectedConstraint, actual.CreateBucketConfiguration.LocationConstraint)
		})
	}
}

func TestService_PutObject(t *testing.T) {
	testCases := []struct {
		name                string
		input               *PutObjectInput
		expectedBody        string
		expectedContentType string
	}{
		{
			name:                "string body",
			input:               &PutObjectInput{Bucket: "b1", Key: "hello.txt", Body: "hello"},
			expectedBody:        "hello",
			expectedContentType: "text/plain; charset=utf-8",
		},
		{
			name:                "bytes body with explicit content type",
			input:               &PutObjectInput{Bucket: "b1", Key: "data", Body: []byte("abc"), ContentType: "application/octet-stream"},
			expectedBody:        "abc",
			expectedContentType: "application/octet-stream",
		},
		{
			name:                "reader body",
			input:               &PutObjectInput{Bucket: "b1", Key: "doc.json", Body: strings.NewReader(`{"a":1}`)},
			expectedBody:        `{"a":1}`,
			expectedContentType: "application/json",
		},
		{
			name:                "structured body",
			input:               &PutObjectInput{Bucket: "b1", Key: "doc.json", Body: map[string]int{"a": 1}},
			expectedBody:        `{"a":1}`,
			expectedContentType: "application/json",
		},
		{
			name:         "nil body",
			input:        &PutObjectInput{Bucket: "b1", Key: "empty"},
			expectedBody: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var body string
			var params *s3.PutObjectInput
			client := &testutil.MockS3Client{PutObjectFunc: func(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				params = input
				data, err := io.ReadAll(input.Body)
				body = string(data)
				return &s3.PutObjectOutput{ETag: aws.String("etag1")}, err
			}}
			srv := New(client)
			output := &s3.PutObjectOutput{}
			err := srv.PutObject(context.Background(), tc.input, output)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedBody, body)
			assert.Equal(t, tc.input.Bucket, aws.ToString(params.Bucket))
			assert.Equal(t, tc.input.Key, aws.ToString(params.Key))
			if tc.expectedContentType == "" {
				assert.NotEmpty(t, aws.ToString(params.ContentType))
			} else {
				assert.Equal(t, tc.expectedContentType, aws.ToString(params.ContentType))
			}
			assert.Equal(t, "etag1", aws.ToString(output.ETag))
		})
	}
}

func TestService_GetObject(t *testing.T) {
	client := &testutil.MockS3Client{GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
		if aws.ToString(params.Key) != "a.txt" {
			return nil, &s3types.NoSuchKey{}
		}
		return &s3.GetObjectOutput{
			Body:          io.NopCloser(strings.NewReader("content")),
			ContentType:   aws.String("text/plain"),
			ContentLength: aws.Int64(7),
			ETag:          aws.String("etag1"),
		}, nil
	}}
	srv := New(client)

	output := &GetObjectOutput{}
	err := srv.GetObject(context.Background(), &GetObjectInput{Bucket: "b1", Key: "a.txt"}, output)
	require.NoError(t, err)
	assert.Equal(t, "content", string(output.Body))
	assert.Equal(t, "text/plain", aws.ToString(output.ContentType))
	assert.EqualValues(t, 7, aws.ToInt64(output.ContentLength))
	assert.Equal(t, "etag1", aws.ToString(output.ETag))

	err = srv.GetObject(context.Background(), &GetObjectInput{Bucket: "b1", Key: "missing.txt"}, &GetObjectOutput{})
	var noSuchKey *s3types.NoSuchKey
	assert.ErrorAs(t, err, &noSuchKey)
}

func TestService_CopyObject(t *testing.T) {
	var params *s3.CopyObjectInput
	client := &testutil.MockS3Client{CopyObjectFunc: func(ctx context.Context, input *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
		params = input
		return &s3.CopyObjectOutput{CopyObjectResult: &s3types.CopyObjectResult{ETag: aws.String("etag2")}}, nil
	}}
	srv := New(client)
	output := &s3.CopyObjectOutput{}
	err := srv.CopyObject(context.Background(), &CopyObjectInput{Bucket: "b1", CopySource: "b1/a.txt", Key: "b.txt"}, output)
	require.NoError(t, err)
	assert.Equal(t, "b1/a.txt", aws.ToString(params.CopySource))
	assert.Equal(t, "b.txt", aws.ToString(params.Key))
	assert.Equal(t, "etag2", aws.ToString(output.CopyObjectResult.ETag))
}

func TestService_DeleteObjects(t *testing.T) {
	var params *s3.DeleteObjectsInput
	client := &testutil.MockS3Client{DeleteObjectsFunc: func(ctx context.Context, input *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
		params = input
		var deleted []s3types.DeletedObject
		for _, object := range input.Delete.Objects {
			deleted = append(deleted, s3types.DeletedObject{Key: object.Key})
		}
		return &s3.DeleteObjectsOutput{Deleted: deleted}, nil
	}}
	srv := New(client)
	output := &s3.DeleteObjectsOutput{}
	err := srv.DeleteObjects(context.Background(), &DeleteObjectsInput{Bucket: "b1", Keys: []string{"a.txt", "b.txt"}}, output)
	require.NoError(t, err)
	assert.Equal(t, "b1", aws.ToString(params.Bucket))
	require.Len(t, output.Deleted, 2)
	assert.Equal(t, "b.txt", aws.ToString(output.Deleted[1].Key))
}

func TestService_ListObjects(t *testing.T) {
	testCases := []struct {
		name            string
		maxKeys         int
		expectedMaxKeys *int32
	}{
		{name: "service default"},
		{name: "limited", maxKeys: 2, expectedMaxKeys: aws.Int32(2)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var params *s3.ListObjectsInput
			client := &testutil.MockS3Client{ListObjectsFunc: func(ctx context.Context, input *s3.ListObjectsInput, optFns ...func(*s3.Options)) (*s3.ListObjectsOutput, error) {
				params = input
				return &s3.ListObjectsOutput{Contents: []s3types.Object{{Key: aws.String("a.txt")}}}, nil
			}}
			output := &s3.ListObjectsOutput{}
			err := New(client).ListObjects(context.Background(), &ListObjectsInput{Bucket: "b1", MaxKeys: tc.maxKeys}, output)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedMaxKeys, params.MaxKeys)
			assert.Len(t, output.Contents, 1)
		})
	}
}

func TestService_ListAndDeleteBucket(t *testing.T) {
	var deleted string
	client := &testutil.MockS3Client{
		ListBucketsFunc: func(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
			return &s3.ListBucketsOutput{Buckets: []s3types.Bucket{{Name: aws.String("b1")}, {Name: aws.String("b2")}}}, nil
		},
		DeleteBucketFunc: func(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
			deleted = aws.ToString(params.Bucket)
			return &s3.DeleteBucketOutput{}, nil
		},
	}
	srv := New(client)
	list := &s3.ListBucketsOutput{}
	require.NoError(t, srv.ListBuckets(context.Background(), &ListBucketsInput{}, list))
	assert.Len(t, list.Buckets, 2)
	require.NoError(t, srv.DeleteBucket(context.Background(), &DeleteBucketInput{Bucket: "b2"}, &s3.DeleteBucketOutput{}))
	assert.Equal(t, "b2", deleted)
}

func TestService_WaitForObject(t *testing.T) {
	testCases := []struct {
		name        string
		foundAfter  int32
		timeoutSec  int
		expectError bool
	}{
		{name: "exists", foundAfter: 0},
		{name: "appears after retries", foundAfter: 3},
		{name: "never appears", foundAfter: 1 << 30, timeoutSec: 1, expectError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var attempts int32
			client := &testutil.MockS3Client{HeadObjectFunc: func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
				if atomic.AddInt32(&attempts, 1) <= tc.foundAfter {
					return nil, &s3types.NotFound{}
				}
				return &s3.HeadObjectOutput{ContentLength: aws.Int64(3)}, nil
			}}
			srv := New(client, WithWaitDelay(time.Millisecond, 5*time.Millisecond))
			output := &s3.HeadObjectOutput{}
			err := srv.WaitForObject(context.Background(), &WaitForObjectInput{Bucket: "b1", Key: "a.txt", TimeoutSec: tc.timeoutSec}, output)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, 3, aws.ToInt64(output.ContentLength))
			assert.EqualValues(t, tc.foundAfter+1, atomic.LoadInt32(&attempts))
		})
	}
}

func TestService_WaitForBucket(t *testing.T) {
	var attempts int32
	client := &testutil.MockS3Client{HeadBucketFunc: func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
		if atomic.AddInt32(&attempts, 1) < 2 {
			return nil, &s3types.NotFound{}
		}
		return &s3.HeadBucketOutput{BucketRegion: aws.String("us-east-1")}, nil
	}}
	srv := New(client, WithWaitDelay(time.Millisecond, 5*time.Millisecond), WithWaitTimeout(time.Second))
	output := &s3.HeadBucketOutput{}
	require.NoError(t, srv.WaitForBucket(context.Background(), &WaitForBucketInput{Bucket: "b1"}, output))
	assert.Equal(t, "us-east-1", aws.ToString(output.BucketRegion))
}

type trackedReader struct {
	io.Reader
	closed bool
}

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

func TestService_Upload(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	require.NoError(t, fs.Upload(ctx, "mem://localhost/upload/src.txt", 0644, strings.NewReader("from url")))

	testCases := []struct {
		name         string
		input        *UploadInput
		expectedBody string
		expectError  bool
	}{
		{name: "reader", input: &UploadInput{Body: strings.NewReader("streamed")}, expectedBody: "streamed"},
		{name: "bytes", input: &UploadInput{Body: []byte("bytes")}, expectedBody: "bytes"},
		{name: "string content", input: &UploadInput{Body: "hello"}, expectedBody: "hello"},
		{name: "path like string is content", input: &UploadInput{Body: "/etc/passwd"}, expectedBody: "/etc/passwd"},
		{name: "source URL", input: &UploadInput{Source: "mem://localhost/upload/src.txt"}, expectedBody: "from url"},
		{name: "body wins over source", input: &UploadInput{Body: "inline", Source: "mem://localhost/upload/src.txt"}, expectedBody: "inline"},
		{name: "missing source", input: &UploadInput{Source: "mem://localhost/upload/missing.txt"}, expectError: true},
		{name: "no body or source", input: &UploadInput{}, expectError: true},
		{name: "unsupported", input: &UploadInput{Body: 12}, expectError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var body string
			client := &testutil.MockS3Client{PutObjectFunc: func(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				data, err := io.ReadAll(input.Body)
				body = string(data)
				return &s3.PutObjectOutput{ETag: aws.String("etag3")}, err
			}}
			srv := New(client, WithFs(fs))
			output := &manager.UploadOutput{}
			tc.input.Bucket = "b1"
			tc.input.Key = "dst.txt"
			err := srv.Upload(ctx, tc.input, output)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedBody, body)
			assert.Equal(t, "etag3", aws.ToString(output.ETag))
		})
	}
}

func TestService_CallerReadersStayOpen(t *testing.T) {
	ctx := context.Background()
	client := &testutil.MockS3Client{PutObjectFunc: func(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		_, err := io.ReadAll(input.Body)
		return &s3.PutObjectOutput{}, err
	}}
	srv := New(client)

	uploadReader := &trackedReader{Reader: strings.NewReader("streamed")}
	require.NoError(t, srv.Upload(ctx, &UploadInput{Bucket: "b1", Key: "a.txt", Body: uploadReader}, &manager.UploadOutput{}))
	assert.False(t, uploadReader.closed)

	putReader := &trackedReader{Reader: strings.NewReader("stored")}
	require.NoError(t, srv.PutObject(ctx, &PutObjectInput{Bucket: "b1", Key: "a.txt", Body: putReader}, &s3.PutObjectOutput{}))
	assert.False(t, putReader.closed)
}
