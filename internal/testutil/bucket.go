package testutil

import (
	"bytes"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type object struct {
	data        []byte
	contentType string
	modified    time.Time
}

// Buckets is an in-memory bucket store backing a MockS3Client
type Buckets struct {
	mux     sync.Mutex
	buckets map[string]map[string]*object
}

// Object returns stored object content
func (b *Buckets) Object(bucket, key string) ([]byte, bool) {
	b.mux.Lock()
	defer b.mux.Unlock()
	objects, ok := b.buckets[bucket]
	if !ok {
		return nil, false
	}
	obj, ok := objects[key]
	if !ok {
		return nil, false
	}
	return obj.data, true
}

// NewInMemoryS3Client returns a mock client whose object and bucket calls operate on an in-memory store
func NewInMemoryS3Client() (*MockS3Client, *Buckets) {
	store := &Buckets{buckets: map[string]map[string]*object{}}
	client := &MockS3Client{}
	client.CreateBucketFunc = func(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		name := aws.ToString(params.Bucket)
		if _, ok := store.buckets[name]; ok {
			return nil, &s3types.BucketAlreadyOwnedByYou{Message: aws.String(name)}
		}
		store.buckets[name] = map[string]*object{}
		return &s3.CreateBucketOutput{Location: aws.String("/" + name)}, nil
	}
	client.DeleteBucketFunc = func(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		name := aws.ToString(params.Bucket)
		if _, ok := store.buckets[name]; !ok {
			return nil, &s3types.NoSuchBucket{Message: aws.String(name)}
		}
		delete(store.buckets, name)
		return &s3.DeleteBucketOutput{}, nil
	}
	client.ListBucketsFunc = func(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		var names []string
		for name := range store.buckets {
			names = append(names, name)
		}
		sort.Strings(names)
		output := &s3.ListBucketsOutput{}
		for _, name := range names {
			output.Buckets = append(output.Buckets, s3types.Bucket{Name: aws.String(name)})
		}
		return output, nil
	}
	client.HeadBucketFunc = func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		if _, ok := store.buckets[aws.ToString(params.Bucket)]; !ok {
			return nil, &s3types.NotFound{}
		}
		return &s3.HeadBucketOutput{}, nil
	}
	client.PutObjectFunc = func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		var data []byte
		if params.Body != nil {
			var err error
			if data, err = io.ReadAll(params.Body); err != nil {
				return nil, err
			}
		}
		store.mux.Lock()
		defer store.mux.Unlock()
		objects, ok := store.buckets[aws.ToString(params.Bucket)]
		if !ok {
			return nil, &s3types.NoSuchBucket{Message: params.Bucket}
		}
		objects[aws.ToString(params.Key)] = &object{data: data, contentType: aws.ToString(params.ContentType), modified: time.Now()}
		return &s3.PutObjectOutput{ETag: aws.String(etag(data))}, nil
	}
	client.GetObjectFunc = func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		obj, err := store.lookup(aws.ToString(params.Bucket), aws.ToString(params.Key))
		if err != nil {
			return nil, err
		}
		return &s3.GetObjectOutput{
			Body:          io.NopCloser(bytes.NewReader(obj.data)),
			ContentType:   aws.String(obj.contentType),
			ContentLength: aws.Int64(int64(len(obj.data))),
			ETag:          aws.String(etag(obj.data)),
			LastModified:  aws.Time(obj.modified),
		}, nil
	}
	client.HeadObjectFunc = func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		obj, err := store.lookup(aws.ToString(params.Bucket), aws.ToString(params.Key))
		if err != nil {
			return nil, &s3types.NotFound{}
		}
		return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(obj.data))), ETag: aws.String(etag(obj.data))}, nil
	}
	client.CopyObjectFunc = func(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		source := strings.TrimPrefix(aws.ToString(params.CopySource), "/")
		index := strings.Index(source, "/")
		if index < 0 {
			return nil, &s3types.NoSuchKey{Message: params.CopySource}
		}
		obj, err := store.lookup(source[:index], source[index+1:])
		if err != nil {
			return nil, err
		}
		objects, ok := store.buckets[aws.ToString(params.Bucket)]
		if !ok {
			return nil, &s3types.NoSuchBucket{Message: params.Bucket}
		}
		clone := *obj
		objects[aws.ToString(params.Key)] = &clone
		return &s3.CopyObjectOutput{CopyObjectResult: &s3types.CopyObjectResult{ETag: aws.String(etag(obj.data))}}, nil
	}
	client.DeleteObjectFunc = func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		objects, ok := store.buckets[aws.ToString(params.Bucket)]
		if !ok {
			return nil, &s3types.NoSuchBucket{Message: params.Bucket}
		}
		delete(objects, aws.ToString(params.Key))
		return &s3.DeleteObjectOutput{}, nil
	}
	client.DeleteObjectsFunc = func(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		objects, ok := store.buckets[aws.ToString(params.Bucket)]
		if !ok {
			return nil, &s3types.NoSuchBucket{Message: params.Bucket}
		}
		output := &s3.DeleteObjectsOutput{}
		if params.Delete == nil {
			return output, nil
		}
		for _, id := range params.Delete.Objects {
			delete(objects, aws.ToString(id.Key))
			output.Deleted = append(output.Deleted, s3types.DeletedObject{Key: id.Key})
		}
		return output, nil
	}
	client.ListObjectsFunc = func(ctx context.Context, params *s3.ListObjectsInput, optFns ...func(*s3.Options)) (*s3.ListObjectsOutput, error) {
		store.mux.Lock()
		defer store.mux.Unlock()
		objects, ok := store.buckets[aws.ToString(params.Bucket)]
		if !ok {
			return nil, &s3types.NoSuchBucket{Message: params.Bucket}
		}
		var keys []string
		for key := range objects {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		maxKeys := int(aws.ToInt32(params.MaxKeys))
		output := &s3.ListObjectsOutput{Name: params.Bucket, MaxKeys: params.MaxKeys}
		for _, key := range keys {
			if maxKeys > 0 && len(output.Contents) == maxKeys {
				output.IsTruncated = aws.Bool(true)
				break
			}
			obj := objects[key]
			output.Contents = append(output.Contents, s3types.Object{
				Key:          aws.String(key),
				Size:         aws.Int64(int64(len(obj.data))),
				LastModified: aws.Time(obj.modified),
			})
		}
		return output, nil
	}
	return client, store
}

func (b *Buckets) lookup(bucket, key string) (*object, error) {
	objects, ok := b.buckets[bucket]
	if !ok {
		return nil, &s3types.NoSuchBucket{Message: aws.String(bucket)}
	}
	obj, ok := objects[key]
	if !ok {
		return nil, &s3types.NoSuchKey{Message: aws.String(key)}
	}
	return obj, nil
}

func etag(data []byte) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%x", md5.Sum(data)))
}
