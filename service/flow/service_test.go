package flow

import (
	"context"
	"embed"
	"testing"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/s3flow/extension"
	"github.com/viant/s3flow/internal/testutil"
	"github.com/viant/s3flow/model/execution"
	"github.com/viant/s3flow/model/flow"
	"github.com/viant/s3flow/runtime/state"
	"github.com/viant/s3flow/service/action/aws/s3"
	astate "github.com/viant/s3flow/service/action/system/state"
	"github.com/viant/s3flow/service/executor"
)

//go:embed testdata/*
var testFS embed.FS

func newTestService(t *testing.T) (*Service, *testutil.Buckets) {
	t.Helper()
	client, buckets := testutil.NewInMemoryS3Client()
	actions := extension.NewActions()
	actions.Register(s3.New(client))
	actions.Register(astate.New())
	require.NoError(t, actions.RegisterAction(s3.Catalog()...))
	exec := executor.New(actions, executor.WithListener(nil))
	return New(exec, WithFs(afs.New()), WithBaseURL("embed:///testdata"), WithFsOptions(&testFS)), buckets
}

func TestService_Load(t *testing.T) {
	t.Setenv("S3FLOW_TEST_BUCKET", "bucket1")
	srv, _ := newTestService(t)
	testCases := []struct {
		name            string
		URL             string
		expectError     bool
		expectedName    string
		expectedActions []string
		expectedInit    []string
	}{
		{
			name:            "flow without extension",
			URL:             "copy",
			expectedName:    "copyAndClean",
			expectedActions: []string{"createBucket", "uploadFileToBucket", "copyObject", "prepareDeleteAfterCopy", "deleteObject", "listObjects"},
			expectedInit:    []string{s3.KeyBucketName, s3.KeyUploadFileName, s3.KeyUploadBody, s3.KeyCopySource, s3.KeyCopyDestination},
		},
		{
			name:            "name from URL",
			URL:             "unknown.yaml",
			expectedName:    "unknown",
			expectedActions: []string{"createBucket", "restoreObject", "listBuckets"},
		},
		{name: "no steps", URL: "invalid.yaml", expectError: true},
		{name: "missing", URL: "missing.yaml", expectError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			aFlow, err := srv.Load(context.Background(), tc.URL)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, aFlow.Name)
			assert.Equal(t, tc.expectedActions, aFlow.Actions())
			var initNames []string
			for _, param := range aFlow.Init {
				initNames = append(initNames, param.Name)
			}
			assert.Equal(t, tc.expectedInit, initNames)
		})
	}
}

func TestService_Decode(t *testing.T) {
	srv, _ := newTestService(t)
	aFlow, err := srv.Decode([]byte(`
name: typed
steps:
  - action: listObjects
    set:
      AWS.S3.ListMaxKeys: 2
      AWS.S3.DeleteFileNames: [a.txt, b.txt]
`))
	require.NoError(t, err)
	require.Len(t, aFlow.Steps, 1)
	assert.Equal(t, map[string]interface{}{
		s3.KeyListMaxKeys:     2,
		s3.KeyDeleteFileNames: []interface{}{"a.txt", "b.txt"},
	}, aFlow.Steps[0].Set.ToMap())

	_, err = srv.Decode([]byte("steps:\n  - action: createBucket\n    retry: 3\n"))
	assert.Error(t, err)
}

func TestService_Run(t *testing.T) {
	t.Setenv("S3FLOW_TEST_BUCKET", "bucket1")
	srv, buckets := newTestService(t)
	ctx := context.Background()
	aFlow, err := srv.Load(ctx, "copy.yaml")
	require.NoError(t, err)

	session := state.NewSession("run")
	executions, err := srv.Run(ctx, aFlow, session)
	require.NoError(t, err)
	require.Len(t, executions, len(aFlow.Steps))
	for _, anExecution := range executions {
		assert.Equal(t, execution.StateCompleted, anExecution.State)
	}

	_, ok := buckets.Object("bucket1", "a.txt")
	assert.False(t, ok)
	copied, ok := buckets.Object("bucket1", "b.txt")
	require.True(t, ok)
	assert.Equal(t, "hello", string(copied))

	listed, ok := session.Get(s3.ResultKey("listObjects"))
	require.True(t, ok)
	assert.Len(t, listed.(*awss3.ListObjectsOutput).Contents, 1)
}

func TestService_Run_StopsOnError(t *testing.T) {
	srv, _ := newTestService(t)
	session := state.NewSession("run", state.WithValues(map[string]interface{}{s3.KeyBucketName: "bucket1"}))
	executions, err := srv.Run(context.Background(), flow.New("broken", "createBucket", "restoreObject", "listBuckets"), session)
	assert.ErrorIs(t, err, extension.ErrActionNotFound)
	require.Len(t, executions, 1)
	_, ok := session.Get(s3.ResultKey("listBuckets"))
	assert.False(t, ok)
}
