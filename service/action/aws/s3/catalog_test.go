package s3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/s3flow/internal/testutil"
	"github.com/viant/s3flow/model/action"
	astate "github.com/viant/s3flow/service/action/system/state"
)

func TestCatalog(t *testing.T) {
	srv := New(&testutil.MockS3Client{})
	testCases := []struct {
		name    string
		actions action.Actions
	}{
		{name: "current", actions: Catalog()},
		{name: "legacy", actions: LegacyCatalog()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actions := tc.actions
			names := map[string]bool{}
			for _, candidate := range actions {
				require.NoError(t, candidate.Validate())
				assert.False(t, names[candidate.Name], "duplicate %v", candidate.Name)
				names[candidate.Name] = true
				if candidate.Service == astate.Name {
					continue
				}
				assert.Equal(t, Name, candidate.Service)
				signature := srv.Methods().Lookup(candidate.Method)
				require.NotNil(t, signature, candidate.Method)
				for _, input := range candidate.Inputs {
					_, ok := signature.Input.Elem().FieldByName(input.Field)
					assert.True(t, ok, "%v: unknown field %v", candidate.Name, input.Field)
				}
			}
		})
	}
}

func TestCatalog_ResultKeys(t *testing.T) {
	actions := Catalog()
	assert.Equal(t, "AWS.S3.createBucket.result", actions.Lookup("createBucket").Result)
	assert.Equal(t, "AWS.S3Bucket.getObject.result", actions.Lookup("getObject").Result)
	assert.Equal(t, KeyDeleteFileName, actions.Lookup("prepareDeleteAfterCopy").Result)
	assert.Equal(t, []string{KeyBucketName, KeyGetFileName}, actions.Lookup("getObject").Keys())
	assert.Nil(t, actions.Lookup("createS3Bucket"))

	legacy := LegacyCatalog()
	assert.Equal(t, "AWS.S3.Bucket.${AWS.S3.BucketName}", legacy.Lookup("createS3Bucket").Result)
	assert.True(t, strings.HasPrefix(legacy.Lookup("getS3Object").Result, "AWS.S3Bucket.${AWS.S3BucketName}."))
	assert.Equal(t, []string{LegacyKeyBucketName, LegacyKeyGetFileName}, legacy.Lookup("getS3Object").Keys())
}
