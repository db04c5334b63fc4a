package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		action      *Action
		expectError bool
	}{
		{name: "valid", action: New("getObject", "aws/s3", "getObject").Bind("AWS.S3.BucketName", "Bucket").WithResult("r")},
		{name: "no inputs", action: New("listBuckets", "aws/s3", "listBuckets").WithResult("r")},
		{name: "no name", action: New("", "aws/s3", "getObject").WithResult("r"), expectError: true},
		{name: "no service", action: New("getObject", "", "getObject").WithResult("r"), expectError: true},
		{name: "no method", action: New("getObject", "aws/s3", "").WithResult("r"), expectError: true},
		{name: "no result", action: New("getObject", "aws/s3", "getObject"), expectError: true},
		{name: "incomplete binding", action: New("getObject", "aws/s3", "getObject").Bind("AWS.S3.BucketName", "").WithResult("r"), expectError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.action.Validate()
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestActions_Lookup(t *testing.T) {
	actions := Actions{
		New("a", "svc", "m").Bind("k1", "F1").Bind("k2", "F2"),
		New("b", "svc", "m"),
	}
	assert.Equal(t, []string{"k1", "k2"}, actions.Lookup("a").Keys())
	assert.Nil(t, actions.Lookup("c"))
}
