package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	testCases := []struct {
		name     string
		env      map[string]string
		input    string
		expected string
	}{
		{name: "no expressions", input: "just a plain string", expected: "just a plain string"},
		{name: "single expression", env: map[string]string{"S3FLOW_BUCKET": "bucket1"}, input: "bucket: ${env.S3FLOW_BUCKET}", expected: "bucket: bucket1"},
		{name: "multiple expressions", env: map[string]string{"S3FLOW_A": "1", "S3FLOW_B": "2"}, input: "${env.S3FLOW_A}-${env.S3FLOW_B}-${env.S3FLOW_A}", expected: "1-2-1"},
		{name: "unset variable becomes empty", input: "unset=${env.S3FLOW_NOT_SET}-end", expected: "unset=-end"},
		{name: "missing closing brace", env: map[string]string{"S3FLOW_X": "x"}, input: "start ${env.S3FLOW_X and ${env.S3FLOW_Y} end", expected: "start ${env.S3FLOW_X and  end"},
		{name: "context reference is kept", input: "AWS.S3Bucket.${AWS.S3BucketName}", expected: "AWS.S3Bucket.${AWS.S3BucketName}"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, ExpandEnv(tc.input))
		})
	}
}
