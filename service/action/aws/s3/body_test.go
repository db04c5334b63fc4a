package s3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectContentType(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		data     []byte
		expected string
	}{
		{name: "extension", key: "index.html", data: []byte("plain"), expected: "text/html; charset=utf-8"},
		{name: "sniffed png", key: "image", data: []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR"), expected: "image/png"},
		{name: "sniffed json", key: "doc", data: []byte(`{"a":1}`), expected: "application/json"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectContentType(tc.key, tc.data))
		})
	}
}

func TestAsBytes(t *testing.T) {
	testCases := []struct {
		name        string
		body        interface{}
		expected    string
		expectError bool
	}{
		{name: "nil", body: nil, expected: ""},
		{name: "string", body: "abc", expected: "abc"},
		{name: "bytes", body: []byte("abc"), expected: "abc"},
		{name: "reader", body: strings.NewReader("abc"), expected: "abc"},
		{name: "struct", body: struct{ ID int }{ID: 1}, expected: `{"ID":1}`},
		{name: "unsupported", body: make(chan int), expectError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := asBytes(tc.body)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, string(actual))
		})
	}
}
