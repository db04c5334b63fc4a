package s3

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"path"

	"github.com/gabriel-vasile/mimetype"
)

// asBytes coerces an action body to bytes, non textual values are JSON encoded.
// Readers are drained but left open for their owner.
func asBytes(body interface{}) ([]byte, error) {
	switch actual := body.(type) {
	case nil:
		return []byte{}, nil
	case []byte:
		return actual, nil
	case string:
		return []byte(actual), nil
	case io.Reader:
		data, err := io.ReadAll(actual)
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
		return data, nil
	default:
		data, err := json.Marshal(actual)
		if err != nil {
			return nil, fmt.Errorf("failed to encode body %T: %w", body, err)
		}
		return data, nil
	}
}

func newReader(data []byte) io.ReadSeeker {
	return bytes.NewReader(data)
}

// DetectContentType uses the key extension when registered, otherwise sniffs the content
func DetectContentType(key string, data []byte) string {
	if ext := path.Ext(key); ext != "" {
		if contentType := mime.TypeByExtension(ext); contentType != "" {
			return contentType
		}
	}
	return mimetype.Detect(data).String()
}
