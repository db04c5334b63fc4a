package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// ParseSet converts key=value pairs to context values. Values stay strings, only a
// flow sequence such as [a.txt, b.txt] is decoded to a list of strings.
func ParseSet(pairs []string) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		index := strings.Index(pair, "=")
		if index <= 0 {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", pair)
		}
		key, raw := strings.TrimSpace(pair[:index]), pair[index+1:]
		result[key] = decodeValue(raw)
	}
	return result, nil
}

func decodeValue(raw string) interface{} {
	if !strings.HasPrefix(strings.TrimSpace(raw), "[") {
		return raw
	}
	var items []string
	if err := yaml.Unmarshal([]byte(raw), &items); err != nil {
		return raw
	}
	result := make([]interface{}, len(items))
	for i, item := range items {
		result[i] = item
	}
	return result
}

// LoadValues reads context values from a YAML or JSON document
func LoadValues(ctx context.Context, URL string) (map[string]interface{}, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load values from %s: %w", URL, err)
	}
	result := map[string]interface{}{}
	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode values from %s: %w", URL, err)
	}
	return result, nil
}

func mergeValues(dest map[string]interface{}, sources ...map[string]interface{}) map[string]interface{} {
	if dest == nil {
		dest = map[string]interface{}{}
	}
	for _, source := range sources {
		for k, v := range source {
			dest[k] = v
		}
	}
	return dest
}

func printJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
