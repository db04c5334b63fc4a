package s3

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/viant/scy"
	"github.com/viant/toolbox"
)

// Credentials represents static AWS credentials stored as a scy secret
type Credentials struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
	Token  string `json:"token,omitempty"`
	Region string `json:"region,omitempty"`
}

// LoadCredentials loads (and decrypts when key is set) credentials from URL
func LoadCredentials(ctx context.Context, URL, key string) (*Credentials, error) {
	resource := scy.NewResource(reflect.TypeOf(Credentials{}), URL, key)
	secret, err := scy.New().Load(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials from %s: %w", URL, err)
	}
	cred := &Credentials{}
	if !secret.IsPlain && secret.Target != nil {
		if err = toolbox.DefaultConverter.AssignConverted(cred, secret.Target); err != nil {
			return nil, fmt.Errorf("failed to convert credentials from %s: %w", URL, err)
		}
	} else if err = json.Unmarshal([]byte(secret.String()), cred); err != nil {
		return nil, fmt.Errorf("failed to decode credentials from %s: %w", URL, err)
	}
	if cred.Key == "" || cred.Secret == "" {
		return nil, fmt.Errorf("incomplete credentials in %s", URL)
	}
	return cred, nil
}
