package state

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/viant/s3flow/model/types"
)

// Expand replaces all occurrences of ${key} in the template with the string
// form of the context value stored under key. A key that is not present in
// the context is reported as an error.
func Expand(template string, from types.State) (string, error) {
	const prefix = "${"
	if !strings.Contains(template, prefix) {
		return template, nil
	}
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(template[i:], prefix)
		if idx < 0 {
			b.WriteString(template[i:])
			break
		}
		b.WriteString(template[i : i+idx])
		startKey := i + idx + len(prefix)
		endKey := strings.IndexByte(template[startKey:], '}')
		if endKey < 0 {
			// no closing brace, treat the rest as literal
			b.WriteString(template[i+idx:])
			break
		}
		key := template[startKey : startKey+endKey]
		if !isKey(key) {
			b.WriteString(template[i+idx : startKey])
			i = startKey
			continue
		}
		value, ok := from.Get(key)
		if !ok {
			return "", fmt.Errorf("undefined context key %v in %v", key, template)
		}
		b.WriteString(stringify(value))
		i = startKey + endKey + 1
	}
	return b.String(), nil
}

// Expand expands template with the session values
func (s *Session) Expand(template string) (string, error) {
	return Expand(template, s)
}

func isKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-') {
			return false
		}
	}
	return true
}

func stringify(val interface{}) string {
	if val == nil {
		return ""
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
