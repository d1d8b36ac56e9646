// Package placeholder holds the template token grammar (${key} and ${key.sub})
// and the field tables that tell the resolver how a record fills a template.
package placeholder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects how a field value is substituted into a template node
type Kind int

const (
	// KindSimple replaces the token text with the field's scalar value
	KindSimple Kind = iota
	// KindList repeats a template fragment once per element of the field's sequence
	KindList
)

// String returns the tag used in logs and tests
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "SIMPLE"
	case KindList:
		return "LIST"
	default:
		return "UNKNOWN"
	}
}

// Field binds a placeholder key to the runtime value of one record field
type Field struct {
	Key   string
	Kind  Kind
	Value any
}

// Describer is implemented by every record type that can fill a template.
// The returned table is static per type: same keys and kinds, in the same order.
type Describer interface {
	Fields() []Field
}

var tokenRegex = regexp.MustCompile(`\$\{([^${}\s]+)\}`)

// Find returns the distinct tokens in text, dressed (${...}), in order of first appearance
func Find(text string) []string {
	matches := tokenRegex.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		tokens = append(tokens, m)
	}
	return tokens
}

// Undress strips the ${ } wrapper: "${arg.name}" -> "arg.name"
func Undress(token string) string {
	token = strings.TrimPrefix(token, "${")
	return strings.TrimSuffix(token, "}")
}

// Dress wraps a bare name: "arg.name" -> "${arg.name}"
func Dress(name string) string {
	return "${" + name + "}"
}

// Root returns the first dot segment of a token: "${arg.name}" -> "arg"
func Root(token string) string {
	name := Undress(token)
	if idx := strings.Index(name, "."); idx >= 0 {
		return name[:idx]
	}
	return name
}

// Format returns the text form of a scalar value. ok is false for anything
// that is not a scalar (records, slices, maps). Nil and blank values render
// as the empty string, never as a null marker.
func Format(value any) (text string, ok bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		text = v
	case bool:
		text = strconv.FormatBool(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		text = fmt.Sprint(v)
	case float32:
		text = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "", false
	}

	if strings.TrimSpace(text) == "" {
		return "", true
	}
	return text, true
}

// IsScalar reports whether Format accepts value
func IsScalar(value any) bool {
	_, ok := Format(value)
	return ok
}

// Elements unpacks a LIST field value. ok is false when the value is not a sequence.
func Elements(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []Describer:
		out := make([]any, len(v))
		for i, d := range v {
			out[i] = d
		}
		return out, true
	default:
		return nil, false
	}
}
