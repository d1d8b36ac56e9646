package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ResponseSample returns a JSON skeleton of the documented response fields,
// one zero value per declared type, in declaration order. Empty when the
// record documents no response fields.
func (r *MethodRecord) ResponseSample() string {
	obj := sampleFields(r.ResponseArgList)
	if len(obj) == 0 {
		return ""
	}

	out, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}

// sampleObject marshals as a JSON object with keys in slice order
type sampleObject []sampleEntry

type sampleEntry struct {
	key   string
	value any
}

func (o sampleObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func sampleFields(args []*Argument) sampleObject {
	obj := make(sampleObject, 0, len(args))
	for _, arg := range args {
		if arg.IsDiagnostic() || arg.Name == "" {
			continue
		}
		obj = append(obj, sampleEntry{key: arg.Name, value: sampleValue(arg)})
	}
	return obj
}

func sampleValue(arg *Argument) any {
	kind := TypeKind(arg.Type)

	if len(arg.Children) > 0 {
		nested := sampleFields(arg.Children)
		if kind == KindArray {
			return []any{nested}
		}
		return nested
	}

	switch kind {
	case KindArray:
		return []any{}
	case KindInteger:
		return 0
	case KindNumber:
		return 0.0
	case KindBoolean:
		return false
	case KindObject:
		return sampleObject{}
	default:
		return ""
	}
}

// Type kinds shared by the sample builder and the OpenAPI exporter
const (
	KindString  = "string"
	KindInteger = "integer"
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindArray   = "array"
	KindObject  = "object"
)

// TypeKind maps a Java-ish type name from a descriptor onto a JSON schema kind
func TypeKind(typeName string) string {
	t := strings.ToLower(strings.TrimSpace(typeName))

	switch {
	case strings.HasSuffix(t, "[]"), strings.HasPrefix(t, "list"), strings.HasPrefix(t, "set"),
		strings.HasPrefix(t, "array"), strings.HasPrefix(t, "collection"):
		return KindArray
	case t == "int", t == "integer", t == "long", t == "short", t == "byte", t == "biginteger":
		return KindInteger
	case t == "double", t == "float", t == "bigdecimal", t == "number":
		return KindNumber
	case t == "boolean", t == "bool":
		return KindBoolean
	case t == "object", t == "map" || strings.HasPrefix(t, "map<"):
		return KindObject
	default:
		return KindString
	}
}
