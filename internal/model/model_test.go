package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockit/internal/placeholder"
)

func TestNewArgumentDefaults(t *testing.T) {
	arg := NewArgument("id", "", "", "user id")
	assert.Equal(t, "id", arg.Name)
	assert.Equal(t, DefaultArgumentType, arg.Type)
	assert.Equal(t, DefaultRequired, arg.Required)
	assert.Equal(t, 0, arg.Level)
	assert.Empty(t, arg.LevelPrefix)
}

func TestDiagnosticArgument(t *testing.T) {
	arg := NewDiagnosticArgument("id,Long")
	assert.True(t, arg.IsDiagnostic())
	assert.Empty(t, arg.Name)
	assert.Equal(t, UnknownArgumentType, arg.Type)
	assert.Contains(t, arg.Description, `"id,Long"`)
}

func TestParentPath(t *testing.T) {
	assert.Equal(t, "", NewArgument("data", "", "", "").ParentPath())
	assert.Equal(t, "data", NewArgument("data.id", "", "", "").ParentPath())
	assert.Equal(t, "data.items", NewArgument("data.items.id", "", "", "").ParentPath())
	assert.True(t, NewArgument("data.id", "", "", "").IsNested())
}

func TestLevelPrefix(t *testing.T) {
	assert.Equal(t, "", LevelPrefix(0))
	assert.Equal(t, " - ", LevelPrefix(1))
	assert.Equal(t, " --- ", LevelPrefix(3))
}

func TestFindArgumentPreOrder(t *testing.T) {
	data := NewArgument("data", "", "", "")
	items := NewArgument("data.items", "List", "", "")
	items.SetLevel(1)
	data.AddChild(items)
	page := NewArgument("page", "", "", "")

	roots := []*Argument{data, page}
	assert.Same(t, items, FindArgument(roots, "data.items"))
	assert.Same(t, page, FindArgument(roots, "page"))
	assert.Nil(t, FindArgument(roots, "missing"))
	assert.Equal(t, 3, CountArguments(roots))
}

func TestMethodRecordFieldTable(t *testing.T) {
	rec := NewMethodRecord("getUser")
	rec.Title = "Get user"
	rec.DescriptionList = append(rec.DescriptionList, "line one")

	fields := rec.Fields()
	byKey := make(map[string]placeholder.Field, len(fields))
	for _, f := range fields {
		byKey[f.Key] = f
	}

	require.Contains(t, byKey, KeyTitle)
	assert.Equal(t, placeholder.KindSimple, byKey[KeyTitle].Kind)
	assert.Equal(t, "Get user", byKey[KeyTitle].Value)

	assert.Equal(t, placeholder.KindList, byKey[KeyDesc].Kind)
	elems, ok := placeholder.Elements(byKey[KeyDesc].Value)
	require.True(t, ok)
	assert.Equal(t, []any{"line one"}, elems)

	assert.Equal(t, placeholder.KindList, byKey[KeyArg].Kind)
	_, ok = placeholder.Elements(byKey[KeyArg].Value)
	assert.True(t, ok)
}

func TestResponseSample(t *testing.T) {
	rec := NewMethodRecord("list")
	data := NewArgument("data", "Object", "", "")
	id := NewArgument("data.id", "Long", "", "")
	id.Name = "id"
	id.SetLevel(1)
	tags := NewArgument("data.tags", "List<String>", "", "")
	tags.Name = "tags"
	tags.SetLevel(1)
	data.AddChild(id)
	data.AddChild(tags)
	ok := NewArgument("ok", "Boolean", "", "")
	rec.ResponseArgList = []*Argument{data, ok, NewDiagnosticArgument("bad")}

	want := "{\n  \"data\": {\n    \"id\": 0,\n    \"tags\": []\n  },\n  \"ok\": false\n}"
	assert.Equal(t, want, rec.ResponseSample())

	assert.Empty(t, NewMethodRecord("empty").ResponseSample())
}

func TestTypeKind(t *testing.T) {
	tests := map[string]string{
		"Long":         KindInteger,
		"int":          KindInteger,
		"Double":       KindNumber,
		"Boolean":      KindBoolean,
		"List<UserVO>": KindArray,
		"String[]":     KindArray,
		"Object":       KindObject,
		"String":       KindString,
		"Date":         KindString,
	}
	for in, want := range tests {
		assert.Equal(t, want, TypeKind(in), in)
	}
}

func TestReportRecords(t *testing.T) {
	a := NewMethodRecord("a")
	b := NewMethodRecord("b")
	report := &Report{Sources: []SourceFile{
		{Path: "A.java", Records: []*MethodRecord{a}},
		{Path: "Empty.java"},
		{Path: "B.java", Records: []*MethodRecord{b}},
	}}

	assert.Equal(t, []*MethodRecord{a, b}, report.Records())
	assert.Equal(t, 2, report.ClassCount())
}
