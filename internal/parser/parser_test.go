package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockit/internal/javadoc"
	"dockit/internal/model"
)

func methodWithComment(name, comment string) javadoc.Method {
	return javadoc.Method{Name: name, Comment: javadoc.ParseComment(comment)}
}

func TestParseArgumentFourSegments(t *testing.T) {
	arg := ParseArgument("id,Long,required=true,user id")

	assert.Equal(t, "id", arg.OriginName)
	assert.Equal(t, "id", arg.Name)
	assert.Equal(t, "Long", arg.Type)
	assert.Equal(t, "true", arg.Required)
	assert.Equal(t, "user id", arg.Description)
	assert.Equal(t, 0, arg.Level)
	assert.Empty(t, arg.Children)

	// Same input, same result
	assert.Equal(t, arg, ParseArgument("id,Long,required=true,user id"))
}

func TestParseArgumentDefaults(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantType string
		wantReq  string
		wantDesc string
	}{
		{"blank type", "id, , required=true, user id", model.DefaultArgumentType, "true", "user id"},
		{"blank required", "id, Long, required=, user id", "Long", model.DefaultRequired, "user id"},
		{"no prefix", "id, Long, yes, user id", "Long", "yes", "user id"},
		{"extra commas dropped", "id, Long, required=true, first, second", "Long", "true", "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arg := ParseArgument(tt.body)
			assert.Equal(t, "id", arg.Name)
			assert.Equal(t, tt.wantType, arg.Type)
			assert.Equal(t, tt.wantReq, arg.Required)
			assert.Equal(t, tt.wantDesc, arg.Description)
		})
	}
}

func TestParseArgumentMalformed(t *testing.T) {
	for _, body := range []string{"id", "id,Long", "id,Long,required=true", ""} {
		arg := ParseArgument(body)
		assert.True(t, arg.IsDiagnostic(), body)
		assert.Empty(t, arg.Name)
		assert.Equal(t, model.UnknownArgumentType, arg.Type)
		assert.Contains(t, arg.Description, "argument format error")
		assert.Contains(t, arg.Description, body)
	}
}

func TestPlaceArgumentNesting(t *testing.T) {
	var list []*model.Argument
	var ok bool

	list, ok = PlaceArgument(list, ParseArgument("data,Object,required=false,wrapper"))
	require.True(t, ok)
	list, ok = PlaceArgument(list, ParseArgument("data.items,List,required=false,items"))
	require.True(t, ok)
	list, ok = PlaceArgument(list, ParseArgument("data.items.id,Long,required=false,id"))
	require.True(t, ok)

	require.Len(t, list, 1)
	items := list[0].Children[0]
	assert.Equal(t, "items", items.Name)
	assert.Equal(t, 1, items.Level)
	assert.Equal(t, " - ", items.LevelPrefix)

	id := items.Children[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "data.items.id", id.OriginName)
	assert.Equal(t, 2, id.Level)
	assert.Equal(t, " -- ", id.LevelPrefix)
}

func TestPlaceArgumentMissingParent(t *testing.T) {
	orphan := ParseArgument("user.id,Long,required=true,id")

	list, ok := PlaceArgument(nil, orphan)
	assert.False(t, ok)
	assert.Empty(t, list)

	// Declaring the parent afterwards does not bring the child back
	list, ok = PlaceArgument(list, ParseArgument("user,Object,required=true,user"))
	require.True(t, ok)
	assert.Nil(t, model.FindArgument(list, "user.id"))
	assert.Empty(t, list[0].Children)
}

func TestParseScenarioRequestArgument(t *testing.T) {
	rec, ok := Parse(methodWithComment("getUser", `/**
 * @title Get user
 * @arg id,Long,required=true,user id
 */`))
	require.True(t, ok)

	require.Len(t, rec.RequestArgList, 1)
	arg := rec.RequestArgList[0]
	assert.Equal(t, "id", arg.OriginName)
	assert.Equal(t, "id", arg.Name)
	assert.Equal(t, "Long", arg.Type)
	assert.Equal(t, "true", arg.Required)
	assert.Equal(t, "user id", arg.Description)
}

func TestParseScenarioNestedResponse(t *testing.T) {
	rec, ok := Parse(methodWithComment("page", `/**
 * @resArg data,Object,required=false,wrapper
 * @resArg data.id,Long,required=false,id field
 */`))
	require.True(t, ok)

	require.Len(t, rec.ResponseArgList, 1)
	data := rec.ResponseArgList[0]
	assert.Equal(t, "data", data.Name)
	require.Len(t, data.Children, 1)

	child := data.Children[0]
	assert.Equal(t, "id", child.Name)
	assert.Equal(t, 1, child.Level)
	assert.Equal(t, " - ", child.LevelPrefix)
	assert.Empty(t, rec.RequestArgList)
}

func TestParseAllTags(t *testing.T) {
	rec, ok := Parse(methodWithComment("save", `/**
 * Free text is not part of the record.
 *
 * @title Save user
 * @version 1.2
 * @status released
 * @author kim
 * @desc first line
 * @description second line
 * @desc
 * @url /api/users
 * @method  post
 * @remark idempotent
 * @deprecated
 * @since 1.0
 * @arg id
 * @resArg user.id,Long,required=true,orphan
 * @return the saved user, see {@link  UserVO } and {@link Other}
 */`))
	require.True(t, ok)

	assert.Equal(t, "save", rec.MethodName)
	assert.Equal(t, "Save user", rec.Title)
	assert.Equal(t, "1.2", rec.Version)
	assert.Equal(t, "released", rec.Status)
	assert.Equal(t, "kim", rec.Author)
	assert.Equal(t, []string{"first line", "second line"}, rec.DescriptionList)
	assert.Equal(t, "/api/users", rec.RequestURL)
	assert.Equal(t, "POST", rec.RequestMethod)
	assert.Equal(t, "idempotent", rec.Remark)
	assert.True(t, rec.Deprecated)
	assert.Equal(t, "UserVO", rec.ResponseObjectClassName)

	require.Len(t, rec.RequestArgList, 1)
	assert.True(t, rec.RequestArgList[0].IsDiagnostic())

	// Undeclared parent: absent everywhere
	assert.Empty(t, rec.ResponseArgList)
	assert.Nil(t, model.FindArgument(rec.RequestArgList, "user.id"))
}

func TestParseRequiresDocComment(t *testing.T) {
	tests := []struct {
		name   string
		method javadoc.Method
	}{
		{"no comment", javadoc.Method{Name: "a"}},
		{"block comment", methodWithComment("b", "/* @title b */")},
		{"line comment", methodWithComment("c", "// @title c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := Parse(tt.method)
			assert.False(t, ok)
			assert.Nil(t, rec)
		})
	}
}

func TestReturnWithoutLink(t *testing.T) {
	rec, ok := Parse(methodWithComment("m", "/**\n * @return plain text\n */"))
	require.True(t, ok)
	assert.Empty(t, rec.ResponseObjectClassName)
}
