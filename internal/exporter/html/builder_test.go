package html

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockit/internal/config"
	"dockit/internal/model"
	"dockit/internal/render"
)

func sampleReport() *model.Report {
	get := model.NewMethodRecord("getUser")
	get.ClassName = "UserController"
	get.Title = "Get user"
	get.RequestMethod = "GET"
	get.RequestURL = "/api/users/{id}"
	get.RequestArgList = []*model.Argument{model.NewArgument("id", "Long", "true", "user id")}

	old := model.NewMethodRecord("remove")
	old.ClassName = "UserController"
	old.Title = "<script>alert(1)</script>"
	old.RequestMethod = "delete"
	old.RequestURL = "/api/users/{id}/old"
	old.Deprecated = true

	return &model.Report{
		GeneratedAt: "2024-05-01 10:00:00",
		Sources: []model.SourceFile{
			{ClassName: "UserController", Records: []*model.MethodRecord{old, get}},
		},
	}
}

const tableTemplate = "# ${title}\n\n| Name | Type |\n| --- | --- |\n| ${arg.name} | ${arg.type} |\n"

func TestBuildData(t *testing.T) {
	data, err := NewHTMLExporter().BuildData(sampleReport(), render.NewFromString(tableTemplate))
	require.NoError(t, err)

	assert.Equal(t, 2, data.TotalMethods)
	assert.Equal(t, 1, data.TotalClasses)
	assert.Equal(t, 1, data.Deprecated)
	require.Len(t, data.Records, 2)

	// Sorted by URL within the class
	get := data.Records[0]
	assert.Equal(t, "m-UserController-getUser", get.ID)
	assert.Contains(t, string(get.Body), "<h1>Get user</h1>")
	assert.Contains(t, string(get.Body), "<table>")
	assert.Contains(t, string(get.Body), "<td>id</td>")
	assert.Contains(t, string(get.Body), "<td>Long</td>")

	old := data.Records[1]
	assert.True(t, old.Deprecated)
	assert.NotContains(t, string(old.Body), "<script>")
}

func TestMethodColor(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"GET", "method-get"},
		{"post", "method-post"},
		{"PUT", "method-put"},
		{"DELETE", "method-delete"},
		{"PATCH", "method-patch"},
		{"", "method-default"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, getMethodColor(tt.method), tt.method)
	}
	assert.Equal(t, "N/A", getMethodBadge(""))
	assert.Equal(t, "DELETE", getMethodBadge("delete"))
}

func TestHTMLExport(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Dir: t.TempDir(), FileName: "api"}}

	require.NoError(t, NewHTMLExporter().Export(sampleReport(), cfg))

	content, err := os.ReadFile(cfg.GetOutputPath(".html"))
	require.NoError(t, err)
	page := string(content)

	assert.Contains(t, page, "<title>API Reference - 2024-05-01 10:00:00</title>")
	assert.Contains(t, page, `id="m-UserController-getUser"`)
	assert.Contains(t, page, `class="method-badge method-delete"`)
	assert.Contains(t, page, "DEPRECATED")
	assert.Contains(t, page, "<code>/api/users/{id}</code>")
	// Titles in the navigation are escaped by html/template
	assert.Contains(t, page, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, page, "<script>")
}

func TestHTMLExportEmptyReport(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Dir: t.TempDir(), FileName: "empty"}}

	require.NoError(t, NewHTMLExporter().Export(&model.Report{}, cfg))

	content, err := os.ReadFile(cfg.GetOutputPath(".html"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "No documented methods found")
}
