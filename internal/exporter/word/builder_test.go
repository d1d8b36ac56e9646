package word

import (
	"strings"
	"testing"

	"github.com/nguyenthenguyen/docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockit/internal/config"
	"dockit/internal/model"
)

func sampleReport() *model.Report {
	rec := model.NewMethodRecord("getUser")
	rec.ClassName = "UserController"
	rec.Title = "Get user"
	rec.RequestMethod = "GET"
	rec.RequestURL = "/api/users/{id}"
	rec.Version = "1.0"
	rec.DescriptionList = []string{"Looks a user up <by id>"}
	rec.RequestArgList = []*model.Argument{model.NewArgument("id", "Long", "true", "user id")}

	data := model.NewArgument("data", "Object", "", "payload")
	name := model.NewArgument("data.name", "String", "", "user name")
	name.Name = "name"
	name.SetLevel(1)
	data.AddChild(name)
	rec.ResponseArgList = []*model.Argument{data}
	rec.ResponseObjectClassName = "UserVO"

	old := model.NewMethodRecord("legacy")
	old.ClassName = "UserController"
	old.Deprecated = true
	old.RequestArgList = []*model.Argument{model.NewDiagnosticArgument("broken")}

	return &model.Report{
		GeneratedAt: "2024-05-01 10:00:00",
		Sources: []model.SourceFile{
			{Path: "UserController.java", ClassName: "UserController", Records: []*model.MethodRecord{rec, old}},
		},
	}
}

func TestBuildTemplateOpens(t *testing.T) {
	tmpl, err := buildTemplate()
	require.NoError(t, err)

	r, err := docx.ReadDocxFromMemory(strings.NewReader(string(tmpl)), int64(len(tmpl)))
	require.NoError(t, err)
	defer r.Close()

	content := r.Editable().GetContent()
	for _, p := range []string{placeholderDate, placeholderTotalClasses, placeholderTotalMethods, placeholderContent} {
		assert.Contains(t, content, p)
	}
}

func TestBuildContent(t *testing.T) {
	content := BuildContent(sampleReport().Records())

	assert.Contains(t, content, "Get user\n[GET] /api/users/{id}\nMethod: UserController.getUser\nVersion: 1.0\n")
	assert.Contains(t, content, "  • Looks a user up <by id>\n")
	assert.Contains(t, content, "REQUEST PARAMETERS:")
	assert.Contains(t, content, "  └ name")
	assert.Contains(t, content, "Type: UserVO\n")
	assert.Contains(t, content, "[Deprecated] legacy\n")
	assert.Contains(t, content, "(invalid)")
	assert.Contains(t, content, strings.Repeat("-", ruleWidth))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "가나...", truncate("가나다라마바", 5))
}

func TestWordExport(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Dir: t.TempDir(), FileName: "api"}}

	require.NoError(t, NewWordExporter().Export(sampleReport(), cfg))

	r, err := docx.ReadDocxFile(cfg.GetOutputPath(".docx"))
	require.NoError(t, err)
	defer r.Close()

	content := r.Editable().GetContent()
	assert.NotContains(t, content, "{{")
	assert.Contains(t, content, "Date: 2024-05-01 10:00:00")
	assert.Contains(t, content, "Documented Methods: 2")
	assert.Contains(t, content, "Classes: 1")
	// Text is XML-escaped by the docx library
	assert.Contains(t, content, "Looks a user up &lt;by id&gt;")
	assert.Contains(t, content, "<w:br/>")
}
