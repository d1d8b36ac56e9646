package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockit/internal/config"
	"dockit/internal/model"
)

func record(class, method, title string) *model.MethodRecord {
	rec := model.NewMethodRecord(method)
	rec.ClassName = class
	rec.Title = title
	return rec
}

func testConfig(t *testing.T, templateBody string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "template.md")
	require.NoError(t, os.WriteFile(tmpl, []byte(templateBody), 0644))

	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(out, 0755))

	return &config.Config{
		Template: config.TemplateConfig{Path: tmpl},
		Output:   config.OutputConfig{Dir: out, FileName: "api"},
	}
}

func sampleReport() *model.Report {
	return &model.Report{Sources: []model.SourceFile{
		{ClassName: "UserController", Records: []*model.MethodRecord{
			record("UserController", "save", "Save user"),
			record("UserController", "get", "Get user"),
			record("UserController", "get", "Get user overload"),
		}},
	}}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "UserController_get", FileName(record("UserController", "get", "")))
	assert.Equal(t, "get", FileName(record("", "get", "")))
	assert.Equal(t, "Outer_Inner_get", FileName(record("Outer$Inner", "get", "")))
}

func TestExportPerRecord(t *testing.T) {
	cfg := testConfig(t, "# ${title}\n")

	require.NoError(t, NewMarkdownExporter().Export(sampleReport(), cfg))

	tests := []struct {
		file string
		want string
	}{
		{"UserController_get.md", "# Get user\n"},
		{"UserController_get_2.md", "# Get user overload\n"},
		{"UserController_save.md", "# Save user\n"},
	}
	for _, tt := range tests {
		content, err := os.ReadFile(filepath.Join(cfg.Output.Dir, tt.file))
		require.NoError(t, err, tt.file)
		assert.Equal(t, tt.want, string(content))
	}
}

func TestExportSingleFile(t *testing.T) {
	cfg := testConfig(t, "# ${title}\n")
	cfg.Output.SingleFile = true

	require.NoError(t, NewMarkdownExporter().Export(sampleReport(), cfg))

	content, err := os.ReadFile(cfg.GetOutputPath(".md"))
	require.NoError(t, err)
	assert.Equal(t, "# Get user\n\n---\n\n# Get user overload\n\n---\n\n# Save user\n", string(content))

	_, err = os.Stat(filepath.Join(cfg.Output.Dir, "UserController_get.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestExportMissingTemplate(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.Template.Path = filepath.Join(t.TempDir(), "missing.md")

	err := NewMarkdownExporter().Export(sampleReport(), cfg)
	assert.Error(t, err)
}
