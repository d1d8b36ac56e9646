package exporter

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dockit/internal/config"
	"dockit/internal/model"
)

func sampleReport() *model.Report {
	get := model.NewMethodRecord("getUser")
	get.ClassName = "UserController"
	get.Title = "Get user"
	get.RequestMethod = "GET"
	get.RequestURL = "/api/users/{id}"
	get.ResponseObjectClassName = "UserVO"
	get.DescriptionList = []string{"first", "second"}
	get.RequestArgList = []*model.Argument{model.NewArgument("id", "Long", "true", "user id")}

	data := model.NewArgument("data", "Object", "", "payload")
	name := model.NewArgument("data.name", "String", "", "user name")
	name.Name = "name"
	name.SetLevel(1)
	data.AddChild(name)
	get.ResponseArgList = []*model.Argument{data}

	legacy := model.NewMethodRecord("legacy")
	legacy.ClassName = "UserController"
	legacy.Title = "Old"
	legacy.Deprecated = true
	legacy.RequestArgList = []*model.Argument{model.NewDiagnosticArgument("broken")}

	return &model.Report{
		GeneratedAt: "2024-05-01 10:00:00",
		Sources: []model.SourceFile{
			{Path: "UserController.java", Package: "com.company.user", ClassName: "UserController",
				Records: []*model.MethodRecord{get, legacy}},
		},
	}
}

func testConfig(t *testing.T, formats ...string) *config.Config {
	t.Helper()
	return &config.Config{
		Output: config.OutputConfig{Dir: t.TempDir(), FileName: "api", Formats: formats},
	}
}

func TestYAMLExport(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, NewYAMLExporter().Export(sampleReport(), cfg))

	content, err := os.ReadFile(cfg.GetOutputPath(".yaml"))
	require.NoError(t, err)

	var decoded model.Report
	require.NoError(t, yaml.Unmarshal(content, &decoded))
	assert.Equal(t, "2024-05-01 10:00:00", decoded.GeneratedAt)
	require.Len(t, decoded.Sources, 1)

	records := decoded.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "GET", records[0].RequestMethod)
	require.Len(t, records[0].ResponseArgList, 1)
	assert.Equal(t, "name", records[0].ResponseArgList[0].Children[0].Name)
	assert.Equal(t, 1, records[0].ResponseArgList[0].Children[0].Level)
	assert.True(t, records[1].Deprecated)

	// Display-only fields stay out of the dump
	assert.NotContains(t, string(content), "levelprefix")
}

func TestGetExporters(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		want    []string
	}{
		{"all", []string{"markdown", "excel", "word", "html", "openapi", "yaml"},
			[]string{"markdown", "excel", "word", "html", "openapi", "yaml"}},
		{"aliases folded", []string{"md", "MARKDOWN", "xlsx", "docx", "swagger", "yml"},
			[]string{"markdown", "excel", "word", "openapi", "yaml"}},
		{"unknown skipped", []string{"pdf", " html "}, []string{"html"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, exp := range GetExporters(tt.formats) {
				names = append(names, exp.Name())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

type stubExporter struct {
	name  string
	err   error
	calls int
}

func (s *stubExporter) Name() string { return s.name }

func (s *stubExporter) Export(*model.Report, *config.Config) error {
	s.calls++
	return s.err
}

func TestExportAllContinuesAfterFailure(t *testing.T) {
	failing := &stubExporter{name: "broken", err: assert.AnError}
	ok := &stubExporter{name: "fine"}
	done := 0

	err := ExportAll([]Exporter{failing, ok}, sampleReport(), testConfig(t), func() { done++ })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors")
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, 1, ok.calls)
	assert.Equal(t, 2, done)
}

func TestExportAllFormats(t *testing.T) {
	cfg := testConfig(t, "markdown", "excel", "word", "html", "openapi", "yaml")

	require.NoError(t, ExportAll(GetExporters(cfg.Output.Formats), sampleReport(), cfg, nil))

	for _, ext := range []string{".xlsx", ".docx", ".html", ".json", ".yaml"} {
		_, err := os.Stat(cfg.GetOutputPath(ext))
		assert.NoError(t, err, ext)
	}
	_, err := os.Stat(cfg.Output.Dir + "/UserController_getUser.md")
	assert.NoError(t, err)
}
