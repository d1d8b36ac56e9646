// Package markdown writes the rendered template to .md files.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"dockit/internal/config"
	"dockit/internal/exporter/common"
	"dockit/internal/logger"
	"dockit/internal/model"
	"dockit/internal/render"
)

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}_.\-]+`)

// MarkdownExporter writes one file per record, or a single combined file when
// output.single_file is set
type MarkdownExporter struct{}

// NewMarkdownExporter creates a new MarkdownExporter
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Name implements Exporter
func (e *MarkdownExporter) Name() string {
	return "markdown"
}

// Export writes <ClassName>_<methodName>.md per record, or <file_name>.md
func (e *MarkdownExporter) Export(report *model.Report, cfg *config.Config) error {
	renderer, err := render.New(cfg.Template.Path)
	if err != nil {
		return err
	}
	logger.Debug("[MARKDOWN] template: %s", renderer.Name())

	records := common.SortRecords(report.Records())

	if cfg.Output.SingleFile {
		return writeFile(cfg.GetOutputPath(".md"), renderer.RenderAll(records))
	}

	used := make(map[string]int)
	for _, rec := range records {
		name := FileName(rec)
		// Overloads share a name
		if n := used[name]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		used[FileName(rec)]++

		if err := writeFile(filepath.Join(cfg.Output.Dir, name+".md"), renderer.Render(rec)); err != nil {
			return err
		}
	}
	return nil
}

// FileName returns "<ClassName>_<methodName>" with characters unsafe in file
// names replaced by "_"
func FileName(rec *model.MethodRecord) string {
	name := rec.MethodName
	if rec.ClassName != "" {
		name = rec.ClassName + "_" + rec.MethodName
	}
	return unsafeFileChars.ReplaceAllString(name, "_")
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
