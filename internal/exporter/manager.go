package exporter

import (
	"fmt"

	"dockit/internal/config"
	"dockit/internal/exporter/html"
	"dockit/internal/exporter/markdown"
	"dockit/internal/exporter/openapi"
	"dockit/internal/exporter/word"
	"dockit/internal/logger"
	"dockit/internal/model"
)

// GetExporters returns one Exporter per requested format, in request order.
// Aliases are folded (xlsx = excel) and unknown formats are logged and
// skipped.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		name, ok := config.NormalizeFormat(fmtStr)
		if !ok {
			logger.Warn("Unknown output format %q ignored", fmtStr)
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case "markdown":
			exporters = append(exporters, markdown.NewMarkdownExporter())
		case "excel":
			exporters = append(exporters, NewExcelExporter())
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "word":
			exporters = append(exporters, word.NewWordExporter())
		case "openapi":
			exporters = append(exporters, openapi.NewOpenAPIExporter())
		case "yaml":
			exporters = append(exporters, NewYAMLExporter())
		}
	}

	return exporters
}

// ExportAll runs every exporter. A failing exporter does not stop the
// others; the returned error reports how many failed. onDone, if set, is
// called after each exporter.
func ExportAll(exporters []Exporter, report *model.Report, cfg *config.Config, onDone func()) error {
	var failed []string
	for _, exp := range exporters {
		logger.Debug("[EXPORT] %s", exp.Name())
		if err := exp.Export(report, cfg); err != nil {
			logger.Error("Export %s failed: %v", exp.Name(), err)
			failed = append(failed, exp.Name())
		}
		if onDone != nil {
			onDone()
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors %v", len(failed), failed)
	}
	return nil
}
