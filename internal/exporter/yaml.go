package exporter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dockit/internal/config"
	"dockit/internal/model"
)

// YAMLExporter dumps the raw report, argument trees included
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAMLExporter
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Name implements Exporter
func (e *YAMLExporter) Name() string {
	return "yaml"
}

// Export writes <file_name>.yaml
func (e *YAMLExporter) Export(report *model.Report, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath(".yaml")

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
