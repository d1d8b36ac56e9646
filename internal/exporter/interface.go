package exporter

import (
	"dockit/internal/config"
	"dockit/internal/model"
)

// Exporter is the unified interface for all output formats
type Exporter interface {
	// Name is the canonical format name ("markdown", "excel", ...)
	Name() string

	Export(report *model.Report, cfg *config.Config) error
}
