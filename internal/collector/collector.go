// Package collector reads and parses a batch of Java files in parallel.
package collector

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"dockit/internal/javadoc"
	"dockit/internal/logger"
	"dockit/internal/model"
	"dockit/internal/parser"
	"dockit/internal/source"
)

// DefaultWorkers is used when Options.Workers is not positive
const DefaultWorkers = 8

// Options configures a Collect run
type Options struct {
	// Decoding order for non UTF-8 files
	Encodings []string

	// Maximum number of files processed at once
	Workers int

	// Called once per finished file (read error included). Must be safe for
	// concurrent use.
	OnFileDone func()
}

// Collect parses files with at most opts.Workers goroutines. The report keeps
// the order of files; files that yield no record are left out. A file that
// cannot be read is logged and skipped. Only cancellation of ctx fails the
// batch.
func Collect(ctx context.Context, files []string, opts Options) (*model.Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]*model.SourceFile, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range files {
		if err := gctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer done(opts.OnFileDone)

			src, err := CollectFile(path, opts.Encodings)
			if err != nil {
				logger.LogSkippedFile(path, err, "collect")
				logger.Warn("Skipping %s: %v", path, err)
				return nil
			}
			results[i] = src
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collect cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("collect cancelled: %w", err)
	}

	report := &model.Report{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Sources:     make([]model.SourceFile, 0, len(files)),
	}
	for _, src := range results {
		if src != nil && len(src.Records) > 0 {
			report.Sources = append(report.Sources, *src)
		}
	}

	logger.Debug("[COLLECT] %d files, %d with records, %d records",
		len(files), len(report.Sources), len(report.Records()))
	return report, nil
}

// CollectFile reads one file and parses every documented method in it.
// Records without @url or @method fall back to the Spring mapping
// annotations of the method.
func CollectFile(path string, encodings []string) (*model.SourceFile, error) {
	content, err := source.ReadFile(path, encodings)
	if err != nil {
		return nil, err
	}

	file, err := javadoc.ParseFile(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	src := &model.SourceFile{
		Path:      path,
		Package:   file.Package,
		ClassName: file.ClassName,
		Records:   make([]*model.MethodRecord, 0),
	}

	classURL := file.ClassMappingURL()
	for _, method := range file.Methods {
		rec, ok := parser.Parse(method)
		if !ok {
			continue
		}

		rec.ClassName = file.ClassName
		if rec.RequestURL == "" {
			rec.RequestURL = method.MappingURL(classURL)
		}
		if rec.RequestMethod == "" {
			rec.RequestMethod = method.HTTPMethod()
		}
		src.Records = append(src.Records, rec)
	}

	return src, nil
}

func done(fn func()) {
	if fn != nil {
		fn()
	}
}
