// Command dockit generates API documentation from tagged Javadoc comments.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"dockit/internal/collector"
	"dockit/internal/config"
	"dockit/internal/exporter"
	"dockit/internal/logger"
	"dockit/internal/model"
	"dockit/internal/source"
	"dockit/internal/ui"
)

const (
	appName     = "dockit"
	appDesc     = "Generates API documentation from tagged Javadoc comments"
	logFileName = "dockit.log"
)

var (
	version = "dev"
	commit  = "none"
)

// options holds the command-line flags
type options struct {
	configPath   string
	rootDir      string
	outputDir    string
	formats      string
	templatePath string
	verbose      bool
	quiet        bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *exitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// exitError marks a failure that has already been logged
type exitError struct{ err error }

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         appDesc,
		Long:          appDesc + ".\n\nOnly methods with a /** ... */ comment are documented.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	bindFlags(rootCmd.PersistentFlags(), opts)
	rootCmd.AddCommand(newVersionCmd(stdout))
	return rootCmd
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (default "+config.DefaultConfigFile+")")
	flags.StringVar(&opts.rootDir, "root", "", "Override project.root_dir")
	flags.StringVar(&opts.outputDir, "output", "", "Override output.dir")
	flags.StringVar(&opts.formats, "format", "", "Comma-separated output formats (markdown,excel,word,html,openapi,yaml)")
	flags.StringVar(&opts.templatePath, "template", "", "Markdown template (default: embedded)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging (DEBUG level)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only print errors, no progress bars")
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(stdout, "%s version %s (commit: %s)\n", appName, version, commit)
			return nil
		},
	}
}

// loadConfig reads the config file and applies flag overrides. Only flags
// that were set on the command line override file values.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Project.RootDir = opts.rootDir
	}
	if flags.Changed("output") {
		cfg.Output.Dir = opts.outputDir
	}
	if flags.Changed("format") {
		cfg.SetFormats(opts.formats)
	}
	if flags.Changed("template") {
		cfg.Template.Path = opts.templatePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, opts *options, stdout, stderr io.Writer) error {
	logPath := filepath.Join(cfg.Output.Dir, logFileName)
	if err := logger.Init(stdout, logPath, opts.verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()
	logger.SetQuiet(opts.quiet)

	if opts.verbose {
		cfg.Print(stdout)
	}

	if err := generate(ctx, cfg, opts.quiet, stderr); err != nil {
		logger.Error("Generation failed: %v", err)
		return &exitError{err: err}
	}
	return nil
}

func generate(ctx context.Context, cfg *config.Config, quiet bool, progressOut io.Writer) error {
	pipeline := ui.NewPipelineWithOutput(ui.DefaultPhases, progressOut)
	if quiet {
		pipeline.Disable()
	}
	defer pipeline.Finish()

	// Phase 1: Scanning
	scanBar := pipeline.NextPhase(-1)
	files, err := source.ScanDirectory(cfg.Project.RootDir, cfg.Analysis.ExcludeDirs)
	if err != nil {
		return err
	}
	scanBar.Add(len(files))
	scanBar.Describe(fmt.Sprintf("%d files", len(files)))
	logger.Info("Found %d Java files under %s", len(files), cfg.Project.RootDir)

	// Phase 2: Parsing
	parseBar := pipeline.NextPhase(len(files))
	report, err := collector.Collect(ctx, files, collector.Options{
		Encodings:  cfg.Project.Encoding,
		Workers:    cfg.Analysis.Workers,
		OnFileDone: func() { parseBar.Increment() },
	})
	if err != nil {
		return err
	}
	logger.Debug("Parsed %d of %d files", parseBar.Current(), len(files))
	excludeClasses(report, cfg)

	records := report.Records()
	logger.Info("Documented %d methods in %d classes", len(records), report.ClassCount())

	// Phase 3: Exporting
	exporters := exporter.GetExporters(cfg.Output.Formats)
	if len(exporters) == 0 {
		return fmt.Errorf("no usable output format in %v", cfg.Output.Formats)
	}

	exportBar := pipeline.NextPhase(len(exporters))
	if err := exporter.ExportAll(exporters, report, cfg, func() { exportBar.Increment() }); err != nil {
		return err
	}
	pipeline.Finish()
	pipeline.PrintSummary(fmt.Sprintf("Exported %d methods as %d format(s)", len(records), len(exporters)))

	warnings, errs := logger.Counts()
	logger.Info("Done. Output in [%s] (%d warnings, %d errors, log: %s)",
		cfg.Output.Dir, warnings, errs, logger.GetLogFilePath())
	return nil
}

// excludeClasses drops sources whose class matches analysis.exclude_classes
func excludeClasses(report *model.Report, cfg *config.Config) {
	if len(cfg.Analysis.ExcludeClasses) == 0 {
		return
	}

	kept := report.Sources[:0]
	for _, src := range report.Sources {
		if cfg.ExcludesClass(src.ClassName) {
			logger.Debug("[FILTER] excluded class %s (%s)", src.ClassName, src.Path)
			continue
		}
		kept = append(kept, src)
	}
	report.Sources = kept
}
