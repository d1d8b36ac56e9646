package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"dockit/internal/source"
)

// DefaultConfigFile is read when no --config flag is given
const DefaultConfigFile = "dockit.yaml"

// Config represents the application configuration
type Config struct {
	Project  ProjectConfig  `mapstructure:"project"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Template TemplateConfig `mapstructure:"template"`
	Output   OutputConfig   `mapstructure:"output"`

	// File the values were read from; empty when only defaults apply
	ConfigFile string `mapstructure:"-"`
}

// ProjectConfig holds project-specific settings
type ProjectConfig struct {
	RootDir  string   `mapstructure:"root_dir"` // Root directory to scan
	Encoding []string `mapstructure:"encoding"` // Decoding order (e.g., ["utf-8", "euc-kr"])
}

// AnalysisConfig holds scanning behavior settings
type AnalysisConfig struct {
	ExcludeDirs    []string `mapstructure:"exclude_dirs"`    // Directories to skip
	ExcludeClasses []string `mapstructure:"exclude_classes"` // Class name patterns to leave out of the output
	Workers        int      `mapstructure:"workers"`         // Files parsed in parallel
}

// TemplateConfig selects the Markdown template
type TemplateConfig struct {
	Path string `mapstructure:"path"` // Empty: embedded default
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir        string   `mapstructure:"dir"`         // Output directory
	FileName   string   `mapstructure:"file_name"`   // Base name of combined outputs (without extension)
	Formats    []string `mapstructure:"formats"`     // markdown, excel, word, html, openapi, yaml
	SingleFile bool     `mapstructure:"single_file"` // Markdown: one combined file instead of one per method
}

// formatAliases maps every accepted spelling to its canonical format name
var formatAliases = map[string]string{
	"markdown": "markdown",
	"md":       "markdown",
	"excel":    "excel",
	"xlsx":     "excel",
	"word":     "word",
	"docx":     "word",
	"html":     "html",
	"openapi":  "openapi",
	"swagger":  "openapi",
	"json":     "openapi",
	"yaml":     "yaml",
	"yml":      "yaml",
}

// NormalizeFormat returns the canonical name of a format and whether it is known
func NormalizeFormat(name string) (string, bool) {
	canonical, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// Load reads the configuration from a file or uses defaults.
// If configPath is empty, it looks for "dockit.yaml" in the current directory.
// A missing file is not an error. DOCKIT_* environment variables override
// file values (DOCKIT_OUTPUT_DIR for output.dir).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("DOCKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = DefaultConfigFile
	}
	v.SetConfigFile(configPath)

	var cfg Config

	if err := v.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		cfg.ConfigFile = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) ||
		strings.Contains(err.Error(), "no such file") || strings.Contains(err.Error(), "cannot find")
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("project.root_dir", "./src")
	v.SetDefault("project.encoding", source.DefaultEncodings)

	v.SetDefault("analysis.exclude_dirs", []string{
		"**/test/**",
		"**/target/**",
		"**/build/**",
		"**/out/**",
		"**/node_modules/**",
	})
	v.SetDefault("analysis.exclude_classes", []string{})
	v.SetDefault("analysis.workers", 8)

	v.SetDefault("template.path", "")

	v.SetDefault("output.dir", "./docs")
	v.SetDefault("output.file_name", "api-reference")
	v.SetDefault("output.formats", []string{"markdown"})
	v.SetDefault("output.single_file", false)
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absRoot, err := filepath.Abs(c.Project.RootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root_dir: %w", err)
	}
	c.Project.RootDir = absRoot

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	if c.Template.Path != "" {
		absTemplate, err := filepath.Abs(c.Template.Path)
		if err != nil {
			return fmt.Errorf("failed to resolve template.path: %w", err)
		}
		c.Template.Path = absTemplate
	}

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// SetFormats replaces the output formats with a comma-separated list
func (c *Config) SetFormats(list string) {
	var formats []string
	for _, f := range strings.Split(list, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	c.Output.Formats = formats
}

// ExcludesClass checks if a class name matches any exclude_classes pattern
func (c *Config) ExcludesClass(className string) bool {
	for _, pattern := range c.Analysis.ExcludeClasses {
		if matchPattern(className, pattern) {
			return true
		}
	}
	return false
}

// GetOutputPath returns the full path of a combined output with the given extension
func (c *Config) GetOutputPath(ext string) string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+ext)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Project.RootDir); os.IsNotExist(err) {
		return fmt.Errorf("root_dir does not exist: %s", c.Project.RootDir)
	}

	if len(c.Project.Encoding) == 0 {
		return fmt.Errorf("project.encoding must contain at least one encoding")
	}
	for _, enc := range c.Project.Encoding {
		if !source.IsValidEncoding(enc) {
			return fmt.Errorf("project.encoding: unknown encoding %q", enc)
		}
	}

	if c.Analysis.Workers <= 0 {
		return fmt.Errorf("analysis.workers must be positive, got %d", c.Analysis.Workers)
	}

	if c.Template.Path != "" {
		if _, err := os.Stat(c.Template.Path); err != nil {
			return fmt.Errorf("template.path: %w", err)
		}
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("output.formats must contain at least one format")
	}
	for _, f := range c.Output.Formats {
		if _, ok := NormalizeFormat(f); !ok {
			return fmt.Errorf("output.formats: unknown format %q", f)
		}
	}

	return nil
}

// matchPattern checks if a string matches a simple glob pattern
// Supports only '*' wildcard at the beginning or end
func matchPattern(str, pattern string) bool {
	if pattern == "*" {
		return true
	}

	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		// *foo* - contains
		middle := pattern[1 : len(pattern)-1]
		return strings.Contains(str, middle)
	} else if strings.HasPrefix(pattern, "*") {
		// *foo - ends with
		suffix := pattern[1:]
		return strings.HasSuffix(str, suffix)
	} else if strings.HasSuffix(pattern, "*") {
		// foo* - starts with
		prefix := pattern[:len(pattern)-1]
		return strings.HasPrefix(str, prefix)
	}

	// Exact match
	return str == pattern
}

// Print writes the effective configuration to w
func (c *Config) Print(w io.Writer) {
	configFile := c.ConfigFile
	if configFile == "" {
		configFile = "(defaults)"
	}
	template := c.Template.Path
	if template == "" {
		template = "(embedded)"
	}

	fmt.Fprintln(w, "=== dockit configuration ===")
	fmt.Fprintf(w, "Config File:      %s\n", configFile)
	fmt.Fprintf(w, "Project Root:     %s\n", c.Project.RootDir)
	fmt.Fprintf(w, "Encodings:        %v\n", c.Project.Encoding)
	fmt.Fprintf(w, "Exclude Dirs:     %v\n", c.Analysis.ExcludeDirs)
	fmt.Fprintf(w, "Exclude Classes:  %v\n", c.Analysis.ExcludeClasses)
	fmt.Fprintf(w, "Workers:          %d\n", c.Analysis.Workers)
	fmt.Fprintf(w, "Template:         %s\n", template)
	fmt.Fprintf(w, "Output Directory: %s\n", c.Output.Dir)
	fmt.Fprintf(w, "Formats:          %v\n", c.Output.Formats)
	fmt.Fprintln(w, "============================")
}
