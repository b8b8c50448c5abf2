package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Project  ProjectConfig  `mapstructure:"project"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Scaffold ScaffoldConfig `mapstructure:"scaffold"`
	Output   OutputConfig   `mapstructure:"output"`
}

// ProjectConfig holds project-specific settings
type ProjectConfig struct {
	RootDir   string   `mapstructure:"root_dir"`   // Root directory of the MVC project
	ModelDirs []string `mapstructure:"model_dirs"` // Folder names holding domain model classes
	Encoding  []string `mapstructure:"encoding"`   // Encoding hints (e.g., ["utf-8", "windows-1252"])
}

// AnalysisConfig holds extraction behavior settings
type AnalysisConfig struct {
	ExcludeDirs []string `mapstructure:"exclude_dirs"` // Directories to exclude from scanning
}

// CacheConfig tunes the extraction cache
type CacheConfig struct {
	MaxEntries   int `mapstructure:"max_entries"`   // Bounded size; 0 = default
	TTLSeconds   int `mapstructure:"ttl_seconds"`   // Expiration window; 0 = default
	SweepSeconds int `mapstructure:"sweep_seconds"` // Background sweep interval; 0 = default
}

// ScaffoldConfig selects what gets generated
type ScaffoldConfig struct {
	Views []string `mapstructure:"views"` // View kinds: create, edit, details, delete, index
}

// OutputConfig holds output settings
type OutputConfig struct {
	ViewsDir   string `mapstructure:"views_dir"`   // Where scaffolded views are written
	ReportDir  string `mapstructure:"report_dir"`  // Where inventory reports are written
	ReportName string `mapstructure:"report_name"` // Report file name (without extension)
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("Config file not found. Using defaults (source: ./src, views: ./Views)")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("project.root_dir", "./src")
	v.SetDefault("project.model_dirs", []string{"Models", "Entities", "Domain"})
	v.SetDefault("project.encoding", []string{"utf-8", "windows-1252"})

	v.SetDefault("analysis.exclude_dirs", []string{
		"**/bin/**",
		"**/obj/**",
		"**/packages/**",
		"**/node_modules/**",
		"**/.git/**",
		"**/.vs/**",
		"**/Migrations/**",
	})

	v.SetDefault("cache.max_entries", 256)
	v.SetDefault("cache.ttl_seconds", 600)
	v.SetDefault("cache.sweep_seconds", 60)

	v.SetDefault("scaffold.views", []string{"create", "edit", "details", "delete", "index"})

	v.SetDefault("output.views_dir", "./Views")
	v.SetDefault("output.report_dir", "./output")
	v.SetDefault("output.report_name", "model-inventory")
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absRoot, err := filepath.Abs(c.Project.RootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root_dir: %w", err)
	}
	c.Project.RootDir = absRoot

	absViews, err := filepath.Abs(c.Output.ViewsDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.views_dir: %w", err)
	}
	c.Output.ViewsDir = absViews

	absReport, err := filepath.Abs(c.Output.ReportDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.report_dir: %w", err)
	}
	c.Output.ReportDir = absReport

	return nil
}

// EnsureOutputDirs creates the views and report directories if missing
func (c *Config) EnsureOutputDirs() error {
	if err := os.MkdirAll(c.Output.ViewsDir, 0755); err != nil {
		return fmt.Errorf("failed to create views directory: %w", err)
	}
	if err := os.MkdirAll(c.Output.ReportDir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	return nil
}

// CacheTTL returns the configured expiration window
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// CacheSweepInterval returns the configured sweep interval
func (c *Config) CacheSweepInterval() time.Duration {
	return time.Duration(c.Cache.SweepSeconds) * time.Second
}

// ShouldExclude checks if a file path should be excluded based on exclude_dirs
func (c *Config) ShouldExclude(filePath string) bool {
	normalizedPath := filepath.ToSlash(filePath)

	for _, pattern := range c.Analysis.ExcludeDirs {
		if matchPathPattern(normalizedPath, pattern) {
			return true
		}
	}
	return false
}

// GetReportPath returns the full path for a report with the given extension
func (c *Config) GetReportPath(ext string) string {
	return filepath.Join(c.Output.ReportDir, c.Output.ReportName+"."+strings.TrimPrefix(ext, "."))
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Project.RootDir); os.IsNotExist(err) {
		return fmt.Errorf("root_dir does not exist: %s", c.Project.RootDir)
	}

	if len(c.Project.ModelDirs) == 0 {
		return fmt.Errorf("project.model_dirs must contain at least one folder name")
	}

	if c.Output.ReportName == "" {
		return fmt.Errorf("output.report_name cannot be empty")
	}

	for _, view := range c.Scaffold.Views {
		switch strings.ToLower(strings.TrimSpace(view)) {
		case "create", "edit", "details", "delete", "index":
		default:
			return fmt.Errorf("unknown view kind: %s", view)
		}
	}

	return nil
}

// matchPathPattern checks if a path matches a glob pattern
// Supports ** for recursive directory matching
func matchPathPattern(path, pattern string) bool {
	pattern = filepath.ToSlash(pattern)
	path = filepath.ToSlash(path)

	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")
		if len(parts) == 2 {
			prefix := strings.Trim(parts[0], "/")
			suffix := strings.Trim(parts[1], "/")

			hasPrefix := true
			if prefix != "" {
				hasPrefix = strings.HasPrefix(path, prefix+"/") || strings.Contains(path, "/"+prefix+"/")
			}

			hasSuffix := true
			if suffix != "" {
				hasSuffix = strings.Contains(path, "/"+suffix+"/") ||
					strings.HasSuffix(path, "/"+suffix) ||
					strings.HasPrefix(path, suffix+"/")
			}

			return hasPrefix && hasSuffix
		}
	}

	cleanPattern := strings.Trim(pattern, "*")
	return strings.Contains(path, cleanPattern)
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== View Scaffold Configuration ===")
	fmt.Printf("Project Root:   %s\n", c.Project.RootDir)
	fmt.Printf("Model Folders:  %v\n", c.Project.ModelDirs)
	fmt.Printf("Encoding Hints: %v\n", c.Project.Encoding)
	fmt.Printf("Exclude Dirs:   %v\n", c.Analysis.ExcludeDirs)
	fmt.Printf("Cache:          %d entries, ttl %ds, sweep %ds\n", c.Cache.MaxEntries, c.Cache.TTLSeconds, c.Cache.SweepSeconds)
	fmt.Printf("Views:          %v\n", c.Scaffold.Views)
	fmt.Printf("Views Output:   %s\n", c.Output.ViewsDir)
	fmt.Printf("Report Output:  %s\n", c.GetReportPath("xlsx"))
	fmt.Println("===================================")
}
