package config

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Logging settings
	Verbose  bool
	Quiet    bool
	LogLevel string
	NoColor  bool

	// Output settings
	UseColors       bool
	OutputFile      string
	CopyToClipboard bool

	// Filtering settings
	IgnorePatterns string
	Extensions     string

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a new Config with values from command-line flags
func New() *Config {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	// Parse command-line flags
	flag.StringVar(&c.RootDir, "dir", ".", "The root directory to digest")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.StringVar(&c.IgnorePatterns, "ignore", "", "Extra ignore patterns (comma-separated; exact, prefix or regexp)")
	flag.StringVar(&c.Extensions, "ext", "", "Only dump contents of files with these extensions (comma-separated, e.g., 'go,md,txt')")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.StringVar(&c.OutputFile, "output", "", "Output to file instead of stdout")
	flag.BoolVar(&c.CopyToClipboard, "clipboard", false, "Also copy the digest to the system clipboard")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	flag.Parse()

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c
}
