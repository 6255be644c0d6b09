package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/halvick/dir-digest/internal/config"
	"github.com/halvick/dir-digest/internal/ignore"
	"github.com/halvick/dir-digest/internal/logger"
	"github.com/halvick/dir-digest/internal/printer"
	"github.com/halvick/dir-digest/internal/summary"
	"github.com/halvick/dir-digest/internal/walker"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up output destination
	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		// Note: file will be closed by main function
		output = file
	}

	// Set up logger
	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)

	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: output,
	}
}

// Run executes the main application logic
func (a *App) Run() error {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Printf("dir-digest version %s\n", a.cfg.Version)
		return nil
	}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	if a.cfg.Verbose {
		a.log.Debug("Verbose mode enabled")
		a.log.Debug("Color output: %v", a.cfg.UseColors)
		a.log.Debug("Directory: %s", a.cfg.RootDir)
		if a.cfg.IgnorePatterns != "" {
			a.log.Debug("Extra ignore patterns: %s", a.cfg.IgnorePatterns)
		}
		if a.cfg.Extensions != "" {
			a.log.Debug("Extensions filter: %s", a.cfg.Extensions)
		}
	}

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return fmt.Errorf("invalid root directory path '%s': %w", a.cfg.RootDir, err)
	}

	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("root directory '%s' not found", absRootDir)
		}
		return fmt.Errorf("could not access root directory '%s': %w", absRootDir, err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("specified path '%s' is not a directory", absRootDir)
	}

	// --- Project config file (flags win over file values) ---
	fileCfg, err := config.LoadFile(absRootDir)
	if err != nil {
		return err
	}
	if fileCfg != nil {
		a.log.Debug("Loaded project config from %s", config.FileConfigName)
	}

	// --- Assemble caller ignore patterns ---
	var callerPatterns []string
	if fileCfg != nil {
		callerPatterns = append(callerPatterns, fileCfg.Ignore...)
	}
	callerPatterns = append(callerPatterns, splitList(a.cfg.IgnorePatterns)...)

	// Resolve the output destination. The digest must not contain its own
	// output file, so when that file sits inside the root it is excluded.
	var outputPath string
	if a.cfg.OutputFile != "" {
		outputPath, err = filepath.Abs(a.cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("invalid output path '%s': %w", a.cfg.OutputFile, err)
		}
	} else if fileCfg != nil && fileCfg.Output != "" {
		outputPath = fileCfg.Output
		if !filepath.IsAbs(outputPath) {
			outputPath = filepath.Join(absRootDir, outputPath)
		}
	}
	if outputPath != "" {
		if rel, relErr := filepath.Rel(absRootDir, outputPath); relErr == nil && rel != "." && !strings.HasPrefix(rel, "..") {
			callerPatterns = append(callerPatterns, filepath.ToSlash(rel))
		}
	}

	if len(callerPatterns) > 0 {
		infoLog("Using extra ignore patterns: %v", callerPatterns)
	}

	// --- Target extensions ---
	rawExtensions := splitList(a.cfg.Extensions)
	if len(rawExtensions) == 0 && fileCfg != nil {
		rawExtensions = fileCfg.Extensions
	}
	extensions := walker.NewExtensionSet(rawExtensions)
	if len(extensions) > 0 {
		infoLog("Filtering enabled. Only dumping extensions: %s", strings.Join(extensions.List(), ", "))
	} else {
		infoLog("No extension filtering (dumping all file types).")
	}

	// --- Initialize ignore rules ---
	ruleOptions := []ignore.Option{
		ignore.WithLogger(a.log),
	}
	if len(callerPatterns) > 0 {
		ruleOptions = append(ruleOptions, ignore.WithPatterns(callerPatterns))
	}

	rules, err := ignore.New(absRootDir, ruleOptions...)
	if err != nil {
		return fmt.Errorf("error initializing ignore rules: %w", err)
	}

	// --- Create the printer ---
	output := a.Output
	if a.cfg.OutputFile == "" && outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file '%s': %w", outputPath, err)
		}
		defer file.Close()
		output = file
		infoLog("Writing digest to %s", outputPath)
	}

	// Colors only make sense when the artifact goes to the terminal.
	useColors := a.cfg.UseColors && output == a.Output

	var clipBuffer *bytes.Buffer
	if a.cfg.CopyToClipboard {
		clipBuffer = &bytes.Buffer{}
		output = io.MultiWriter(output, clipBuffer)
		useColors = false
	}

	p := printer.New()
	p.WithOutput(output)
	p.WithColors(useColors)

	// --- Traverse ---
	infoLog("Digesting directory: %s", absRootDir)

	walkOptions := []walker.Option{walker.WithLogger(a.log)}

	files, err := walker.ListFiles(absRootDir, absRootDir, rules, walkOptions...)
	if err != nil {
		return fmt.Errorf("critical error during directory walk: %w", err)
	}

	tree, err := walker.GenerateTree(absRootDir, 0, absRootDir, rules, walkOptions...)
	if err != nil {
		return fmt.Errorf("critical error during tree rendering: %w", err)
	}

	// --- Emit the artifact ---
	p.PrintFileList(files)
	p.PrintTree(tree)
	p.PrintContentsHeading()

	for _, relativePath := range files {
		if !extensions.Allows(relativePath) {
			a.log.Debug("Skipping contents of %q (extension mismatch)", relativePath)
			continue
		}
		path := filepath.Join(absRootDir, filepath.FromSlash(relativePath))
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file '%s': %w", relativePath, err)
		}
		p.PrintFile(relativePath, content)
	}

	// --- Clipboard ---
	if clipBuffer != nil {
		if err := clipboard.WriteAll(clipBuffer.String()); err != nil {
			a.log.Warn("Could not copy digest to clipboard: %v", err)
		} else {
			infoLog("Digest copied to clipboard (%d bytes).", clipBuffer.Len())
		}
	}

	summary.DisplayResults(a.log, len(files), p.Count(), time.Since(startTime), a.cfg.Quiet)
	return nil
}

// splitList splits a comma-separated flag value, trimming whitespace and
// dropping empty items.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
