package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/mvp-joe/javadecl/internal/config"
	"github.com/mvp-joe/javadecl/internal/extraction"
	"github.com/mvp-joe/javadecl/internal/parsers"
	"github.com/mvp-joe/javadecl/internal/source"
	"github.com/mvp-joe/javadecl/internal/syntax"
)

// newParser returns the parser used for every invocation.
var newParser = func() syntax.Parser {
	return parsers.NewJavaParser()
}

// runExtract loads, parses, extracts and prints. A syntax error is reported
// on stderr and turned into an empty array on stdout.
func runExtract(ctx context.Context, opts *rootOptions, path string, stdout, stderr io.Writer) error {
	cfg, cfgUsed, err := config.LoadConfig(opts.cfgFile)
	if err != nil {
		return err
	}
	if opts.compact {
		cfg.Output.Pretty = false
	}
	if opts.verbose {
		cfg.Log.Verbose = true
	}

	logger := newLogger(stderr, cfg.Log.Verbose)
	if cfgUsed != "" {
		logger.Debugf("Using config file: %s", cfgUsed)
	}
	outOpts := extraction.Options{Pretty: cfg.Output.Pretty}

	matcher, err := source.NewMatcher(cfg.Source.Patterns, cfg.Source.Ignore)
	if err != nil {
		return fmt.Errorf("invalid source patterns: %w", err)
	}

	file, err := source.Load(path)
	if err != nil {
		return err
	}
	if !matcher.Match(path) {
		logger.Printf("Warning: %s does not match source patterns %v", path, cfg.Source.Patterns)
	}
	logger.Debugf("Read %d bytes from %s", len(file.Content), file.Path)

	unit, err := newParser().Parse(ctx, file.Content)
	if err != nil {
		var parseErr *syntax.ParseError
		if !errors.As(err, &parseErr) {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		fmt.Fprintf(stderr, "Error parsing file %s: %v\n", path, parseErr)
		return extraction.Encode(stdout, []extraction.Record{}, outOpts)
	}

	records := extraction.Extract(unit, file.Path)
	logger.Debugf("Extracted %d declarations from %s", len(records), file.Path)

	return extraction.Encode(stdout, records, outOpts)
}

// cliLogger writes diagnostics to stderr; Debugf only when verbose.
type cliLogger struct {
	*log.Logger
	verbose bool
}

func newLogger(w io.Writer, verbose bool) *cliLogger {
	return &cliLogger{
		Logger:  log.New(w, "javadecl: ", 0),
		verbose: verbose,
	}
}

func (l *cliLogger) Debugf(format string, args ...any) {
	if l.verbose {
		l.Printf(format, args...)
	}
}
