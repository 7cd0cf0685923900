package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/smyth"
	"github.com/fwojciec/smyth/fs"
	"github.com/fwojciec/smyth/goquery"
	smythslog "github.com/fwojciec/smyth/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, ErrorText(err))
		os.Exit(1)
	}
}

// ErrorText formats err for the terminal. Application errors show only
// their message; anything else is printed in full.
func ErrorText(err error) string {
	if smyth.ErrorCode(err) == smyth.EINTERNAL {
		return "error: " + err.Error()
	}
	return "error: " + smyth.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// Optional dotenv file consulted for defaults. Missing file is ignored.
	EnvFile string

	// Environment lookup. Process environment takes precedence over EnvFile.
	Getenv func(key string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
		Getenv:  os.Getenv,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	vars, err := m.defaults()
	if err != nil {
		return err
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("smyth"),
		kong.Description("Index section markers found in a directory of HTML documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		vars,
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no output format specified. Run 'smyth --help' for usage")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	format, err := smyth.ParseFormat(cli.Format)
	if err != nil {
		return err
	}

	extractor, err := goquery.NewExtractor(cli.Class)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Source:    smythslog.NewLoggingSource(fs.NewSource(cli.Dir), logger),
		Extractor: smythslog.NewLoggingExtractor(extractor, logger),
	}

	cmd := &ScanCmd{Format: format}

	return cmd.Run(deps)
}

// defaults resolves flag defaults from the environment, then EnvFile.
func (m *Main) defaults() (kong.Vars, error) {
	var dotenv map[string]string
	if m.EnvFile != "" {
		vals, err := godotenv.Read(m.EnvFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", m.EnvFile, err)
		}
		dotenv = vals
	}

	lookup := func(key, fallback string) string {
		if m.Getenv != nil {
			if v := m.Getenv(key); v != "" {
				return v
			}
		}
		if v := dotenv[key]; v != "" {
			return v
		}
		return fallback
	}

	return kong.Vars{
		"dir":   lookup("SMYTH_DIR", defaultDir),
		"class": lookup("SMYTH_CLASS", goquery.DefaultClass),
	}, nil
}

const defaultDir = "data"

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
