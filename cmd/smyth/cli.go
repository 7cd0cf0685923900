package main

import (
	"context"
	"io"

	"github.com/fwojciec/smyth"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Source    smyth.DocumentSource
	Extractor smyth.RecordExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Format  string `arg:"" enum:"csv,json,grouped_json" help:"Output format: csv, json or grouped_json"`
	Dir     string `short:"d" default:"${dir}" help:"Directory of HTML documents (env SMYTH_DIR)"`
	Class   string `default:"${class}" help:"Class carried by marked elements (env SMYTH_CLASS)"`
	Verbose bool   `short:"v" help:"Log scan progress to stderr"`
}

// ScanCmd scans the document source and prints the rendered records.
type ScanCmd struct {
	Format smyth.Format
}
