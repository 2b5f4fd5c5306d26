// Package main is the entry point for the bracken decoration viewer.
//
// It opens a file (or a built-in sample), decorates it with search
// matches, a selection, and example diagnostics, and renders the result
// until a key is pressed. It exists to exercise the decoration pipeline
// end to end.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/brackenedit/bracken/internal/diagnostic"
	"github.com/brackenedit/bracken/internal/overlay"
	"github.com/brackenedit/bracken/internal/render"
	"github.com/brackenedit/bracken/internal/render/backend"
	"github.com/brackenedit/bracken/internal/search"
	"github.com/brackenedit/bracken/internal/selection"
	"github.com/brackenedit/bracken/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	themePath string
	query     string
	file      string
}

func run() int {
	opts := parseFlags()

	th, err := theme.Load(opts.themePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load theme: %v\n", err)
		return 1
	}

	text := sampleText
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", opts.file, err)
			return 1
		}
		text = string(data)
	}

	store := overlay.NewStore()
	presets := th.Presets()

	if opts.query != "" {
		eng := search.NewEngine(store, presets)
		if err := eng.SetQuery(opts.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad query: %v\n", err)
			return 1
		}
		eng.Apply(text)
	}

	// Demonstration decorations over the sample buffer.
	if opts.file == "" {
		tracker := selection.NewTracker(store, presets)
		tracker.Set(overlay.NewRange(13, 30))

		ann := diagnostic.NewAnnotator(store, presets)
		ann.Publish(sampleDiagnostics())
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	term.Clear()
	base := th.BaseStyle()
	offset := 0
	for y, line := range strings.Split(text, "\n") {
		_, rows := term.Size()
		if y >= rows {
			break
		}
		term.SetLine(0, y, render.Line(line, offset, base, store))
		offset += len(line) + 1
	}
	term.Show()
	term.WaitKey()

	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.themePath, "theme", "", "Path to theme file (TOML)")
	flag.StringVar(&opts.themePath, "t", "", "Path to theme file (shorthand)")
	flag.StringVar(&opts.query, "query", "", "Highlight matches of this text")
	flag.StringVar(&opts.query, "q", "", "Highlight matches of this text (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Bracken - buffer decoration viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: bracken [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Bracken %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.file = args[0]
	}

	return opts
}

const sampleText = `package sample

func greet(name string) string {
	unused := 0
	return "hello, " + nmae
}`

func sampleDiagnostics() []diagnostic.Diagnostic {
	return []diagnostic.Diagnostic{
		{
			Range:    overlay.NewRange(strings.Index(sampleText, "nmae"), strings.Index(sampleText, "nmae")+4),
			Severity: diagnostic.SeverityError,
			Message:  "undefined: nmae",
			Source:   "compiler",
		},
		{
			Range:    overlay.NewRange(strings.Index(sampleText, "unused"), strings.Index(sampleText, "unused")+6),
			Severity: diagnostic.SeverityWarning,
			Message:  "unused declared and not used",
			Source:   "compiler",
		},
	}
}
