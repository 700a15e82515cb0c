// Command jsonv validates JSON data from a file or stdin according to
// RFC 8259.
//
// Exit codes:
//
//	0: valid JSON
//	1: invalid JSON syntax
//	2: file not found or permission error
//	3: input/output error
//	4: command line argument error
package main

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/pkg/errors"

	jsonv "github.com/d1ced/jsonv_airp"
)

const (
	exitOK = iota
	exitSyntax
	exitFile
	exitIO
	exitArgs
)

type config struct {
	file    string
	verbose bool
	quiet   bool
	pretty  bool
}

func main() {
	app := kingpin.New("jsonv", "Validate JSON data from a file or stdin according to RFC 8259.")
	var cfg config
	app.Arg("file", "File to validate (default: stdin).").StringVar(&cfg.file)
	app.Flag("verbose", "Print detailed diagnostics.").Short('v').BoolVar(&cfg.verbose)
	app.Flag("quiet", "Don't print anything on success or failure.").Short('q').BoolVar(&cfg.quiet)
	app.Flag("pretty", "Pretty print the JSON if valid.").Short('p').BoolVar(&cfg.pretty)
	kingpin.MustParse(app.Parse(os.Args[1:]))
	os.Exit(run(cfg, os.Stdin, os.Stdout, os.Stderr))
}

func run(cfg config, stdin io.Reader, stdout, stderr io.Writer) int {
	if cfg.quiet && cfg.verbose {
		fmt.Fprintln(stderr, "Error: cannot use both --quiet and --verbose together")
		return exitArgs
	}
	logger := log.NewNopLogger()
	if cfg.verbose {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	}

	data, code := readInput(cfg, stdin, stderr)
	if code != exitOK {
		return code
	}
	source := cfg.file
	if source == "" {
		source = "stdin"
	}
	logger.Log("msg", "read input", "source", source, "size", humanize.Bytes(uint64(len(data))))

	if !utf8.Valid(data) {
		if !cfg.quiet {
			fmt.Fprintln(stderr, "Error: input is not valid UTF-8")
		}
		return exitIO
	}

	start := time.Now()
	node, err := jsonv.Parse(data)
	logger.Log("msg", "validated", "took", time.Since(start), "valid", err == nil)
	if err != nil {
		if !cfg.quiet {
			color.New(color.FgRed).Fprintf(stderr, "Invalid JSON: %v\n", err)
		}
		return exitSyntax
	}
	if cfg.quiet {
		return exitOK
	}
	if cfg.pretty {
		if _, err := node.WriteIndent(stdout, "  "); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", errors.Wrap(err, "pretty printing"))
			return exitIO
		}
		fmt.Fprintln(stdout)
		return exitOK
	}
	color.New(color.FgGreen).Fprintln(stdout, "JSON is valid.")
	return exitOK
}

func readInput(cfg config, stdin io.Reader, stderr io.Writer) ([]byte, int) {
	if cfg.file != "" {
		data, err := os.ReadFile(cfg.file)
		switch {
		case err == nil:
			return data, exitOK
		case os.IsNotExist(err):
			if !cfg.quiet {
				fmt.Fprintf(stderr, "Error: File not found: %s\n", cfg.file)
			}
			return nil, exitFile
		case os.IsPermission(err):
			if !cfg.quiet {
				fmt.Fprintf(stderr, "Error: Permission denied: %s\n", cfg.file)
			}
			return nil, exitFile
		default:
			if !cfg.quiet {
				fmt.Fprintf(stderr, "Error: %v\n", errors.Wrapf(err, "reading %s", cfg.file))
			}
			return nil, exitIO
		}
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		if !cfg.quiet {
			fmt.Fprintf(stderr, "Error: %v\n", errors.Wrap(err, "reading stdin"))
		}
		return nil, exitIO
	}
	if len(data) == 0 {
		if !cfg.quiet {
			fmt.Fprintln(stderr, "Error: No input provided")
		}
		return nil, exitIO
	}
	return data, exitOK
}
