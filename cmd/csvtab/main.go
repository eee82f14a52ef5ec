package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vegasq/csvtab/internal/logger"
	"github.com/vegasq/csvtab/internal/output"
	"github.com/vegasq/csvtab/internal/query"
	"github.com/vegasq/csvtab/internal/reader"
)

// cliConfig holds the parsed command line
type cliConfig struct {
	file      string
	where     string
	aggregate string
	format    string
	delimiter rune
	limit     int
	precision int
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// parseFlags parses args into a cliConfig. flag.ErrHelp is returned as-is
// when -h is given.
func parseFlags(args []string, stderr io.Writer) (*cliConfig, error) {
	fs := flag.NewFlagSet("csvtab", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &cliConfig{}
	var delimiter string
	fs.StringVar(&cfg.file, "file", "", "Source CSV (or .parquet) file (required)")
	fs.StringVar(&cfg.where, "where", "", "Filter condition, e.g. \"rating>7.5\"")
	fs.StringVar(&cfg.aggregate, "aggregate", "", "Aggregate spec column=fn with fn one of min, max, avg, e.g. \"rating=avg\"")
	fs.StringVar(&cfg.format, "format", "table", "Output format: "+strings.Join(output.Formats, ", "))
	fs.StringVar(&delimiter, "delimiter", ",", "CSV field delimiter (single character)")
	fs.IntVar(&cfg.limit, "limit", 0, "Limit number of rows (0 = unlimited)")
	fs.IntVar(&cfg.precision, "precision", -1, "Round aggregate results to this many decimal places (-1 = no rounding, so an average prints as 7.27; use --precision 1 for 7.3)")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose logging to stderr")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: csvtab --file <path> [options]\n\n")
		fmt.Fprintf(stderr, "Print a CSV file as a table, optionally filtered or aggregated.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  csvtab --file movies.csv\n")
		fmt.Fprintf(stderr, "  csvtab --file movies.csv --where \"rating>7.5\"\n")
		fmt.Fprintf(stderr, "  csvtab --file movies.csv --aggregate \"rating=avg\"               # full precision, e.g. 7.27\n")
		fmt.Fprintf(stderr, "  csvtab --file movies.csv --aggregate \"rating=avg\" --precision 1 # one decimal, e.g. 7.3\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.file == "" {
		if fs.NArg() == 0 {
			return nil, errors.New("missing --file argument")
		}
		cfg.file = fs.Arg(0)
	}
	if cfg.limit < 0 {
		return nil, fmt.Errorf("--limit must be non-negative, got %d", cfg.limit)
	}
	if utf8.RuneCountInString(delimiter) != 1 {
		return nil, fmt.Errorf("--delimiter must be a single character, got %q", delimiter)
	}
	cfg.delimiter, _ = utf8.DecodeRuneInString(delimiter)

	return cfg, nil
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fmt.Fprintf(stderr, "Run 'csvtab -h' for usage.\n")
		return 1
	}

	logCfg := logger.LoadConfig()
	logCfg.Writer = stderr
	if cfg.verbose {
		logCfg.Level = slog.LevelDebug
	}
	log := logger.NewLogger(logCfg)

	formatter, err := output.New(cfg.format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cmd, err := selectCommand(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing condition: %v\n\n", err)
		fmt.Fprintf(stderr, "Condition format: column<OP>value with OP one of <, >, =\n")
		fmt.Fprintf(stderr, "Example: --where \"rating>7.5\" or --aggregate \"rating=avg\"\n")
		return 1
	}

	ds, err := reader.Load(cfg.file, reader.WithDelimiter(cfg.delimiter))
	if err != nil {
		if errors.Is(err, reader.ErrNotFound) {
			fmt.Fprintf(stderr, "Error: file '%s' not found\n", cfg.file)
			fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	log.Debug("loaded dataset", "file", cfg.file, "rows", ds.Len(), "columns", len(ds.Columns))

	env := &environment{
		log:     log,
		coercer: query.NewCoercer(log),
	}
	result, err := cmd.Execute(ds, env)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, query.ErrEmptyColumn) && len(ds.Columns) > 0 {
			fmt.Fprintf(stderr, "\nAvailable columns: %s\n", strings.Join(ds.Columns, ", "))
		}
		return 1
	}
	log.Debug("command finished", "command", cmd.Name(), "rows", result.Len())

	if err := formatter.Format(result.Limit(cfg.limit)); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}

	return 0
}
