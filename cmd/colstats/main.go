// Command colstats prints descriptive statistics for the numeric columns of a
// Parquet file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"columnstats/column"
	"columnstats/core"
	"columnstats/storage"

	"go.uber.org/zap"
)

type options struct {
	file            string
	columns         string
	confidenceLevel float64
	badgerDir       string
	verbose         bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.file, "file", "", "Parquet file to summarize")
	flag.StringVar(&opts.columns, "columns", "", "comma separated column names (default: all numeric columns)")
	flag.Float64Var(&opts.confidenceLevel, "level", 0.95, "confidence level for the mean interval")
	flag.StringVar(&opts.badgerDir, "badger", "", "directory for persisted summaries (default: in memory)")
	flag.BoolVar(&opts.verbose, "v", false, "verbose logging")
	flag.Parse()

	if opts.file == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := newLogger(opts.verbose)
	defer logger.Sync()

	if err := run(context.Background(), opts, logger, os.Stdout); err != nil {
		logger.Error("colstats failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func selectColumns(all []*column.FloatColumn, names string) ([]*column.FloatColumn, error) {
	if names == "" {
		return all, nil
	}
	byName := make(map[string]*column.FloatColumn, len(all))
	for _, c := range all {
		byName[c.Name()] = c
	}
	selected := make([]*column.FloatColumn, 0)
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		c, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrColumnNotFound, name)
		}
		selected = append(selected, c)
	}
	return selected, nil
}

func run(ctx context.Context, opts options, logger *zap.Logger, out io.Writer) error {
	columns, err := column.OpenParquet(ctx, opts.file)
	if err != nil {
		return err
	}
	columns, err = selectColumns(columns, opts.columns)
	if err != nil {
		return err
	}
	logger.Debug("loaded columns", zap.String("file", opts.file), zap.Int("count", len(columns)))

	config := core.DefaultStoreConfig()
	if opts.badgerDir != "" {
		config.BadgerConfig = &storage.BadgerBackendConfig{Path: opts.badgerDir}
	}
	db, err := core.New(config, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, c := range columns {
		if err := db.AddColumn(c); err != nil {
			return err
		}
	}

	for _, c := range columns {
		if err := report(db, c.Name(), opts.confidenceLevel, out); err != nil {
			return err
		}
	}
	return nil
}

func report(db *core.DB, name string, confidenceLevel float64, out io.Writer) error {
	summary, err := db.Summary(name)
	if err != nil {
		return err
	}
	ci, err := db.ConfidenceInterval(name, confidenceLevel)
	if err != nil {
		return err
	}
	modes, err := db.Mode(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", name)
	fmt.Fprintf(out, "  n         %d\n", summary.N)
	fmt.Fprintf(out, "  min       %g\n", summary.Min)
	fmt.Fprintf(out, "  max       %g\n", summary.Max)
	fmt.Fprintf(out, "  mean      %g\n", summary.Mean)
	fmt.Fprintf(out, "  variance  %g\n", summary.Variance)
	fmt.Fprintf(out, "  stddev    %g\n", summary.StandardDeviation())
	fmt.Fprintf(out, "  mean %.0f%% [%g, %g]\n", confidenceLevel*100, ci.LowerCI, ci.UpperCI)
	fmt.Fprintf(out, "  mode      %v\n", modes)
	return nil
}
