// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/antenna/input"
	"github.com/katalvlaran/antenna/mwis"
	"github.com/katalvlaran/antenna/oracle"
	"github.com/katalvlaran/antenna/report"
)

const (
	exitOK    = 0
	exitError = 1
)

var tracer = otel.Tracer("github.com/katalvlaran/antenna/cmd/antenna")

// errUsage marks a command line that does not name exactly one input file.
var errUsage = errors.New("expected exactly one input file")

// config is the parsed command line.
type config struct {
	path          string
	firstCity     mwis.FirstCityPolicy
	allowNegative bool
	verify        bool
	logLevel      slog.Level
}

// parseFlags turns args into a config. flag.ErrHelp is passed through.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg       config
		firstCity string
		logLevel  string
	)
	fs := flag.NewFlagSet("antenna", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: antenna [flags] <input_file>")
		fs.PrintDefaults()
	}
	fs.StringVar(&firstCity, "first-city", mwis.FirstCityResolved.String(),
		"how city 1 is decided when the walk stops on it: resolved|optimistic")
	fs.BoolVar(&cfg.allowNegative, "allow-negative", false, "admit negative populations")
	fs.BoolVar(&cfg.verify, "verify", false, "cross-check the result with a MaxSAT solver")
	fs.StringVar(&logLevel, "log-level", "warn", "log level: debug|info|warn|error")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, fmt.Errorf("%w, got %d", errUsage, fs.NArg())
	}
	cfg.path = fs.Arg(0)

	policy, err := mwis.ParseFirstCityPolicy(firstCity)
	if err != nil {
		return cfg, err
	}
	cfg.firstCity = policy

	if err = cfg.logLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return cfg, fmt.Errorf("invalid -log-level %q: %w", logLevel, err)
	}

	return cfg, nil
}

// run is the whole command; main only maps it to os.Exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "antenna: %v\n", err)
		return exitError
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.logLevel}))

	ctx, span := tracer.Start(ctx, "antenna.run", trace.WithAttributes(
		attribute.String("input.path", cfg.path),
		attribute.String("first_city", cfg.firstCity.String()),
	))
	defer span.End()

	res, err := solveFile(ctx, logger, cfg)
	if err != nil {
		fail(span, err)
		logger.ErrorContext(ctx, "antenna failed",
			slog.String("path", cfg.path),
			slog.Any("err", err))
		return exitError
	}

	if err = report.Write(stdout, res); err != nil {
		fail(span, err)
		logger.ErrorContext(ctx, "writing report", slog.Any("err", err))
		return exitError
	}

	return exitOK
}

// solveFile reads, solves and optionally verifies the file named by cfg.
func solveFile(ctx context.Context, logger *slog.Logger, cfg config) (mwis.Result, error) {
	p, err := readCities(ctx, cfg.path)
	if err != nil {
		return mwis.Result{}, err
	}
	logger.DebugContext(ctx, "input parsed",
		slog.String("path", cfg.path),
		slog.Int("cities", len(p)))

	res, err := solve(ctx, p, cfg)
	if err != nil {
		return mwis.Result{}, err
	}
	logger.InfoContext(ctx, "solved",
		slog.Int("cities", len(p)),
		slog.Int64("max", res.Value),
		slog.Int("selected", res.Len()),
		slog.String("first_city", cfg.firstCity.String()))

	if cfg.verify {
		if err = verify(ctx, p, res); err != nil {
			return mwis.Result{}, err
		}
		logger.InfoContext(ctx, "verified against MaxSAT oracle", slog.Int64("max", res.Value))
	}

	return res, nil
}

func readCities(ctx context.Context, path string) (mwis.Populations, error) {
	_, span := tracer.Start(ctx, "input.read")
	defer span.End()

	p, err := input.ReadFile(path)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("cities", len(p)))

	return p, nil
}

func solve(ctx context.Context, p mwis.Populations, cfg config) (mwis.Result, error) {
	_, span := tracer.Start(ctx, "mwis.solve")
	defer span.End()

	res, err := mwis.Solve(p,
		mwis.WithFirstCityPolicy(cfg.firstCity),
		mwis.WithNegativeAllowed(cfg.allowNegative),
	)
	if err != nil {
		fail(span, err)
		return mwis.Result{}, err
	}
	span.SetAttributes(
		attribute.Int64("max", res.Value),
		attribute.Int("selected", res.Len()),
	)

	return res, nil
}

func verify(ctx context.Context, p mwis.Populations, res mwis.Result) error {
	_, span := tracer.Start(ctx, "oracle.verify")
	defer span.End()

	if err := oracle.Verify(p, res); err != nil {
		fail(span, err)
		return err
	}

	return nil
}

// fail records err on span.
func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
