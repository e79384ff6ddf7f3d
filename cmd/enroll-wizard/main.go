package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/goliatone/go-enroll/pkg/catalog"
	"github.com/goliatone/go-enroll/pkg/enroll"
	"github.com/goliatone/go-enroll/pkg/recordlog"
	"github.com/goliatone/go-enroll/pkg/tui"
)

func main() {
	// A missing .env file is fine; it only supplies defaults for the flags.
	_ = godotenv.Load()

	output := flag.String("output", envOr("ENROLL_OUTPUT", "user_input.txt"), "append-only enrollment log file")
	catalogPath := flag.String("catalog", envOr("ENROLL_CATALOG", ""), "YAML file overriding the building/department lists")
	ackMessage := flag.String("ack-message", envOr("ENROLL_ACK_MESSAGE", ""), "acknowledgement page message override")
	loop := flag.Bool("loop", false, "keep running sessions until interrupted")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	var catalogFns []catalog.OptionFn
	if *catalogPath != "" {
		catalogFns, err = catalog.LoadOverridesFile(*catalogPath)
		if err != nil {
			logger.Fatal("failed to load catalog overrides", zap.Error(err))
		}
	}
	cat, err := catalog.New(catalogFns...)
	if err != nil {
		logger.Fatal("failed to build catalog", zap.Error(err))
	}

	writer, err := recordlog.NewFileWriter(*output)
	if err != nil {
		logger.Fatal("failed to configure record writer", zap.Error(err))
	}

	seq, err := enroll.NewSequencer(cat, writer)
	if err != nil {
		logger.Fatal("failed to build sequencer", zap.Error(err))
	}

	runnerOpts := []tui.Option{tui.WithLogger(logger)}
	if msg := strings.TrimSpace(*ackMessage); msg != "" {
		runnerOpts = append(runnerOpts, tui.WithAckMessage(msg))
	}
	runner, err := tui.NewRunner(runnerOpts...)
	if err != nil {
		logger.Fatal("failed to build runner", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("enrollment wizard starting", zap.String("output", writer.Path()), zap.Bool("loop", *loop))

	for {
		if _, err := runner.Run(ctx, seq); err != nil {
			if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
				logger.Info("session aborted")
				return
			}
			logger.Fatal("session failed", zap.Error(err))
		}

		if !*loop {
			return
		}
		seq.Reset()
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
