package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sansstate/cmd/sansstate/commands"
	"git.home.luguber.info/inful/sansstate/internal/config"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/logfields"
	"git.home.luguber.info/inful/sansstate/internal/metrics"
	"git.home.luguber.info/inful/sansstate/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("sansstate"),
		kong.Description("Build and inspect SANS reduction state from user files."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	adapter := errors.NewCLIErrorAdapter(cli.Verbose, slog.Default())

	cfg := config.Default()
	if parser.Command() != "init" {
		loaded, err := commands.LoadConfig(cli.Config)
		if err != nil {
			adapter.HandleError(err)
		}
		cfg = loaded
	}

	logger := commands.NewLogger(cfg, cli.Verbose, os.Stderr)
	slog.SetDefault(logger)
	adapter = errors.NewCLIErrorAdapter(cli.Verbose, logger)

	var (
		recorder metrics.Recorder = metrics.NoopRecorder{}
		prom     *metrics.PrometheusRecorder
	)
	if cfg.Metrics.Enabled {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := parser.Run(&commands.Global{
		Ctx:      ctx,
		Logger:   logger,
		Config:   cfg,
		Recorder: recorder,
		Out:      os.Stdout,
	}, cli)
	cancel()

	if prom != nil {
		if werr := prom.WriteTextfile(cfg.Metrics.TextfilePath); werr != nil {
			logger.Warn("Failed to write metrics textfile", logfields.Path(cfg.Metrics.TextfilePath), logfields.Error(werr))
		}
	}
	adapter.HandleError(err)
}
