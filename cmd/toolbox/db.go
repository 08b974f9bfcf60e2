package main

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/weiawesome/wes-io-live/shared/pkg/cassandra"
	"github.com/weiawesome/wes-io-live/shared/pkg/database"
	pkglog "github.com/weiawesome/wes-io-live/shared/pkg/log"
)

func dbCommand() *cli.Command {
	return &cli.Command{
		Name:  "db",
		Usage: "Database connectivity",
		Subcommands: []*cli.Command{
			{
				Name:  "ping",
				Usage: "Open both stores with the configured credentials and run a trivial query",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "skip-cassandra"},
					&cli.BoolFlag{Name: "skip-database"},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-query timeout",
						Value: 10 * time.Second,
					},
				},
				Action: pingAction,
			},
		},
	}
}

func pingAction(c *cli.Context) error {
	cfg := loadedConfig(c.Context)
	if cfg == nil {
		return errors.New("configuration not loaded")
	}

	ctx := pkglog.WithCommand(c.Context, "db ping")
	var errs []error

	if !c.Bool("skip-cassandra") {
		if err := pingCassandra(ctx, cfg.Cassandra, c.Duration("timeout")); err != nil {
			errs = append(errs, err)
		}
	}
	if !c.Bool("skip-database") {
		if err := pingDatabase(ctx, &cfg.Database, c.Duration("timeout")); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func pingCassandra(ctx context.Context, cfg cassandra.Config, timeout time.Duration) error {
	logger := pkglog.Ctx(ctx).With().
		Strs(pkglog.FieldHosts, cfg.Hosts).
		Str(pkglog.FieldLocalDC, cfg.LocalDC).
		Str(pkglog.FieldKeyspace, cfg.Keyspace).
		Logger()

	start := time.Now()
	client, err := cassandra.NewClient(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("cassandra connection failed")
		return err
	}
	defer client.Close()

	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rows, err := client.Query(qctx, "SELECT release_version FROM system.local")
	if err != nil {
		logger.Error().Err(err).Msg("cassandra query failed")
		return err
	}

	evt := logger.Info().Float64(pkglog.FieldLatency, float64(time.Since(start).Milliseconds()))
	if len(rows) > 0 {
		evt = evt.Interface("release_version", rows[0]["release_version"])
	}
	evt.Msg("cassandra reachable")
	return nil
}

func pingDatabase(ctx context.Context, cfg *database.Config, timeout time.Duration) error {
	logger := pkglog.Ctx(ctx).With().
		Str(pkglog.FieldDriver, cfg.Driver).
		Str(pkglog.FieldDatabase, cfg.DBName).
		Logger()

	start := time.Now()
	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("database connection failed")
		return err
	}
	defer database.Close(db)

	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := database.Ping(qctx, db); err != nil {
		logger.Error().Err(err).Msg("database ping failed")
		return err
	}

	logger.Info().Float64(pkglog.FieldLatency, float64(time.Since(start).Milliseconds())).Msg("database reachable")
	return nil
}
