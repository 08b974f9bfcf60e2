package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/weiawesome/wes-io-live/shared/internal/config"
	pkglog "github.com/weiawesome/wes-io-live/shared/pkg/log"
)

type configKey struct{}

// loadedConfig returns the configuration read by the app's Before hook.
func loadedConfig(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "toolbox",
		Usage:                  "Short IDs, string helpers and database connectivity checks",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Directory containing toolbox.yaml",
				Value:   "./config",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error); overrides log.level",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Human readable logs; overrides log.pretty",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Flags win over the file only when given explicitly.
			logCfg := cfg.Log
			if c.IsSet("log-level") {
				logCfg.Level = c.String("log-level")
			}
			if c.IsSet("pretty") {
				logCfg.Pretty = c.Bool("pretty")
			}
			if logCfg.ServiceName == "" {
				logCfg.ServiceName = "toolbox"
			}
			logCfg.Output = c.App.ErrWriter

			pkglog.Init(logCfg)
			ctx := pkglog.WithLogger(c.Context, pkglog.New(logCfg))
			c.Context = context.WithValue(ctx, configKey{}, cfg)
			return nil
		},
		Commands: []*cli.Command{
			idCommand(),
			textCommand(),
			dbCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("toolbox failed")
	}
}
