package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/weiawesome/wes-io-live/shared/pkg/strutil"
)

func textCommand() *cli.Command {
	return &cli.Command{
		Name:  "text",
		Usage: "String helpers",
		Subcommands: []*cli.Command{
			{
				Name:      "camel",
				Usage:     "Convert snake_case or kebab-case to camelCase",
				ArgsUsage: "<text>",
				Action:    transformAction(strutil.CamelCase),
			},
			{
				Name:      "snake",
				Usage:     "Convert CamelCase to snake_case",
				ArgsUsage: "<text>",
				Action:    transformAction(strutil.SnakeCase),
			},
			{
				Name:      "timestamp",
				Usage:     "Print the first YYYY-MM-DD HH:MM:SS.mmm timestamp in the text",
				ArgsUsage: "<text>",
				Action: func(c *cli.Context) error {
					ts, err := strutil.ExtractTimestamp(strings.Join(c.Args().Slice(), " "))
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, ts)
					return err
				},
			},
		},
	}
}

func transformAction(fn func(string) string) cli.ActionFunc {
	return func(c *cli.Context) error {
		for _, arg := range c.Args().Slice() {
			if _, err := fmt.Fprintln(c.App.Writer, fn(arg)); err != nil {
				return err
			}
		}
		return nil
	}
}
