package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/weiawesome/wes-io-live/shared/internal/generator"
	pkglog "github.com/weiawesome/wes-io-live/shared/pkg/log"
	"github.com/weiawesome/wes-io-live/shared/pkg/shortuuid"
)

func idCommand() *cli.Command {
	return &cli.Command{
		Name:  "id",
		Usage: "Encode, decode and generate short UUIDs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "Ordered symbol set; a symbol's position is its digit value",
				Value: shortuuid.DefaultAlphabet,
			},
		},
		Subcommands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode a UUID",
				ArgsUsage: "<uuid>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "padding",
						Usage: "Pad to this many symbols (default: minimum length, 0 disables)",
						Value: -1,
					},
				},
				Action: encodeAction,
			},
			{
				Name:      "decode",
				Usage:     "Decode a short ID back to a UUID",
				ArgsUsage: "<short-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "legacy",
						Usage: "Input is least significant symbol first",
					},
				},
				Action: decodeAction,
			},
			{
				Name:  "new",
				Usage: "Generate random short IDs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   1,
					},
				},
				Action: newAction,
			},
			{
				Name:      "validate",
				Usage:     "Check a short ID and print the UUID fields it carries",
				ArgsUsage: "<short-id>",
				Action:    validateAction,
			},
		},
	}
}

func codecFrom(c *cli.Context) (*shortuuid.Codec, error) {
	alphabet := c.String("alphabet")
	if alphabet == shortuuid.DefaultAlphabet {
		return shortuuid.Default, nil
	}
	return shortuuid.NewWithAlphabet(alphabet)
}

func oneArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("%s: expected exactly one argument, got %d", c.Command.FullName(), c.NArg())
	}
	return c.Args().First(), nil
}

func encodeAction(c *cli.Context) error {
	arg, err := oneArg(c)
	if err != nil {
		return err
	}
	codec, err := codecFrom(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(arg)
	if err != nil {
		return fmt.Errorf("invalid UUID %q: %w", arg, err)
	}

	padding := c.Int("padding")
	if padding < 0 {
		padding = codec.MinimumLength()
	}
	short := codec.EncodePadded(id, padding)

	l := pkglog.Ctx(c.Context)
	l.Debug().Str(pkglog.FieldUUID, id.String()).Str(pkglog.FieldShortID, short).Msg("encoded")

	_, err = fmt.Fprintln(c.App.Writer, short)
	return err
}

func decodeAction(c *cli.Context) error {
	arg, err := oneArg(c)
	if err != nil {
		return err
	}
	codec, err := codecFrom(c)
	if err != nil {
		return err
	}

	decode := codec.Decode
	if c.Bool("legacy") {
		decode = codec.DecodeLegacy
	}
	id, err := decode(arg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, id.String())
	return err
}

func newAction(c *cli.Context) error {
	codec, err := codecFrom(c)
	if err != nil {
		return err
	}
	ids, err := generator.NewShortUUIDGenerator(codec).GenerateBatch(c.Int("count"))
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(c.App.Writer, id); err != nil {
			return err
		}
	}
	return nil
}

func validateAction(c *cli.Context) error {
	arg, err := oneArg(c)
	if err != nil {
		return err
	}
	codec, err := codecFrom(c)
	if err != nil {
		return err
	}

	res, err := generator.NewShortUUIDGenerator(codec).Parse(arg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.App.Writer, "uuid=%s version=%d variant=%s length=%d\n",
		res.UUID, res.UUIDVersion, res.UUIDVariant, res.IDLength)
	return err
}
