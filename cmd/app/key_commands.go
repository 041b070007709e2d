package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/keyshred/cmd/app/commands"
	keysService "github.com/allisson/keyshred/internal/keys/service"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "wrap-key",
			Usage: "Wrap key material with a KMS for provisioning with wrapped=true",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Key identifier to put in the provisioning request",
				},
				&cli.StringFlag{
					Name:    "material",
					Aliases: []string{"m"},
					Usage:   "Base64 key material (omit to generate random material)",
				},
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"s"},
					Value:   32,
					Usage:   "Size in bytes of generated material",
				},
				&cli.StringFlag{
					Name:    "kms-key-uri",
					Sources: cli.EnvVars("KMS_KEY_URI"),
					Usage:   "KMS key URI (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				wrapper, err := keysService.NewKMSWrapper(ctx, cmd.String("kms-key-uri"))
				if err != nil {
					return err
				}
				defer func() { _ = wrapper.Close() }()

				return commands.RunWrapKey(
					ctx,
					wrapper,
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("material"),
					int(cmd.Int("size")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "create-signing-key",
			Usage: "Generate a new AUDIT_SIGNING_KEY for shred records",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateSigningKey(commands.DefaultIO().Writer)
			},
		},
	}
}
