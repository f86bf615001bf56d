package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var TransferCmd = &cli.Command{
	Name:  "transfer",
	Usage: "Transfer coin or token",
	Subcommands: []*cli.Command{
		{
			Name:      "xtz",
			Usage:     "Transfer ꜩ from an account to another account or address",
			ArgsUsage: "<amount> <source> <dest>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 3 {
					return fmt.Errorf("expected 3 arguments: <amount> <source> <dest>")
				}
				args := c.Args()
				return stream(c, tezos.Transfer(args.Get(0), args.Get(1), args.Get(2), cfg.TransferBurnCap))
			},
		},
	},
}
