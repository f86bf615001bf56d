package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

var NetworkCmd = &cli.Command{
	Name:  "network",
	Usage: "Configure tezos-client",
	Subcommands: []*cli.Command{
		{
			Name:      "set",
			Usage:     "Set the RPC tezos node address",
			ArgsUsage: "<rpc-link>",
			Action:    setNetwork,
		},
		{
			Name:   "show",
			Usage:  "Show the configured RPC endpoint",
			Action: showNetwork,
		},
	},
}

func setNetwork(c *cli.Context) error {
	link := c.Args().First()
	if link == "" {
		link = os.Getenv("RPC_LINK")
	}
	if link == "" {
		return fmt.Errorf("expected 1 argument: <rpc-link> (or RPC_LINK)")
	}

	fmt.Fprintf(c.App.Writer, "Configuring tezos-client network with %s\n", link)
	if err := stream(c, tezos.ConfigUpdate(link)); err != nil {
		return fmt.Errorf("failed to update tezos-client config: %w", err)
	}

	fmt.Fprintln(c.App.Writer, "Result:")
	return tezos.Runner.Stream(c.Context, tezos.ConfigShowCmd(), c.App.Writer, io.Discard)
}

func showNetwork(c *cli.Context) error {
	conf, err := tezos.ConfigShow(c.Context)
	if err != nil {
		return err
	}
	if conf.Endpoint != "" {
		fmt.Fprintln(c.App.Writer, conf.Endpoint)
	}
	return nil
}
