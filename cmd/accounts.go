package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/parthshah1/tzc/account"
	"github.com/parthshah1/tzc/client"
	"github.com/parthshah1/tzc/registry"
)

var AccountCmd = &cli.Command{
	Name:  "account",
	Usage: "Play with accounts",
	Subcommands: []*cli.Command{
		{
			Name:  "show",
			Usage: "List configured accounts usable by the client",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "no-contracts",
					Usage: "Do not show contracts accounts",
				},
			},
			Action: showAccounts,
		},
		{
			Name:  "export",
			Usage: "Export account keys to the tzc account bundle",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "account",
					Usage: "The account name to export (prompted if omitted)",
				},
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Overwrite the exported account if it exists",
				},
			},
			Action: exportAccount,
		},
		{
			Name:  "import",
			Usage: "Import a tzc account bundle entry into tezos-client",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "account",
					Usage: "The account name to import (prompted if omitted)",
				},
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Overwrite the account if it exists",
				},
			},
			Action: importAccount,
		},
		{
			Name:   "snap",
			Usage:  "Make a copy of your existing accounts in your tezos-client base directory",
			Action: snapAccounts,
		},
		{
			Name:      "forget-contract",
			Usage:     "Remove a contract alias from the tezos-client contract registry",
			ArgsUsage: "<alias>",
			Action:    forgetContract,
		},
	},
}

func showAccounts(c *cli.Context) error {
	kind := "contracts"
	if c.Bool("no-contracts") {
		kind = "addresses"
	}
	out, err := tezos.Known(c.Context, kind)
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, out)
	return nil
}

func exportAccount(c *cli.Context) error {
	alias := c.String("account")
	if alias == "" {
		accounts, err := knownAccounts(c.Context)
		if err != nil {
			return err
		}
		alias, err = prompter.Ask("Account to export: ", registry.Names(accounts))
		if err != nil {
			return err
		}
	}

	store, err := openStore(c.Context)
	if err != nil {
		return err
	}

	exported, err := account.Export(store, alias, c.Bool("force"))
	if err != nil {
		return err
	}

	var fields []string
	for _, kind := range registry.Kinds {
		if exported.Field(kind) != nil {
			fields = append(fields, string(kind))
		}
	}
	fmt.Fprintf(c.App.Writer, "Exported %s %v to %s\n", alias, fields, store.Paths().ExportBundle)
	return nil
}

func importAccount(c *cli.Context) error {
	bundle, err := registry.LoadExportBundle(cfg.ExportFile)
	if err != nil {
		return err
	}

	alias := c.String("account")
	if alias == "" {
		alias, err = prompter.Ask("Account to import: ", registry.BundleNames(bundle))
		if err != nil {
			return err
		}
	}

	results, err := account.Import(c.Context, tezos, bundle, alias, c.Bool("force"))
	if results == nil && err != nil {
		return err
	}

	for _, r := range results {
		if r.Err == nil {
			fmt.Fprintf(c.App.Writer, "%s: imported\n", r.Kind)
			continue
		}
		fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", r.Kind, r.Err)
		var ce *client.ExternalCommandError
		if r.Kind == registry.Contracts && errors.As(r.Err, &ce) {
			fmt.Fprintf(c.App.ErrWriter, "    The import value %s\n", r.Command.Args[3])
		}
	}
	if err != nil {
		return fmt.Errorf("import of %s is incomplete: %w", alias, err)
	}
	return nil
}

func snapAccounts(c *cli.Context) error {
	store, err := openStore(c.Context)
	if err != nil {
		return err
	}
	dir, err := store.Snapshot(time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "accounts copied to %s\n", dir)
	return nil
}

func forgetContract(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected 1 argument: <alias>")
	}
	alias := c.Args().First()

	store, err := openStore(c.Context)
	if err != nil {
		return err
	}
	removed, err := store.RemoveEntry(registry.Contracts, alias)
	if err != nil {
		return err
	}
	if !removed {
		names, err := store.Names(registry.Contracts)
		if err != nil {
			return err
		}
		return &registry.NotFoundError{What: "contract", Name: alias, Known: names}
	}
	fmt.Fprintf(c.App.Writer, "Forgot contract %s\n", alias)
	return nil
}
