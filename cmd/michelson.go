package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/parthshah1/tzc/michelson"
	"github.com/parthshah1/tzc/registry"
	"github.com/parthshah1/tzc/resolver"
)

var MichelsonCmd = &cli.Command{
	Name:  "michelson",
	Usage: "Play with michelson",
	Subcommands: []*cli.Command{
		{
			Name:      "mint-nft",
			Usage:     "Generate the mint michelson parameter",
			ArgsUsage: "<owner-name> <nft-tzc-name> <token-id>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 3 {
					return fmt.Errorf("expected 3 arguments: <owner-name> <nft-tzc-name> <token-id>")
				}
				tokenID, err := strconv.ParseInt(c.Args().Get(2), 10, 64)
				if err != nil {
					return fmt.Errorf("invalid token id: %w", err)
				}

				params, err := mintParams(c.Context, c.Args().Get(0), c.Args().Get(1), tokenID)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, params)
				return nil
			},
		},
		{
			Name:      "fa2-storage",
			Usage:     "Generate the initial FA2 storage",
			ArgsUsage: "<admin-name-or-address>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "metadata",
					Usage: "Contract metadata URI (default: TZC_FA2_METADATA_URI)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("expected 1 argument: <admin-name-or-address>")
				}
				accounts, err := knownAccounts(c.Context)
				if err != nil {
					return err
				}
				admin, err := resolver.ResolveAddressOrLiteral(c.Args().First(), accounts)
				if err != nil {
					return err
				}

				uri := cfg.FA2MetadataURI
				if c.IsSet("metadata") {
					uri = c.String("metadata")
				}
				fmt.Fprintln(c.App.Writer, michelson.Render(michelson.FA2Storage(admin, uri)))
				return nil
			},
		},
	},
}

// mintParams renders the mint argument giving the NFT template nftName to owner.
func mintParams(ctx context.Context, owner, nftName string, tokenID int64) (string, error) {
	nfts, err := registry.LoadNFTBundle(cfg.NFTFile)
	if err != nil {
		return "", err
	}
	nft, err := registry.LookupNFT(nfts, nftName)
	if err != nil {
		return "", err
	}

	accounts, err := knownAccounts(ctx)
	if err != nil {
		return "", err
	}
	ownerAddr, err := resolver.ResolveAddress(owner, accounts)
	if err != nil {
		return "", err
	}

	return michelson.Render(michelson.MintParams(ownerAddr, nft, tokenID)), nil
}
