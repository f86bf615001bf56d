package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/parthshah1/tzc/client"
	"github.com/parthshah1/tzc/michelson"
	"github.com/parthshah1/tzc/prompt"
	"github.com/parthshah1/tzc/registry"
	"github.com/parthshah1/tzc/resolver"
)

var InteractiveCmd = &cli.Command{
	Name:  "interactive",
	Usage: "Interactive commands",
	Subcommands: []*cli.Command{
		{
			Name:   "transfer-xtz",
			Usage:  "Interactive XTZ transfer",
			Action: interactiveTransferXTZ,
		},
		{
			Name:   "fa2-deploy",
			Usage:  "Interactive FA2 contract deployment",
			Action: interactiveFA2Deploy,
		},
		{
			Name:   "mint-nft",
			Usage:  "Interactive NFT mint",
			Action: interactiveMintNFT,
		},
		{
			Name:   "transfer-nft",
			Usage:  "Interactive NFT transfer",
			Action: interactiveTransferNFT,
		},
	},
}

func interactiveTransferXTZ(c *cli.Context) error {
	accounts, err := knownAccounts(c.Context)
	if err != nil {
		return err
	}
	names := registry.Names(accounts)

	source, err := prompter.Ask("From account name: ", names)
	if err != nil {
		return err
	}
	amount, err := prompter.Ask("XTZ Amount: ", nil)
	if err != nil {
		return err
	}
	dest, err := prompter.Ask("And transfer to (account name or address): ", names)
	if err != nil {
		return err
	}

	return stream(c, tezos.Transfer(amount, source, dest, cfg.TransferBurnCap))
}

func interactiveFA2Deploy(c *cli.Context) error {
	accounts, err := knownAccounts(c.Context)
	if err != nil {
		return err
	}

	contractPath, err := prompter.AskPath("Smart-contract path: ")
	if err != nil {
		return err
	}
	alias, err := prompter.Ask("Smart-contract alias: ", nil)
	if err != nil {
		return err
	}
	source, err := prompter.Ask("Source account: ", registry.Names(accounts))
	if err != nil {
		return err
	}
	qty, err := prompter.Ask("Transfer qty: ", nil)
	if err != nil {
		return err
	}

	admin, err := resolver.ResolveAddress(source, accounts)
	if err != nil {
		return err
	}

	outDir := filepath.Join(cfg.CompileDir, filepath.Base(contractPath))
	code, err := smartpy.Compile(c.Context, contractPath, outDir)
	if err != nil {
		return err
	}
	logger.Info("compiled contract", zap.String("code", code))

	storage := michelson.Render(michelson.FA2Storage(admin, cfg.FA2MetadataURI))
	return stream(c, tezos.Originate(client.OriginateRequest{
		Alias:    alias,
		Amount:   qty,
		From:     admin,
		CodePath: code,
		Init:     storage,
		BurnCap:  cfg.OriginateBurnCap,
	}))
}

func interactiveMintNFT(c *cli.Context) error {
	store, err := openStore(c.Context)
	if err != nil {
		return err
	}
	contracts, err := store.Names(registry.Contracts)
	if err != nil {
		return err
	}
	accounts, err := knownAccounts(c.Context)
	if err != nil {
		return err
	}
	nfts, err := registry.LoadNFTBundle(cfg.NFTFile)
	if err != nil {
		return err
	}
	names := registry.Names(accounts)

	contract, err := prompter.Ask("Contract: ", contracts)
	if err != nil {
		return err
	}
	admin, err := prompter.Ask("Contract admin: ", names)
	if err != nil {
		return err
	}
	owner, err := prompter.Ask("NFT owner: ", names)
	if err != nil {
		return err
	}
	nft, err := prompter.Ask("NFT name: ", registry.BundleNames(nfts))
	if err != nil {
		return err
	}
	tokenID, err := prompt.AskInt(prompter, "Token Id: ")
	if err != nil {
		return err
	}

	arg, err := mintParams(c.Context, owner, nft, tokenID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, arg)

	return stream(c, tezos.Call(client.CallRequest{
		Contract:   contract,
		From:       admin,
		Entrypoint: "mint",
		Arg:        arg,
		BurnCap:    cfg.CallBurnCap,
	}))
}

// askTransfers collects transfers until the user declines another one.
// From and to accept an alias or a literal address.
func askTransfers(p prompt.Prompter, accounts []registry.AliasEntry) ([]michelson.Transfer, error) {
	names := registry.Names(accounts)

	var transfers []michelson.Transfer
	for {
		from, err := p.Ask("From (account or literal): ", names)
		if err != nil {
			return nil, err
		}
		if from, err = resolver.ResolveAddressOrLiteral(from, accounts); err != nil {
			return nil, err
		}
		to, err := p.Ask("To (account or literal): ", names)
		if err != nil {
			return nil, err
		}
		if to, err = resolver.ResolveAddressOrLiteral(to, accounts); err != nil {
			return nil, err
		}
		tokenID, err := prompt.AskInt(p, "Token ID: ")
		if err != nil {
			return nil, err
		}
		qty, err := prompt.AskInt(p, "Quantity: ")
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, michelson.Transfer{From: from, To: to, TokenID: tokenID, Amount: qty})

		more, err := prompt.Confirm(p, "Transfer another (y/n) ? ")
		if err != nil {
			return nil, err
		}
		if !more {
			return transfers, nil
		}
	}
}

func interactiveTransferNFT(c *cli.Context) error {
	store, err := openStore(c.Context)
	if err != nil {
		return err
	}
	contracts, err := store.Names(registry.Contracts)
	if err != nil {
		return err
	}
	accounts, err := knownAccounts(c.Context)
	if err != nil {
		return err
	}

	contract, err := prompter.Ask("Contract: ", contracts)
	if err != nil {
		return err
	}
	admin, err := prompter.Ask("Contract admin: ", registry.Names(accounts))
	if err != nil {
		return err
	}

	transfers, err := askTransfers(prompter, accounts)
	if err != nil {
		return err
	}

	arg := michelson.Render(michelson.TransferArg(transfers))
	logger.Info("transfer batch", zap.String("arg", arg), zap.Int("count", len(transfers)))

	return stream(c, tezos.Call(client.CallRequest{
		Contract:   contract,
		From:       admin,
		Entrypoint: "transfer",
		Arg:        arg,
		BurnCap:    cfg.CallBurnCap,
	}))
}
