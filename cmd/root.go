package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/parthshah1/tzc/client"
	"github.com/parthshah1/tzc/config"
	"github.com/parthshah1/tzc/prompt"
	"github.com/parthshah1/tzc/registry"
	"github.com/parthshah1/tzc/resolver"
)

var (
	cfg      *config.Config
	logger   *zap.Logger
	tezos    *client.Tezos
	smartpy  *client.SmartPy
	prompter prompt.Prompter
)

// deps lets tests replace the process runner and the prompt.
type deps struct {
	runner   client.Runner
	prompter prompt.Prompter
}

// NewApp creates a new CLI app
func NewApp() *cli.App {
	return newApp(deps{})
}

func newApp(d deps) *cli.App {
	app := &cli.App{
		Name:  "tzc",
		Usage: "Commands to play with tezos-client",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file (env: TZC_CONFIG)",
				EnvVars: []string{"TZC_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "base-dir",
				Usage: "tezos-client base directory (default: from tezos-client config show)",
			},
			&cli.StringFlag{
				Name:  "tezos-client",
				Usage: "tezos-client binary",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Verbose output (env: TZC_VERBOSE)",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = config.Load(c.String("config"))
			if err != nil {
				return err
			}

			if c.IsSet("base-dir") {
				cfg.BaseDir = c.String("base-dir")
			}
			if c.IsSet("tezos-client") {
				cfg.TezosClient = c.String("tezos-client")
			}
			if c.IsSet("verbose") {
				cfg.Verbose = c.Bool("verbose")
			}
			config.SetAntithesisMode(cfg.Antithesis)

			logger, err = newLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			if config.IsAntithesisEnabled() {
				logger.Info("antithesis assertions enabled")
			}

			runner := d.runner
			if runner == nil {
				runner = client.NewExecRunner(logger)
			}
			tezos = client.NewTezos(cfg.TezosClient, runner)
			smartpy = client.NewSmartPy(cfg.SmartPyScript, runner)

			prompter = d.prompter
			if prompter == nil {
				prompter = &prompt.Readline{}
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			InstallCmd,
			NetworkCmd,
			AccountCmd,
			TransferCmd,
			MichelsonCmd,
			InteractiveCmd,
		},
	}
	return app
}

func Execute() {
	if err := NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zc.Build()
}

// openStore resolves the registry paths, asking tezos-client for its base
// dir unless one is configured.
func openStore(ctx context.Context) (*registry.Store, error) {
	base := cfg.BaseDir
	if base == "" {
		var err error
		base, err = tezos.BaseDir(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get tezos-client base dir: %w", err)
		}
	}
	return registry.NewStore(cfg.Paths(base)), nil
}

// knownAccounts lists every alias tezos-client knows, implicit or originated.
func knownAccounts(ctx context.Context) ([]registry.AliasEntry, error) {
	out, err := tezos.Known(ctx, "contracts")
	if err != nil {
		return nil, fmt.Errorf("failed to list known contracts: %w", err)
	}
	accounts := resolver.ParseKnownContracts(out)
	logger.Debug("known accounts", zap.Strings("names", registry.Names(accounts)))
	return accounts, nil
}

func stream(c *cli.Context, cmd client.Command) error {
	return tezos.Runner.Stream(c.Context, cmd, c.App.Writer, c.App.ErrWriter)
}
