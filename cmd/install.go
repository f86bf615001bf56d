package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/parthshah1/tzc/client"
)

var InstallCmd = &cli.Command{
	Name:   "install",
	Usage:  "Install required dependencies such as tezos-client and smartpy-cli",
	Action: installDependencies,
}

func installDependencies(c *cli.Context) error {
	if v := smartpy.Version(c.Context); v != "" {
		logger.Info("smartpy-cli detected, skipping", zap.String("version", v))
	} else if err := runInstallScript(c, cfg.SmartPyInstallScript); err != nil {
		return fmt.Errorf("failed to install smartpy-cli: %w", err)
	}

	if v := tezos.Version(c.Context); v != "" {
		logger.Info("tezos-client detected, skipping", zap.String("version", v))
	} else if err := runInstallScript(c, cfg.TezosInstallScript); err != nil {
		return fmt.Errorf("failed to install tezos-client: %w", err)
	}
	return nil
}

func runInstallScript(c *cli.Context, script string) error {
	info, err := os.Stat(script)
	if err != nil {
		return fmt.Errorf("install script: %w", err)
	}
	if err := os.Chmod(script, info.Mode()|0100); err != nil {
		return fmt.Errorf("failed to make %s executable: %w", script, err)
	}

	res, err := tezos.Runner.Run(c.Context, client.Command{Name: script})
	fmt.Fprint(c.App.Writer, res.Stdout)
	return err
}
