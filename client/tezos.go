package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Tezos builds and runs tezos-client invocations.
type Tezos struct {
	Bin    string
	Runner Runner
}

// NewTezos creates a tezos-client wrapper for the binary at bin.
func NewTezos(bin string, runner Runner) *Tezos {
	return &Tezos{Bin: bin, Runner: runner}
}

// ClientConfig is the subset of `config show` tzc relies on.
type ClientConfig struct {
	BaseDir  string `json:"base_dir"`
	Endpoint string `json:"endpoint"`
}

// OriginateRequest describes a contract origination.
type OriginateRequest struct {
	Alias    string
	Amount   string
	From     string
	CodePath string
	Init     string
	BurnCap  string
	Force    bool
}

// CallRequest describes an entrypoint call.
type CallRequest struct {
	Contract   string
	From       string
	Entrypoint string
	Arg        string
	BurnCap    string
}

func (t *Tezos) cmd(args ...string) Command {
	return Command{Name: t.Bin, Args: args}
}

func withForce(c Command, force bool) Command {
	if force {
		c.Args = append(c.Args, "--force")
	}
	return c
}

func (t *Tezos) VersionCmd() Command { return t.cmd("--version") }

func (t *Tezos) ConfigUpdate(endpoint string) Command {
	return t.cmd("--endpoint", endpoint, "config", "update")
}

func (t *Tezos) ConfigShowCmd() Command { return t.cmd("config", "show") }

// ListKnown lists "contracts" (every alias) or "addresses" (implicit accounts only).
func (t *Tezos) ListKnown(kind string) Command { return t.cmd("list", "known", kind) }

func (t *Tezos) Transfer(amount, from, to, burnCap string) Command {
	return t.cmd("transfer", amount, "from", from, "to", to, "--burn-cap", burnCap)
}

func (t *Tezos) Originate(req OriginateRequest) Command {
	c := t.cmd("originate", "contract", req.Alias,
		"transferring", req.Amount,
		"from", req.From,
		"running", req.CodePath,
		"--init", req.Init,
		"--burn-cap", req.BurnCap)
	return withForce(c, req.Force)
}

func (t *Tezos) Call(req CallRequest) Command {
	return t.cmd("call", req.Contract,
		"from", req.From,
		"--entrypoint", req.Entrypoint,
		"--arg", req.Arg,
		"--burn-cap", req.BurnCap)
}

func (t *Tezos) RememberContract(alias, address string, force bool) Command {
	return withForce(t.cmd("remember", "contract", alias, address), force)
}

func (t *Tezos) AddAddress(alias, pkh string, force bool) Command {
	return withForce(t.cmd("add", "address", alias, pkh), force)
}

func (t *Tezos) ImportPublicKey(alias, locator string, force bool) Command {
	return withForce(t.cmd("import", "public", "key", alias, locator), force)
}

func (t *Tezos) ImportSecretKey(alias, uri string, force bool) Command {
	return withForce(t.cmd("import", "secret", "key", alias, uri), force)
}

// ConfigShow runs `config show` and decodes its JSON output.
func (t *Tezos) ConfigShow(ctx context.Context) (ClientConfig, error) {
	res, err := t.Runner.Run(ctx, t.ConfigShowCmd())
	if err != nil {
		return ClientConfig{}, err
	}

	var cfg ClientConfig
	if err := json.Unmarshal([]byte(res.Stdout), &cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("failed to parse tezos-client config: %w", err)
	}
	return cfg, nil
}

// BaseDir returns the client's base directory.
func (t *Tezos) BaseDir(ctx context.Context) (string, error) {
	cfg, err := t.ConfigShow(ctx)
	if err != nil {
		return "", err
	}
	if cfg.BaseDir == "" {
		return "", fmt.Errorf("tezos-client config has no base_dir")
	}
	return cfg.BaseDir, nil
}

// Known runs `list known <kind>` and returns its raw output.
func (t *Tezos) Known(ctx context.Context, kind string) (string, error) {
	res, err := t.Runner.Run(ctx, t.ListKnown(kind))
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// Version returns the client version, or "" if the binary cannot be run.
func (t *Tezos) Version(ctx context.Context) string {
	res, err := t.Runner.Run(ctx, t.VersionCmd())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}
