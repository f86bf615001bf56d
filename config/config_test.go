package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "tezos-client", cfg.TezosClient)
	require.Equal(t, "./account.tzc.json", cfg.ExportFile)
	require.Equal(t, "10", cfg.OriginateBurnCap)
	require.False(t, cfg.Verbose)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	file := filepath.Join(dir, "tzc.yaml")
	require.NoError(t, os.WriteFile(file, []byte("tezos_client: /opt/octez-client\ncall_burn_cap: \"1\"\n"), 0644))

	t.Setenv("TZC_CALL_BURN_CAP", "2")

	cfg, err := Load(file)
	require.NoError(t, err)
	require.Equal(t, "/opt/octez-client", cfg.TezosClient)
	require.Equal(t, "2", cfg.CallBurnCap)
	require.Equal(t, "0.5", cfg.TransferBurnCap)
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	file := filepath.Join(dir, "tzc.yaml")
	require.NoError(t, os.WriteFile(file, []byte("tezos_client: [unterminated"), 0644))

	_, err := Load(file)
	require.Error(t, err)
}

func TestPaths(t *testing.T) {
	cfg := Default()
	p := cfg.Paths("/home/bob/.tezos-client")

	require.Equal(t, "/home/bob/.tezos-client/contracts", p.Contracts)
	require.Equal(t, "/home/bob/.tezos-client/public_key_hashs", p.PublicKeyHashs)
	require.Equal(t, "/home/bob/.tezos-client/public_keys", p.PublicKeys)
	require.Equal(t, "/home/bob/.tezos-client/secret_keys", p.SecretKeys)
	require.Equal(t, "./account.tzc.json", p.ExportBundle)
	require.Equal(t, "./nft.tzc.json", p.NFTBundle)
}
