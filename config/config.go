package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for tzc
type Config struct {
	// External binaries
	TezosClient   string `envconfig:"TEZOS_CLIENT" yaml:"tezos_client"`
	SmartPyScript string `envconfig:"SMARTPY_SCRIPT" yaml:"smartpy_script"`

	// Install scripts shipped alongside the tool
	SmartPyInstallScript string `envconfig:"SMARTPY_INSTALL_SCRIPT" yaml:"smartpy_install_script"`
	TezosInstallScript   string `envconfig:"TEZOS_INSTALL_SCRIPT" yaml:"tezos_install_script"`

	// tezos-client base directory; queried from `config show` when empty
	BaseDir string `envconfig:"BASE_DIR" yaml:"base_dir"`

	// Side-car bundles, relative to the working directory
	ExportFile string `envconfig:"EXPORT_FILE" yaml:"export_file"`
	NFTFile    string `envconfig:"NFT_FILE" yaml:"nft_file"`
	CompileDir string `envconfig:"COMPILE_DIR" yaml:"compile_dir"`

	// Burn caps passed to the client
	TransferBurnCap  string `envconfig:"TRANSFER_BURN_CAP" yaml:"transfer_burn_cap"`
	OriginateBurnCap string `envconfig:"ORIGINATE_BURN_CAP" yaml:"originate_burn_cap"`
	CallBurnCap      string `envconfig:"CALL_BURN_CAP" yaml:"call_burn_cap"`

	// FA2 origination
	FA2MetadataURI string `envconfig:"FA2_METADATA_URI" yaml:"fa2_metadata_uri"`

	// Logging
	Verbose bool `envconfig:"VERBOSE" yaml:"verbose"`

	// Antithesis assertions
	Antithesis bool `envconfig:"ANTITHESIS" yaml:"antithesis"`
}

// Paths holds every file location a component touches
type Paths struct {
	BaseDir        string
	Contracts      string
	PublicKeyHashs string
	PublicKeys     string
	SecretKeys     string
	ExportBundle   string
	NFTBundle      string
}

// Default returns a config populated only with defaults
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		TezosClient:          "tezos-client",
		SmartPyScript:        filepath.Join(home, "smartpy-cli", "SmartPy.sh"),
		SmartPyInstallScript: filepath.Join(home, ".config", "clk", "extensions", "tezos_client", "install-smartpy.sh"),
		TezosInstallScript:   filepath.Join(home, ".config", "clk", "extensions", "tezos_client", "install-tezos-client.sh"),
		ExportFile:           "./account.tzc.json",
		NFTFile:              "./nft.tzc.json",
		CompileDir:           "./compile",
		TransferBurnCap:      "0.5",
		OriginateBurnCap:     "10",
		CallBurnCap:          "0.5",
		FA2MetadataURI:       "ipfs://QmaJEkhFnFQCwZA3uYWZq3LYvHw4s8RQtEc8sjpWQyJAKp",
	}
}

// Load creates a new config from defaults, an optional YAML file and TZC_* environment variables.
// A .env file in the working directory is read first if present.
func Load(file string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if file != "" {
		if err := cfg.mergeFile(file); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("tzc", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", file, err)
	}
	return nil
}

// Paths resolves every registry and bundle location against baseDir.
func (c *Config) Paths(baseDir string) Paths {
	return Paths{
		BaseDir:        baseDir,
		Contracts:      filepath.Join(baseDir, "contracts"),
		PublicKeyHashs: filepath.Join(baseDir, "public_key_hashs"),
		PublicKeys:     filepath.Join(baseDir, "public_keys"),
		SecretKeys:     filepath.Join(baseDir, "secret_keys"),
		ExportBundle:   c.ExportFile,
		NFTBundle:      c.NFTFile,
	}
}
