// Package config loads eofcheck's CLI configuration, the way go-ethereum's
// own cmd/geth loads a TOML config file via github.com/naoina/toml and lets
// command-line flags override individual fields afterwards.
package config

import (
	"os"

	"github.com/naoina/toml"
)

// Config holds everything the eofcheck CLI needs beyond its positional
// arguments.
type Config struct {
	// Hardfork names the opcode_defined table. Only "mainnet-eof1" exists;
	// the commands always hand vm.MainnetEOFInstructionSet to ValidateCode
	// and do not read this field.
	Hardfork string

	// LogLevel is one of trace/debug/info/warn/error/crit.
	LogLevel string

	// CacheDir is the pebble L2 cache directory for `batch`/`watch`. Empty
	// disables the on-disk tier and runs in-memory only.
	CacheDir string

	// CacheMemBytes sizes the fastcache L1 tier.
	CacheMemBytes int

	// BatchConcurrency bounds how many files `batch` validates at once.
	BatchConcurrency int
}

// Default returns the configuration used when no config file is supplied.
func Default() Config {
	return Config{
		Hardfork:         "mainnet-eof1",
		LogLevel:         "info",
		CacheMemBytes:    32 * 1024 * 1024,
		BatchConcurrency: 8,
	}
}

// Load reads a TOML config file at path and overlays it onto Default().
// Fields absent from the file keep their default value, the same
// overlay-not-replace behavior go-ethereum's own tomlSettings decoder
// relies on for cmd/geth's config.toml.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
