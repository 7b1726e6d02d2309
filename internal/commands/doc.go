// Package commands provides the command-line interface for the goaes tool.
//
// It implements commands for:
//   - key generation
//   - encryption
//   - decryption
//   - round-by-round tracing
//   - include/exclude pattern checking
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahmedkhursheed2006/goaes/internal/config"
)

// preRun returns a PreRunE handler that binds flags into viper, unmarshals
// the full configuration, resolves positional args into cfg.Files, prompts
// for a passphrase when no key material was given, and validates.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := unmarshal(cmd, cfg); err != nil {
			return err
		}

		if len(args) == 0 {
			cfg.Files = []string{"."}
		} else {
			cfg.Files = args
		}

		if err := ensureKeyMaterial(cfg); err != nil {
			return err
		}

		return cfg.Validate()
	}
}

// unmarshal binds the command's own and inherited flags into viper and
// unmarshals the result into cfg. Environment variables (GOAES_*) are bound
// by the root command and take effect here too.
func unmarshal(cmd *cobra.Command, cfg *config.Config) error {
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

// ensureKeyMaterial prompts for a passphrase when no key source is set and
// stdin is a terminal. Encryption asks twice to catch typos.
func ensureKeyMaterial(cfg *config.Config) error {
	if cfg.Key != "" || cfg.KeyFile != "" || cfg.Passphrase != "" {
		return nil
	}

	passphrase, err := promptPassphrase(!cfg.Decrypt)
	if err != nil {
		return err
	}

	cfg.Passphrase = passphrase

	return nil
}
