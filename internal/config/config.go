// Package config holds the runtime configuration shared by all commands,
// populated from flags and environment variables through viper.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the flattened flag/env configuration for a single run.
type Config struct {
	// Key material: exactly one of these three may be set. Key is a
	// hex-encoded 32-byte key; KeyFile points to a file holding the same;
	// Passphrase is hashed with SHA-256 into a key.
	Key        string `mapstructure:"key" validate:"omitempty,hexadecimal,len=64,exclusive=KeyFile"`
	KeyFile    string `mapstructure:"key-file" validate:"exclusive=Passphrase"`
	Passphrase string `mapstructure:"passphrase" validate:"exclusive=Key"`

	// Parallel bounds worker goroutines for both files and block spans.
	Parallel int `mapstructure:"parallel" validate:"min=1"`

	// Quiet suppresses non-error output.
	Quiet bool `mapstructure:"quiet"`

	// Delete removes source files after successful processing.
	Delete bool `mapstructure:"delete"`

	// Dry previews the files that would be processed without touching them.
	Dry bool `mapstructure:"dry-run"`

	// Stats prints counts, total output size and duration after a run.
	Stats bool `mapstructure:"stats"`

	// PreserveTimestamps copies the source modification time to the output.
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// EncryptSuffix is appended to encrypted files; DecryptSuffix is
	// appended after stripping EncryptSuffix on decryption.
	EncryptSuffix string `mapstructure:"encrypt-ext"`
	DecryptSuffix string `mapstructure:"decrypt-ext"`

	// Include/Exclude patterns use find -path semantics; the *From
	// variants load additional patterns from JSONC files.
	Include     []string `mapstructure:"include"`
	Exclude     []string `mapstructure:"exclude"`
	IncludeFrom string   `mapstructure:"include-from"`
	ExcludeFrom string   `mapstructure:"exclude-from"`

	// Decrypt selects the decryption direction (set by the subcommand).
	Decrypt bool `mapstructure:"-"`

	// Files are the resolved input paths.
	Files []string `mapstructure:"-" validate:"min=1"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := registerExclusive(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
