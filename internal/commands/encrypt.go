package commands

import (
	"github.com/spf13/cobra"

	"github.com/ahmedkhursheed2006/goaes/internal/config"
	"github.com/ahmedkhursheed2006/goaes/internal/logic"
)

// NewEncryptCommand creates the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] [paths...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt files to hex ciphertext",
		Long: `Encrypt files with AES-256, writing each result as hex text next to the
input with the encrypted suffix appended. Files already carrying the
suffix are skipped unless explicitly included.`,
		Example: `  goaes encrypt --passphrase secret notes.txt
  goaes encrypt --key-file key.hex --include '*.md' docs/`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
