package commands

import (
	"github.com/spf13/cobra"

	"github.com/ahmedkhursheed2006/goaes/internal/config"
	"github.com/ahmedkhursheed2006/goaes/internal/logic"
)

// NewDecryptCommand creates the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] [paths...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt hex ciphertext files",
		Long: `Decrypt files produced by the encrypt command. By default only files
carrying the encrypted suffix are picked up; the suffix is stripped from
the output name.`,
		Example: `  goaes decrypt --passphrase secret notes.txt.aes
  goaes decrypt --key 603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4 .`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
