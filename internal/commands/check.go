package commands

import (
	"github.com/spf13/cobra"

	"github.com/ahmedkhursheed2006/goaes/internal/config"
	"github.com/ahmedkhursheed2006/goaes/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check [flags] [paths/patterns...]",
		Short: "Validate that include/exclude patterns match files",
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Pattern checking needs no key material.
			if err := unmarshal(cmd, cfg); err != nil {
				return err
			}

			if len(args) == 0 {
				cfg.Files = []string{"."}
			} else {
				cfg.Files = args
			}

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunCheck(cfg)
		},
	}
}
