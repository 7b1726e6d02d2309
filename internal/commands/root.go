package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahmedkhursheed2006/goaes/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "goaes [flags] command [flags]",
		Short: "File encryption utility built on a from-scratch AES-256",
		Long: `A file encryption utility built on a from-first-principles AES-256 implementation.
Provides commands for key generation, encryption, decryption, and a
round-by-round trace of the cipher pipeline. Ciphertext is stored as hex text;
blocks are processed independently (no chaining, no authentication).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	viper.SetEnvPrefix("goaes")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.PersistentFlags().StringP("key", "k", "", "Encryption key (32 bytes, hex-encoded)")
	root.PersistentFlags().StringP("key-file", "f", "", "Path to a file with the encryption key (32 bytes, hex-encoded)")
	root.PersistentFlags().StringP("passphrase", "p", "", "Passphrase to derive the key from (SHA-256)")

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	root.PersistentFlags().Bool("dry-run", false, "Preview the files that would be processed")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics")
	root.PersistentFlags().Bool("preserve-timestamps", false, "Copy source modification times to outputs")

	root.PersistentFlags().String("encrypt-ext", ".aes", "Suffix to append to encrypted files")
	root.PersistentFlags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.PersistentFlags().StringSlice("include", nil, "Only process files matching these patterns (find -path semantics)")
	root.PersistentFlags().StringSlice("exclude", nil, "Skip files matching these patterns")
	root.PersistentFlags().String("include-from", "", "JSONC file with additional include patterns")
	root.PersistentFlags().String("exclude-from", "", "JSONC file with additional exclude patterns")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewKeygenCommand(),
		NewTraceCommand(cfg),
		NewCheckCommand(cfg),
	)

	return root
}
