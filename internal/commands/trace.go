package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ahmedkhursheed2006/goaes/internal/aes"
	"github.com/ahmedkhursheed2006/goaes/internal/config"
	"github.com/ahmedkhursheed2006/goaes/internal/encryption"
)

// sampleBlock is traced when no block argument is given (SP 800-38A block 1).
const sampleBlock = "6bc1bee22e409f96e93d7e117393172a"

// NewTraceCommand creates a cobra command that renders the full round
// pipeline (round keys and the state after every transformation) for a
// single 16-byte block. Purely observational; output format is not part of
// any ciphertext contract.
func NewTraceCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [flags] [hex-block]",
		Short: "Show the round-by-round cipher pipeline for one block",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := unmarshal(cmd, cfg); err != nil {
				return err
			}

			// No file arguments here; satisfy validation with a placeholder.
			cfg.Files = []string{"-"}

			if err := ensureKeyMaterial(cfg); err != nil {
				return err
			}

			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			blockHex := sampleBlock
			if len(args) == 1 {
				blockHex = args[0]
			}

			decrypt, err := cmd.Flags().GetBool("decrypt")
			if err != nil {
				return fmt.Errorf("reading decrypt flag: %w", err)
			}

			return runTrace(cfg, blockHex, decrypt)
		},
	}

	cmd.Flags().Bool("decrypt", false, "Trace the decryption pipeline instead of encryption")

	return cmd
}

func runTrace(cfg *config.Config, blockHex string, decrypt bool) error {
	proc, err := encryption.NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	block, err := encryption.DecodeCiphertext(blockHex)
	if err != nil {
		return fmt.Errorf("parsing block: %w", err)
	}

	if len(block) != aes.BlockSize {
		return fmt.Errorf("block must be exactly %d bytes, got %d", aes.BlockSize, len(block))
	}

	cipher := proc.Cipher()

	bold := color.New(color.Bold)
	step := color.New(color.FgCyan)

	bold.Println("Round keys")

	for i, rk := range cipher.RoundKeys() {
		flat := rk.Bytes()
		fmt.Printf("  %2d: %x\n", i, flat[:])
	}

	var steps []aes.TraceStep

	if decrypt {
		steps = cipher.TraceDecryptBlock(block)
	} else {
		steps = cipher.TraceEncryptBlock(block)
	}

	fmt.Println()
	bold.Println("Pipeline")

	for _, s := range steps {
		flat := s.State.Bytes()
		step.Printf("round %2d  %-13s", s.Round, s.Step)
		fmt.Printf("  %x\n", flat[:])
	}

	final := steps[len(steps)-1].State.Bytes()

	fmt.Println()

	if decrypt {
		fmt.Printf("plaintext:  %x\n", final[:])
	} else {
		fmt.Printf("ciphertext: %x\n", final[:])
	}

	return nil
}
