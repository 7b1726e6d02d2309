package encryption

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ahmedkhursheed2006/goaes/internal/aes"
	"github.com/ahmedkhursheed2006/goaes/internal/config"
	"github.com/ahmedkhursheed2006/goaes/internal/fileutil"
)

// hexWrapWidth is the line length of written ciphertext files (64 hex
// digits, i.e. two blocks per line). The decoder ignores the line breaks.
const hexWrapWidth = 64

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// cipher is the expanded AES-256 instance shared read-only by all workers
	cipher *aes.Cipher

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration,
// resolving key material and expanding the round keys once up front.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	key, err := resolveKey(cfg)
	if err != nil {
		return nil, err
	}

	cipher, err := aes.New(key)
	if err != nil {
		return nil, fmt.Errorf("expanding key: %w", err)
	}

	return &Processor{
		cfg:     cfg,
		cipher:  cipher,
		results: make(chan Result, len(cfg.Files)),
	}, nil
}

// resolveKey picks the key source in precedence order: explicit hex key,
// key file, passphrase. The config layer guarantees they are mutually
// exclusive; here only absence remains to be caught.
func resolveKey(cfg *config.Config) ([]byte, error) {
	switch {
	case cfg.Key != "":
		return ParseKey(cfg.Key)
	case cfg.KeyFile != "":
		raw, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		return ParseKey(string(raw))
	case cfg.Passphrase != "":
		return DeriveKey(cfg.Passphrase), nil
	default:
		return nil, errors.New("no key material: provide --key, --key-file or --passphrase")
	}
}

// ProcessFiles runs the configured operation over all selected files with
// up to cfg.Parallel workers. Results stream to a single printer goroutine
// so output lines never interleave. Returns the number of files processed,
// the number that errored, and the total bytes written.
func (p *Processor) ProcessFiles() (int, int, int64, error) {
	var group errgroup.Group

	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	var processed, errored int

	var totalSize int64

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++
			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
			}

			p.deleteInput(result.Input)
		}
	}()

	for _, file := range p.cfg.Files {
		file := file

		group.Go(func() error {
			outPath := p.outputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err := group.Wait()

	close(p.results)

	<-done

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// deleteInput removes a successfully processed input file when --delete is set.
func (p *Processor) deleteInput(path string) {
	if !p.cfg.Delete {
		return
	}

	if err := os.Remove(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", path, err)

		return
	}

	if !p.cfg.Quiet {
		fmt.Printf("Deleted %q\n", path) //nolint:forbidigo
	}
}

// Encrypt runs the full encrypt path for in-memory data: pad, process
// blocks, render as wrapped hex text.
func (p *Processor) Encrypt(data []byte) []byte {
	ciphertext := EncryptBytes(p.cipher, data, p.cfg.Parallel)

	return wrapHex(EncodeCiphertext(ciphertext))
}

// Decrypt parses hex ciphertext, decrypts the blocks and strips padding.
func (p *Processor) Decrypt(data []byte) ([]byte, error) {
	ciphertext, err := DecodeCiphertext(string(data))
	if err != nil {
		return nil, err
	}

	return DecryptBytes(p.cipher, ciphertext, p.cfg.Parallel)
}

// Cipher exposes the expanded cipher for the trace command.
func (p *Processor) Cipher() *aes.Cipher {
	return p.cipher
}

// processFile handles the encryption or decryption of a single file. The
// output is written atomically, preserving the executable bit across the
// round trip.
func (p *Processor) processFile(filename, outPath string) (int64, error) {
	input, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("reading input file: %w", err)
	}

	var output []byte

	if p.cfg.Decrypt {
		output, err = p.Decrypt(input)
		if err != nil {
			return 0, fmt.Errorf("decrypting file: %w", err)
		}
	} else {
		output = p.Encrypt(input)
	}

	size, err := fileutil.WriteAtomic(filename, outPath, output, p.cfg.PreserveTimestamps)
	if err != nil {
		return 0, fmt.Errorf("writing output file: %w", err)
	}

	return size, nil
}

// outputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func (p *Processor) outputPath(filename string) string {
	ext := p.cfg.EncryptSuffix

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.EncryptSuffix)
		ext = p.cfg.DecryptSuffix
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}

// wrapHex inserts a newline every hexWrapWidth digits and terminates the
// text with one, so ciphertext files read like hexdump output.
func wrapHex(s string) []byte {
	out := make([]byte, 0, len(s)+len(s)/hexWrapWidth+1)

	for len(s) > hexWrapWidth {
		out = append(out, s[:hexWrapWidth]...)
		out = append(out, '\n')
		s = s[hexWrapWidth:]
	}

	out = append(out, s...)

	if len(s) > 0 {
		out = append(out, '\n')
	}

	return out
}
