// goaes is a file encryption utility built on a from-first-principles
// implementation of the AES-256 block cipher.
package main

import (
	"fmt"
	"os"

	"github.com/ahmedkhursheed2006/goaes/internal/commands"
	"github.com/ahmedkhursheed2006/goaes/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
