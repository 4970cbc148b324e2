package main

import (
	"fmt"
	"os"

	"github.com/couchcryptid/impact-sim/internal/config"
	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/couchcryptid/impact-sim/internal/render"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	renderer *render.Renderer
)

func main() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Malformed static tables are fatal; nothing downstream can
		// produce meaningful output without them.
		if err := domain.ValidateTables(); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if noColor {
			cfg.NoColor = true
		}
		renderer = render.New(cfg)
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
