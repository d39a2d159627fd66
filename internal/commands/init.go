package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/config"
)

const (
	configFile = "bankist.yaml"
	seedFile   = "accounts.csv"
)

func newInitCommand() *cobra.Command {
	var force bool
	var withAudit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default bankist.yaml and accounts.csv seed file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, force, withAudit); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized bankist in %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing bankist.yaml")
	cmd.Flags().BoolVar(&withAudit, "audit", false, "enable the audit trail at logs/audit.csv")

	return cmd
}

func runInit(dir string, force, withAudit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, configFile)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	// Write bankist.yaml.
	cfg := config.Default()
	cfg.Seed.Path = seedFile
	if withAudit {
		cfg.Audit.Path = filepath.Join("logs", "audit.csv")
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the seed accounts.
	if err := accounts.SaveSeed(filepath.Join(dir, seedFile), accounts.DefaultSeed()); err != nil {
		return fmt.Errorf("writing seed accounts: %w", err)
	}

	return nil
}
