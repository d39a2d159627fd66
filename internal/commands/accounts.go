package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/view"
)

func newAccountsCommand(opts *globalOptions) *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the usernames and owners of the seeded accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if seedPath != "" {
				cfg.Seed.Path = seedPath
			}

			seed, err := accounts.Seed(cfg.Seed.Path)
			if err != nil {
				return fmt.Errorf("loading seed: %w", err)
			}
			store, err := accounts.NewStore(seed)
			if err != nil {
				return fmt.Errorf("seeding store: %w", err)
			}
			return view.Accounts(cmd.OutOrStdout(), store.All())
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "accounts CSV to list (built-in accounts when empty)")

	return cmd
}
