package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/audit"
	"github.com/bankist-dev/bankist/internal/view"
)

func newAuditCommand(opts *globalOptions) *cobra.Command {
	var auditPath string
	var user string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Print the operation audit trail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if auditPath != "" {
				cfg.Audit.Path = auditPath
			}
			if cfg.Audit.Path == "" {
				return fmt.Errorf("no audit trail configured (set audit.path or pass --file)")
			}

			entries, err := audit.Read(cfg.Audit.Path)
			if err != nil {
				return err
			}
			if user != "" {
				entries = audit.ForUser(entries, user)
			}
			return view.AuditTrail(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().StringVar(&auditPath, "file", "", "audit CSV to read (overrides audit.path)")
	cmd.Flags().StringVar(&user, "user", "", "only show rows for this username")

	return cmd
}
