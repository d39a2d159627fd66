package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/buildinfo"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/view"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "bankist",
		Short:   "Single-user banking ledger simulation",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to bankist.yaml (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newShellCommand(opts))
	rootCmd.AddCommand(newAccountsCommand(opts))
	rootCmd.AddCommand(newAuditCommand(opts))

	return rootCmd
}

// loadConfig returns the configuration named by --config, or the defaults.
// Relative seed and audit paths are resolved against the config file's
// directory.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(o.configPath)
	cfg.Seed.Path = resolvePath(base, cfg.Seed.Path)
	cfg.Audit.Path = resolvePath(base, cfg.Audit.Path)
	return cfg, nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// newLogger builds the CLI logger. The flag level wins over the config level.
func (o *globalOptions) newLogger(w io.Writer, cfg *config.Config) (*logrus.Logger, error) {
	levelName := cfg.Log.Level
	if o.logLevel != "" {
		levelName = o.logLevel
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	return logger, nil
}

func newRenderer(cfg *config.Config) *view.Renderer {
	return view.New(view.Options{
		Currency:     cfg.Display.Currency,
		ExchangeRate: cfg.Display.ExchangeRate,
		ShowRank:     cfg.Display.Index == config.IndexRank,
	})
}
