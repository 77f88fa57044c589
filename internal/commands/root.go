package commands

import (
	"github.com/spf13/cobra"

	"github.com/moneybank/moneybank/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
// Without a subcommand it starts the interactive terminal.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "moneybank",
		Short:   "In-memory bank account simulator",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerminal(cmd, configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to moneybank.yaml (defaults and MONEYBANK_* env vars when empty)")

	rootCmd.AddCommand(newRunCommand(&configPath))
	rootCmd.AddCommand(newConfigCommand(&configPath))

	return rootCmd
}
