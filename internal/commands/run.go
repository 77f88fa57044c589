package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneybank/moneybank/internal/config"
	"github.com/moneybank/moneybank/internal/ledger"
	"github.com/moneybank/moneybank/internal/logging"
	"github.com/moneybank/moneybank/internal/terminal"
)

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive bank terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerminal(cmd, *configPath)
		},
	}
}

func runTerminal(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	vault := ledger.New(cfg.LedgerOptions())
	term := terminal.New(vault, cmd.InOrStdin(), cmd.OutOrStdout(),
		terminal.WithBankName(cfg.Bank.Name),
		terminal.WithCurrencySymbol(cfg.Bank.CurrencySymbol),
	)

	return term.Run(logger.WithContext(cmd.Context()))
}
