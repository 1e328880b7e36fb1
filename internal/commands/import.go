package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/budgetd-dev/budgetd/internal/config"
	"github.com/budgetd-dev/budgetd/internal/importer"
	"github.com/budgetd-dev/budgetd/internal/ingest"
	"github.com/budgetd-dev/budgetd/internal/logger"
	"github.com/budgetd-dev/budgetd/internal/store"
)

func newImportCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Ingest a bank statement CSV without going through HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(configPath, args[0])
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "budgetd.yaml", "config file")

	return cmd
}

func runImport(configPath, file string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New()

	st, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	ing := ingest.New(st, importer.DefaultRegistry(), cfg)

	ctx := logger.WithContext(context.Background(), log)
	summary, err := ing.Run(ctx, file, filepath.Base(file))
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", file, err)
	}

	fmt.Printf("Imported %s: %d rows written, %d skipped, %d accounts created\n",
		filepath.Base(file), summary.RowsWritten, summary.RowsSkipped, summary.AccountsCreated)
	return nil
}
