package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetd-dev/budgetd/internal/accounts"
	"github.com/budgetd-dev/budgetd/internal/config"
	"github.com/budgetd-dev/budgetd/internal/importer"
	"github.com/budgetd-dev/budgetd/internal/ingest"
	"github.com/budgetd-dev/budgetd/internal/logger"
	"github.com/budgetd-dev/budgetd/internal/server"
	"github.com/budgetd-dev/budgetd/internal/store"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the budget backend server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "budgetd.yaml", "config file")

	return cmd
}

func runServe(configPath string) error {
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

	// Own-bank accounts must exist before the first upload.
	if err := st.SeedAccounts(context.Background(), accounts.DefaultAccounts()); err != nil {
		return err
	}

	ing := ingest.New(st, importer.DefaultRegistry(), cfg)
	r := server.New(cfg, st, ing, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("listening")
	return r.Run(addr)
}
