package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/budgetd-dev/budgetd/internal/accounts"
	"github.com/budgetd-dev/budgetd/internal/config"
	"github.com/budgetd-dev/budgetd/internal/store"
)

func newInitCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config and create the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "budgetd.yaml", "config file to write")

	return cmd
}

func runInit(configPath string) error {
	if _, err := os.Stat(configPath); !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s already exists", configPath)
	}

	cfg := config.Default()
	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SeedAccounts(context.Background(), accounts.DefaultAccounts()); err != nil {
		return err
	}

	fmt.Printf("Initialized budgetd config at %s, database at %s\n", configPath, cfg.Database.Path)
	return nil
}
