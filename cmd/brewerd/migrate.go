package main

import (
	"github.com/spf13/cobra"

	"brewer-backend/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		gormDB, err := db.Open(&cfg.Database, logger)
		if err != nil {
			return err
		}
		return db.Migrate(gormDB, logger)
	},
}
