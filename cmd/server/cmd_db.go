package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/hotelhub/booking-system/internal/infrastructure/db/postgres"
	"github.com/hotelhub/booking-system/internal/pkg/config"
	"github.com/hotelhub/booking-system/pkg/logger"
)

// bootDB loads config and opens the database connection.
func bootDB() (*gorm.DB, error) {
	cfg := config.Load()
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})
	return postgres.Connect(cfg.Postgres.DSN)
}

// hotelhub migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		return postgres.Migrate(db)
	},
}

// hotelhub seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default admin account and demo hotel data",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		fmt.Println("Seeding…")
		return postgres.Seed(db)
	},
}
