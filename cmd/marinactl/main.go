// Command marinactl is the operator CLI: schema migrations, shift expansion and seeding.
package main

import (
	"fmt"
	"os"

	"marina-guard-backend/internal/config"
	"marina-guard-backend/internal/database"
	"marina-guard-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// version is stamped at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "marinactl",
		Short:         "Operator tooling for the marina guard backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				logrus.Debug("No .env file found, using system environment variables")
			}
			logger.Setup(logLevel, true)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(expandCmd())
	cmd.AddCommand(seedCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "marinactl version %s\n", version)
		},
	})

	return cmd
}

// openDatabase connects without touching the schema; migrate decides that itself
func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrations: true, MaxOpenConns: 4, MaxIdleConns: 2})
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
