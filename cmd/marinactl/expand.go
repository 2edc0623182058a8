package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/repository"
	"marina-guard-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// operator stands in for a signed-in supervisor when the CLI expands a single pattern
var operator = service.Caller{Role: models.RoleSuperAdmin}

func expandCmd() *cobra.Command {
	var (
		patternID string
		horizon   int
	)

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Generate shifts from recurring patterns",
		Long: `Expands recurring shift patterns into concrete shifts for the next N days.
Shifts that already exist for a pattern are skipped, so the command is safe to run from cron.
Without --pattern every active pattern is expanded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			svc := service.NewRecurringShiftService(
				repository.NewRecurringPatternRepository(db),
				repository.NewShiftRepository(db),
				repository.NewLocationRepository(db),
				repository.NewUserRepository(db),
				repository.NewTransactor(db),
				service.NewValidator(),
				service.ExpansionPolicy{
					DefaultHorizonDays: cfg.DefaultExpansionHorizonDays,
					MaxHorizonDays:     cfg.MaxExpansionHorizonDays,
				},
				service.Options{Location: cfg.Location()},
			)

			if patternID == "" {
				created, err := svc.ExpandAllActive(ctx, horizon)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %d shift(s)\n", created)
				return nil
			}

			id, err := uuid.Parse(patternID)
			if err != nil {
				return fmt.Errorf("invalid pattern ID %q", patternID)
			}
			result, err := svc.Expand(ctx, operator, id, horizon)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d shift(s) for pattern %s over %d day(s)\n", result.Created, id, result.HorizonDays)
			return nil
		},
	}

	cmd.Flags().StringVar(&patternID, "pattern", "", "Expand only this pattern (UUID)")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "Days ahead to generate; 0 uses DEFAULT_EXPANSION_HORIZON_DAYS")

	return cmd
}
