package main

import (
	"fmt"
	"os"

	"marina-guard-backend/internal/repository"
	"marina-guard-backend/internal/seed"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load locations, checklist items and users from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer fh.Close()

			file, err := seed.Parse(fh)
			if err != nil {
				return err
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			seeder := seed.NewSeeder(
				repository.NewUserRepository(db),
				repository.NewLocationRepository(db),
				repository.NewChecklistRepository(db),
			)
			res, err := seeder.Apply(cmd.Context(), file)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "locations: %d created, checklist items: %d created, users: %d created, %d updated\n",
				res.LocationsCreated, res.ItemsCreated, res.UsersCreated, res.UsersUpdated)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "seed.yaml", "Seed file path")

	return cmd
}
