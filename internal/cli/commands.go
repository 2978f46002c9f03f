// internal/cli/commands.go
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javajoker/unihub-backend/internal/bootstrap"
	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/database"
	"github.com/javajoker/unihub-backend/internal/logger"
	"github.com/javajoker/unihub-backend/internal/services"
)

// NewRootCmd builds the unihubctl command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "unihubctl",
		Short:         "Operator tasks for the UniHub backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		MigrateCmd(),
		SeedCmd(),
		CreateAdminCmd(),
	)
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg)
	return cfg, nil
}

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the admin database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := bootstrap.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
}

func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample catalog into the catalog store",
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			catalogStore, closeStore, err := bootstrap.OpenStore(ctx, cfg, nil)
			if err != nil {
				return err
			}
			defer closeStore()

			result, err := services.NewSeedService(catalogStore).Seed(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories, %d agents and %d properties.\n",
				result.Categories, result.Agents, result.Properties)
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 30*time.Second, "give up after this long")
	return cmd
}

func CreateAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := bootstrap.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			admin, err := services.NewAuthService(db, cfg, nil).CreateAdmin(cmd.Context(), email, password, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s).\n", admin.Email, admin.ID)
			return nil
		},
	}
	cmd.Flags().String("email", "", "admin email address")
	cmd.Flags().String("password", "", "admin password, at least 8 characters")
	cmd.Flags().String("name", "Administrator", "display name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}
