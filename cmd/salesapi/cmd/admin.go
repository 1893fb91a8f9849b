package cmd

import (
	"fmt"
	"net/mail"

	"github.com/spf13/cobra"

	"github.com/salesdesk/sales-api/internal/core/ports"
	"github.com/salesdesk/sales-api/internal/core/service"
	"github.com/salesdesk/sales-api/internal/infrastructure/db/postgres"
	"github.com/salesdesk/sales-api/internal/infrastructure/security"
	"github.com/salesdesk/sales-api/pkg/logger"
)

var (
	adminEmail     string
	adminPassword  string
	adminFirstName string
	adminLastName  string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage administrator accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an administrator",
	Long: `Creates a user holding only the admin role. The assign-roles endpoint
can never grant admin, so this is the only way to bootstrap one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminEmail == "" {
			return fmt.Errorf("--email flag is required")
		}
		if adminPassword == "" {
			return fmt.Errorf("--password flag is required")
		}
		if _, err := mail.ParseAddress(adminEmail); err != nil {
			return fmt.Errorf("invalid email format: %w", err)
		}

		db, err := postgres.Open(cmd.Context(), postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer db.Close()

		users := service.NewUserService(
			postgres.NewUserRepository(db),
			service.NewRoleService(postgres.NewRoleRepository(db)),
			security.NewBcryptHasher(cfg.BcryptCost, nil),
		)

		u, err := users.CreateAdmin(cmd.Context(), ports.SignupInput{
			Email:     adminEmail,
			Password:  adminPassword,
			FirstName: adminFirstName,
			LastName:  adminLastName,
		})
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		log := logger.Get()
		log.Info().Int64("user_id", u.ID).Str("email", u.Email).Msg("admin created")
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "Email address of the administrator")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "Password of the administrator")
	adminCreateCmd.Flags().StringVar(&adminFirstName, "first-name", "", "First name")
	adminCreateCmd.Flags().StringVar(&adminLastName, "last-name", "", "Last name")

	adminCmd.AddCommand(adminCreateCmd)
}
