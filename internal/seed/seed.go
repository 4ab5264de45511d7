package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/studenthub/internal/app/models"
	"github.com/oguzk/studenthub/internal/app/repositories"
	"github.com/oguzk/studenthub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// DefaultAdminEmail is the email of the seeded administrator account.
const DefaultAdminEmail = "admin@studenthub.app"

// CreateDefaultData creates the default administrator account if no
// superuser exists yet. The password should be rotated after first login.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default administrator account...")

	exists, err := userRepo.SuperuserExists(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing superuser")
		return err
	}

	if exists {
		lgr.Info().Msg("Superuser already exists, skipping creation")
		return nil
	}

	hashedPassword, err := auth.HashPassword("Admin123!")
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Email:       DefaultAdminEmail,
		Password:    hashedPassword,
		FirstName:   "System",
		LastName:    "Administrator",
		IsActive:    true,
		IsSuperuser: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
	return nil
}
