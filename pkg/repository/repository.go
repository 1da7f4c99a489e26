package repository

import (
	"context"
	"time"

	"github.com/Dorian509/BackEnd/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type ProfileRepo interface {
	CreateProfile(ctx context.Context, p *models.Profile) (int64, error)
	GetProfile(ctx context.Context, id int64) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, p *models.Profile) error
}

type IntakeRepo interface {
	CreateIntake(ctx context.Context, e *models.IntakeEvent) (int64, error)
	// SumVolumeInRange totals volume_ml for the user over [start, end).
	SumVolumeInRange(ctx context.Context, userID int64, start, end time.Time) (int, error)
	// FindInRange lists events for the user over [start, end), ascending by timestamp.
	FindInRange(ctx context.Context, userID int64, start, end time.Time) ([]models.IntakeEvent, error)
	// FindRecent lists up to limit events for the user, most recent first.
	FindRecent(ctx context.Context, userID int64, limit int) ([]models.IntakeEvent, error)
	IntakeExists(ctx context.Context, id int64) (bool, error)
	DeleteIntake(ctx context.Context, id int64) error
}
