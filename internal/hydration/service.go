// Package hydration holds the accounting engine: goal calculation, the
// timezone-bound daily aggregation window and the intake/profile lifecycle.
// It is transport-agnostic; the api package maps its results onto HTTP.
package hydration

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/Dorian509/BackEnd/pkg/models"
	"github.com/Dorian509/BackEnd/pkg/repository"
)

// Service orchestrates the profile and intake stores. The clock is injected
// so tests can pin the instant; nil falls back to time.Now.
type Service struct {
	profiles repository.ProfileRepo
	intakes  repository.IntakeRepo
	now      func() time.Time
	logger   *slog.Logger
}

func NewService(pr repository.ProfileRepo, ir repository.IntakeRepo, now func() time.Time, logger *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{profiles: pr, intakes: ir, now: now, logger: logger}
}

// TodayStatus reports the user's goal, consumption and remainder for the
// current day in the profile's timezone.
type TodayStatus struct {
	GoalMl             int `json:"goalMl"`
	ConsumedMl         int `json:"consumedMl"`
	RemainingMl        int `json:"remainingMl"`
	PercentageAchieved int `json:"percentageAchieved"`
}

// dayWindow returns the half-open interval [local midnight, next local
// midnight) of the instant's day in zone, as absolute instants. AddDate
// rather than a flat +24h so DST transitions land on the next midnight.
func dayWindow(at time.Time, zone string) (start, end time.Time, err error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	local := at.In(loc)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end = start.AddDate(0, 0, 1)
	return start, end, nil
}

// TodayStatus computes the read-only daily summary for userID.
func (s *Service) TodayStatus(ctx context.Context, userID int64) (*TodayStatus, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}
	if profile == nil {
		return nil, &NotFoundError{Resource: "UserProfile", ID: userID}
	}

	start, end, err := dayWindow(s.now(), profile.Timezone)
	if err != nil {
		return nil, err
	}

	goal := DailyGoalMl(profile)
	consumed, err := s.intakes.SumVolumeInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum intakes for %d: %w", userID, err)
	}

	remaining := goal - consumed
	if remaining < 0 {
		remaining = 0
	}
	percentage := 0
	if goal > 0 {
		percentage = int(math.Round(float64(consumed) * 100.0 / float64(goal)))
	}

	s.logger.Info("today status",
		slog.Int64("user_id", userID),
		slog.Int("consumed_ml", consumed),
		slog.Int("goal_ml", goal),
		slog.Int("percentage", percentage),
	)

	return &TodayStatus{
		GoalMl:             goal,
		ConsumedMl:         consumed,
		RemainingMl:        remaining,
		PercentageAchieved: percentage,
	}, nil
}

// TodayIntakes lists the user's events inside the current day window,
// ascending by timestamp.
func (s *Service) TodayIntakes(ctx context.Context, userID int64) ([]models.IntakeEvent, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}
	if profile == nil {
		return nil, &NotFoundError{Resource: "UserProfile", ID: userID}
	}

	start, end, err := dayWindow(s.now(), profile.Timezone)
	if err != nil {
		return nil, err
	}

	events, err := s.intakes.FindInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list today intakes for %d: %w", userID, err)
	}
	if events == nil {
		events = []models.IntakeEvent{}
	}
	return events, nil
}

// RecordIntake persists a new event for userID with a server-clock UTC
// timestamp and returns it.
func (s *Service) RecordIntake(ctx context.Context, userID int64, volumeMl int, source models.IntakeSource) (*models.IntakeEvent, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}
	if profile == nil {
		return nil, &NotFoundError{Resource: "UserProfile", ID: userID}
	}

	event := &models.IntakeEvent{
		UserID:       userID,
		VolumeMl:     volumeMl,
		Source:       source,
		TimestampUTC: s.now().UTC(),
	}
	id, err := s.intakes.CreateIntake(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create intake for %d: %w", userID, err)
	}
	event.ID = id

	s.logger.Info("intake recorded",
		slog.Int64("intake_id", id),
		slog.Int64("user_id", userID),
		slog.Int("volume_ml", volumeMl),
		slog.String("source", string(source)),
	)

	return event, nil
}

// DefaultRecentLimit applies when a caller does not specify a limit.
const DefaultRecentLimit = 10

// RecentIntakes lists up to limit events for the user, most recent first.
// A limit of zero or less falls back to DefaultRecentLimit. No profile check
// here; an unknown user simply has no events.
func (s *Service) RecentIntakes(ctx context.Context, userID int64, limit int) ([]models.IntakeEvent, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	events, err := s.intakes.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent intakes for %d: %w", userID, err)
	}
	if events == nil {
		events = []models.IntakeEvent{}
	}
	return events, nil
}

// DeleteIntake removes the event with the given ID. There is no ownership
// check against a caller identity; any valid ID deletes.
func (s *Service) DeleteIntake(ctx context.Context, intakeID int64) error {
	exists, err := s.intakes.IntakeExists(ctx, intakeID)
	if err != nil {
		return fmt.Errorf("check intake %d: %w", intakeID, err)
	}
	if !exists {
		return &NotFoundError{Resource: "IntakeEvent", ID: intakeID}
	}

	if err := s.intakes.DeleteIntake(ctx, intakeID); err != nil {
		return fmt.Errorf("delete intake %d: %w", intakeID, err)
	}

	s.logger.Info("intake deleted", slog.Int64("intake_id", intakeID))
	return nil
}

// ProfileInput carries raw profile attributes from the transport layer.
// Timezone is a pointer so updates can distinguish "not supplied" (keep the
// stored zone) from an explicit replacement.
type ProfileInput struct {
	WeightKg      int
	ActivityLevel models.ActivityLevel
	Climate       models.Climate
	Timezone      *string
}

// CreateProfile stores a new profile, applying the documented defaults for
// unset attributes, and returns it with its assigned ID.
func (s *Service) CreateProfile(ctx context.Context, name, email, passwordHash string, in ProfileInput) (*models.Profile, error) {
	tz := ""
	if in.Timezone != nil {
		tz = *in.Timezone
	}
	profile := models.NewProfile(name, email, passwordHash, in.WeightKg, in.ActivityLevel, in.Climate, tz)

	id, err := s.profiles.CreateProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	profile.ID = id

	s.logger.Info("profile created", slog.Int64("user_id", id))
	return profile, nil
}

// UpdateProfile overwrites weight, activity level and climate; the timezone
// only changes when the input carries a non-nil value.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (*models.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}
	if profile == nil {
		return nil, &NotFoundError{Resource: "UserProfile", ID: userID}
	}

	profile.WeightKg = in.WeightKg
	profile.ActivityLevel = in.ActivityLevel
	profile.Climate = in.Climate
	if profile.ActivityLevel == "" {
		profile.ActivityLevel = models.DefaultActivityLevel
	}
	if profile.Climate == "" {
		profile.Climate = models.DefaultClimate
	}
	if in.Timezone != nil {
		profile.Timezone = *in.Timezone
	}

	if err := s.profiles.UpdateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile %d: %w", userID, err)
	}

	s.logger.Info("profile updated", slog.Int64("user_id", userID))
	return profile, nil
}

// GetProfile fetches a profile by ID.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}
	if profile == nil {
		return nil, &NotFoundError{Resource: "UserProfile", ID: userID}
	}
	return profile, nil
}
