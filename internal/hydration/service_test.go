package hydration_test

import (
	"context"
	"testing"
	"time"

	"github.com/Dorian509/BackEnd/internal/hydration"
	"github.com/Dorian509/BackEnd/pkg/models"
	"github.com/Dorian509/BackEnd/pkg/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is 10:00 local time in Berlin (UTC+2 on this date); the Berlin
// day window is [2026-08-27T22:00Z, 2026-08-28T22:00Z).
var fixedNow = time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

var berlinDayStart = time.Date(2026, 8, 27, 22, 0, 0, 0, time.UTC)
var berlinDayEnd = time.Date(2026, 8, 28, 22, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*hydration.Service, *mock.Mocks) {
	t.Helper()
	mocks := mock.NewMocks()
	svc := hydration.NewService(mocks.ProfileRepo, mocks.IntakeRepo, func() time.Time { return fixedNow }, nil)
	return svc, mocks
}

func storedProfile(m *mock.Mocks) *models.Profile {
	p := &models.Profile{
		ID:            1,
		Name:          "Alice",
		Email:         "alice@example.com",
		WeightKg:      70,
		ActivityLevel: models.ActivityMedium,
		Climate:       models.ClimateNormal,
		Timezone:      "Europe/Berlin",
	}
	m.ProfileRepo.Stored = p
	m.ProfileRepo.NextID = 1
	return p
}

func TestTodayStatus(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	mocks.IntakeRepo.Events = []models.IntakeEvent{
		{ID: 1, UserID: 1, VolumeMl: 1000, TimestampUTC: fixedNow.Add(-2 * time.Hour)},
		{ID: 2, UserID: 1, VolumeMl: 500, TimestampUTC: fixedNow.Add(-1 * time.Hour)},
		// yesterday, outside the window
		{ID: 3, UserID: 1, VolumeMl: 9999, TimestampUTC: fixedNow.Add(-24 * time.Hour)},
		// another user
		{ID: 4, UserID: 2, VolumeMl: 9999, TimestampUTC: fixedNow},
	}

	status, err := svc.TodayStatus(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2700, status.GoalMl)
	assert.Equal(t, 1500, status.ConsumedMl)
	assert.Equal(t, 1200, status.RemainingMl)
	assert.Equal(t, 56, status.PercentageAchieved) // round(1500*100/2700) = round(55.55) = 56
}

func TestTodayStatus_NoIntakes(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	status, err := svc.TodayStatus(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, status.ConsumedMl)
	assert.Equal(t, status.GoalMl, status.RemainingMl)
	assert.Equal(t, 0, status.PercentageAchieved)
}

func TestTodayStatus_OverHydrated(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	mocks.IntakeRepo.Events = []models.IntakeEvent{
		{ID: 1, UserID: 1, VolumeMl: 5400, TimestampUTC: fixedNow},
	}

	status, err := svc.TodayStatus(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, status.RemainingMl, "remaining never goes negative")
	assert.Equal(t, 200, status.PercentageAchieved)
}

func TestTodayStatus_WindowIsHalfOpen(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	mocks.IntakeRepo.Events = []models.IntakeEvent{
		// exactly at local midnight: included
		{ID: 1, UserID: 1, VolumeMl: 100, TimestampUTC: berlinDayStart},
		// exactly at the next local midnight: excluded
		{ID: 2, UserID: 1, VolumeMl: 200, TimestampUTC: berlinDayEnd},
		// one millisecond before the end: included
		{ID: 3, UserID: 1, VolumeMl: 400, TimestampUTC: berlinDayEnd.Add(-time.Millisecond)},
	}

	status, err := svc.TodayStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 500, status.ConsumedMl)
}

func TestTodayStatus_UnknownUser(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.TodayStatus(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, hydration.IsNotFound(err))
}

func TestTodayStatus_BadTimezone(t *testing.T) {
	svc, mocks := newService(t)
	p := storedProfile(mocks)
	p.Timezone = "Not/AZone"
	mocks.ProfileRepo.Stored = p

	_, err := svc.TodayStatus(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, hydration.IsNotFound(err), "zone failures are fatal, not NotFound")
}

func TestTodayIntakes(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	mocks.IntakeRepo.Events = []models.IntakeEvent{
		{ID: 1, UserID: 1, VolumeMl: 500, TimestampUTC: fixedNow.Add(-1 * time.Hour)},
		{ID: 2, UserID: 1, VolumeMl: 250, TimestampUTC: fixedNow.Add(-3 * time.Hour)},
		{ID: 3, UserID: 1, VolumeMl: 999, TimestampUTC: berlinDayStart.Add(-time.Minute)},
	}

	events, err := svc.TodayIntakes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// ascending by timestamp
	assert.Equal(t, int64(2), events[0].ID)
	assert.Equal(t, int64(1), events[1].ID)
}

func TestRecordIntake(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	event, err := svc.RecordIntake(context.Background(), 1, 250, models.SourceGlass)
	require.NoError(t, err)

	assert.Equal(t, int64(1), event.ID)
	assert.Equal(t, int64(1), event.UserID)
	assert.Equal(t, 250, event.VolumeMl)
	assert.Equal(t, models.SourceGlass, event.Source)
	assert.Equal(t, fixedNow, event.TimestampUTC, "timestamp comes from the injected clock")
	require.Len(t, mocks.IntakeRepo.Events, 1)
}

func TestRecordIntake_UnknownUser(t *testing.T) {
	svc, mocks := newService(t)

	_, err := svc.RecordIntake(context.Background(), 42, 250, models.SourceSip)
	require.Error(t, err)
	assert.True(t, hydration.IsNotFound(err))
	assert.Empty(t, mocks.IntakeRepo.Events, "nothing persisted on NotFound")
}

func TestRecentIntakes(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	for i := 0; i < 5; i++ {
		_, err := svc.RecordIntake(context.Background(), 1, 100*(i+1), models.SourceSip)
		require.NoError(t, err)
		mocks.IntakeRepo.Events[i].TimestampUTC = fixedNow.Add(time.Duration(i) * time.Minute)
	}

	events, err := svc.RecentIntakes(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 500, events[0].VolumeMl)
	assert.Equal(t, 400, events[1].VolumeMl)
}

func TestRecentIntakes_DefaultLimit(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	for i := 0; i < 15; i++ {
		_, err := svc.RecordIntake(context.Background(), 1, 100, models.SourceSip)
		require.NoError(t, err)
	}

	events, err := svc.RecentIntakes(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, events, hydration.DefaultRecentLimit)
}

func TestRecentIntakes_Empty(t *testing.T) {
	svc, _ := newService(t)

	events, err := svc.RecentIntakes(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestDeleteIntake(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	event, err := svc.RecordIntake(context.Background(), 1, 250, models.SourceSip)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteIntake(context.Background(), event.ID))
	assert.Empty(t, mocks.IntakeRepo.Events)
}

func TestDeleteIntake_UnknownID(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	_, err := svc.RecordIntake(context.Background(), 1, 250, models.SourceSip)
	require.NoError(t, err)

	err = svc.DeleteIntake(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, hydration.IsNotFound(err))
	assert.Len(t, mocks.IntakeRepo.Events, 1, "store unchanged")
}

func TestCreateProfile_Defaults(t *testing.T) {
	svc, _ := newService(t)

	profile, err := svc.CreateProfile(context.Background(), "Bob", "bob@example.com", "hash", hydration.ProfileInput{WeightKg: 80})
	require.NoError(t, err)

	assert.Equal(t, int64(1), profile.ID)
	assert.Equal(t, models.DefaultActivityLevel, profile.ActivityLevel)
	assert.Equal(t, models.DefaultClimate, profile.Climate)
	assert.Equal(t, models.DefaultTimezone, profile.Timezone)
}

func TestUpdateProfile_TimezonePreserved(t *testing.T) {
	svc, mocks := newService(t)
	p := storedProfile(mocks)
	p.Timezone = "America/New_York"
	mocks.ProfileRepo.Stored = p

	updated, err := svc.UpdateProfile(context.Background(), 1, hydration.ProfileInput{
		WeightKg:      90,
		ActivityLevel: models.ActivityHigh,
		Climate:       models.ClimateHot,
		Timezone:      nil,
	})
	require.NoError(t, err)

	assert.Equal(t, 90, updated.WeightKg)
	assert.Equal(t, models.ActivityHigh, updated.ActivityLevel)
	assert.Equal(t, models.ClimateHot, updated.Climate)
	assert.Equal(t, "America/New_York", updated.Timezone, "nil timezone keeps the stored zone")
}

func TestUpdateProfile_TimezoneReplaced(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	tz := "Asia/Tokyo"
	updated, err := svc.UpdateProfile(context.Background(), 1, hydration.ProfileInput{
		WeightKg:      70,
		ActivityLevel: models.ActivityMedium,
		Climate:       models.ClimateNormal,
		Timezone:      &tz,
	})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", updated.Timezone)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.UpdateProfile(context.Background(), 42, hydration.ProfileInput{WeightKg: 70})
	require.Error(t, err)
	assert.True(t, hydration.IsNotFound(err))
}

func TestGetProfile(t *testing.T) {
	svc, mocks := newService(t)
	storedProfile(mocks)

	profile, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)

	_, err = svc.GetProfile(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, hydration.IsNotFound(err))
}
