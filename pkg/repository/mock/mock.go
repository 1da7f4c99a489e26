package mock

import (
	"context"
	"sort"
	"time"

	"github.com/Dorian509/BackEnd/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	ProfileRepo *ProfileRepo
	IntakeRepo  *IntakeRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		ProfileRepo: &ProfileRepo{},
		IntakeRepo:  &IntakeRepo{},
	}
}

// ProfileRepo keeps a single stored profile, which covers every handler and
// engine test; Err forces store failures.
type ProfileRepo struct {
	Stored *models.Profile
	NextID int64
	Err    error
}

func (m *ProfileRepo) CreateProfile(ctx context.Context, p *models.Profile) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.NextID++
	stored := *p
	stored.ID = m.NextID
	m.Stored = &stored
	return m.NextID, nil
}

func (m *ProfileRepo) GetProfile(ctx context.Context, id int64) (*models.Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Stored != nil && m.Stored.ID == id {
		p := *m.Stored
		return &p, nil
	}
	return nil, nil
}

func (m *ProfileRepo) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Stored != nil && m.Stored.Email == email {
		p := *m.Stored
		return &p, nil
	}
	return nil, nil
}

func (m *ProfileRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Stored != nil && m.Stored.Email == email, nil
}

func (m *ProfileRepo) UpdateProfile(ctx context.Context, p *models.Profile) error {
	if m.Err != nil {
		return m.Err
	}
	stored := *p
	m.Stored = &stored
	return nil
}

// IntakeRepo stores events in a slice, mimicking the SQLite ordering rules.
type IntakeRepo struct {
	Events []models.IntakeEvent
	NextID int64
	Err    error
}

func (m *IntakeRepo) CreateIntake(ctx context.Context, e *models.IntakeEvent) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.NextID++
	stored := *e
	stored.ID = m.NextID
	m.Events = append(m.Events, stored)
	return m.NextID, nil
}

func (m *IntakeRepo) SumVolumeInRange(ctx context.Context, userID int64, start, end time.Time) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	sum := 0
	for _, e := range m.Events {
		if e.UserID == userID && inRange(e.TimestampUTC, start, end) {
			sum += e.VolumeMl
		}
	}
	return sum, nil
}

func (m *IntakeRepo) FindInRange(ctx context.Context, userID int64, start, end time.Time) ([]models.IntakeEvent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.IntakeEvent
	for _, e := range m.Events {
		if e.UserID == userID && inRange(e.TimestampUTC, start, end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimestampUTC.Before(out[j].TimestampUTC) })
	return out, nil
}

func (m *IntakeRepo) FindRecent(ctx context.Context, userID int64, limit int) ([]models.IntakeEvent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.IntakeEvent
	for _, e := range m.Events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TimestampUTC.Equal(out[j].TimestampUTC) {
			return out[i].ID > out[j].ID
		}
		return out[i].TimestampUTC.After(out[j].TimestampUTC)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *IntakeRepo) IntakeExists(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, e := range m.Events {
		if e.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *IntakeRepo) DeleteIntake(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	for i, e := range m.Events {
		if e.ID == id {
			m.Events = append(m.Events[:i], m.Events[i+1:]...)
			return nil
		}
	}
	return nil
}

// inRange implements the half-open [start, end) window check at the
// millisecond resolution the SQLite store uses.
func inRange(t, start, end time.Time) bool {
	ms := t.UnixMilli()
	return ms >= start.UnixMilli() && ms < end.UnixMilli()
}
