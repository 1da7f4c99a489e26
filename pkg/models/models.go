package models

import (
	"fmt"
	"time"
)

// ActivityLevel classifies how physically active a user is. It feeds the
// daily goal calculation.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "LOW"
	ActivityMedium ActivityLevel = "MEDIUM"
	ActivityHigh   ActivityLevel = "HIGH"
)

// ParseActivityLevel validates a raw string against the known levels.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch ActivityLevel(s) {
	case ActivityLow, ActivityMedium, ActivityHigh:
		return ActivityLevel(s), nil
	}
	return "", fmt.Errorf("unknown activity level %q", s)
}

// Climate classifies the user's environment. Hot climates raise the goal.
type Climate string

const (
	ClimateNormal Climate = "NORMAL"
	ClimateHot    Climate = "HOT"
)

// ParseClimate validates a raw string against the known climates.
func ParseClimate(s string) (Climate, error) {
	switch Climate(s) {
	case ClimateNormal, ClimateHot:
		return Climate(s), nil
	}
	return "", fmt.Errorf("unknown climate %q", s)
}

// IntakeSource labels how an intake was logged. The approximate volumes
// (SIP~100ml, DOUBLE_SIP~200ml, GLASS~250ml) are hints for clients only
// and never enter any calculation.
type IntakeSource string

const (
	SourceSip       IntakeSource = "SIP"
	SourceDoubleSip IntakeSource = "DOUBLE_SIP"
	SourceGlass     IntakeSource = "GLASS"
)

// ParseIntakeSource validates a raw string against the known sources.
func ParseIntakeSource(s string) (IntakeSource, error) {
	switch IntakeSource(s) {
	case SourceSip, SourceDoubleSip, SourceGlass:
		return IntakeSource(s), nil
	}
	return "", fmt.Errorf("unknown intake source %q", s)
}

// Defaults applied by NewProfile when an attribute field is left unset.
const (
	DefaultTimezone      = "Europe/Berlin"
	DefaultActivityLevel = ActivityMedium
	DefaultClimate       = ClimateNormal
)

// Weight bounds in kilograms; request validation enforces them before the
// engine runs.
const (
	MinWeightKg = 20
	MaxWeightKg = 200
)

type Profile struct {
	ID            int64         `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Email         string        `json:"email" db:"email"`
	PasswordHash  string        `json:"-" db:"password_hash"`
	WeightKg      int           `json:"weightKg" db:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activityLevel" db:"activity_level"`
	Climate       Climate       `json:"climate" db:"climate"`
	Timezone      string        `json:"timezone" db:"timezone"`
}

// NewProfile builds a profile with the documented defaults filled in for
// zero-valued attribute fields. Identity fields stay as given.
func NewProfile(name, email, passwordHash string, weightKg int, level ActivityLevel, climate Climate, timezone string) *Profile {
	if level == "" {
		level = DefaultActivityLevel
	}
	if climate == "" {
		climate = DefaultClimate
	}
	if timezone == "" {
		timezone = DefaultTimezone
	}
	return &Profile{
		Name:          name,
		Email:         email,
		PasswordHash:  passwordHash,
		WeightKg:      weightKg,
		ActivityLevel: level,
		Climate:       climate,
		Timezone:      timezone,
	}
}

type IntakeEvent struct {
	ID           int64        `json:"id" db:"id"`
	UserID       int64        `json:"userId" db:"user_id"`
	VolumeMl     int          `json:"volumeMl" db:"volume_ml"`
	Source       IntakeSource `json:"source" db:"source"`
	TimestampUTC time.Time    `json:"timestampUtc" db:"timestamp_utc"`
}
