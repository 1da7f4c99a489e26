package models_test

import (
	"encoding/json"
	"testing"

	"github.com/Dorian509/BackEnd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	level, err := models.ParseActivityLevel("HIGH")
	require.NoError(t, err)
	assert.Equal(t, models.ActivityHigh, level)

	_, err = models.ParseActivityLevel("EXTREME")
	assert.Error(t, err)

	climate, err := models.ParseClimate("HOT")
	require.NoError(t, err)
	assert.Equal(t, models.ClimateHot, climate)

	_, err = models.ParseClimate("hot")
	assert.Error(t, err, "enum values are case sensitive")

	source, err := models.ParseIntakeSource("DOUBLE_SIP")
	require.NoError(t, err)
	assert.Equal(t, models.SourceDoubleSip, source)

	_, err = models.ParseIntakeSource("BOTTLE")
	assert.Error(t, err)
}

func TestNewProfile_Defaults(t *testing.T) {
	p := models.NewProfile("Alice", "alice@example.com", "hash", 70, "", "", "")

	assert.Equal(t, models.ActivityMedium, p.ActivityLevel)
	assert.Equal(t, models.ClimateNormal, p.Climate)
	assert.Equal(t, "Europe/Berlin", p.Timezone)
	assert.Equal(t, 70, p.WeightKg)
}

func TestNewProfile_ExplicitValues(t *testing.T) {
	p := models.NewProfile("Bob", "bob@example.com", "hash", 90, models.ActivityHigh, models.ClimateHot, "Asia/Tokyo")

	assert.Equal(t, models.ActivityHigh, p.ActivityLevel)
	assert.Equal(t, models.ClimateHot, p.Climate)
	assert.Equal(t, "Asia/Tokyo", p.Timezone)
}

func TestProfile_PasswordHashNeverSerialized(t *testing.T) {
	p := models.NewProfile("Alice", "alice@example.com", "secret-hash", 70, "", "", "")

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
}
