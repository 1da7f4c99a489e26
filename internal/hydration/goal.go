package hydration

import "github.com/Dorian509/BackEnd/pkg/models"

// Base requirement per kilogram of body weight, in milliliters.
const mlPerKg = 35

// Bonus tables keyed by the profile enums. Unknown values fall through to 0,
// which cannot happen for a profile that passed validation.
var activityBonusMl = map[models.ActivityLevel]int{
	models.ActivityLow:    0,
	models.ActivityMedium: 250,
	models.ActivityHigh:   500,
}

var climateBonusMl = map[models.Climate]int{
	models.ClimateNormal: 0,
	models.ClimateHot:    500,
}

// DailyGoalMl computes the personalized daily target in milliliters:
// weight*35 plus the activity and climate bonuses, rounded half-up to the
// nearest multiple of 50.
func DailyGoalMl(p *models.Profile) int {
	raw := p.WeightKg*mlPerKg + activityBonusMl[p.ActivityLevel] + climateBonusMl[p.Climate]
	return (raw + 25) / 50 * 50
}
