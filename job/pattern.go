package job

import (
	"fmt"
	"time"

	"suprss/domain"
)

// PatternForFrequency renders the cron-style pattern recorded alongside a
// trigger registration. The pattern is descriptive; firing is computed from
// the frequency itself by NextFire.
func PatternForFrequency(freq domain.UpdateFrequency, dailyFireHour int) string {
	switch freq {
	case domain.UpdateFreqHourly:
		return "0 * * * *"
	case domain.UpdateFreqSixHours:
		return "0 */6 * * *"
	default:
		return fmt.Sprintf("0 %d * * *", dailyFireHour)
	}
}

// FrequencyForPattern recovers the update frequency a stored registration
// was derived from. Daily patterns differ only in the hour digit, so
// anything that is not the hourly or 6h table entry reads back as daily.
func FrequencyForPattern(pattern string) domain.UpdateFrequency {
	switch pattern {
	case "0 * * * *":
		return domain.UpdateFreqHourly
	case "0 */6 * * *":
		return domain.UpdateFreqSixHours
	default:
		return domain.UpdateFreqDaily
	}
}

// NextFire returns the first fire instant strictly after now. Hourly fires
// at the top of each hour, 6h at 00:00, 06:00, 12:00 and 18:00, and daily at
// the configured hour. An unknown or empty frequency fires daily.
func NextFire(freq domain.UpdateFrequency, dailyFireHour int, now time.Time) time.Time {
	switch freq {
	case domain.UpdateFreqHourly:
		return now.Truncate(time.Hour).Add(time.Hour)

	case domain.UpdateFreqSixHours:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		for h := 6; h <= 24; h += 6 {
			candidate := midnight.Add(time.Duration(h) * time.Hour)
			if candidate.After(now) {
				return candidate
			}
		}
		return midnight.Add(24 * time.Hour)

	default:
		candidate := time.Date(now.Year(), now.Month(), now.Day(), dailyFireHour, 0, 0, 0, now.Location())
		if candidate.After(now) {
			return candidate
		}
		return candidate.Add(24 * time.Hour)
	}
}
