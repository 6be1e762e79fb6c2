package service

import (
	"strings"

	"github.com/easyliving/backend/internal/models"
)

// Mood score assigned to each known label. Unrecognized labels score zero
// and are excluded from averages rather than contributing a zero value.
const (
	scoreHappy    = 5
	scoreNeutral  = 3
	scoreSad      = 2
	scoreStressed = 1
)

// Band thresholds for mapping an average score back to a label. Fixed
// constants, not configurable per user.
const (
	bandHappyMin   = 4.2
	bandNeutralMin = 3.2
	bandSadMin     = 2.0
)

// MoodScore maps a categorical mood label to its numeric score. Labels are
// matched case-insensitively since the predictor title-cases its output.
// Returns 0 for unrecognized labels; callers must exclude those from means.
func MoodScore(label string) int {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "happy":
		return scoreHappy
	case "neutral":
		return scoreNeutral
	case "sad":
		return scoreSad
	case "stressed":
		return scoreStressed
	default:
		return 0
	}
}

// MoodBand maps an average mood score to its coarse label band. A nil or
// zero average means no scored data and yields the "No Data" sentinel.
func MoodBand(avg *float64) string {
	if avg == nil || *avg == 0 {
		return models.NoMoodData
	}
	switch {
	case *avg >= bandHappyMin:
		return models.MoodBandHappy
	case *avg >= bandNeutralMin:
		return models.MoodBandNeutral
	case *avg >= bandSadMin:
		return models.MoodBandSad
	default:
		return models.MoodBandStressed
	}
}
