package service

import (
	"testing"

	"github.com/easyliving/backend/internal/models"
)

func TestMoodScore(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"happy", 5},
		{"Happy", 5},
		{"HAPPY", 5},
		{" happy ", 5},
		{"neutral", 3},
		{"sad", 2},
		{"stressed", 1},
		{"ecstatic", 0},
		{"", 0},
		{"happy!", 0},
	}

	for _, tt := range tests {
		if got := MoodScore(tt.label); got != tt.want {
			t.Errorf("MoodScore(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestMoodBand(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		avg  *float64
		want string
	}{
		{"nil average", nil, models.NoMoodData},
		{"zero average", f(0), models.NoMoodData},
		{"happy at threshold", f(4.2), models.MoodBandHappy},
		{"happy above threshold", f(5.0), models.MoodBandHappy},
		{"neutral just below happy", f(4.19), models.MoodBandNeutral},
		{"neutral at threshold", f(3.2), models.MoodBandNeutral},
		{"sad just below neutral", f(3.19), models.MoodBandSad},
		{"sad at threshold", f(2.0), models.MoodBandSad},
		{"stressed below sad", f(1.99), models.MoodBandStressed},
		{"stressed at floor", f(1.0), models.MoodBandStressed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodBand(tt.avg); got != tt.want {
				t.Errorf("MoodBand(%v) = %q, want %q", tt.avg, got, tt.want)
			}
		})
	}
}
