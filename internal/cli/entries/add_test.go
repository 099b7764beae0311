package entries

import (
	"math"
	"testing"
)

func TestTranscriptionConfidence(t *testing.T) {
	cases := []struct {
		durationSec int
		want        float64
	}{
		{0, 0.7},
		{30, 0.825},
		{60, 0.95},
		{600, 0.95}, // capped
	}

	for _, tc := range cases {
		got := transcriptionConfidence(tc.durationSec)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("duration %ds: expected confidence %v, got %v", tc.durationSec, tc.want, got)
		}
	}
}

func TestAddCmdValidate(t *testing.T) {
	good := AddCmd{Mood: "joy", Confidence: -1}
	if err := good.Validate(); err != nil {
		t.Errorf("expected valid command, got %v", err)
	}

	bad := []AddCmd{
		{Mood: "rage", Confidence: -1},
		{Mood: "joy", Confidence: 1.5},
		{Mood: "joy", Confidence: -1, Duration: -5},
		{Mood: "joy", Confidence: -1, Date: "15-06-2025"},
	}
	for i, cmd := range bad {
		if err := cmd.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
