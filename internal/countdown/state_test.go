package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{input: 0, expected: "00:00"},
		{input: 5, expected: "00:05"},
		{input: 65, expected: "01:05"},
		{input: 3599, expected: "59:59"},
		{input: 3725, expected: "1:02:05"},
		{input: 86399, expected: "23:59:59"},
		{input: -3, expected: "00:00"},
	}

	for _, tt := range tests {
		if got := FormatSeconds(tt.input); got != tt.expected {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "02:30", FormatDuration(150*time.Second+900*time.Millisecond))
}

func TestSnapshotPresentation(t *testing.T) {
	tests := []struct {
		name       string
		snap       Snapshot
		label      string
		showPicker bool
		text       string
		elapsed    float64
	}{
		{
			name:       "picking",
			snap:       Snapshot{State: PickingTime},
			label:      "Start",
			showPicker: true,
			text:       "",
			elapsed:    0,
		},
		{
			name:    "running",
			snap:    Snapshot{State: Running, Configured: 10, Remaining: 4},
			label:   "Pause",
			text:    "00:04",
			elapsed: 0.6,
		},
		{
			name:    "paused",
			snap:    Snapshot{State: Paused, Configured: 3600, Remaining: 3600},
			label:   "Resume",
			text:    "1:00:00",
			elapsed: 0,
		},
		{
			name:    "zero length",
			snap:    Snapshot{State: Running},
			label:   "Pause",
			text:    "00:00",
			elapsed: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.snap.PrimaryLabel())
			assert.Equal(t, tt.showPicker, tt.snap.ShowPicker())
			assert.Equal(t, tt.text, tt.snap.RemainingText())
			assert.InDelta(t, tt.elapsed, tt.snap.Elapsed(), 1e-9)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "picking", PickingTime.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "finished", EventFinished.String())
}
