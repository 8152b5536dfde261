package timeformat

import "testing"

func TestClock(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"Zero", 0, "0:00"},
		{"One second", 1, "0:01"},
		{"One minute", 60, "1:00"},
		{"Scrub target", 134, "2:14"},
		{"Under one hour", 3599, "59:59"},
		{"One hour", 3600, "1:00:00"},
		{"Complex time", 3661, "1:01:01"},
		{"Fraction truncated", 90.7, "1:30"},
		{"Negative clamped", -5, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Clock(tt.seconds)
			if result != tt.expected {
				t.Errorf("Clock(%.1f) = %s; want %s", tt.seconds, result, tt.expected)
			}
		})
	}
}
