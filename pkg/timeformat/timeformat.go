// Package timeformat provides playback clock formatting for the viewer UI.
package timeformat

import "fmt"

// Clock converts seconds to the compact display format used by the
// transport bar: "m:ss" under an hour, "h:mm:ss" above.
//
// Example:
//
//	Clock(0)    // "0:00"
//	Clock(134)  // "2:14"
//	Clock(3661) // "1:01:01"
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}

	return fmt.Sprintf("%d:%02d", minutes, secs)
}
