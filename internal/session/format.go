package session

import "fmt"

// FormatRate renders the success rate line, e.g. "75.0% (3/4)".
func FormatRate(ratePct float64, success, total int) string {
	return fmt.Sprintf("%.1f%% (%d/%d)", ratePct, success, total)
}

// FormatElapsed renders whole seconds as zero-padded HH:MM:SS.
func FormatElapsed(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// FormatThroughput renders outcomes per minute, e.g. "12.3 items/min".
func FormatThroughput(perMinute float64) string {
	return fmt.Sprintf("%.1f items/min", perMinute)
}
