// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/picktally/internal/model"
	"github.com/verte-zerg/picktally/internal/session"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes the success rate (percent) and throughput
// (outcomes per minute) for a stored session.
func SessionMetrics(success, fail int, durationMs int64) (ratePct, perMinute float64) {
	total := success + fail
	if total > 0 {
		ratePct = float64(success) / float64(total) * 100
	}
	if durationMs <= 0 {
		return ratePct, 0
	}
	minutes := float64(durationMs) / 60000.0
	perMinute = float64(total) / minutes
	return ratePct, perMinute
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary table for stored sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalRate, totalPerMin float64
	bestRate := 0.0
	totalSuccess, totalFail := 0, 0
	var totalDuration int64
	for _, s := range sessions {
		rate, perMin := SessionMetrics(s.Success, s.Fail, s.DurationMs)
		totalRate += rate
		totalPerMin += perMin
		if rate > bestRate {
			bestRate = rate
		}
		totalSuccess += s.Success
		totalFail += s.Fail
		totalDuration += s.DurationMs
	}
	count := float64(len(sessions))
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Outcomes: %d (%d success / %d fail)", totalSuccess+totalFail, totalSuccess, totalFail),
		fmt.Sprintf("Avg Rate: %.1f%%", totalRate/count),
		fmt.Sprintf("Best Rate: %.1f%%", bestRate),
		fmt.Sprintf("Avg Throughput: %.1f items/min", totalPerMin/count),
		fmt.Sprintf("Total Time: %s", session.FormatElapsed(totalDuration/1000)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints rate and throughput curves for stored sessions.
func RenderCurves(w io.Writer, sessions []model.SessionAggregate, window int) error {
	return RenderCurvesWithSize(w, sessions, window, 0, 10, false)
}

// RenderCurvesWithSize prints rate and throughput curves sized to a given total width.
func RenderCurvesWithSize(w io.Writer, sessions []model.SessionAggregate, window, totalWidth, height int, useColor bool) error {
	if len(sessions) == 0 {
		return nil
	}
	rates := make([]float64, len(sessions))
	perMins := make([]float64, len(sessions))
	for i, s := range sessions {
		rate, perMin := SessionMetrics(s.Success, s.Fail, s.DurationMs)
		rates[i] = rate
		perMins[i] = perMin
	}
	rates = MovingAverage(rates, window)
	perMins = MovingAverage(perMins, window)

	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Session Curves", []Series{
		{Name: "Rate", Values: rates},
		{Name: "Throughput", Values: perMins},
	}, width, height, useColor)
}

// RenderSessionTable prints the per-session history table.
func RenderSessionTable(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	headers := []string{"Ended", "Task", "Rate", "Success", "Fail", "Duration", "Items/min"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rate, perMin := SessionMetrics(s.Success, s.Fail, s.DurationMs)
		rows = append(rows, []string{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			s.Task,
			fmt.Sprintf("%.1f%%", rate),
			fmt.Sprintf("%d", s.Success),
			fmt.Sprintf("%d", s.Fail),
			session.FormatElapsed(s.DurationMs / 1000),
			fmt.Sprintf("%.1f", perMin),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
