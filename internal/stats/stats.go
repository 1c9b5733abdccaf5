// Package stats renders typing measurements as text: sparklines, plots, and tables.
package stats

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/typequote/internal/typing"
)

const sparkChars = " .:-=+*#%@"

// WPMSeries extracts the WPM values of samples.
func WPMSeries(samples []typing.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.WPM)
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		den := float64(i + 1)
		if i >= window {
			sum -= values[i-window]
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline, keeping only the last
// width values when width is positive.
func Sparkline(values []float64, width int) string {
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := minMax(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = clamp(idx, 0, len(sparkChars)-1)
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// FormatDuration renders elapsed time as m:ss.t.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := d.Milliseconds() / 100
	minutes := tenths / 600
	seconds := (tenths % 600) / 10
	return fmt.Sprintf("%d:%02d.%d", minutes, seconds, tenths%10)
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
