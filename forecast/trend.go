/*
trend.go - Simple moving average with trend detection

A lighter companion to the cash-flow projection: averages the most recent
window of a series into a single next-period prediction and classifies the
short-term direction. Used by report surfaces that want a one-line "where
is this heading" answer rather than a multi-month projection.
*/
package forecast

import "fmt"

// Trend classifies the short-term direction of a series.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// trendThreshold is the relative change below which movement counts as
// stable (5%).
const trendThreshold = 0.05

// MovingAverage is the outcome of a simple moving-average prediction.
type MovingAverage struct {
	Predicted float64
	Window    int
	Trend     Trend
}

// SimpleMovingAverage averages the last `window` points of the series into
// a next-period prediction. Fails with ErrInvalidArgument when the series
// is shorter than the window or the window is not positive.
func SimpleMovingAverage(series []float64, window int) (MovingAverage, error) {
	if window <= 0 {
		return MovingAverage{}, fmt.Errorf("%w: window must be positive, got %d", ErrInvalidArgument, window)
	}
	if len(series) < window {
		return MovingAverage{}, fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidArgument, window, len(series))
	}

	recent := series[len(series)-window:]
	return MovingAverage{
		Predicted: mean(recent),
		Window:    window,
		Trend:     detectTrend(series),
	}, nil
}

// detectTrend compares the two most recent points. Less than two points,
// or a flat previous value, reads as stable.
func detectTrend(series []float64) Trend {
	if len(series) < 2 {
		return TrendStable
	}
	previous := series[len(series)-2]
	recent := series[len(series)-1]
	if previous == 0 {
		return TrendStable
	}

	change := (recent - previous) / previous
	switch {
	case change > trendThreshold:
		return TrendUp
	case change < -trendThreshold:
		return TrendDown
	default:
		return TrendStable
	}
}
