/*
cashflow.go - Rolling-average cash-flow projection

ALGORITHM:
  1. Smooth the chronological net-flow series with a trailing moving
     average of window 2. The window shrinks at the boundary ("minimum
     periods 1"): the first element is its own single-element window.
  2. Baseline = mean of the smoothed series.
  3. Project point i (0-based) as baseline * (1 + growth*i).

  The per-month growth factor is a heuristic, not a fitted model. It is a
  parameter precisely because nobody has justified any particular value;
  DefaultGrowthRate preserves the historical 1%-per-month assumption.

EDGE CASES:
  Empty history yields a baseline of 0 and a zero-filled projection, not
  an error. Non-positive months yields an empty projection.
*/
package forecast

// DefaultGrowthRate is the historical 1%-per-month linear growth
// assumption layered on the baseline.
const DefaultGrowthRate = 0.01

// CashFlow projects `months` future net-flow points from a chronological
// history of per-period nets (debit - credit). The input is not mutated.
func CashFlow(history []float64, months int, growth float64) []float64 {
	if months <= 0 {
		return []float64{}
	}

	projection := make([]float64, months)
	if len(history) == 0 {
		return projection
	}

	baseline := mean(smooth(history))
	for i := range projection {
		projection[i] = baseline * (1 + growth*float64(i))
	}
	return projection
}

// smooth applies a trailing window-2, min-periods-1 moving average.
func smooth(series []float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		if i == 0 {
			out[i] = v
			continue
		}
		out[i] = (series[i-1] + v) / 2
	}
	return out
}

func mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}
