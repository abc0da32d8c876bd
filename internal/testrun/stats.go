package testrun

import (
	"math"
)

// Stats summarizes the logged runs.
type Stats struct {
	Runs          int     `json:"runs"`
	AveragePassed float64 `json:"averagePassed"`
	StdDevPassed  float64 `json:"stdDevPassed"`
	AverageFailed float64 `json:"averageFailed"`
	StdDevFailed  float64 `json:"stdDevFailed"`
}

// Summarize computes the mean and sample standard deviation of the passed
// and failed counts across logs.
func Summarize(logs []LogEntry) Stats {
	passed := make([]float64, 0, len(logs))
	failed := make([]float64, 0, len(logs))
	for _, l := range logs {
		passed = append(passed, float64(l.Passed))
		failed = append(failed, float64(l.Failed))
	}

	st := Stats{Runs: len(logs)}
	st.AveragePassed, st.StdDevPassed = calculateStats(passed)
	st.AverageFailed, st.StdDevFailed = calculateStats(failed)
	return st
}

// roundFloat rounds a float64 to a specified number of decimal places.
func roundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// calculateStats returns (average, sample standard deviation), both rounded
// to four decimals.
func calculateStats(data []float64) (float64, float64) {
	n := len(data)
	if n == 0 {
		return 0.0, 0.0
	}

	sum := 0.0
	for _, val := range data {
		sum += val
	}
	average := sum / float64(n)

	if n < 2 { // sample standard deviation needs at least two values
		return roundFloat(average, 4), 0.0
	}

	varianceSum := 0.0
	for _, val := range data {
		varianceSum += math.Pow(val-average, 2)
	}
	stdDev := math.Sqrt(varianceSum / float64(n-1))

	return roundFloat(average, 4), roundFloat(stdDev, 4)
}
