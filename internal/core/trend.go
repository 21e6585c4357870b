package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"academitrend/internal/domain/model"
)

const stableGrowthThresholdPct = 5.0

// TrendAnalyzer classifies the direction and strength of a historical
// enrollment series.
type TrendAnalyzer struct{}

// Analyze computes growth and volatility for the series. The first
// value must be positive so growth percentages are defined.
func (a TrendAnalyzer) Analyze(series []int) (model.TrendSummary, error) {
	if len(series) < 2 {
		return model.TrendSummary{}, fmt.Errorf("series too short for trend analysis: %d points", len(series))
	}

	first := float64(series[0])
	last := float64(series[len(series)-1])
	if first <= 0 {
		return model.TrendSummary{}, fmt.Errorf("series starts at %v, growth rate undefined", series[0])
	}

	totalGrowth := (last - first) / first * 100

	// Compound annual growth over n-1 year steps.
	annualGrowth := 0.0
	if last > 0 {
		annualGrowth = (math.Pow(last/first, 1/float64(len(series)-1)) - 1) * 100
	}

	// Year-over-year percentage changes.
	changes := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		prev := float64(series[i-1])
		if prev <= 0 {
			continue
		}
		changes = append(changes, (float64(series[i])-prev)/prev*100)
	}
	volatility := 0.0
	if len(changes) >= 2 {
		volatility = stat.StdDev(changes, nil)
	}

	direction := "stable"
	switch {
	case totalGrowth > stableGrowthThresholdPct:
		direction = "increasing"
	case totalGrowth < -stableGrowthThresholdPct:
		direction = "decreasing"
	}

	return model.TrendSummary{
		Direction:       direction,
		TotalGrowthPct:  round2(totalGrowth),
		AnnualGrowthPct: round2(annualGrowth),
		Volatility:      round2(volatility),
	}, nil
}
