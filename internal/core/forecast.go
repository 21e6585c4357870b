package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"academitrend/internal/domain/model"
)

const (
	// DefaultHorizon is the number of future years forecast when the
	// caller does not ask for a specific horizon.
	DefaultHorizon = 3

	// MaxHorizon bounds the forecast horizon accepted from requests.
	MaxHorizon = 10

	movingAverageWindow = 3
	polynomialDegree    = 2
)

// LinearFit is a least-squares line fitted over series indices 0..n-1.
type LinearFit struct {
	Slope     float64
	Intercept float64
}

// FitLinear fits a simple linear regression to the series.
func FitLinear(series []int) (LinearFit, error) {
	if len(series) < 2 {
		return LinearFit{}, fmt.Errorf("series too short for regression: %d points", len(series))
	}
	xs, ys := indexPoints(series)
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return LinearFit{Slope: beta, Intercept: alpha}, nil
}

// Forecast extrapolates the fitted line for horizon steps past the end
// of a series of length n.
func (f LinearFit) Forecast(n, horizon int) []float64 {
	out := make([]float64, horizon)
	for i := 0; i < horizon; i++ {
		out[i] = round2(f.Intercept + f.Slope*float64(n+i))
	}
	return out
}

// Metrics evaluates the fit against the series it was trained on.
func (f LinearFit) Metrics(series []int) model.RegressionMetrics {
	xs, ys := indexPoints(series)
	fitted := make([]float64, len(xs))
	for i, x := range xs {
		fitted[i] = f.Intercept + f.Slope*x
	}
	return model.RegressionMetrics{
		Slope:     round2(f.Slope),
		Intercept: round2(f.Intercept),
		R2:        round2(stat.RSquaredFrom(fitted, ys, nil)),
		RMSE:      round2(rmse(fitted, ys)),
		MAE:       round2(mae(fitted, ys)),
	}
}

// PolynomialFit holds least-squares polynomial coefficients, lowest
// order first, over series indices 0..n-1.
type PolynomialFit struct {
	Coefficients []float64
}

// FitPolynomial fits a quadratic to the series via QR least squares.
func FitPolynomial(series []int) (PolynomialFit, error) {
	if len(series) <= polynomialDegree {
		return PolynomialFit{}, fmt.Errorf("series too short for degree-%d fit: %d points", polynomialDegree, len(series))
	}
	xs, ys := indexPoints(series)

	a := mat.NewDense(len(xs), polynomialDegree+1, nil)
	for i, x := range xs {
		for j := 0; j <= polynomialDegree; j++ {
			a.Set(i, j, math.Pow(x, float64(j)))
		}
	}
	b := mat.NewVecDense(len(ys), ys)

	var qr mat.QR
	qr.Factorize(a)
	coef := mat.NewVecDense(polynomialDegree+1, nil)
	if err := qr.SolveVecTo(coef, false, b); err != nil {
		return PolynomialFit{}, fmt.Errorf("polynomial solve failed: %w", err)
	}

	out := make([]float64, polynomialDegree+1)
	copy(out, coef.RawVector().Data)
	return PolynomialFit{Coefficients: out}, nil
}

// At evaluates the polynomial at x.
func (f PolynomialFit) At(x float64) float64 {
	v := 0.0
	for j, c := range f.Coefficients {
		v += c * math.Pow(x, float64(j))
	}
	return v
}

// Forecast extrapolates the polynomial for horizon steps past the end
// of a series of length n.
func (f PolynomialFit) Forecast(n, horizon int) []float64 {
	out := make([]float64, horizon)
	for i := 0; i < horizon; i++ {
		out[i] = round2(f.At(float64(n + i)))
	}
	return out
}

// Metrics evaluates the fit against the series it was trained on.
func (f PolynomialFit) Metrics(series []int) model.FitMetrics {
	xs, ys := indexPoints(series)
	fitted := make([]float64, len(xs))
	for i, x := range xs {
		fitted[i] = f.At(x)
	}
	return model.FitMetrics{
		R2:   round2(stat.RSquaredFrom(fitted, ys, nil)),
		RMSE: round2(rmse(fitted, ys)),
	}
}

// MovingAverageForecast projects the mean of the last window values
// flat across the horizon.
func MovingAverageForecast(series []int, horizon int) ([]float64, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("empty series")
	}
	window := movingAverageWindow
	if window > len(series) {
		window = len(series)
	}
	sum := 0.0
	for _, v := range series[len(series)-window:] {
		sum += float64(v)
	}
	avg := round2(sum / float64(window))

	out := make([]float64, horizon)
	for i := range out {
		out[i] = avg
	}
	return out, nil
}

// EnsembleForecast blends per-algorithm forecasts into their unweighted
// mean per year. All inputs must share the same length.
func EnsembleForecast(forecasts ...[]float64) ([]float64, error) {
	if len(forecasts) == 0 {
		return nil, fmt.Errorf("no forecasts to blend")
	}
	n := len(forecasts[0])
	for _, f := range forecasts[1:] {
		if len(f) != n {
			return nil, fmt.Errorf("forecast length mismatch: %d vs %d", len(f), n)
		}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for _, f := range forecasts {
			sum += f[i]
		}
		out[i] = round2(sum / float64(len(forecasts)))
	}
	return out, nil
}

func indexPoints(series []int) (xs, ys []float64) {
	xs = make([]float64, len(series))
	ys = make([]float64, len(series))
	for i, v := range series {
		xs[i] = float64(i)
		ys[i] = float64(v)
	}
	return xs, ys
}

func rmse(fitted, actual []float64) float64 {
	var sum float64
	for i := range fitted {
		d := fitted[i] - actual[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(fitted)))
}

func mae(fitted, actual []float64) float64 {
	var sum float64
	for i := range fitted {
		sum += math.Abs(fitted[i] - actual[i])
	}
	return sum / float64(len(fitted))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
