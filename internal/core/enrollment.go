package core

import (
	"context"
	"fmt"
	"log"

	"academitrend/internal/domain/model"
	"academitrend/internal/domain/repository"
)

// EnrollmentService is the simple multi-algorithm predictor. It runs
// four forecasts over the embedded sample series and classifies each
// pathway's trend. A recorder, when present, logs every run.
type EnrollmentService struct {
	recorder repository.ForecastRecorder
}

func NewEnrollmentService(recorder repository.ForecastRecorder) *EnrollmentService {
	return &EnrollmentService{recorder: recorder}
}

// Predict forecasts horizon future years for every sample pathway.
// It either returns a complete forecast or an error; never a partial
// result.
func (s *EnrollmentService) Predict(ctx context.Context, horizon int) (*model.EnrollmentForecast, error) {
	if horizon < 1 || horizon > MaxHorizon {
		return nil, fmt.Errorf("horizon must be between 1 and %d, got %d", MaxHorizon, horizon)
	}

	years := repository.SampleYears()
	lastYear := years[len(years)-1]
	forecastYears := make([]int, horizon)
	for i := range forecastYears {
		forecastYears[i] = lastYear + i + 1
	}

	result := &model.EnrollmentForecast{
		HistoricalYears: years,
		ForecastYears:   forecastYears,
		Historical:      make(map[string]map[string][]int),
		Predictions:     make(map[string]map[string]model.ForecastSet),
		Metrics:         make(map[string]map[string]model.AlgorithmMetrics),
		Trends:          make(map[string]map[string]model.TrendSummary),
	}

	analyzer := TrendAnalyzer{}
	for _, series := range repository.SampleSeries() {
		forecasts, metrics, err := s.forecastSeries(series.Enrollments, horizon)
		if err != nil {
			return nil, fmt.Errorf("forecast failed for %s/%s: %w", series.Department, series.Pathway, err)
		}

		trend, err := analyzer.Analyze(series.Enrollments)
		if err != nil {
			return nil, fmt.Errorf("trend analysis failed for %s/%s: %w", series.Department, series.Pathway, err)
		}

		setNested(result.Historical, series.Department, series.Pathway, series.Enrollments)
		setNested(result.Predictions, series.Department, series.Pathway, forecasts)
		setNested(result.Metrics, series.Department, series.Pathway, metrics)
		setNested(result.Trends, series.Department, series.Pathway, trend)

		if s.recorder != nil {
			if err := s.recorder.RecordForecast(ctx, series.Department, series.Pathway, horizon, forecasts.Ensemble); err != nil {
				log.Printf("Warning: failed to record forecast for %s/%s: %v", series.Department, series.Pathway, err)
			}
		}
	}

	return result, nil
}

func (s *EnrollmentService) forecastSeries(series []int, horizon int) (model.ForecastSet, model.AlgorithmMetrics, error) {
	linear, err := FitLinear(series)
	if err != nil {
		return model.ForecastSet{}, model.AlgorithmMetrics{}, err
	}

	poly, err := FitPolynomial(series)
	if err != nil {
		return model.ForecastSet{}, model.AlgorithmMetrics{}, err
	}

	movingAvg, err := MovingAverageForecast(series, horizon)
	if err != nil {
		return model.ForecastSet{}, model.AlgorithmMetrics{}, err
	}

	n := len(series)
	linearForecast := linear.Forecast(n, horizon)
	polyForecast := poly.Forecast(n, horizon)

	ensemble, err := EnsembleForecast(linearForecast, polyForecast, movingAvg)
	if err != nil {
		return model.ForecastSet{}, model.AlgorithmMetrics{}, err
	}

	forecasts := model.ForecastSet{
		LinearRegression:     linearForecast,
		PolynomialRegression: polyForecast,
		MovingAverage:        movingAvg,
		Ensemble:             ensemble,
	}
	metrics := model.AlgorithmMetrics{
		LinearRegression:     linear.Metrics(series),
		PolynomialRegression: poly.Metrics(series),
	}
	return forecasts, metrics, nil
}

func setNested[V any](m map[string]map[string]V, outer, inner string, v V) {
	if m[outer] == nil {
		m[outer] = make(map[string]V)
	}
	m[outer][inner] = v
}
