package repository

import (
	"context"

	"academitrend/internal/domain/model"
)

// EnrollmentRepository serves historical enrollment rows for the raw
// data endpoints. Implementations: Postgres (when configured) and the
// file-backed artifact store.
type EnrollmentRepository interface {
	HistoricalRecords(ctx context.Context) ([]model.EnrollmentRecord, error)
}

// ForecastRecorder persists a record of each forecast run for later
// model retraining. Recording is optional; a nil recorder disables it.
type ForecastRecorder interface {
	RecordForecast(ctx context.Context, department, pathway string, horizon int, ensemble []float64) error
}
