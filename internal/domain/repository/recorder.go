package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresForecastRecorder writes each forecast run into the
// forecast_log table so the training pipeline can audit drift between
// the served forecasts and later retrained models.
type PostgresForecastRecorder struct {
	db *sqlx.DB
}

func NewPostgresForecastRecorder(db *sqlx.DB) *PostgresForecastRecorder {
	return &PostgresForecastRecorder{db: db}
}

func (r *PostgresForecastRecorder) RecordForecast(
	ctx context.Context,
	department, pathway string,
	horizon int,
	ensemble []float64,
) error {
	const query = `
		INSERT INTO forecast_log (
			department, pathway, horizon, ensemble, recorded_at
		) VALUES (
			$1, $2, $3, $4, NOW()
		)`

	_, err := r.db.ExecContext(ctx, query,
		department, pathway, horizon, pq.Array(ensemble),
	)
	if err != nil {
		return fmt.Errorf("failed to record forecast: %w", err)
	}
	return nil
}
