package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"academitrend/internal/domain/model"
)

type PostgresRepository struct {
	DB *sqlx.DB
}

func NewPostgresRepository(connStr string) *PostgresRepository {
	db := sqlx.MustConnect("postgres", connStr)
	return &PostgresRepository{DB: db}
}

// HistoricalRecords returns every historical enrollment row, ordered
// for stable responses.
func (r *PostgresRepository) HistoricalRecords(ctx context.Context) ([]model.EnrollmentRecord, error) {
	const query = `
		SELECT
			university,
			course_name,
			year,
			enrollments,
			avg_start_sal,
			graduate_employment_rate
		FROM enrollments
		ORDER BY university, course_name, year`

	var records []model.EnrollmentRecord
	if err := r.DB.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to query enrollment records: %w", err)
	}
	return records, nil
}
