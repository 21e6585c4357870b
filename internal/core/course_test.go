package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academitrend/internal/domain/model"
)

type fakePredictionSource struct {
	records []model.PredictionRecord
}

func (s *fakePredictionSource) PredictionsAvailable() bool { return len(s.records) > 0 }

func (s *fakePredictionSource) PredictionRecords() []model.PredictionRecord { return s.records }

type fakeEnrollmentRepo struct {
	records []model.EnrollmentRecord
	err     error
}

func (r *fakeEnrollmentRepo) HistoricalRecords(ctx context.Context) ([]model.EnrollmentRecord, error) {
	return r.records, r.err
}

func testPredictions() []model.PredictionRecord {
	return []model.PredictionRecord{
		{Year: 2024, University: "University of Colombo", CourseName: "Computer Science", EnrollmentsPred: 300, ApplicationsPred: 1800, Model: "random_forest"},
		{Year: 2024, University: "University of Colombo", CourseName: "Computer Science", EnrollmentsPred: 310, ApplicationsPred: 1850, Model: "xgboost"},
		{Year: 2025, University: "University of Peradeniya", CourseName: "Engineering", EnrollmentsPred: 280, ApplicationsPred: 1500, Model: "prophet"},
		{Year: 2025, University: "University of Peradeniya", CourseName: "Engineering", EnrollmentsPred: 270, ApplicationsPred: 1450, Model: "arima"},
	}
}

func TestCourseDetailed(t *testing.T) {
	svc := NewCourseService(&fakePredictionSource{records: testPredictions()}, &fakeEnrollmentRepo{})
	require.True(t, svc.Available())

	report := svc.Detailed()
	assert.Equal(t, 4, report.TotalPredictions)
	assert.Equal(t, []string{"arima", "prophet", "random_forest", "xgboost"}, report.ModelsUsed)
	assert.Equal(t, []int{2024, 2025}, report.YearsPredicted)
	assert.Len(t, report.Predictions, 4)
}

func TestCourseSummary(t *testing.T) {
	svc := NewCourseService(&fakePredictionSource{records: testPredictions()}, &fakeEnrollmentRepo{})

	report := svc.Summary()
	assert.Equal(t, 4, report.Statistics.TotalPredictions)
	assert.Equal(t, 2, report.Statistics.UniqueUniversities)
	assert.Equal(t, 2, report.Statistics.UniqueCourses)
	assert.InDelta(t, 290, report.Statistics.AvgEnrollmentPred, 1e-9)
	assert.InDelta(t, 310, report.Statistics.MaxEnrollmentPred, 1e-9)
	assert.InDelta(t, 270, report.Statistics.MinEnrollmentPred, 1e-9)

	assert.InDelta(t, 305, report.TopUniversitiesByEnrollment["University of Colombo"], 1e-9)
	assert.Equal(t, 1, report.ModelPerformance["prophet"].PredictionCount)
	assert.InDelta(t, 280, report.ModelPerformance["prophet"].MeanEnrollment, 1e-9)
}

func TestCourseFiltered(t *testing.T) {
	svc := NewCourseService(&fakePredictionSource{records: testPredictions()}, &fakeEnrollmentRepo{})

	year := 2024
	tests := []struct {
		name   string
		filter PredictionFilter
		want   int
	}{
		{name: "no filter", filter: PredictionFilter{}, want: 4},
		{name: "by year", filter: PredictionFilter{Year: &year}, want: 2},
		{name: "university substring", filter: PredictionFilter{University: "peradeniya"}, want: 2},
		{name: "course exact case-insensitive", filter: PredictionFilter{Course: "computer science"}, want: 2},
		{name: "course substring does not match", filter: PredictionFilter{Course: "computer"}, want: 0},
		{name: "model substring", filter: PredictionFilter{Model: "forest"}, want: 1},
		{name: "combined", filter: PredictionFilter{Year: &year, Model: "xgboost"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, svc.Filtered(tt.filter), tt.want)
		})
	}
}

func TestCourseHistorical(t *testing.T) {
	sal := 85000.0
	repo := &fakeEnrollmentRepo{records: []model.EnrollmentRecord{
		{University: "University of Colombo", CourseName: "Computer Science", Year: 2022, Enrollments: 286, AvgStartSal: &sal},
		{University: "University of Colombo", CourseName: "Computer Science", Year: 2023, Enrollments: 298},
		{University: "University of Moratuwa", CourseName: "Information Technology", Year: 2023, Enrollments: 341},
	}}
	svc := NewCourseService(&fakePredictionSource{}, repo)

	report, err := svc.Historical(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Summary.TotalRecords)
	assert.Equal(t, 2, report.Summary.UniqueUniversities)
	assert.Equal(t, []int{2022, 2023}, report.Summary.YearsCovered)
	assert.Equal(t, 925, report.Summary.TotalEnrollments)
	assert.Equal(t, 584, report.TopUniversitiesByEnrollments["University of Colombo"])
}

func TestCourseHistoricalError(t *testing.T) {
	repo := &fakeEnrollmentRepo{err: fmt.Errorf("connection refused")}
	svc := NewCourseService(&fakePredictionSource{}, repo)

	_, err := svc.Historical(context.Background())
	assert.Error(t, err)
}
