package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"academitrend/internal/domain/model"
	"academitrend/internal/domain/repository"
)

const topRankingSize = 10

// PredictionSource exposes the generated course prediction rows.
type PredictionSource interface {
	PredictionsAvailable() bool
	PredictionRecords() []model.PredictionRecord
}

// PredictionFilter narrows the prediction rows. Zero values match
// everything; university and model match by case-insensitive
// substring, course by case-insensitive equality.
type PredictionFilter struct {
	Year       *int
	University string
	Course     string
	Model      string
}

// CourseService is the advanced predictor. It serves the prediction
// rows generated by the externally trained models (random forest,
// xgboost, prophet, arima) and the raw historical data behind them.
type CourseService struct {
	source PredictionSource
	repo   repository.EnrollmentRepository
}

func NewCourseService(source PredictionSource, repo repository.EnrollmentRepository) *CourseService {
	return &CourseService{source: source, repo: repo}
}

// Available reports whether generated predictions were loaded.
func (s *CourseService) Available() bool {
	return s.source.PredictionsAvailable()
}

// Detailed returns every prediction row with coverage counts.
func (s *CourseService) Detailed() *model.CoursePredictionReport {
	records := s.source.PredictionRecords()
	return &model.CoursePredictionReport{
		Predictions:      records,
		TotalPredictions: len(records),
		ModelsUsed:       distinctModels(records),
		YearsPredicted:   distinctYears(records),
	}
}

// Summary aggregates the prediction rows into headline statistics,
// top-10 rankings, and per-model performance.
func (s *CourseService) Summary() *model.CourseSummaryReport {
	records := s.source.PredictionRecords()

	universities := make(map[string]bool)
	courses := make(map[string]bool)
	var sumEnroll, sumApps float64
	maxEnroll := records[0].EnrollmentsPred
	minEnroll := records[0].EnrollmentsPred
	for _, r := range records {
		universities[r.University] = true
		courses[r.CourseName] = true
		sumEnroll += r.EnrollmentsPred
		sumApps += r.ApplicationsPred
		if r.EnrollmentsPred > maxEnroll {
			maxEnroll = r.EnrollmentsPred
		}
		if r.EnrollmentsPred < minEnroll {
			minEnroll = r.EnrollmentsPred
		}
	}

	perModel := make(map[string]model.ModelPerformance)
	modelSums := make(map[string]float64)
	for _, r := range records {
		p := perModel[r.Model]
		p.PredictionCount++
		perModel[r.Model] = p
		modelSums[r.Model] += r.EnrollmentsPred
	}
	for name, p := range perModel {
		p.MeanEnrollment = round2(modelSums[name] / float64(p.PredictionCount))
		perModel[name] = p
	}

	return &model.CourseSummaryReport{
		Statistics: model.CourseSummary{
			TotalPredictions:   len(records),
			UniqueUniversities: len(universities),
			UniqueCourses:      len(courses),
			ModelsUsed:         distinctModels(records),
			YearsPredicted:     distinctYears(records),
			AvgEnrollmentPred:  round2(sumEnroll / float64(len(records))),
			AvgApplicationPred: round2(sumApps / float64(len(records))),
			MaxEnrollmentPred:  maxEnroll,
			MinEnrollmentPred:  minEnroll,
		},
		TopUniversitiesByEnrollment: topMeans(records, func(r model.PredictionRecord) string { return r.University }),
		TopCoursesByEnrollment:      topMeans(records, func(r model.PredictionRecord) string { return r.CourseName }),
		ModelPerformance:            perModel,
	}
}

// Filtered returns the prediction rows matching the filter. An empty
// result is a valid answer, not an error.
func (s *CourseService) Filtered(f PredictionFilter) []model.PredictionRecord {
	out := make([]model.PredictionRecord, 0)
	for _, r := range s.source.PredictionRecords() {
		if f.Year != nil && r.Year != *f.Year {
			continue
		}
		if f.University != "" && !strings.Contains(strings.ToLower(r.University), strings.ToLower(f.University)) {
			continue
		}
		if f.Course != "" && !strings.EqualFold(r.CourseName, f.Course) {
			continue
		}
		if f.Model != "" && !strings.Contains(strings.ToLower(r.Model), strings.ToLower(f.Model)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Historical loads the raw enrollment rows from the configured
// repository and summarizes them.
func (s *CourseService) Historical(ctx context.Context) (*model.HistoricalReport, error) {
	records, err := s.repo.HistoricalRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load historical records: %w", err)
	}

	universities := make(map[string]bool)
	courses := make(map[string]bool)
	yearSet := make(map[int]bool)
	totalEnrollments := 0
	uniTotals := make(map[string]int)
	courseTotals := make(map[string]int)
	for _, r := range records {
		universities[r.University] = true
		courses[r.CourseName] = true
		yearSet[r.Year] = true
		totalEnrollments += r.Enrollments
		uniTotals[r.University] += r.Enrollments
		courseTotals[r.CourseName] += r.Enrollments
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	return &model.HistoricalReport{
		Summary: model.HistoricalSummary{
			TotalRecords:       len(records),
			UniqueUniversities: len(universities),
			UniqueCourses:      len(courses),
			YearsCovered:       years,
			TotalEnrollments:   totalEnrollments,
		},
		TopUniversitiesByEnrollments: topTotals(uniTotals),
		TopCoursesByEnrollments:      topTotals(courseTotals),
		Records:                      records,
	}, nil
}

func distinctModels(records []model.PredictionRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if !seen[r.Model] {
			seen[r.Model] = true
			out = append(out, r.Model)
		}
	}
	sort.Strings(out)
	return out
}

func distinctYears(records []model.PredictionRecord) []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range records {
		if !seen[r.Year] {
			seen[r.Year] = true
			out = append(out, r.Year)
		}
	}
	sort.Ints(out)
	return out
}

// topMeans ranks groups by mean predicted enrollment and keeps the top
// ten.
func topMeans(records []model.PredictionRecord, key func(model.PredictionRecord) string) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		k := key(r)
		sums[k] += r.EnrollmentsPred
		counts[k]++
	}

	type entry struct {
		key  string
		mean float64
	}
	entries := make([]entry, 0, len(sums))
	for k, sum := range sums {
		entries = append(entries, entry{key: k, mean: round2(sum / float64(counts[k]))})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].mean != entries[j].mean {
			return entries[i].mean > entries[j].mean
		}
		return entries[i].key < entries[j].key
	})
	if len(entries) > topRankingSize {
		entries = entries[:topRankingSize]
	}

	out := make(map[string]float64, len(entries))
	for _, e := range entries {
		out[e.key] = e.mean
	}
	return out
}

func topTotals(totals map[string]int) map[string]int {
	type entry struct {
		key   string
		total int
	}
	entries := make([]entry, 0, len(totals))
	for k, t := range totals {
		entries = append(entries, entry{key: k, total: t})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].total != entries[j].total {
			return entries[i].total > entries[j].total
		}
		return entries[i].key < entries[j].key
	})
	if len(entries) > topRankingSize {
		entries = entries[:topRankingSize]
	}

	out := make(map[string]int, len(entries))
	for _, e := range entries {
		out[e.key] = e.total
	}
	return out
}
