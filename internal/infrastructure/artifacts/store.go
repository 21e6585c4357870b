// Package artifacts loads the read-only model and data artifacts the
// training pipeline leaves on disk: trained pathway models, generated
// course predictions, and raw historical enrollments. Everything is
// loaded once at startup and never mutated, so handlers read it
// without synchronization.
package artifacts

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"academitrend/internal/domain/model"
)

const (
	pathwayModelsFile = "pathway_models.json"
	predictionsFile   = "predictions.csv"
	enrollmentsFile   = "enrollments.csv"
)

type Store struct {
	pathwayModels []model.PathwayModel
	predictions   []model.PredictionRecord
	enrollments   []model.EnrollmentRecord
}

// NewStore loads whatever artifacts exist under modelDir and dataDir.
// Missing files are not fatal: the matching capability is reported
// unavailable and the endpoints answer with the unavailable envelope.
func NewStore(modelDir, dataDir string) *Store {
	s := &Store{}

	models, err := loadPathwayModels(filepath.Join(modelDir, pathwayModelsFile))
	if err != nil {
		log.Printf("Warning: pathway models not loaded: %v", err)
	} else {
		s.pathwayModels = models
		log.Printf("Loaded %d pathway models from %s", len(models), modelDir)
	}

	predictions, err := loadPredictions(filepath.Join(dataDir, predictionsFile))
	if err != nil {
		log.Printf("Warning: course predictions not loaded: %v", err)
	} else {
		s.predictions = predictions
		log.Printf("Loaded %d course predictions from %s", len(predictions), dataDir)
	}

	enrollments, err := loadEnrollments(filepath.Join(dataDir, enrollmentsFile))
	if err != nil {
		log.Printf("Warning: historical enrollments not loaded: %v", err)
	} else {
		s.enrollments = enrollments
		log.Printf("Loaded %d enrollment records from %s", len(enrollments), dataDir)
	}

	return s
}

// PathwayModelsAvailable reports whether trained pathway models were
// found at startup.
func (s *Store) PathwayModelsAvailable() bool {
	return len(s.pathwayModels) > 0
}

func (s *Store) PathwayModels() []model.PathwayModel {
	return s.pathwayModels
}

// PredictionsAvailable reports whether generated course predictions
// were found at startup.
func (s *Store) PredictionsAvailable() bool {
	return len(s.predictions) > 0
}

func (s *Store) PredictionRecords() []model.PredictionRecord {
	return s.predictions
}

// HistoricalRecords implements repository.EnrollmentRepository over the
// bundled enrollments file.
func (s *Store) HistoricalRecords(ctx context.Context) ([]model.EnrollmentRecord, error) {
	if len(s.enrollments) == 0 {
		return nil, fmt.Errorf("enrollments file not loaded")
	}
	return s.enrollments, nil
}

func loadPathwayModels(path string) ([]model.PathwayModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var models []model.PathwayModel
	if err := json.NewDecoder(f).Decode(&models); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("%s contains no models", path)
	}
	return models, nil
}

func loadPredictions(path string) ([]model.PredictionRecord, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	col := columnIndex(header)
	required := []string{"year", "university", "course_name", "model"}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%s missing column %q", path, name)
		}
	}

	records := make([]model.PredictionRecord, 0, len(rows))
	for i, row := range rows {
		year, err := strconv.Atoi(row[col["year"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid year: %w", path, i+2, err)
		}
		records = append(records, model.PredictionRecord{
			Year:             year,
			University:       row[col["university"]],
			CourseName:       row[col["course_name"]],
			EnrollmentsPred:  floatColumn(row, col, "enrollments_pred"),
			ApplicationsPred: floatColumn(row, col, "applications_pred"),
			Model:            row[col["model"]],
		})
	}
	return records, nil
}

func loadEnrollments(path string) ([]model.EnrollmentRecord, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	col := columnIndex(header)
	required := []string{"university", "course_name", "year", "enrollments"}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%s missing column %q", path, name)
		}
	}

	records := make([]model.EnrollmentRecord, 0, len(rows))
	for i, row := range rows {
		year, err := strconv.Atoi(row[col["year"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid year: %w", path, i+2, err)
		}
		enrollments, err := strconv.Atoi(row[col["enrollments"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid enrollments: %w", path, i+2, err)
		}
		records = append(records, model.EnrollmentRecord{
			University:             row[col["university"]],
			CourseName:             row[col["course_name"]],
			Year:                   year,
			Enrollments:            enrollments,
			AvgStartSal:            optionalFloat(row, col, "avg_start_sal"),
			GraduateEmploymentRate: optionalFloat(row, col, "graduate_employment_rate"),
		})
	}
	return records, nil
}

func readCSV(path string) (rows [][]string, header []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err = r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s contains no rows", path)
	}
	return rows, header, nil
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	return col
}

func floatColumn(row []string, col map[string]int, name string) float64 {
	i, ok := col[name]
	if !ok || row[i] == "" {
		return 0
	}
	v, err := strconv.ParseFloat(row[i], 64)
	if err != nil {
		return 0
	}
	return v
}

func optionalFloat(row []string, col map[string]int, name string) *float64 {
	i, ok := col[name]
	if !ok || row[i] == "" {
		return nil
	}
	v, err := strconv.ParseFloat(row[i], 64)
	if err != nil {
		return nil
	}
	return &v
}
