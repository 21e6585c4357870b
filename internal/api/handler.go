package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"academitrend/internal/core"
	"academitrend/internal/domain/model"
	"academitrend/internal/domain/repository"
	"academitrend/internal/metrics"
)

type Handler struct {
	enrollment *core.EnrollmentService
	pathway    *core.PathwayService
	course     *core.CourseService
}

func NewHandler(enrollment *core.EnrollmentService, pathway *core.PathwayService, course *core.CourseService) *Handler {
	return &Handler{
		enrollment: enrollment,
		pathway:    pathway,
		course:     course,
	}
}

// unavailableEnvelope is returned when an assembler's model artifacts
// were not found at startup. Always HTTP 200, per the API contract.
var unavailableEnvelope = map[string]string{
	"error":  "Module not available",
	"status": "unavailable",
}

func errorEnvelope(assembler, msg string) map[string]string {
	metrics.ForecastErrors.WithLabelValues(assembler).Inc()
	return map[string]string{
		"status":  "error",
		"message": msg,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "Welcome to AcademiTrend API"})
}

func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"data": "Hello World!"})
}

type simpleForecastResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	*model.EnrollmentForecast
}

// SimplePrediction runs the four-algorithm predictor over the sample
// series. The horizon defaults to three years; a "years" query
// parameter overrides it.
func (h *Handler) SimplePrediction(w http.ResponseWriter, r *http.Request) {
	horizon := core.DefaultHorizon
	if v := r.URL.Query().Get("years"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, errorEnvelope("simple", fmt.Sprintf("invalid years parameter: %q", v)))
			return
		}
		horizon = n
	}

	forecast, err := h.enrollment.Predict(r.Context(), horizon)
	if err != nil {
		writeJSON(w, errorEnvelope("simple", fmt.Sprintf("Error running course enrollment prediction: %v", err)))
		return
	}

	writeJSON(w, simpleForecastResponse{
		Status:             "success",
		Message:            "Course enrollment prediction completed successfully",
		EnrollmentForecast: forecast,
	})
}

type pathForecastResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	*model.PathwayForecastSet
}

// PathForecast serves the pathway forecaster. When no trained models
// were loaded it answers with the unavailable envelope instead of
// failing.
func (h *Handler) PathForecast(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.pathForecastPayload())
}

func (h *Handler) pathForecastPayload() any {
	if !h.pathway.Available() {
		return unavailableEnvelope
	}
	return pathForecastResponse{
		Status:             "success",
		Message:            "Pathway forecasting completed successfully",
		PathwayForecastSet: h.pathway.Forecast(),
	}
}

type coursePredictionResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	ViewType    string `json:"view_type"`
	Description string `json:"description"`
	*model.CoursePredictionReport
	Source string `json:"source"`
}

// CoursePrediction serves the advanced predictor's detailed view.
func (h *Handler) CoursePrediction(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.coursePredictionPayload())
}

func (h *Handler) coursePredictionPayload() any {
	if !h.course.Available() {
		return unavailableEnvelope
	}
	return coursePredictionResponse{
		Status:                 "success",
		Message:                "Existing course enrollment predictions loaded successfully",
		ViewType:               "detailed",
		Description:            "Complete course enrollment predictions with all records",
		CoursePredictionReport: h.course.Detailed(),
		Source:                 "pre-generated predictions",
	}
}

type courseSummaryResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	ViewType    string `json:"view_type"`
	Description string `json:"description"`
	*model.CourseSummaryReport
	Source string `json:"source"`
}

// CourseSummary serves the advanced predictor's summary view.
func (h *Handler) CourseSummary(w http.ResponseWriter, r *http.Request) {
	if !h.course.Available() {
		writeJSON(w, unavailableEnvelope)
		return
	}
	writeJSON(w, courseSummaryResponse{
		Status:              "success",
		Message:             "Course enrollment prediction summary loaded successfully",
		ViewType:            "summary",
		Description:         "High-level statistics and overview of course enrollment predictions",
		CourseSummaryReport: h.course.Summary(),
		Source:              "pre-generated predictions",
	})
}

type filteredPredictionsResponse struct {
	Status               string                   `json:"status"`
	Message              string                   `json:"message"`
	ViewType             string                   `json:"view_type"`
	FiltersApplied       map[string]any           `json:"filters_applied"`
	Predictions          []model.PredictionRecord `json:"predictions"`
	TotalFilteredRecords int                      `json:"total_filtered_records"`
}

// FilteredPredictions serves prediction rows narrowed by the year,
// university, course, and model query parameters.
func (h *Handler) FilteredPredictions(w http.ResponseWriter, r *http.Request) {
	if !h.course.Available() {
		writeJSON(w, unavailableEnvelope)
		return
	}

	q := r.URL.Query()
	filter := core.PredictionFilter{
		University: q.Get("university"),
		Course:     q.Get("course"),
		Model:      q.Get("model"),
	}
	filters := map[string]any{
		"year":       nil,
		"university": nilIfEmpty(filter.University),
		"course":     nilIfEmpty(filter.Course),
		"model":      nilIfEmpty(filter.Model),
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, errorEnvelope("course", fmt.Sprintf("invalid year parameter: %q", v)))
			return
		}
		filter.Year = &year
		filters["year"] = year
	}

	predictions := h.course.Filtered(filter)
	writeJSON(w, filteredPredictionsResponse{
		Status:               "success",
		Message:              "Filtered course enrollment predictions loaded successfully",
		ViewType:             "filtered",
		FiltersApplied:       filters,
		Predictions:          predictions,
		TotalFilteredRecords: len(predictions),
	})
}

type historicalDataResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	System  string `json:"system"`
	*model.HistoricalReport
}

// HistoricalData serves the raw enrollment rows from the configured
// repository (Postgres when configured, bundled files otherwise).
func (h *Handler) HistoricalData(w http.ResponseWriter, r *http.Request) {
	report, err := h.course.Historical(r.Context())
	if err != nil {
		writeJSON(w, errorEnvelope("course", fmt.Sprintf("Error loading historical course data: %v", err)))
		return
	}
	writeJSON(w, historicalDataResponse{
		Status:           "success",
		Message:          "Historical course enrollment data loaded successfully",
		System:           "University Course Enrollment Prediction System",
		HistoricalReport: report,
	})
}

type pathwayDataResponse struct {
	Status   string                `json:"status"`
	Message  string                `json:"message"`
	Years    []int                 `json:"years"`
	Pathways []model.PathwaySeries `json:"pathways"`
}

// PathwayData serves the embedded pathway historical series.
func (h *Handler) PathwayData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, pathwayDataResponse{
		Status:   "success",
		Message:  "Pathway enrollment data loaded successfully",
		Years:    repository.SampleYears(),
		Pathways: repository.SampleSeries(),
	})
}

type modelAvailability struct {
	Available bool     `json:"available"`
	Count     int      `json:"count"`
	Models    []string `json:"models"`
}

type checkModelsResponse struct {
	Status            string            `json:"status"`
	PathwayModels     modelAvailability `json:"pathway_models"`
	CoursePredictions modelAvailability `json:"course_predictions"`
}

// CheckModels reports which trained model artifacts were loaded.
func (h *Handler) CheckModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.checkModelsPayload())
}

func (h *Handler) checkModelsPayload() checkModelsResponse {
	resp := checkModelsResponse{Status: "success"}

	if h.pathway.Available() {
		set := h.pathway.Forecast()
		resp.PathwayModels = modelAvailability{
			Available: true,
			Count:     len(set.Forecasts),
			Models:    set.Models,
		}
	}
	if h.course.Available() {
		report := h.course.Detailed()
		resp.CoursePredictions = modelAvailability{
			Available: true,
			Count:     report.TotalPredictions,
			Models:    report.ModelsUsed,
		}
	}
	return resp
}

type systemPayload struct {
	System          string `json:"system"`
	Dataset         string `json:"dataset"`
	AvailableModels any    `json:"available_models,omitempty"`
	Data            any    `json:"data"`
}

type combinedResponse struct {
	RequestID                   string        `json:"request_id"`
	PathwayEnrollmentPrediction systemPayload `json:"pathway_enrollment_prediction"`
	CourseEnrollmentPrediction  systemPayload `json:"course_enrollment_prediction"`
	Timestamp                   string        `json:"timestamp"`
}

// Predictions composes the pathway forecaster and the advanced
// predictor into one response. Either sub-payload may itself be an
// error or unavailable envelope; the composition still succeeds.
func (h *Handler) Predictions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, combinedResponse{
		RequestID: uuid.NewString(),
		PathwayEnrollmentPrediction: systemPayload{
			System:          "Pathway Enrollment Prediction System",
			Dataset:         "enrollment trend series",
			AvailableModels: h.checkModelsPayload().PathwayModels,
			Data:            h.pathForecastPayload(),
		},
		CourseEnrollmentPrediction: systemPayload{
			System:  "University Course Enrollment Prediction System",
			Dataset: "pre-generated predictions",
			Data:    h.coursePredictionPayload(),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
