package model

// CoursePredictionReport is the detailed view of the advanced
// predictor: every generated prediction row plus coverage counts.
type CoursePredictionReport struct {
	Predictions      []PredictionRecord `json:"predictions"`
	TotalPredictions int                `json:"total_predictions"`
	ModelsUsed       []string           `json:"models_used"`
	YearsPredicted   []int              `json:"years_predicted"`
}

// CourseSummary holds the headline statistics of the generated
// predictions.
type CourseSummary struct {
	TotalPredictions   int      `json:"total_predictions"`
	UniqueUniversities int      `json:"unique_universities"`
	UniqueCourses      int      `json:"unique_courses"`
	ModelsUsed         []string `json:"models_used"`
	YearsPredicted     []int    `json:"years_predicted"`
	AvgEnrollmentPred  float64  `json:"avg_enrollment_pred"`
	AvgApplicationPred float64  `json:"avg_application_pred"`
	MaxEnrollmentPred  float64  `json:"max_enrollment_pred"`
	MinEnrollmentPred  float64  `json:"min_enrollment_pred"`
}

// ModelPerformance aggregates the predictions of one model.
type ModelPerformance struct {
	MeanEnrollment  float64 `json:"mean_enrollment"`
	PredictionCount int     `json:"prediction_count"`
}

// CourseSummaryReport is the summary view of the advanced predictor.
type CourseSummaryReport struct {
	Statistics                  CourseSummary               `json:"summary_statistics"`
	TopUniversitiesByEnrollment map[string]float64          `json:"top_universities_by_enrollment"`
	TopCoursesByEnrollment      map[string]float64          `json:"top_courses_by_enrollment"`
	ModelPerformance            map[string]ModelPerformance `json:"model_performance_summary"`
}

// HistoricalSummary holds the headline statistics of the raw
// enrollment data set.
type HistoricalSummary struct {
	TotalRecords       int   `json:"total_records"`
	UniqueUniversities int   `json:"unique_universities"`
	UniqueCourses      int   `json:"unique_courses"`
	YearsCovered       []int `json:"years_covered"`
	TotalEnrollments   int   `json:"total_enrollments"`
}

// HistoricalReport is the raw-data view: every enrollment record plus
// summary statistics and the top-10 rankings.
type HistoricalReport struct {
	Summary                      HistoricalSummary  `json:"summary_statistics"`
	TopUniversitiesByEnrollments map[string]int     `json:"top_universities_by_enrollments"`
	TopCoursesByEnrollments      map[string]int     `json:"top_courses_by_enrollments"`
	Records                      []EnrollmentRecord `json:"enrollments_data"`
}
