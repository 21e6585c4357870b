package model

// PathwaySeries is the historical enrollment series for one pathway
// within a department, one value per year.
type PathwaySeries struct {
	Department  string `json:"department"`
	Pathway     string `json:"pathway"`
	Years       []int  `json:"years"`
	Enrollments []int  `json:"enrollments"`
}

// ForecastSet holds the predicted values of every algorithm for one
// pathway series. All slices have the same length, one value per
// forecast year.
type ForecastSet struct {
	LinearRegression     []float64 `json:"linear_regression"`
	PolynomialRegression []float64 `json:"polynomial_regression"`
	MovingAverage        []float64 `json:"moving_average"`
	Ensemble             []float64 `json:"ensemble"`
}

// RegressionMetrics describes the fit quality of a regression over the
// historical series.
type RegressionMetrics struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
	RMSE      float64 `json:"rmse"`
	MAE       float64 `json:"mae"`
}

// FitMetrics is the reduced metric set reported for non-linear fits.
type FitMetrics struct {
	R2   float64 `json:"r2"`
	RMSE float64 `json:"rmse"`
}

// AlgorithmMetrics bundles the per-algorithm fit metrics for one series.
type AlgorithmMetrics struct {
	LinearRegression     RegressionMetrics `json:"linear_regression"`
	PolynomialRegression FitMetrics        `json:"polynomial_regression"`
}

// TrendSummary classifies the direction and strength of a historical
// series. Growth values are percentages, volatility is the standard
// deviation of year-over-year percentage changes.
type TrendSummary struct {
	Direction       string  `json:"direction"`
	TotalGrowthPct  float64 `json:"total_growth_pct"`
	AnnualGrowthPct float64 `json:"annual_growth_pct"`
	Volatility      float64 `json:"volatility"`
}

// EnrollmentForecast is the full output of the simple predictor.
// Every map is keyed department -> pathway.
type EnrollmentForecast struct {
	HistoricalYears []int                                  `json:"historical_years"`
	ForecastYears   []int                                  `json:"forecast_years"`
	Historical      map[string]map[string][]int            `json:"historical_data"`
	Predictions     map[string]map[string]ForecastSet      `json:"predictions"`
	Metrics         map[string]map[string]AlgorithmMetrics `json:"metrics"`
	Trends          map[string]map[string]TrendSummary     `json:"trend_analysis"`
}

// ModelMetrics is the performance record persisted next to a trained
// pathway model by the training pipeline.
type ModelMetrics struct {
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
	R2   float64 `json:"r2"`
}

// PathwayModel is a trained forecasting model artifact loaded from the
// model store. Slope and intercept are over calendar years.
type PathwayModel struct {
	Pathway       string       `json:"pathway"`
	DegreeProgram string       `json:"degree_program"`
	Model         string       `json:"model"`
	Slope         float64      `json:"slope"`
	Intercept     float64      `json:"intercept"`
	LastYear      int          `json:"last_year"`
	Metrics       ModelMetrics `json:"metrics"`
}

// PathwayForecastSet is the output of the pathway forecaster: a
// year -> value mapping per pathway plus each model's own metrics.
type PathwayForecastSet struct {
	Forecasts map[string]map[string]float64 `json:"forecasts"`
	Metrics   map[string]ModelMetrics       `json:"metrics"`
	Models    []string                      `json:"models_used"`
}

// PredictionRecord is one row of the advanced predictor output: a
// single (year, university, course, model) prediction.
type PredictionRecord struct {
	Year             int     `json:"year"`
	University       string  `json:"university"`
	CourseName       string  `json:"course_name"`
	EnrollmentsPred  float64 `json:"enrollments_pred"`
	ApplicationsPred float64 `json:"applications_pred"`
	Model            string  `json:"model"`
}

// EnrollmentRecord is one historical enrollment row from the raw data
// set (repository or data files).
type EnrollmentRecord struct {
	University             string   `json:"university" db:"university"`
	CourseName             string   `json:"course_name" db:"course_name"`
	Year                   int      `json:"year" db:"year"`
	Enrollments            int      `json:"enrollments" db:"enrollments"`
	AvgStartSal            *float64 `json:"avg_start_sal" db:"avg_start_sal"`
	GraduateEmploymentRate *float64 `json:"graduate_employment_rate" db:"graduate_employment_rate"`
}
