package core

import (
	"sort"
	"strconv"

	"academitrend/internal/domain/model"
)

// pathwayHorizon is the number of future years a pathway model is
// projected past its training cutoff.
const pathwayHorizon = 5

// ModelSource exposes the trained pathway model artifacts.
type ModelSource interface {
	PathwayModelsAvailable() bool
	PathwayModels() []model.PathwayModel
}

// PathwayService forecasts pathway enrollment by applying the trained
// model artifacts loaded at startup.
type PathwayService struct {
	source ModelSource
}

func NewPathwayService(source ModelSource) *PathwayService {
	return &PathwayService{source: source}
}

// Available reports whether the model store loaded any trained models.
// Callers check this before Forecast and answer unavailable otherwise.
func (s *PathwayService) Available() bool {
	return s.source.PathwayModelsAvailable()
}

// Forecast projects every trained model over the five years after its
// training cutoff and echoes the model's persisted metrics.
func (s *PathwayService) Forecast() *model.PathwayForecastSet {
	result := &model.PathwayForecastSet{
		Forecasts: make(map[string]map[string]float64),
		Metrics:   make(map[string]model.ModelMetrics),
	}

	seen := make(map[string]bool)
	for _, m := range s.source.PathwayModels() {
		byYear := make(map[string]float64, pathwayHorizon)
		for i := 1; i <= pathwayHorizon; i++ {
			year := m.LastYear + i
			byYear[strconv.Itoa(year)] = round2(m.Intercept + m.Slope*float64(year))
		}
		result.Forecasts[m.Pathway] = byYear
		result.Metrics[m.Pathway] = m.Metrics
		if !seen[m.Model] {
			seen[m.Model] = true
			result.Models = append(result.Models, m.Model)
		}
	}
	sort.Strings(result.Models)

	return result
}
