package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academitrend/internal/domain/model"
)

type fakeModelSource struct {
	models []model.PathwayModel
}

func (s *fakeModelSource) PathwayModelsAvailable() bool { return len(s.models) > 0 }

func (s *fakeModelSource) PathwayModels() []model.PathwayModel { return s.models }

func TestPathwayServiceUnavailable(t *testing.T) {
	svc := NewPathwayService(&fakeModelSource{})
	assert.False(t, svc.Available())
}

func TestPathwayForecast(t *testing.T) {
	svc := NewPathwayService(&fakeModelSource{models: []model.PathwayModel{
		{
			Pathway:   "Data Science",
			Model:     "linear_regression",
			Slope:     2,
			Intercept: -3900, // 2*2024 - 3900 = 148
			LastYear:  2023,
			Metrics:   model.ModelMetrics{RMSE: 4.87, MAE: 3.92, R2: 0.95},
		},
		{
			Pathway:   "Accounting",
			Model:     "ridge_regression",
			Slope:     -1,
			Intercept: 2154,
			LastYear:  2023,
			Metrics:   model.ModelMetrics{RMSE: 1.12, MAE: 0.94, R2: 0.99},
		},
	}})
	require.True(t, svc.Available())

	set := svc.Forecast()
	require.Len(t, set.Forecasts, 2)

	ds := set.Forecasts["Data Science"]
	require.Len(t, ds, 5)
	assert.InDelta(t, 148, ds["2024"], 1e-9)
	assert.InDelta(t, 156, ds["2028"], 1e-9)

	acc := set.Forecasts["Accounting"]
	assert.InDelta(t, 130, acc["2024"], 1e-9)

	assert.InDelta(t, 0.95, set.Metrics["Data Science"].R2, 1e-9)
	assert.Equal(t, []string{"linear_regression", "ridge_regression"}, set.Models)
}
