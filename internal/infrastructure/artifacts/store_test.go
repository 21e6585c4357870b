package artifacts

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadsArtifacts(t *testing.T) {
	store := NewStore(filepath.Join("testdata", "models"), filepath.Join("testdata", "data"))

	require.True(t, store.PathwayModelsAvailable())
	models := store.PathwayModels()
	require.Len(t, models, 2)
	assert.Equal(t, "Software Engineering", models[0].Pathway)
	assert.Equal(t, 2023, models[0].LastYear)
	assert.InDelta(t, 0.97, models[0].Metrics.R2, 1e-9)

	require.True(t, store.PredictionsAvailable())
	predictions := store.PredictionRecords()
	require.Len(t, predictions, 4)
	assert.Equal(t, 2024, predictions[0].Year)
	assert.Equal(t, "random_forest", predictions[0].Model)
	assert.InDelta(t, 312.4, predictions[0].EnrollmentsPred, 1e-9)
}

func TestStoreEnrollmentRecords(t *testing.T) {
	store := NewStore(filepath.Join("testdata", "models"), filepath.Join("testdata", "data"))

	records, err := store.HistoricalRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Empty optional columns become nil, not zero.
	assert.NotNil(t, records[0].AvgStartSal)
	assert.InDelta(t, 96500, *records[0].AvgStartSal, 1e-9)
	assert.Nil(t, records[1].AvgStartSal)
	assert.Nil(t, records[2].GraduateEmploymentRate)
}

func TestStoreMissingDirectories(t *testing.T) {
	store := NewStore(filepath.Join("testdata", "missing"), filepath.Join("testdata", "missing"))

	assert.False(t, store.PathwayModelsAvailable())
	assert.False(t, store.PredictionsAvailable())

	_, err := store.HistoricalRecords(context.Background())
	assert.Error(t, err)
}

func TestStorePartialArtifacts(t *testing.T) {
	// Models present, data missing: only the pathway capability loads.
	store := NewStore(filepath.Join("testdata", "models"), filepath.Join("testdata", "missing"))

	assert.True(t, store.PathwayModelsAvailable())
	assert.False(t, store.PredictionsAvailable())
}
