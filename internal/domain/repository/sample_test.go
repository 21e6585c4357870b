package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSeriesShape(t *testing.T) {
	series := SampleSeries()
	require.NotEmpty(t, series)

	years := SampleYears()
	assert.Equal(t, []int{2019, 2020, 2021, 2022, 2023}, years)

	for _, s := range series {
		assert.NotEmpty(t, s.Department)
		assert.NotEmpty(t, s.Pathway)
		assert.Len(t, s.Enrollments, 5, "%s/%s", s.Department, s.Pathway)
		assert.Equal(t, years, s.Years, "%s/%s", s.Department, s.Pathway)
		for _, v := range s.Enrollments {
			assert.Positive(t, v, "%s/%s", s.Department, s.Pathway)
		}
	}
}

func TestSampleSeriesReturnsCopies(t *testing.T) {
	first := SampleSeries()
	first[0].Enrollments[0] = -999
	first[0].Years[0] = 0

	second := SampleSeries()
	assert.Equal(t, 120, second[0].Enrollments[0])
	assert.Equal(t, 2019, second[0].Years[0])
}
