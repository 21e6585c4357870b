package repository

import "academitrend/internal/domain/model"

// Sample historical enrollment data, one five-year series per pathway.
// This is the fixed input of the simple predictor.
var sampleYears = []int{2019, 2020, 2021, 2022, 2023}

var sampleSeries = []model.PathwaySeries{
	{Department: "Computer Science", Pathway: "Software Engineering", Enrollments: []int{120, 135, 150, 168, 185}},
	{Department: "Computer Science", Pathway: "Data Science", Enrollments: []int{80, 95, 118, 140, 165}},
	{Department: "Computer Science", Pathway: "Cybersecurity", Enrollments: []int{60, 68, 75, 88, 96}},
	{Department: "Computer Science", Pathway: "Artificial Intelligence", Enrollments: []int{45, 58, 76, 102, 130}},
	{Department: "Business", Pathway: "Accounting", Enrollments: []int{140, 138, 135, 132, 128}},
	{Department: "Business", Pathway: "Marketing", Enrollments: []int{110, 115, 112, 118, 121}},
	{Department: "Business", Pathway: "Finance", Enrollments: []int{95, 98, 104, 108, 115}},
	{Department: "Engineering", Pathway: "Mechanical Engineering", Enrollments: []int{130, 128, 125, 124, 122}},
	{Department: "Engineering", Pathway: "Civil Engineering", Enrollments: []int{85, 88, 86, 90, 92}},
	{Department: "Engineering", Pathway: "Electrical Engineering", Enrollments: []int{100, 104, 108, 114, 119}},
	{Department: "Health Sciences", Pathway: "Nursing", Enrollments: []int{150, 160, 172, 180, 192}},
	{Department: "Health Sciences", Pathway: "Public Health", Enrollments: []int{70, 78, 85, 94, 101}},
}

// SampleYears returns the historical years covered by the sample data.
func SampleYears() []int {
	out := make([]int, len(sampleYears))
	copy(out, sampleYears)
	return out
}

// SampleSeries returns the embedded department/pathway series. Each
// entry carries its own copy of the year and enrollment slices so
// callers cannot mutate the sample data.
func SampleSeries() []model.PathwaySeries {
	out := make([]model.PathwaySeries, len(sampleSeries))
	for i, s := range sampleSeries {
		enrollments := make([]int, len(s.Enrollments))
		copy(enrollments, s.Enrollments)
		out[i] = model.PathwaySeries{
			Department:  s.Department,
			Pathway:     s.Pathway,
			Years:       SampleYears(),
			Enrollments: enrollments,
		}
	}
	return out
}
