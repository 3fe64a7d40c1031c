package models

import "fmt"

// Accident represents a single traffic-accident record. Field order in the
// struct fixes the field order in the serialized JSON.
type Accident struct {
	ID       int    `json:"id"`
	Car      string `json:"car"`
	Location string `json:"location"`
	City     string `json:"city"`
	DateTime string `json:"date_time"` // "YYYY-MM-DD HH:MM", kept as opaque text
}

// Record is the loose form of an accident after loading it back from JSON.
// The field set is not guaranteed; values arrive as JSON scalars.
type Record map[string]any

// String returns the field value coerced to its string form, or "" when the
// field is absent or null.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// SampleAccidents returns the fixed synthetic dataset written by the generator.
func SampleAccidents() []*Accident {
	return []*Accident{
		{ID: 1, Car: "Toyota Camry", Location: "Main St, Anytown", City: "Anytown", DateTime: "2024-10-25 08:30"},
		{ID: 2, Car: "Honda Civic", Location: "Highway 101", City: "Springfield", DateTime: "2024-10-25 15:45"},
		{ID: 3, Car: "Ford F-150", Location: "Industrial Park Blvd", City: "Anytown", DateTime: "2024-10-26 10:00"},
		{ID: 4, Car: "Toyota Camry", Location: "Downtown Loop", City: "Metropolis", DateTime: "2024-10-26 19:20"},
		{ID: 5, Car: "Tesla Model 3", Location: "Residential Zone A", City: "Springfield", DateTime: "2024-10-27 06:15"},
		{ID: 6, Car: "Honda Civic", Location: "Main St, Anytown", City: "Anytown", DateTime: "2024-10-27 12:00"},
		{ID: 7, Car: "Toyota Camry", Location: "Highway 101", City: "Springfield", DateTime: "2024-10-27 17:50"},
		{ID: 8, Car: "Ford F-150", Location: "Ocean View Drive", City: "Anytown", DateTime: "2024-10-28 14:00"},
	}
}

// FrequencyResult holds the outcome of one most-frequent query.
type FrequencyResult struct {
	Key   string
	Value any // nil when no record had the key
	Count int
}

// AnalysisReport holds computed analytics from the loaded dataset
type AnalysisReport struct {
	TotalRecords  int
	SearchKey     string
	SearchTerm    string
	SearchResults []Record
	Frequencies   []FrequencyResult
}
