package entities

import "time"

// SoilSample is one laboratory soil test for a field.
type SoilSample struct {
	SampleID      uint      `gorm:"primaryKey" json:"sample_id"`
	FieldID       uint      `gorm:"index" json:"field_id"`
	Date          time.Time `json:"date"`
	PH            float64   `json:"ph"`
	Nitrogen      float64   `json:"nitrogen"`   // ppm
	Phosphorus    float64   `json:"phosphorus"` // ppm
	Potassium     float64   `json:"potassium"`  // ppm
	OrganicMatter float64   `json:"organic_matter"`
	Moisture      float64   `json:"moisture"`
	Temperature   float64   `json:"temperature"`
	Salinity      float64   `json:"salinity"`
	Texture       string    `json:"texture"`
	Drainage      string    `json:"drainage"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
}
