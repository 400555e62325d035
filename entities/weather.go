package entities

import "time"

// WeatherSummary is a seasonal weather outlook recorded for a field.
type WeatherSummary struct {
	SummaryID          uint      `gorm:"primaryKey" json:"summary_id"`
	FieldID            uint      `gorm:"index" json:"field_id"`
	Date               time.Time `json:"date"`
	AverageTemperature float64   `json:"average_temperature"`
	MinTemperature     float64   `json:"min_temperature"`
	MaxTemperature     float64   `json:"max_temperature"`
	Rainfall           float64   `json:"rainfall"`
	Humidity           float64   `json:"humidity"`
	SunlightHours      float64   `json:"sunlight_hours"`
	WindSpeed          float64   `json:"wind_speed"`
	FrostDays          int       `json:"frost_days"`
	GrowingSeason      int       `json:"growing_season"`
	Source             string    `json:"source"`
	CreatedAt          time.Time `json:"created_at"`
}
