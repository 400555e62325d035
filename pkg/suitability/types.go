package suitability

import (
	"strings"

	"github.com/rotisserie/eris"

	"cropwise/pkg/catalog"
)

type Drainage string

const (
	DrainagePoor      Drainage = "poor"
	DrainageModerate  Drainage = "moderate"
	DrainageGood      Drainage = "good"
	DrainageExcellent Drainage = "excellent"
)

type Experience string

const (
	Beginner     Experience = "beginner"
	Intermediate Experience = "intermediate"
	Expert       Experience = "expert"
)

// Availability is a low|medium|high resource level.
type Availability string

const (
	AvailabilityLow    Availability = "low"
	AvailabilityMedium Availability = "medium"
	AvailabilityHigh   Availability = "high"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// SoilProfile is a soil test snapshot for one analysis run.
type SoilProfile struct {
	PH            float64         `json:"ph" yaml:"ph"`
	Nitrogen      float64         `json:"nitrogen" yaml:"nitrogen"`     // ppm
	Phosphorus    float64         `json:"phosphorus" yaml:"phosphorus"` // ppm
	Potassium     float64         `json:"potassium" yaml:"potassium"`   // ppm
	OrganicMatter float64         `json:"organic_matter" yaml:"organic_matter"`
	Moisture      float64         `json:"moisture" yaml:"moisture"`
	Temperature   float64         `json:"temperature" yaml:"temperature"`
	Salinity      float64         `json:"salinity" yaml:"salinity"`
	Texture       catalog.Texture `json:"texture" yaml:"texture"`
	Drainage      Drainage        `json:"drainage" yaml:"drainage"`
}

// WeatherProfile is a seasonal weather snapshot for one analysis run.
type WeatherProfile struct {
	AverageTemperature float64 `json:"average_temperature" yaml:"average_temperature"`
	MinTemperature     float64 `json:"min_temperature" yaml:"min_temperature"`
	MaxTemperature     float64 `json:"max_temperature" yaml:"max_temperature"`
	Rainfall           float64 `json:"rainfall" yaml:"rainfall"` // mm per season
	Humidity           float64 `json:"humidity" yaml:"humidity"`
	SunlightHours      float64 `json:"sunlight_hours" yaml:"sunlight_hours"`
	WindSpeed          float64 `json:"wind_speed" yaml:"wind_speed"`
	FrostDays          int     `json:"frost_days" yaml:"frost_days"`
	GrowingSeason      int     `json:"growing_season" yaml:"growing_season"` // days
}

type Preferences struct {
	FocusOnProfit         bool         `json:"focus_on_profit" yaml:"focus_on_profit"`
	FocusOnSustainability bool         `json:"focus_on_sustainability" yaml:"focus_on_sustainability"`
	FocusOnRiskReduction  bool         `json:"focus_on_risk_reduction" yaml:"focus_on_risk_reduction"`
	FarmingExperience     Experience   `json:"farming_experience" yaml:"farming_experience"`
	HasIrrigation         bool         `json:"has_irrigation" yaml:"has_irrigation"`
	LaborAvailability     Availability `json:"labor_availability" yaml:"labor_availability"`
	Budget                float64      `json:"budget" yaml:"budget"`
}

// DefaultPreferences mirrors the initial state of the selection form.
func DefaultPreferences() Preferences {
	return Preferences{
		FocusOnProfit:     true,
		FarmingExperience: Intermediate,
		LaborAvailability: AvailabilityMedium,
		Budget:            50000,
	}
}

// FieldContext identifies the field under analysis.
type FieldContext struct {
	FieldID     string          `json:"field_id" yaml:"field_id"`
	Area        float64         `json:"area" yaml:"area"` // hectares
	SoilTexture catalog.Texture `json:"soil_texture" yaml:"soil_texture"`
}

// Request is the complete input of one analysis.
type Request struct {
	Field       FieldContext   `json:"field" yaml:"field"`
	Soil        SoilProfile    `json:"soil" yaml:"soil"`
	Weather     WeatherProfile `json:"weather" yaml:"weather"`
	Preferences Preferences    `json:"preferences" yaml:"preferences"`
}

type Factors struct {
	Soil           float64 `json:"soil"`
	Weather        float64 `json:"weather"`
	Market         float64 `json:"market"`
	Sustainability float64 `json:"sustainability"`
}

// CropSuitability is the analysis result for one crop.
type CropSuitability struct {
	CropID                string    `json:"crop_id"`
	CropName              string    `json:"crop_name"`
	Variety               string    `json:"variety,omitempty"`
	SuitabilityScore      float64   `json:"suitability_score"`
	Confidence            float64   `json:"confidence"`
	Factors               Factors   `json:"factors"`
	ExpectedYield         float64   `json:"expected_yield"` // tons
	ExpectedRevenue       float64   `json:"expected_revenue"`
	ExpectedCosts         float64   `json:"expected_costs"`
	ExpectedProfit        float64   `json:"expected_profit"`
	ProfitMargin          float64   `json:"profit_margin"` // percent of revenue
	RiskLevel             RiskLevel `json:"risk_level"`
	WaterRequirement      float64   `json:"water_requirement"`      // mm
	FertilizerRequirement float64   `json:"fertilizer_requirement"` // kg/ha
	LaborRequirement      float64   `json:"labor_requirement"`      // hours
	GrowthDuration        int       `json:"growth_duration"`        // days
	PlantingWindow        string    `json:"planting_window"`
	HarvestWindow         string    `json:"harvest_window"`
	Advantages            []string  `json:"advantages"`
	Challenges            []string  `json:"challenges"`
	Recommendations       []string  `json:"recommendations"`
}

// ParseDrainage validates a drainage class.
func ParseDrainage(s string) (Drainage, error) {
	switch d := Drainage(strings.ToLower(strings.TrimSpace(s))); d {
	case DrainagePoor, DrainageModerate, DrainageGood, DrainageExcellent:
		return d, nil
	}
	return "", eris.Errorf("unknown drainage %q", s)
}

// ParseExperience validates a farming experience level.
func ParseExperience(s string) (Experience, error) {
	switch e := Experience(strings.ToLower(strings.TrimSpace(s))); e {
	case Beginner, Intermediate, Expert:
		return e, nil
	}
	return "", eris.Errorf("unknown experience %q", s)
}

// ParseAvailability validates a low|medium|high level.
func ParseAvailability(s string) (Availability, error) {
	switch a := Availability(strings.ToLower(strings.TrimSpace(s))); a {
	case AvailabilityLow, AvailabilityMedium, AvailabilityHigh:
		return a, nil
	}
	return "", eris.Errorf("unknown availability %q", s)
}
