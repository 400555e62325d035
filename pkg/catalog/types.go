package catalog

// Texture is a soil texture class.
type Texture string

const (
	Sandy Texture = "sandy"
	Loamy Texture = "loamy"
	Clay  Texture = "clay"
)

// Demand is the market demand level of a crop.
type Demand string

const (
	DemandLow    Demand = "low"
	DemandMedium Demand = "medium"
	DemandHigh   Demand = "high"
)

// Trend is the market price trend of a crop.
type Trend string

const (
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
	TrendGrowing   Trend = "growing"
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies inside the range, bounds included.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Deviation is the distance from v to the nearest bound.
func (r Range) Deviation(v float64) float64 {
	lo := v - r.Min
	if lo < 0 {
		lo = -lo
	}
	hi := v - r.Max
	if hi < 0 {
		hi = -hi
	}
	if lo < hi {
		return lo
	}
	return hi
}

type Conditions struct {
	Temperature Range     `json:"temperature" yaml:"temperature"` // °C
	Rainfall    Range     `json:"rainfall" yaml:"rainfall"`       // mm per season
	PH          Range     `json:"ph" yaml:"ph"`
	SoilTypes   []Texture `json:"soil_types" yaml:"soil_types"`
}

// AcceptsSoil reports whether t is one of the crop's preferred textures.
func (c Conditions) AcceptsSoil(t Texture) bool {
	for _, s := range c.SoilTypes {
		if s == t {
			return true
		}
	}
	return false
}

type Market struct {
	AvgPrice float64 `json:"avg_price" yaml:"avg_price"` // per ton
	Demand   Demand  `json:"demand" yaml:"demand"`
	Trend    Trend   `json:"trend" yaml:"trend"`
}

// Traits are catalog flags consumed by the sustainability scorer and the advice rules.
type Traits struct {
	NitrogenFixing          bool `json:"nitrogen_fixing" yaml:"nitrogen_fixing"`
	OrganicMatterResponsive bool `json:"organic_matter_responsive" yaml:"organic_matter_responsive"`
	PestResistant           bool `json:"pest_resistant" yaml:"pest_resistant"`
	IntensiveManagement     bool `json:"intensive_management" yaml:"intensive_management"`
}

// CropDefinition is read-only reference data for one crop.
type CropDefinition struct {
	ID               string     `json:"id" yaml:"id"`
	Name             string     `json:"name" yaml:"name"`
	Varieties        []string   `json:"varieties" yaml:"varieties"`
	Optimal          Conditions `json:"optimal_conditions" yaml:"optimal_conditions"`
	Market           Market     `json:"market" yaml:"market"`
	GrowthDuration   int        `json:"growth_duration" yaml:"growth_duration"`     // days
	WaterRequirement float64    `json:"water_requirement" yaml:"water_requirement"` // mm
	Traits           Traits     `json:"traits" yaml:"traits"`
	Practices        []string   `json:"practices,omitempty" yaml:"practices,omitempty"`
}

// Agronomy holds per-hectare production constants for a crop.
type Agronomy struct {
	BaseYieldPerHa      float64 `json:"base_yield_per_ha"`      // t/ha
	BaseCostPerHa       float64 `json:"base_cost_per_ha"`       // currency/ha
	BaseFertilizerPerHa float64 `json:"base_fertilizer_per_ha"` // kg/ha
	BaseLaborPerHa      float64 `json:"base_labor_per_ha"`      // hours/ha
	PlantingWindow      string  `json:"planting_window"`
	HarvestWindow       string  `json:"harvest_window"`
}

// DefaultAgronomy is used for crops missing from the agronomy table.
func DefaultAgronomy() Agronomy {
	return Agronomy{
		BaseYieldPerHa:      5,
		BaseCostPerHa:       1000,
		BaseFertilizerPerHa: 100,
		BaseLaborPerHa:      15,
		PlantingWindow:      "Spring",
		HarvestWindow:       "Fall",
	}
}

func (c CropDefinition) clone() CropDefinition {
	c.Varieties = append([]string(nil), c.Varieties...)
	c.Optimal.SoilTypes = append([]Texture(nil), c.Optimal.SoilTypes...)
	c.Practices = append([]string(nil), c.Practices...)
	return c
}
