package suitability

import (
	"math"

	"cropwise/pkg/catalog"
)

// Point budgets of each scorer term.
const (
	soilPHPoints        = 30.0
	soilTypeMatchPoints = 25.0
	soilTypeOtherPoints = 10.0
	soilNitrogenCap     = 25.0
	soilOrganicCap      = 20.0

	weatherTempPoints   = 40.0
	weatherRainPoints   = 35.0
	weatherSeasonPoints = 25.0

	marketPriceCap = 30.0

	sustainabilityBase = 50.0

	// organicMatterRich is the organic matter percentage above which responsive crops earn a bonus.
	organicMatterRich = 3.0
)

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

// rangeTerm awards full points inside r, otherwise points minus penalty per unit of
// distance to the nearest bound, floored at zero.
func rangeTerm(r catalog.Range, v, points, penalty float64) float64 {
	if r.Contains(v) {
		return points
	}
	return math.Max(0, points-r.Deviation(v)*penalty)
}

// SoilScore rates pH fit, texture match and nutrient levels.
func SoilScore(crop catalog.CropDefinition, soil SoilProfile) float64 {
	score := rangeTerm(crop.Optimal.PH, soil.PH, soilPHPoints, 10)

	if crop.Optimal.AcceptsSoil(soil.Texture) {
		score += soilTypeMatchPoints
	} else {
		score += soilTypeOtherPoints
	}

	score += math.Min(soilNitrogenCap, soil.Nitrogen/2)
	score += math.Min(soilOrganicCap, soil.OrganicMatter*5)
	return clamp(score)
}

// WeatherScore rates temperature, rainfall and season length.
func WeatherScore(crop catalog.CropDefinition, w WeatherProfile) float64 {
	score := rangeTerm(crop.Optimal.Temperature, w.AverageTemperature, weatherTempPoints, 2)
	score += rangeTerm(crop.Optimal.Rainfall, w.Rainfall, weatherRainPoints, 1.0/20)

	if crop.GrowthDuration <= 0 || w.GrowingSeason >= crop.GrowthDuration {
		score += weatherSeasonPoints
	} else if w.GrowingSeason > 0 {
		score += float64(w.GrowingSeason) / float64(crop.GrowthDuration) * weatherSeasonPoints
	}
	return clamp(score)
}

// MarketScore rates demand, price trend and price level.
func MarketScore(crop catalog.CropDefinition) float64 {
	var score float64
	switch crop.Market.Demand {
	case catalog.DemandHigh:
		score += 40
	case catalog.DemandMedium:
		score += 25
	default:
		score += 10
	}
	switch crop.Market.Trend {
	case catalog.TrendGrowing:
		score += 30
	case catalog.TrendStable:
		score += 20
	default:
		score += 5
	}
	score += math.Min(marketPriceCap, crop.Market.AvgPrice/50)
	return clamp(score)
}

// SustainabilityScore rates water efficiency and soil health impact.
func SustainabilityScore(crop catalog.CropDefinition, soil SoilProfile) float64 {
	score := sustainabilityBase

	switch {
	case crop.WaterRequirement < 400:
		score += 20
	case crop.WaterRequirement < 600:
		score += 10
	}
	if crop.Traits.NitrogenFixing {
		score += 20
	}
	if crop.Traits.OrganicMatterResponsive && soil.OrganicMatter > organicMatterRich {
		score += 10
	}
	if crop.Traits.PestResistant {
		score += 10
	}
	return clamp(score)
}

// ScoreFactors runs all four scorers. They are independent of one another.
func ScoreFactors(crop catalog.CropDefinition, soil SoilProfile, w WeatherProfile) Factors {
	return Factors{
		Soil:           SoilScore(crop, soil),
		Weather:        WeatherScore(crop, w),
		Market:         MarketScore(crop),
		Sustainability: SustainabilityScore(crop, soil),
	}
}
