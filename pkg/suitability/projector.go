package suitability

import "cropwise/pkg/catalog"

const (
	irrigationCostFactor = 1.15
	lowLaborCostFactor   = 1.25
)

// Projection is the economic outlook of one crop on one field.
type Projection struct {
	Yield      float64 // tons
	Revenue    float64
	Costs      float64
	Profit     float64
	Margin     float64 // percent of revenue
	Fertilizer float64 // kg/ha
	Labor      float64 // hours
}

// ConditionMultiplier maps soil and weather scores onto [0.75, 1.25].
func ConditionMultiplier(soilScore, weatherScore float64) float64 {
	return 0.75 + 0.5*((soilScore+weatherScore)/200)
}

// ExpectedCosts scales per-hectare cost by area and resource adjustments.
// Irrigation equipment adds operating overhead; scarce labor raises hired-labor cost.
func ExpectedCosts(a catalog.Agronomy, area float64, prefs Preferences) float64 {
	cost := a.BaseCostPerHa * area
	if prefs.HasIrrigation {
		cost *= irrigationCostFactor
	}
	if prefs.LaborAvailability == AvailabilityLow {
		cost *= lowLaborCostFactor
	}
	return cost
}

// FertilizerRequirement raises the base rate as soil nitrogen falls below 100 ppm.
func FertilizerRequirement(a catalog.Agronomy, soil SoilProfile) float64 {
	return a.BaseFertilizerPerHa * (1 + (1 - soil.Nitrogen/100))
}

// Margin returns profit as a percentage of revenue, or 0 when there is no revenue.
func Margin(revenue, profit float64) float64 {
	if revenue == 0 {
		return 0
	}
	return profit / revenue * 100
}

// Project derives yield, revenue, cost and profit for a crop.
func Project(crop catalog.CropDefinition, a catalog.Agronomy, area float64, f Factors, soil SoilProfile, prefs Preferences) Projection {
	p := Projection{
		Yield: a.BaseYieldPerHa * area * ConditionMultiplier(f.Soil, f.Weather),
		Costs: ExpectedCosts(a, area, prefs),
	}
	p.Revenue = p.Yield * crop.Market.AvgPrice
	p.Profit = p.Revenue - p.Costs
	p.Margin = Margin(p.Revenue, p.Profit)
	p.Fertilizer = FertilizerRequirement(a, soil)
	p.Labor = a.BaseLaborPerHa * area
	return p
}
