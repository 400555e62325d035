package suitability

import "cropwise/pkg/catalog"

const (
	lowNitrogenPPM        = 40.0
	waterEfficientMM      = 500.0
	highWaterMM           = 600.0
	irrigationThresholdMM = 500.0
)

// Advice texts.
const (
	AdvExcellentConditions = "Excellent growing conditions"
	AdvHighYield           = "High yield potential"
	AdvStrongDemand        = "Strong market demand"
	AdvPositiveTrend       = "Positive price trend"
	AdvWaterEfficient      = "Water efficient crop"

	ChlSuboptimal    = "Suboptimal growing conditions"
	ChlLimitedDemand = "Limited market demand"
	ChlHighWater     = "High water requirements"
	ChlIntensive     = "Requires intensive management"

	RecRaisePH      = "Consider lime application to raise soil pH"
	RecNitrogen     = "Apply nitrogen fertilizer before planting"
	RecInstallIrrig = "Consider installing irrigation system"
)

// Advantages lists the selling points of a crop given its overall score.
func Advantages(crop catalog.CropDefinition, overall float64) []string {
	out := []string{}
	if overall > 80 {
		out = append(out, AdvExcellentConditions, AdvHighYield)
	}
	if crop.Market.Demand == catalog.DemandHigh {
		out = append(out, AdvStrongDemand)
	}
	if crop.Market.Trend == catalog.TrendGrowing {
		out = append(out, AdvPositiveTrend)
	}
	if crop.WaterRequirement < waterEfficientMM {
		out = append(out, AdvWaterEfficient)
	}
	return out
}

// Challenges lists the drawbacks of a crop given its overall score.
func Challenges(crop catalog.CropDefinition, overall float64) []string {
	out := []string{}
	if overall < 60 {
		out = append(out, ChlSuboptimal)
	}
	if crop.Market.Demand == catalog.DemandLow {
		out = append(out, ChlLimitedDemand)
	}
	if crop.WaterRequirement > highWaterMM {
		out = append(out, ChlHighWater)
	}
	if crop.Traits.IntensiveManagement {
		out = append(out, ChlIntensive)
	}
	return out
}

// Recommendations lists field actions for a crop followed by the crop's own practices.
func Recommendations(crop catalog.CropDefinition, soil SoilProfile, prefs Preferences) []string {
	out := []string{}
	if soil.PH < crop.Optimal.PH.Min {
		out = append(out, RecRaisePH)
	}
	if soil.Nitrogen < lowNitrogenPPM {
		out = append(out, RecNitrogen)
	}
	if !prefs.HasIrrigation && crop.WaterRequirement > irrigationThresholdMM {
		out = append(out, RecInstallIrrig)
	}
	return append(out, crop.Practices...)
}
