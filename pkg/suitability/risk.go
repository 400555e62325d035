package suitability

import "cropwise/pkg/catalog"

// ClassifyRisk maps an overall score and price trend to a risk level.
func ClassifyRisk(overall float64, trend catalog.Trend) RiskLevel {
	switch {
	case overall > 80 && trend == catalog.TrendGrowing:
		return RiskLow
	case overall > 60 && trend != catalog.TrendDeclining:
		return RiskMedium
	default:
		return RiskHigh
	}
}
