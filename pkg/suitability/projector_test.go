package suitability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cropwise/pkg/catalog"
)

func TestConditionMultiplierBounds(t *testing.T) {
	assert.InDelta(t, 0.75, ConditionMultiplier(0, 0), 1e-12)
	assert.InDelta(t, 1.0, ConditionMultiplier(50, 50), 1e-12)
	assert.InDelta(t, 1.25, ConditionMultiplier(100, 100), 1e-12)
}

func TestExpectedCosts(t *testing.T) {
	a := catalog.Agronomy{BaseCostPerHa: 1000}
	tests := []struct {
		name  string
		prefs Preferences
		want  float64
	}{
		{"baseline", Preferences{LaborAvailability: AvailabilityMedium}, 10000},
		{"irrigation overhead", Preferences{HasIrrigation: true, LaborAvailability: AvailabilityHigh}, 11500},
		{"low labor", Preferences{LaborAvailability: AvailabilityLow}, 12500},
		{"both", Preferences{HasIrrigation: true, LaborAvailability: AvailabilityLow}, 14375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExpectedCosts(a, 10, tt.prefs), 1e-9)
		})
	}
}

func TestFertilizerRequirement(t *testing.T) {
	a := catalog.Agronomy{BaseFertilizerPerHa: 100}
	assert.InDelta(t, 200, FertilizerRequirement(a, SoilProfile{Nitrogen: 0}), 1e-9)
	assert.InDelta(t, 155, FertilizerRequirement(a, SoilProfile{Nitrogen: 45}), 1e-9)
	assert.InDelta(t, 100, FertilizerRequirement(a, SoilProfile{Nitrogen: 100}), 1e-9)
}

func TestMarginGuardsZeroRevenue(t *testing.T) {
	assert.Equal(t, 0.0, Margin(0, -500))
	assert.InDelta(t, 25, Margin(1000, 250), 1e-9)
	assert.InDelta(t, -50, Margin(1000, -500), 1e-9)
}

func TestProjectZeroPriceCrop(t *testing.T) {
	c := crop("wheat")
	c.Market.AvgPrice = 0
	a := catalog.DefaultAgronomyTable()["wheat"]

	p := Project(c, a, 10, Factors{Soil: 80, Weather: 80}, SoilProfile{Nitrogen: 50}, Preferences{})
	assert.Equal(t, 0.0, p.Revenue)
	assert.InDelta(t, -8000, p.Profit, 1e-9)
	assert.Equal(t, 0.0, p.Margin)
}

func TestProject(t *testing.T) {
	c := crop("soybeans")
	a := catalog.DefaultAgronomyTable()["soybeans"]

	p := Project(c, a, 10, Factors{Soil: 100, Weather: 100}, SoilProfile{Nitrogen: 60}, Preferences{HasIrrigation: true})
	assert.InDelta(t, 2.8*10*1.25, p.Yield, 1e-9)
	assert.InDelta(t, 35*350, p.Revenue, 1e-9)
	assert.InDelta(t, 900*10*1.15, p.Costs, 1e-9)
	assert.InDelta(t, p.Revenue-p.Costs, p.Profit, 1e-9)
	assert.InDelta(t, 60*1.4, p.Fertilizer, 1e-9)
	assert.InDelta(t, 100, p.Labor, 1e-9)
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		overall float64
		trend   catalog.Trend
		want    RiskLevel
	}{
		{85, catalog.TrendGrowing, RiskLow},
		{85, catalog.TrendStable, RiskMedium},
		{80, catalog.TrendGrowing, RiskMedium},
		{70, catalog.TrendGrowing, RiskMedium},
		{85, catalog.TrendDeclining, RiskHigh},
		{60, catalog.TrendStable, RiskHigh},
		{20, catalog.TrendGrowing, RiskHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRisk(tt.overall, tt.trend), "%v/%s", tt.overall, tt.trend)
	}
}
