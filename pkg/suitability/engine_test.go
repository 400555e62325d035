package suitability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwise/pkg/catalog"
)

func sampleRequest() Request {
	return Request{
		Field: FieldContext{FieldID: "1", Area: 25.5, SoilTexture: catalog.Loamy},
		Soil: SoilProfile{
			PH: 6.5, Nitrogen: 45, Phosphorus: 25, Potassium: 180, OrganicMatter: 3.2,
			Moisture: 22, Temperature: 18, Salinity: 0.8, Texture: catalog.Loamy, Drainage: DrainageGood,
		},
		Weather: WeatherProfile{
			AverageTemperature: 22, MinTemperature: 8, MaxTemperature: 32, Rainfall: 650,
			Humidity: 65, SunlightHours: 8, WindSpeed: 12, FrostDays: 15, GrowingSeason: 180,
		},
		Preferences: DefaultPreferences(),
	}
}

func byID(results []CropSuitability) map[string]CropSuitability {
	m := make(map[string]CropSuitability, len(results))
	for _, r := range results {
		m[r.CropID] = r
	}
	return m
}

func TestAnalyzeDefaultCatalogRanking(t *testing.T) {
	got, err := Analyze(context.Background(), sampleRequest(), catalog.Default())
	require.NoError(t, err)
	require.Len(t, got, 5)

	var order []string
	for _, r := range got {
		order = append(order, r.CropID)
	}
	assert.Equal(t, []string{"soybeans", "tomatoes", "corn", "wheat", "potatoes"}, order)

	m := byID(got)
	assert.InDelta(t, 89.3, m["soybeans"].SuitabilityScore, 1e-9)
	assert.InDelta(t, 87.3, m["tomatoes"].SuitabilityScore, 1e-9)
	assert.InDelta(t, 82.95, m["corn"].SuitabilityScore, 1e-9)
	assert.InDelta(t, 81.9, m["wheat"].SuitabilityScore, 1e-9)
	assert.InDelta(t, 80.85, m["potatoes"].SuitabilityScore, 1e-9)
}

func TestAnalyzeCornScenario(t *testing.T) {
	got, err := Analyze(context.Background(), sampleRequest(), catalog.Default())
	require.NoError(t, err)
	corn := byID(got)["corn"]

	assert.Equal(t, "Corn", corn.CropName)
	assert.Equal(t, "Sweet Corn", corn.Variety)
	assert.InDelta(t, 93.5, corn.Factors.Soil, 1e-9)
	assert.InDelta(t, 100, corn.Factors.Weather, 1e-9)
	assert.InDelta(t, 63.6, corn.Factors.Market, 1e-9)
	assert.InDelta(t, 60, corn.Factors.Sustainability, 1e-9)
	assert.InDelta(t, 90.7375, corn.Confidence, 1e-9)

	// stable trend keeps corn out of the low-risk band despite a score above 80
	assert.Equal(t, RiskMedium, corn.RiskLevel)

	assert.InDelta(t, 298.8759375, corn.ExpectedYield, 1e-6)
	assert.InDelta(t, 53797.66875, corn.ExpectedRevenue, 1e-6)
	assert.InDelta(t, 30600, corn.ExpectedCosts, 1e-9)
	assert.InDelta(t, corn.ExpectedRevenue-corn.ExpectedCosts, corn.ExpectedProfit, 1e-9)
	assert.InDelta(t, 279, corn.FertilizerRequirement, 1e-9)
	assert.InDelta(t, 306, corn.LaborRequirement, 1e-9)
	assert.Equal(t, 600.0, corn.WaterRequirement)
	assert.Equal(t, 120, corn.GrowthDuration)
	assert.Equal(t, "April - May", corn.PlantingWindow)
	assert.Equal(t, "August - September", corn.HarvestWindow)

	assert.Equal(t, []string{AdvExcellentConditions, AdvHighYield, AdvStrongDemand}, corn.Advantages)
	assert.Empty(t, corn.Challenges)
	assert.Equal(t, []string{RecInstallIrrig}, corn.Recommendations)
}

func TestAnalyzeGrowingTrendAbove80IsLowRisk(t *testing.T) {
	got, err := Analyze(context.Background(), sampleRequest(), catalog.Default())
	require.NoError(t, err)
	m := byID(got)
	assert.Equal(t, RiskLow, m["soybeans"].RiskLevel)
	assert.Equal(t, RiskLow, m["wheat"].RiskLevel)
	assert.Equal(t, RiskMedium, m["potatoes"].RiskLevel)
}

func TestAnalyzeInvariants(t *testing.T) {
	got, err := Analyze(context.Background(), sampleRequest(), catalog.Default())
	require.NoError(t, err)

	for i, r := range got {
		for name, v := range map[string]float64{
			"soil": r.Factors.Soil, "weather": r.Factors.Weather,
			"market": r.Factors.Market, "sustainability": r.Factors.Sustainability,
			"overall": r.SuitabilityScore, "confidence": r.Confidence,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s %s", r.CropID, name)
			assert.LessOrEqual(t, v, 100.0, "%s %s", r.CropID, name)
		}
		rederived := 0.30*r.Factors.Soil + 0.30*r.Factors.Weather + 0.25*r.Factors.Market + 0.15*r.Factors.Sustainability
		assert.InDelta(t, rederived, r.SuitabilityScore, 1e-9, r.CropID)
		assert.InDelta(t, r.ExpectedRevenue-r.ExpectedCosts, r.ExpectedProfit, 1e-9, r.CropID)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].SuitabilityScore, r.SuitabilityScore)
		}
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	cat := catalog.Default()
	a, err := Analyze(context.Background(), sampleRequest(), cat)
	require.NoError(t, err)
	b, err := Analyze(context.Background(), sampleRequest(), cat)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAnalyzeTiesKeepCatalogOrder(t *testing.T) {
	base := catalog.DefaultCrops()[0]
	var crops []catalog.CropDefinition
	for _, id := range []string{"c", "a", "b", "d"} {
		cd := base
		cd.ID = id
		cd.Name = "Crop " + id
		crops = append(crops, cd)
	}
	cat, err := catalog.New(crops, nil)
	require.NoError(t, err)

	got, err := Analyze(context.Background(), sampleRequest(), cat)
	require.NoError(t, err)

	var order []string
	for _, r := range got {
		order = append(order, r.CropID)
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, order)
}

func TestAnalyzeUnknownCropUsesDefaultAgronomy(t *testing.T) {
	cd := catalog.DefaultCrops()[0]
	cd.ID = "millet"
	cd.Name = "Millet"
	cat, err := catalog.New([]catalog.CropDefinition{cd}, catalog.DefaultAgronomyTable())
	require.NoError(t, err)

	got, err := Analyze(context.Background(), sampleRequest(), cat)
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.InDelta(t, 1000*25.5, r.ExpectedCosts, 1e-9)
	assert.InDelta(t, 15*25.5, r.LaborRequirement, 1e-9)
	assert.InDelta(t, 100*1.55, r.FertilizerRequirement, 1e-9)
	assert.Equal(t, "Spring", r.PlantingWindow)
	assert.Equal(t, "Fall", r.HarvestWindow)
}

func TestAnalyzeValidation(t *testing.T) {
	t.Run("empty field id", func(t *testing.T) {
		req := sampleRequest()
		req.Field.FieldID = ""
		got, err := Analyze(context.Background(), req, catalog.Default())
		assert.Nil(t, got)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "field required", ve.Error())
	})

	t.Run("blank field id", func(t *testing.T) {
		req := sampleRequest()
		req.Field.FieldID = "   "
		got, err := Analyze(context.Background(), req, catalog.Default())
		assert.Nil(t, got)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "field required", ve.Error())
	})

	t.Run("non-positive area", func(t *testing.T) {
		req := sampleRequest()
		req.Field.Area = 0
		got, err := Analyze(context.Background(), req, catalog.Default())
		assert.Nil(t, got)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "field area must be positive", ve.Error())
	})

	t.Run("nil catalog", func(t *testing.T) {
		_, err := Analyze(context.Background(), sampleRequest(), nil)
		assert.Error(t, err)
	})
}

func TestValidateInheritsFieldTexture(t *testing.T) {
	req := sampleRequest()
	req.Soil.Texture = ""
	req.Field.SoilTexture = catalog.Clay

	soil, weather, err := Validate(req)
	require.NoError(t, err)
	assert.Equal(t, catalog.Clay, soil.Texture)
	assert.Equal(t, req.Weather, weather)
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Analyze(ctx, sampleRequest(), catalog.Default())
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, eris.Is(err, context.Canceled))
}

func TestAnalyzeAsync(t *testing.T) {
	select {
	case out := <-AnalyzeAsync(context.Background(), sampleRequest(), catalog.Default()):
		require.NoError(t, out.Err)
		assert.Len(t, out.Results, 5)
	case <-time.After(5 * time.Second):
		t.Fatal("analysis did not complete")
	}
}

func TestAnalyzeAsyncValidationError(t *testing.T) {
	req := sampleRequest()
	req.Field.FieldID = ""
	out := <-AnalyzeAsync(context.Background(), req, catalog.Default())
	assert.Nil(t, out.Results)

	var ve *ValidationError
	assert.True(t, errors.As(out.Err, &ve))
}

func TestOverallScoreWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, SoilWeight+WeatherWeight+MarketWeight+SustainabilityWeight, 1e-12)
	assert.InDelta(t, 100, OverallScore(Factors{100, 100, 100, 100}), 1e-9)
	assert.InDelta(t, 0, OverallScore(Factors{}), 1e-9)
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		overall float64
		want    float64
	}{
		{0, 70},
		{40, 80},
		{80, 90},
		{100, 95},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Confidence(tt.overall), 1e-9)
	}
}

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseSetup, PhaseAnalyzing, true},
		{PhaseAnalyzing, PhaseResults, true},
		{PhaseResults, PhaseDetails, true},
		{PhaseResults, PhaseSetup, true},
		{PhaseDetails, PhaseResults, true},
		{PhaseSetup, PhaseResults, false},
		{PhaseDetails, PhaseSetup, false},
		{PhaseAnalyzing, PhaseSetup, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}
