// Package suitability ranks catalog crops for a field by weighted soil, weather,
// market and sustainability scores, with economic projections and advice.
package suitability

import (
	"context"
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"cropwise/pkg/catalog"
)

// Factor weights of the overall suitability score. They sum to 1.
const (
	SoilWeight           = 0.30
	WeatherWeight        = 0.30
	MarketWeight         = 0.25
	SustainabilityWeight = 0.15
)

const (
	confidenceBase  = 70.0
	confidenceSlope = 0.25
	confidenceCap   = 95.0
)

// OverallScore combines factor scores with the fixed weights.
func OverallScore(f Factors) float64 {
	return clamp(f.Soil*SoilWeight +
		f.Weather*WeatherWeight +
		f.Market*MarketWeight +
		f.Sustainability*SustainabilityWeight)
}

// Confidence grows with the overall score and is capped at 95.
func Confidence(overall float64) float64 {
	return clamp(math.Min(confidenceCap, confidenceBase+overall*confidenceSlope))
}

// Rank sorts results by suitability, highest first. Equal scores keep their input order.
func Rank(results []CropSuitability) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SuitabilityScore > results[j].SuitabilityScore
	})
}

// Evaluate scores a single crop against validated profiles.
func Evaluate(crop catalog.CropDefinition, a catalog.Agronomy, field FieldContext, soil SoilProfile, w WeatherProfile, prefs Preferences) CropSuitability {
	f := ScoreFactors(crop, soil, w)
	overall := OverallScore(f)
	p := Project(crop, a, field.Area, f, soil, prefs)

	var variety string
	if len(crop.Varieties) > 0 {
		variety = crop.Varieties[0]
	}

	return CropSuitability{
		CropID:                crop.ID,
		CropName:              crop.Name,
		Variety:               variety,
		SuitabilityScore:      overall,
		Confidence:            Confidence(overall),
		Factors:               f,
		ExpectedYield:         p.Yield,
		ExpectedRevenue:       p.Revenue,
		ExpectedCosts:         p.Costs,
		ExpectedProfit:        p.Profit,
		ProfitMargin:          p.Margin,
		RiskLevel:             ClassifyRisk(overall, crop.Market.Trend),
		WaterRequirement:      crop.WaterRequirement,
		FertilizerRequirement: p.Fertilizer,
		LaborRequirement:      p.Labor,
		GrowthDuration:        crop.GrowthDuration,
		PlantingWindow:        a.PlantingWindow,
		HarvestWindow:         a.HarvestWindow,
		Advantages:            Advantages(crop, overall),
		Challenges:            Challenges(crop, overall),
		Recommendations:       Recommendations(crop, soil, prefs),
	}
}

// Analyze validates the request, scores every crop in the catalog and returns the
// ranked results. Cancellation is checked between crops; partial output is discarded.
func Analyze(ctx context.Context, req Request, cat *catalog.Catalog) ([]CropSuitability, error) {
	soil, weather, err := Validate(req)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, eris.New("suitability: nil catalog")
	}

	crops := cat.Crops()
	out := make([]CropSuitability, 0, len(crops))
	for _, crop := range crops {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "suitability: analysis cancelled")
		}
		a, ok := cat.Agronomy(crop.ID)
		if !ok {
			zap.L().Debug("suitability: no agronomy constants, using defaults",
				zap.String("crop_id", crop.ID),
			)
		}
		out = append(out, Evaluate(crop, a, req.Field, soil, weather, req.Preferences))
	}

	Rank(out)
	return out, nil
}

// Outcome is the completion value of AnalyzeAsync.
type Outcome struct {
	Results []CropSuitability
	Err     error
}

// AnalyzeAsync runs Analyze in a goroutine. The channel receives exactly one Outcome
// and is then closed. Cancel ctx to abort.
func AnalyzeAsync(ctx context.Context, req Request, cat *catalog.Catalog) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		res, err := Analyze(ctx, req, cat)
		ch <- Outcome{Results: res, Err: err}
	}()
	return ch
}
