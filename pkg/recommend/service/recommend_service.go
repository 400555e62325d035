package service

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"cropwise/pkg/catalog"
	"cropwise/pkg/suitability"
)

// ErrMissingProfile means a stored field has no soil or weather record and the
// request did not supply one.
var ErrMissingProfile = eris.New("missing profile")

// FieldRequest analyzes a stored field. Nil profiles are read from the latest
// measurements; nil preferences use suitability.DefaultPreferences.
type FieldRequest struct {
	FieldID      uint                        `json:"field_id"`
	Preferences  *suitability.Preferences    `json:"preferences,omitempty"`
	Soil         *suitability.SoilProfile    `json:"soil,omitempty"`
	Weather      *suitability.WeatherProfile `json:"weather,omitempty"`
	WithInsights bool                        `json:"with_insights"`
}

// Report is one analysis run. Nothing in it is persisted.
type Report struct {
	AnalysisID  string                        `json:"analysis_id"`
	GeneratedAt time.Time                     `json:"generated_at"`
	Field       suitability.FieldContext      `json:"field"`
	Soil        suitability.SoilProfile       `json:"soil"`
	Weather     suitability.WeatherProfile    `json:"weather"`
	Preferences suitability.Preferences       `json:"preferences"`
	Results     []suitability.CropSuitability `json:"results"`
	Insights    string                        `json:"insights,omitempty"`
}

// BatchItem is the outcome for one field of RecommendMany.
type BatchItem struct {
	FieldID uint    `json:"field_id"`
	Report  *Report `json:"report,omitempty"`
	Error   string  `json:"error,omitempty"`
}

type RecommendService interface {
	Recommend(ctx context.Context, req suitability.Request, withInsights bool) (*Report, error)
	RecommendField(ctx context.Context, uid string, req FieldRequest) (*Report, error)
	RecommendMany(ctx context.Context, uid string, reqs []FieldRequest) ([]BatchItem, error)
	Crops() []catalog.CropDefinition
}
