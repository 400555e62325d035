package ai

import (
	"context"

	"cropwise/pkg/suitability"
)

// Client writes the insights panel shown next to a ranked recommendation list.
// Implementations never fail; they fall back to a deterministic summary.
type Client interface {
	Summarize(ctx context.Context, field suitability.FieldContext, results []suitability.CropSuitability) string
}
