package ai

import (
	"context"

	"cropwise/pkg/suitability"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Summarize(_ context.Context, field suitability.FieldContext, results []suitability.CropSuitability) string {
	return fallbackSummary(field, results)
}
