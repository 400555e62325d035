package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwise/pkg/catalog"
	"cropwise/pkg/suitability"
)

func ranked(t *testing.T) (suitability.FieldContext, []suitability.CropSuitability) {
	t.Helper()
	field := suitability.FieldContext{FieldID: "7", Area: 25.5, SoilTexture: catalog.Loamy}
	res, err := suitability.Analyze(context.Background(), suitability.Request{
		Field:       field,
		Soil:        suitability.SoilProfile{PH: 6.5, Nitrogen: 45, OrganicMatter: 3.2},
		Weather:     suitability.WeatherProfile{AverageTemperature: 22, Rainfall: 650, GrowingSeason: 180},
		Preferences: suitability.DefaultPreferences(),
	}, catalog.Default())
	require.NoError(t, err)
	return field, res
}

func TestMockSummarizesTopThree(t *testing.T) {
	field, res := ranked(t)
	out := NewMock().Summarize(context.Background(), field, res)

	assert.Contains(t, out, "Field 7, 25.50 ha, loamy soil")
	assert.Contains(t, out, "Soybeans: score 89.3, low risk")
	assert.Contains(t, out, "Tomatoes")
	assert.Contains(t, out, "Corn")
	assert.NotContains(t, out, "Wheat")
}

func TestFallbackWithNoResults(t *testing.T) {
	out := fallbackSummary(suitability.FieldContext{FieldID: "x"}, nil)
	assert.Contains(t, out, "no crops")
}

func TestOpenAISummarize(t *testing.T) {
	field, res := ranked(t)

	var got chatReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  - plant soybeans  "}}]}`))
	}))
	defer srv.Close()

	out := NewOpenAI(srv.URL+"/", "k", "m").Summarize(context.Background(), field, res)
	assert.Equal(t, "- plant soybeans", out)
	assert.Equal(t, "m", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Contains(t, got.Messages[1]["content"], "1. Soybeans score=89.3")
	assert.NotContains(t, got.Messages[1]["content"], "Potatoes")
}

func TestOpenAIFallsBack(t *testing.T) {
	field, res := ranked(t)
	want := fallbackSummary(field, res)

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) }},
		{"no choices", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"choices":[]}`)) }},
		{"empty content", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
		}},
		{"garbage", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`not json`)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			assert.Equal(t, want, NewOpenAI(srv.URL, "k", "m").Summarize(context.Background(), field, res))
		})
	}
}

func TestOpenAIUnreachable(t *testing.T) {
	field, res := ranked(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	assert.Equal(t, fallbackSummary(field, res), NewOpenAI(url, "k", "m").Summarize(context.Background(), field, res))
}
