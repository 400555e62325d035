package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwise/database"
	"cropwise/entities"
	"cropwise/pkg/ai"
	"cropwise/pkg/catalog"
	fieldRepoImp "cropwise/pkg/field/repositoryImp"
	measureRepoImp "cropwise/pkg/measure/repositoryImp"
	"cropwise/pkg/recommend/service"
	"cropwise/pkg/recommend/serviceImp"
)

func newCtrl(t *testing.T) (*RecommendCtrl, uint, uint) {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	ctx := context.Background()
	fr := fieldRepoImp.New(db)
	mr := measureRepoImp.New(db)

	stocked := &entities.Field{UserID: "u1", Name: "North", AreaHa: 25.5, SoilTexture: "loamy"}
	bare := &entities.Field{UserID: "u1", Name: "South", AreaHa: 4, SoilTexture: "sandy"}
	require.NoError(t, fr.Create(ctx, stocked))
	require.NoError(t, fr.Create(ctx, bare))
	require.NoError(t, mr.CreateSoil(ctx, &entities.SoilSample{FieldID: stocked.FieldID, Date: time.Now(), PH: 6.5, Nitrogen: 45, OrganicMatter: 3.2}))
	require.NoError(t, mr.CreateWeather(ctx, &entities.WeatherSummary{FieldID: stocked.FieldID, Date: time.Now(), AverageTemperature: 22, Rainfall: 650, GrowingSeason: 180}))

	svc := serviceImp.NewRecommendService(catalog.Default(), fr, mr, ai.NewMock(), 2)
	return New(svc), stocked.FieldID, bare.FieldID
}

func call(h echo.HandlerFunc, body, id string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "u1")
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	_ = h(c)
	return rec
}

func TestCropsEndpoint(t *testing.T) {
	h, _, _ := newCtrl(t)
	rec := call(h.Crops, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var crops []catalog.CropDefinition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crops))
	assert.Len(t, crops, 5)
	assert.Equal(t, "corn", crops[0].ID)
}

func TestAnalyzeStateless(t *testing.T) {
	h, _, _ := newCtrl(t)
	body := `{
		"field": {"field_id": "demo", "area": 25.5, "soil_texture": "loamy"},
		"soil": {"ph": 6.5, "nitrogen": 45, "organic_matter": 3.2},
		"weather": {"average_temperature": 22, "rainfall": 650, "growing_season": 180},
		"with_insights": true
	}`
	rec := call(h.Analyze, body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var r service.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.NotEmpty(t, r.AnalysisID)
	assert.True(t, r.Preferences.FocusOnProfit)
	assert.Equal(t, 50000.0, r.Preferences.Budget)
	require.Len(t, r.Results, 5)
	assert.Equal(t, "soybeans", r.Results[0].CropID)
	assert.NotEmpty(t, r.Insights)
}

func TestAnalyzeErrors(t *testing.T) {
	h, _, _ := newCtrl(t)
	tests := []struct {
		name string
		body string
		code int
		msg  string
	}{
		{"bad json", `{"field":`, http.StatusBadRequest, "bad json"},
		{"no field", `{"field":{"area":3}}`, http.StatusBadRequest, "field required"},
		{"no area", `{"field":{"field_id":"x"}}`, http.StatusBadRequest, "field area must be positive"},
		{"unknown experience", `{"field":{"field_id":"x","area":1},"preferences":{"farming_experience":"guru"}}`, http.StatusBadRequest, "farming_experience"},
		{"ph out of range", `{"field":{"field_id":"x","area":1},"soil":{"ph":15}}`, http.StatusBadRequest, "ph must be within 0-14"},
		{"humidity out of range", `{"field":{"field_id":"x","area":1},"weather":{"humidity":140}}`, http.StatusBadRequest, "humidity must be a percentage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(h.Analyze, tt.body, "")
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.msg)
		})
	}
}

func TestAnalyzeField(t *testing.T) {
	h, stocked, bare := newCtrl(t)

	rec := call(h.AnalyzeField, "", strconv.Itoa(int(stocked)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var r service.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, strconv.Itoa(int(stocked)), r.Field.FieldID)
	assert.Equal(t, "soybeans", r.Results[0].CropID)

	rec = call(h.AnalyzeField, `{"preferences":{"has_irrigation":true}}`, strconv.Itoa(int(stocked)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(h.AnalyzeField, "", strconv.Itoa(int(bare)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = call(h.AnalyzeField, `{"soil":{"ph":6.2},"weather":{"average_temperature":18,"rainfall":500,"growing_season":120}}`, strconv.Itoa(int(bare)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(h.AnalyzeField, "", "404")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(h.AnalyzeField, "", "zero")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatch(t *testing.T) {
	h, stocked, bare := newCtrl(t)

	body := `{"fields":[{"field_id":` + strconv.Itoa(int(stocked)) + `},{"field_id":` + strconv.Itoa(int(bare)) + `}]}`
	rec := call(h.Batch, body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Items []service.BatchItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Items, 2)
	assert.NotNil(t, out.Items[0].Report)
	assert.NotEmpty(t, out.Items[1].Error)

	rec = call(h.Batch, `{"fields":[]}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
