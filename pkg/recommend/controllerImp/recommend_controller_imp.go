package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"cropwise/pkg/recommend/controller"
	"cropwise/pkg/recommend/service"
	"cropwise/pkg/suitability"
)

const maxBatch = 50

type RecommendCtrl struct{ svc service.RecommendService }

var _ controller.RecommendController = (*RecommendCtrl)(nil)

func New(svc service.RecommendService) *RecommendCtrl { return &RecommendCtrl{svc} }

type analyzeReq struct {
	Field        suitability.FieldContext   `json:"field"`
	Soil         suitability.SoilProfile    `json:"soil"`
	Weather      suitability.WeatherProfile `json:"weather"`
	Preferences  *suitability.Preferences   `json:"preferences"`
	WithInsights bool                       `json:"with_insights"`
}

type fieldReq struct {
	Preferences  *suitability.Preferences    `json:"preferences"`
	Soil         *suitability.SoilProfile    `json:"soil"`
	Weather      *suitability.WeatherProfile `json:"weather"`
	WithInsights bool                        `json:"with_insights"`
}

type batchReq struct {
	Fields []service.FieldRequest `json:"fields"`
}

func (h *RecommendCtrl) fail(c echo.Context, err error) error {
	var ve *suitability.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case eris.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	case eris.Is(err, service.ErrMissingProfile):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *RecommendCtrl) Crops(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Crops())
}

// Analyze runs a stateless analysis of a complete request body.
func (h *RecommendCtrl) Analyze(c echo.Context) error {
	var req analyzeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	prefs := suitability.DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
	}
	r, err := h.svc.Recommend(c.Request().Context(), suitability.Request{
		Field:       req.Field,
		Soil:        req.Soil,
		Weather:     req.Weather,
		Preferences: prefs,
	}, req.WithInsights)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// AnalyzeField analyzes a stored field; the body is optional.
func (h *RecommendCtrl) AnalyzeField(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad field id"})
	}
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	r, err := h.svc.RecommendField(c.Request().Context(), uid, service.FieldRequest{
		FieldID:      uint(id),
		Preferences:  req.Preferences,
		Soil:         req.Soil,
		Weather:      req.Weather,
		WithInsights: req.WithInsights,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RecommendCtrl) Batch(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req batchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(req.Fields) == 0 || len(req.Fields) > maxBatch {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "fields must hold 1-" + strconv.Itoa(maxBatch) + " entries"})
	}
	out, err := h.svc.RecommendMany(c.Request().Context(), uid, req.Fields)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}
