package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/measure/controller"
	"cropwise/pkg/measure/service"
)

type MeasureCtrl struct{ svc service.MeasureService }

var _ controller.MeasureController = (*MeasureCtrl)(nil)

func New(svc service.MeasureService) *MeasureCtrl { return &MeasureCtrl{svc} }

type soilReq struct {
	Date          string  `json:"date"`
	PH            float64 `json:"ph"`
	Nitrogen      float64 `json:"nitrogen"`
	Phosphorus    float64 `json:"phosphorus"`
	Potassium     float64 `json:"potassium"`
	OrganicMatter float64 `json:"organic_matter"`
	Moisture      float64 `json:"moisture"`
	Temperature   float64 `json:"temperature"`
	Salinity      float64 `json:"salinity"`
	Texture       string  `json:"texture"`
	Drainage      string  `json:"drainage"`
	Note          string  `json:"note"`
}

type weatherReq struct {
	Date               string  `json:"date"`
	AverageTemperature float64 `json:"average_temperature"`
	MinTemperature     float64 `json:"min_temperature"`
	MaxTemperature     float64 `json:"max_temperature"`
	Rainfall           float64 `json:"rainfall"`
	Humidity           float64 `json:"humidity"`
	SunlightHours      float64 `json:"sunlight_hours"`
	WindSpeed          float64 `json:"wind_speed"`
	FrostDays          int     `json:"frost_days"`
	GrowingSeason      int     `json:"growing_season"`
	Source             string  `json:"source"`
}

func fieldParam(c echo.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts YYYY-MM-DD; empty means now.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	d, err := time.Parse("2006-01-02", s)
	return d, err == nil
}

func (h *MeasureCtrl) fail(c echo.Context, err error) error {
	switch {
	case eris.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	case eris.Is(err, service.ErrInvalidMeasurement):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *MeasureCtrl) CreateSoil(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	fid, ok := fieldParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad field id"})
	}
	var req soilReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d, ok := parseDate(req.Date)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	m := &entities.SoilSample{
		FieldID: fid, Date: d, PH: req.PH, Nitrogen: req.Nitrogen, Phosphorus: req.Phosphorus,
		Potassium: req.Potassium, OrganicMatter: req.OrganicMatter, Moisture: req.Moisture,
		Temperature: req.Temperature, Salinity: req.Salinity, Texture: req.Texture,
		Drainage: req.Drainage, Note: req.Note,
	}
	out, err := h.svc.RecordSoil(c.Request().Context(), uid, m)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *MeasureCtrl) ListSoil(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	fid, ok := fieldParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad field id"})
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.RecentSoil(c.Request().Context(), uid, fid, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MeasureCtrl) CreateWeather(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	fid, ok := fieldParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad field id"})
	}
	var req weatherReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d, ok := parseDate(req.Date)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	w := &entities.WeatherSummary{
		FieldID: fid, Date: d, AverageTemperature: req.AverageTemperature,
		MinTemperature: req.MinTemperature, MaxTemperature: req.MaxTemperature,
		Rainfall: req.Rainfall, Humidity: req.Humidity, SunlightHours: req.SunlightHours,
		WindSpeed: req.WindSpeed, FrostDays: req.FrostDays, GrowingSeason: req.GrowingSeason,
		Source: req.Source,
	}
	out, err := h.svc.RecordWeather(c.Request().Context(), uid, w)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *MeasureCtrl) ListWeather(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	fid, ok := fieldParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad field id"})
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.RecentWeather(c.Request().Context(), uid, fid, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
