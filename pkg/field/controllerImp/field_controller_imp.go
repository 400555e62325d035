package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/field/controller"
	"cropwise/pkg/field/service"
)

type FieldCtrl struct{ svc service.FieldService }

var _ controller.FieldController = (*FieldCtrl)(nil)

func New(svc service.FieldService) *FieldCtrl { return &FieldCtrl{svc} }

type createReq struct {
	Name        string   `json:"name"`
	AreaHa      float64  `json:"area_ha"`
	SoilTexture string   `json:"soil_texture"`
	Drainage    string   `json:"drainage"`
	Region      string   `json:"region"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	LastCrop    string   `json:"last_crop"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Field{
		UserID: uid, Name: req.Name, AreaHa: req.AreaHa, SoilTexture: req.SoilTexture,
		Drainage: req.Drainage, Region: req.Region, Latitude: req.Latitude, Longitude: req.Longitude,
		LastCrop: req.LastCrop,
	}
	out, err := h.svc.CreateField(c.Request().Context(), f)
	if err != nil {
		if eris.Is(err, service.ErrInvalidField) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad field id"})
	}
	f, err := h.svc.GetFieldByID(c.Request().Context(), uint(id), uid)
	if err != nil {
		if eris.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out, err := h.svc.ListFields(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
