package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropwise/pkg/catalog"
)

var appStart = time.Now()

type HealthCtrl struct {
	db  *gorm.DB
	cat *catalog.Catalog
}

func NewHealthCtrl(db *gorm.DB, cat *catalog.Catalog) *HealthCtrl {
	return &HealthCtrl{db: db, cat: cat}
}

type sub struct {
	OK    bool   `json:"ok"`
	Err   string `json:"err,omitempty"`
	Count int    `json:"count,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := sub{OK: true}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			db = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = sub{Err: "ping: " + err.Error()}
		}
	} else {
		db = sub{Err: "gorm db is nil"}
	}

	crops := sub{OK: true}
	if h.cat == nil || h.cat.Len() == 0 {
		crops = sub{Err: "catalog is empty"}
	} else {
		crops.Count = h.cat.Len()
	}

	allOK := db.OK && crops.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"catalog":  crops,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
