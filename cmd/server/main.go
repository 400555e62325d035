package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"cropwise/config"
	"cropwise/database"
	"cropwise/router"

	// Catalog + engine
	"cropwise/pkg/catalog"

	// Auth
	authCtrlImp "cropwise/pkg/auth/controllerImp"

	// Field
	fieldCtrlImp "cropwise/pkg/field/controllerImp"
	fieldRepoImp "cropwise/pkg/field/repositoryImp"
	fieldSvcImp "cropwise/pkg/field/serviceImp"

	// Measure
	measCtrlImp "cropwise/pkg/measure/controllerImp"
	measRepoImp "cropwise/pkg/measure/repositoryImp"
	measSvcImp "cropwise/pkg/measure/serviceImp"

	// Recommend
	recCtrlImp "cropwise/pkg/recommend/controllerImp"
	recSvcImp "cropwise/pkg/recommend/serviceImp"

	// LLM
	"cropwise/pkg/ai"

	// Health
	healthCtrlImp "cropwise/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := config.InitLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		panic(err)
	}
	defer zap.L().Sync() //nolint:errcheck
	zap.L().Info("config loaded", cfg.Fields()...)

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		zap.L().Fatal("database", zap.Error(err))
	}

	// 3) Crop catalog
	cat, err := catalog.LoadFromFiles(cfg.CatalogCSV, cfg.AgronomyXLSX)
	if err != nil {
		zap.L().Fatal("catalog", zap.Error(err))
	}

	// 4) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	// 5) Repos/Services/Controllers
	fRepo := fieldRepoImp.New(db)
	mRepo := measRepoImp.New(db)
	fCtrl := fieldCtrlImp.New(fieldSvcImp.NewFieldService(fRepo))
	meCtrl := measCtrlImp.New(measSvcImp.NewMeasureService(mRepo, fRepo))
	rCtrl := recCtrlImp.New(recSvcImp.NewRecommendService(cat, fRepo, mRepo, llm, cfg.BatchLimit))
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cat)

	// 6) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	r := router.New(e, cfg.EnableAuth, fCtrl, meCtrl, rCtrl, authCtrl, hCtrl)

	// 7) Start + graceful stop
	go func() {
		zap.L().Info("listening", zap.String("port", cfg.Port))
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown", zap.Error(err))
	}
}
