package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "cropwise/pkg/auth/controller"
	fieldCtrl "cropwise/pkg/field/controller"
	measCtrl "cropwise/pkg/measure/controller"
	"cropwise/pkg/middleware"
	recCtrl "cropwise/pkg/recommend/controller"
)

func New(
	e *echo.Echo,
	enableAuth bool,
	fieldCtrl fieldCtrl.FieldController,
	measCtrl measCtrl.MeasureController,
	recCtrl recCtrl.RecommendController,
	authCtrl authCtrl.AuthController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.GET("/crops", recCtrl.Crops)

	var api *echo.Group
	if enableAuth {
		api = e.Group("", middleware.RequireUID(true))
	} else {
		api = e.Group("", middleware.DevLogin())
		api.GET("/devlogin", authCtrl.DevLogin)
	}
	api.GET("/whoami", authCtrl.WhoAmI)

	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields", fieldCtrl.List)
	api.GET("/fields/:id", fieldCtrl.Get)

	api.POST("/fields/:id/soil", measCtrl.CreateSoil)
	api.GET("/fields/:id/soil", measCtrl.ListSoil)
	api.POST("/fields/:id/weather", measCtrl.CreateWeather)
	api.GET("/fields/:id/weather", measCtrl.ListWeather)

	api.POST("/fields/:id/recommendations", recCtrl.AnalyzeField)
	api.POST("/recommendations", recCtrl.Analyze)
	api.POST("/recommendations/batch", recCtrl.Batch)
	return e
}
