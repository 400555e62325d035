package controller

import "github.com/labstack/echo/v4"

type RecommendController interface {
	Crops(c echo.Context) error
	Analyze(c echo.Context) error
	AnalyzeField(c echo.Context) error
	Batch(c echo.Context) error
}
