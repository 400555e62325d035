package controller

import "github.com/labstack/echo/v4"

type MeasureController interface {
	CreateSoil(c echo.Context) error
	ListSoil(c echo.Context) error
	CreateWeather(c echo.Context) error
	ListWeather(c echo.Context) error
}
