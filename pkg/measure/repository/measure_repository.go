package repository

import (
	"context"

	"cropwise/entities"
)

type MeasureRepository interface {
	CreateSoil(ctx context.Context, s *entities.SoilSample) error
	LatestSoil(ctx context.Context, fieldID uint) (*entities.SoilSample, error)
	RecentSoil(ctx context.Context, fieldID uint, limit int) ([]entities.SoilSample, error)

	CreateWeather(ctx context.Context, w *entities.WeatherSummary) error
	LatestWeather(ctx context.Context, fieldID uint) (*entities.WeatherSummary, error)
	RecentWeather(ctx context.Context, fieldID uint, limit int) ([]entities.WeatherSummary, error)
}
