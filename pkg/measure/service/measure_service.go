package service

import (
	"context"

	"github.com/rotisserie/eris"

	"cropwise/entities"
)

// ErrInvalidMeasurement marks readings the service refused to store.
var ErrInvalidMeasurement = eris.New("invalid measurement")

type MeasureService interface {
	RecordSoil(ctx context.Context, uid string, s *entities.SoilSample) (*entities.SoilSample, error)
	RecentSoil(ctx context.Context, uid string, fieldID uint, limit int) ([]entities.SoilSample, error)
	RecordWeather(ctx context.Context, uid string, w *entities.WeatherSummary) (*entities.WeatherSummary, error)
	RecentWeather(ctx context.Context, uid string, fieldID uint, limit int) ([]entities.WeatherSummary, error)
}
