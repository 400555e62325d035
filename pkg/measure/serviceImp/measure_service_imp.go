package serviceImp

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"cropwise/entities"
	"cropwise/pkg/catalog"
	fieldRepo "cropwise/pkg/field/repository"
	repo "cropwise/pkg/measure/repository"
	"cropwise/pkg/measure/service"
	"cropwise/pkg/suitability"
)

const maxRecent = 100

type measureSvc struct {
	r      repo.MeasureRepository
	fields fieldRepo.FieldRepository
}

func NewMeasureService(r repo.MeasureRepository, fields fieldRepo.FieldRepository) service.MeasureService {
	return &measureSvc{r: r, fields: fields}
}

func invalid(msg string) error { return eris.Wrap(service.ErrInvalidMeasurement, msg) }

func clampLimit(n int) int {
	if n <= 0 || n > maxRecent {
		return maxRecent
	}
	return n
}

func (s *measureSvc) RecordSoil(ctx context.Context, uid string, m *entities.SoilSample) (*entities.SoilSample, error) {
	if _, err := s.fields.FindByID(ctx, m.FieldID, uid); err != nil {
		return nil, err
	}
	reading := suitability.SoilProfile{
		PH: m.PH, Nitrogen: m.Nitrogen, Phosphorus: m.Phosphorus, Potassium: m.Potassium,
		OrganicMatter: m.OrganicMatter, Moisture: m.Moisture, Salinity: m.Salinity,
	}
	if err := reading.Check(); err != nil {
		return nil, invalid(err.Error())
	}
	if m.Texture != "" {
		tx, err := catalog.ParseTexture(m.Texture)
		if err != nil {
			return nil, invalid(err.Error())
		}
		m.Texture = string(tx)
	}
	if m.Drainage != "" {
		d, err := suitability.ParseDrainage(m.Drainage)
		if err != nil {
			return nil, invalid(err.Error())
		}
		m.Drainage = string(d)
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	if err := s.r.CreateSoil(ctx, m); err != nil {
		return nil, err
	}
	zap.L().Info("measure: soil sample recorded", zap.Uint("field_id", m.FieldID), zap.Uint("sample_id", m.SampleID))
	return m, nil
}

func (s *measureSvc) RecentSoil(ctx context.Context, uid string, fieldID uint, limit int) ([]entities.SoilSample, error) {
	if _, err := s.fields.FindByID(ctx, fieldID, uid); err != nil {
		return nil, err
	}
	return s.r.RecentSoil(ctx, fieldID, clampLimit(limit))
}

func (s *measureSvc) RecordWeather(ctx context.Context, uid string, w *entities.WeatherSummary) (*entities.WeatherSummary, error) {
	if _, err := s.fields.FindByID(ctx, w.FieldID, uid); err != nil {
		return nil, err
	}
	reading := suitability.WeatherProfile{
		MinTemperature: w.MinTemperature, MaxTemperature: w.MaxTemperature, Rainfall: w.Rainfall,
		Humidity: w.Humidity, SunlightHours: w.SunlightHours, WindSpeed: w.WindSpeed,
		FrostDays: w.FrostDays, GrowingSeason: w.GrowingSeason,
	}
	if err := reading.Check(); err != nil {
		return nil, invalid(err.Error())
	}
	if w.Date.IsZero() {
		w.Date = time.Now()
	}
	if err := s.r.CreateWeather(ctx, w); err != nil {
		return nil, err
	}
	zap.L().Info("measure: weather summary recorded", zap.Uint("field_id", w.FieldID), zap.Uint("summary_id", w.SummaryID))
	return w, nil
}

func (s *measureSvc) RecentWeather(ctx context.Context, uid string, fieldID uint, limit int) ([]entities.WeatherSummary, error) {
	if _, err := s.fields.FindByID(ctx, fieldID, uid); err != nil {
		return nil, err
	}
	return s.r.RecentWeather(ctx, fieldID, clampLimit(limit))
}
