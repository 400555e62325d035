package repositoryImp

import (
	"context"

	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/measure/repository"
)

type measureRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MeasureRepository { return &measureRepo{db} }

func (r *measureRepo) CreateSoil(ctx context.Context, s *entities.SoilSample) error {
	return eris.Wrap(r.db.WithContext(ctx).Create(s).Error, "measure: create soil sample")
}

// LatestSoil returns the most recent sample by date; ties go to the last inserted.
func (r *measureRepo) LatestSoil(ctx context.Context, fieldID uint) (*entities.SoilSample, error) {
	var s entities.SoilSample
	err := r.db.WithContext(ctx).Where("field_id = ?", fieldID).
		Order("date DESC").Order("sample_id DESC").First(&s).Error
	if err != nil {
		return nil, eris.Wrapf(err, "measure: latest soil for field %d", fieldID)
	}
	return &s, nil
}

func (r *measureRepo) RecentSoil(ctx context.Context, fieldID uint, limit int) ([]entities.SoilSample, error) {
	var out []entities.SoilSample
	err := r.db.WithContext(ctx).Where("field_id = ?", fieldID).
		Order("date DESC").Order("sample_id DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, eris.Wrap(err, "measure: list soil samples")
	}
	return out, nil
}

func (r *measureRepo) CreateWeather(ctx context.Context, w *entities.WeatherSummary) error {
	return eris.Wrap(r.db.WithContext(ctx).Create(w).Error, "measure: create weather summary")
}

func (r *measureRepo) LatestWeather(ctx context.Context, fieldID uint) (*entities.WeatherSummary, error) {
	var w entities.WeatherSummary
	err := r.db.WithContext(ctx).Where("field_id = ?", fieldID).
		Order("date DESC").Order("summary_id DESC").First(&w).Error
	if err != nil {
		return nil, eris.Wrapf(err, "measure: latest weather for field %d", fieldID)
	}
	return &w, nil
}

func (r *measureRepo) RecentWeather(ctx context.Context, fieldID uint, limit int) ([]entities.WeatherSummary, error) {
	var out []entities.WeatherSummary
	err := r.db.WithContext(ctx).Where("field_id = ?", fieldID).
		Order("date DESC").Order("summary_id DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, eris.Wrap(err, "measure: list weather summaries")
	}
	return out, nil
}
