package serviceImp

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"cropwise/entities"
	"cropwise/pkg/catalog"
	repo "cropwise/pkg/field/repository"
	"cropwise/pkg/field/service"
	"cropwise/pkg/suitability"
)

type fieldSvc struct{ r repo.FieldRepository }

func NewFieldService(r repo.FieldRepository) service.FieldService { return &fieldSvc{r} }

func (s *fieldSvc) CreateField(ctx context.Context, f *entities.Field) (*entities.Field, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return nil, eris.Wrap(service.ErrInvalidField, "name is required")
	}
	if f.AreaHa <= 0 {
		return nil, eris.Wrap(service.ErrInvalidField, "area_ha must be positive")
	}
	tx, err := catalog.ParseTexture(f.SoilTexture)
	if err != nil {
		return nil, eris.Wrap(service.ErrInvalidField, err.Error())
	}
	f.SoilTexture = string(tx)
	if f.Drainage == "" {
		f.Drainage = string(suitability.DrainageGood)
	}
	d, err := suitability.ParseDrainage(f.Drainage)
	if err != nil {
		return nil, eris.Wrap(service.ErrInvalidField, err.Error())
	}
	f.Drainage = string(d)

	if err := s.r.Create(ctx, f); err != nil {
		return nil, err
	}
	zap.L().Info("field: created", zap.Uint("field_id", f.FieldID), zap.String("uid", f.UserID))
	return f, nil
}

func (s *fieldSvc) GetFieldByID(ctx context.Context, id uint, uid string) (*entities.Field, error) {
	return s.r.FindByID(ctx, id, uid)
}

func (s *fieldSvc) ListFields(ctx context.Context, uid string) ([]entities.Field, error) {
	return s.r.ListByUser(ctx, uid)
}
