package repositoryImp

import (
	"context"

	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(ctx context.Context, f *entities.Field) error {
	return eris.Wrap(r.db.WithContext(ctx).Create(f).Error, "field: create")
}

// FindByID only returns fields owned by uid; anything else is gorm.ErrRecordNotFound.
func (r *fieldRepo) FindByID(ctx context.Context, id uint, uid string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.WithContext(ctx).Where("field_id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
		return nil, eris.Wrapf(err, "field: find %d", id)
	}
	return &f, nil
}

func (r *fieldRepo) ListByUser(ctx context.Context, uid string) ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("field_id ASC").Find(&out).Error; err != nil {
		return nil, eris.Wrap(err, "field: list")
	}
	return out, nil
}
