package service

import (
	"context"

	"github.com/rotisserie/eris"

	"cropwise/entities"
)

// ErrInvalidField marks input the service refused to store.
var ErrInvalidField = eris.New("invalid field")

type FieldService interface {
	CreateField(ctx context.Context, f *entities.Field) (*entities.Field, error)
	GetFieldByID(ctx context.Context, id uint, uid string) (*entities.Field, error)
	ListFields(ctx context.Context, uid string) ([]entities.Field, error)
}
