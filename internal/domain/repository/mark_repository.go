package repository

import (
	"context"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

// MarkRepository définit le port de persistance pour Mark (DIP).
type MarkRepository interface {
	Create(ctx context.Context, mark *entity.Mark) error
	GetByID(ctx context.Context, id string) (*entity.Mark, error)
	GetByName(ctx context.Context, name string) (*entity.Mark, error)
	List(ctx context.Context) ([]*entity.Mark, error)
	Update(ctx context.Context, mark *entity.Mark) error
	Delete(ctx context.Context, id string) error
}
