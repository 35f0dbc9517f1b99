package repository

import (
	"context"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

// CategoryRepository définit le port de persistance pour Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// List retourne toutes les catégories ; isMark non nil filtre sur le flag hérité.
	List(ctx context.Context, isMark *bool) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
