package repository

import (
	"context"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

// SubcategoryRepository définit le port de persistance pour Subcategory (DIP).
type SubcategoryRepository interface {
	Create(ctx context.Context, sub *entity.Subcategory) error
	GetByID(ctx context.Context, id string) (*entity.Subcategory, error)
	List(ctx context.Context) ([]*entity.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	Update(ctx context.Context, sub *entity.Subcategory) error
	Delete(ctx context.Context, id string) error
}
