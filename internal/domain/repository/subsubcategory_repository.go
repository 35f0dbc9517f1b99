package repository

import (
	"context"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

// SubsubcategoryRepository définit le port de persistance pour Subsubcategory (DIP).
type SubsubcategoryRepository interface {
	Create(ctx context.Context, ssc *entity.Subsubcategory) error
	GetByID(ctx context.Context, id string) (*entity.Subsubcategory, error)
	List(ctx context.Context) ([]*entity.Subsubcategory, error)
	ListBySubcategory(ctx context.Context, subcategoryID string) ([]*entity.Subsubcategory, error)
	CountBySubcategory(ctx context.Context, subcategoryID string) (int, error)
	Update(ctx context.Context, ssc *entity.Subsubcategory) error
	Delete(ctx context.Context, id string) error
}
