package repository

import (
	"context"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

// RelatedFilter critères de la recherche de produits liés : même catégorie,
// même sous-catégorie si l'ancre en a une, ancre exclue.
type RelatedFilter struct {
	CategoryID    string
	SubcategoryID string // vide = pas de contrainte
	ExcludeID     string
	Limit         int
}

// ProductRepository définit le port de persistance pour Product (DIP).
// Les méthodes ListViews* retournent les produits joints aux quatre dimensions
// de taxonomie, du plus récent au plus ancien (contrat vitrine "nouveautés").
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetViewByID(ctx context.Context, id string) (*entity.ProductView, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	ListViews(ctx context.Context) ([]*entity.ProductView, error)
	ListViewsByCategory(ctx context.Context, categoryID string) ([]*entity.ProductView, error)
	ListViewsBySubcategory(ctx context.Context, subcategoryID string) ([]*entity.ProductView, error)
	ListViewsBySubsubcategory(ctx context.Context, subsubcategoryID string) ([]*entity.ProductView, error)
	ListViewsByMark(ctx context.Context, markID string) ([]*entity.ProductView, error)
	ListRelated(ctx context.Context, f RelatedFilter) ([]*entity.ProductView, error)

	CountByCategory(ctx context.Context, categoryID string) (int, error)
	CountBySubcategory(ctx context.Context, subcategoryID string) (int, error)
	CountBySubsubcategory(ctx context.Context, subsubcategoryID string) (int, error)
	CountByMark(ctx context.Context, markID string) (int, error)
}
