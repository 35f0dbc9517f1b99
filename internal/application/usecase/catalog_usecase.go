package usecase

import (
	"context"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

// relatedLimit nombre maximal de suggestions "produits liés" de la vitrine.
const relatedLimit = 5

// CatalogUseCase cas d'usage de lecture de la vitrine : listes jointes à la
// taxonomie, détails par nœud, suggestions de produits liés. Toutes les listes
// sortent du plus récent au plus ancien.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	catRepo     repository.CategoryRepository
	subRepo     repository.SubcategoryRepository
	sscRepo     repository.SubsubcategoryRepository
	markRepo    repository.MarkRepository
}

// NewCatalogUseCase construit le cas d'usage.
func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	catRepo repository.CategoryRepository,
	subRepo repository.SubcategoryRepository,
	sscRepo repository.SubsubcategoryRepository,
	markRepo repository.MarkRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		catRepo:     catRepo,
		subRepo:     subRepo,
		sscRepo:     sscRepo,
		markRepo:    markRepo,
	}
}

// List retourne tous les produits joints à la taxonomie.
func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	views, err := uc.productRepo.ListViews(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(views), nil
}

// GetByID retourne un produit joint à la taxonomie.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	view, err := uc.productRepo.GetViewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(view), nil
}

// Related suggère des produits de la même catégorie que l'ancre, restreints à
// la même sous-catégorie si l'ancre en a une, ancre exclue, au plus cinq.
func (uc *CatalogUseCase) Related(ctx context.Context, id string) ([]dto.ProductResponse, error) {
	anchor, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if anchor == nil {
		return nil, domain.ErrNotFound
	}
	views, err := uc.productRepo.ListRelated(ctx, repository.RelatedFilter{
		CategoryID:    anchor.CategoryID,
		SubcategoryID: anchor.SubcategoryID,
		ExcludeID:     anchor.ID,
		Limit:         relatedLimit,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponses(views), nil
}

// ByCategory retourne les produits directement rattachés à une catégorie.
func (uc *CatalogUseCase) ByCategory(ctx context.Context, categoryID string) ([]dto.ProductResponse, error) {
	views, err := uc.productRepo.ListViewsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(views), nil
}

// BySubcategory retourne les produits d'une sous-catégorie.
func (uc *CatalogUseCase) BySubcategory(ctx context.Context, subcategoryID string) ([]dto.ProductResponse, error) {
	views, err := uc.productRepo.ListViewsBySubcategory(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(views), nil
}

// BySubsubcategory retourne les produits d'une sous-sous-catégorie.
func (uc *CatalogUseCase) BySubsubcategory(ctx context.Context, subsubcategoryID string) ([]dto.ProductResponse, error) {
	views, err := uc.productRepo.ListViewsBySubsubcategory(ctx, subsubcategoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(views), nil
}

// ByMark retourne les produits d'une marque.
func (uc *CatalogUseCase) ByMark(ctx context.Context, markID string) ([]dto.ProductResponse, error) {
	views, err := uc.productRepo.ListViewsByMark(ctx, markID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(views), nil
}

// CategoryDetails retourne une catégorie et ses produits directs, sans cascade
// sur les niveaux inférieurs.
func (uc *CatalogUseCase) CategoryDetails(ctx context.Context, id string) (*dto.CategoryDetailsResponse, error) {
	category, err := uc.catRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	views, err := uc.productRepo.ListViewsByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryDetailsResponse{
		Category: *toCategoryResponse(category),
		Products: toProductResponses(views),
	}, nil
}

// SubcategoryDetails retourne une sous-catégorie et ses produits directs.
func (uc *CatalogUseCase) SubcategoryDetails(ctx context.Context, id string) (*dto.SubcategoryDetailsResponse, error) {
	sub, err := uc.subRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	views, err := uc.productRepo.ListViewsBySubcategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubcategoryDetailsResponse{
		Subcategory: *toSubcategoryResponse(sub),
		Products:    toProductResponses(views),
	}, nil
}

// SubsubcategoryDetails retourne une sous-sous-catégorie et ses produits.
func (uc *CatalogUseCase) SubsubcategoryDetails(ctx context.Context, id string) (*dto.SubsubcategoryDetailsResponse, error) {
	ssc, err := uc.sscRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ssc == nil {
		return nil, domain.ErrNotFound
	}
	views, err := uc.productRepo.ListViewsBySubsubcategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubsubcategoryDetailsResponse{
		Subsubcategory: *toSubsubcategoryResponse(ssc),
		Products:       toProductResponses(views),
	}, nil
}

// MarkDetails retourne une marque et ses produits.
func (uc *CatalogUseCase) MarkDetails(ctx context.Context, id string) (*dto.MarkDetailsResponse, error) {
	mark, err := uc.markRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mark == nil {
		return nil, domain.ErrNotFound
	}
	views, err := uc.productRepo.ListViewsByMark(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.MarkDetailsResponse{
		Mark:     *toMarkResponse(mark),
		Products: toProductResponses(views),
	}, nil
}
