package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

// SubsubcategoryUseCase cas d'usage CRUD du troisième niveau de taxonomie.
type SubsubcategoryUseCase struct {
	repo        repository.SubsubcategoryRepository
	subRepo     repository.SubcategoryRepository
	productRepo repository.ProductRepository
}

// NewSubsubcategoryUseCase construit le cas d'usage.
func NewSubsubcategoryUseCase(
	repo repository.SubsubcategoryRepository,
	subRepo repository.SubcategoryRepository,
	productRepo repository.ProductRepository,
) *SubsubcategoryUseCase {
	return &SubsubcategoryUseCase{repo: repo, subRepo: subRepo, productRepo: productRepo}
}

// Create crée une sous-sous-catégorie rattachée à une sous-catégorie existante.
// Le nom est unique sur tout le catalogue.
func (uc *SubsubcategoryUseCase) Create(ctx context.Context, in dto.CreateSubsubcategoryRequest) (*dto.SubsubcategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.SubcategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	parent, err := uc.subRepo.GetByID(ctx, in.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	ssc := &entity.Subsubcategory{
		ID:            uuid.New().String(),
		SubcategoryID: in.SubcategoryID,
		Name:          name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, ssc); err != nil {
		return nil, err
	}
	return toSubsubcategoryResponse(ssc), nil
}

// List retourne toutes les sous-sous-catégories.
func (uc *SubsubcategoryUseCase) List(ctx context.Context) ([]dto.SubsubcategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubsubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubsubcategoryResponse(s))
	}
	return items, nil
}

// ListBySubcategory retourne les sous-sous-catégories d'une sous-catégorie.
func (uc *SubsubcategoryUseCase) ListBySubcategory(ctx context.Context, subcategoryID string) ([]dto.SubsubcategoryResponse, error) {
	list, err := uc.repo.ListBySubcategory(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubsubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubsubcategoryResponse(s))
	}
	return items, nil
}

// GetByID retourne une sous-sous-catégorie par identifiant.
func (uc *SubsubcategoryUseCase) GetByID(ctx context.Context, id string) (*dto.SubsubcategoryResponse, error) {
	ssc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ssc == nil {
		return nil, domain.ErrNotFound
	}
	return toSubsubcategoryResponse(ssc), nil
}

// Update met à jour une sous-sous-catégorie.
func (uc *SubsubcategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateSubsubcategoryRequest) (*dto.SubsubcategoryResponse, error) {
	ssc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ssc == nil {
		return nil, domain.ErrNotFound
	}
	if in.SubcategoryID != nil && *in.SubcategoryID != ssc.SubcategoryID {
		parent, err := uc.subRepo.GetByID(ctx, *in.SubcategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		ssc.SubcategoryID = *in.SubcategoryID
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		ssc.Name = name
	}
	ssc.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, ssc); err != nil {
		return nil, err
	}
	return toSubsubcategoryResponse(ssc), nil
}

// Delete supprime une sous-sous-catégorie, refusé tant qu'elle est référencée.
func (uc *SubsubcategoryUseCase) Delete(ctx context.Context, id string) error {
	ssc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ssc == nil {
		return domain.ErrNotFound
	}
	products, err := uc.productRepo.CountBySubsubcategory(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(ctx, id)
}
