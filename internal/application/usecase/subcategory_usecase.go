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

// SubcategoryUseCase cas d'usage CRUD des sous-catégories.
type SubcategoryUseCase struct {
	repo        repository.SubcategoryRepository
	catRepo     repository.CategoryRepository
	sscRepo     repository.SubsubcategoryRepository
	productRepo repository.ProductRepository
}

// NewSubcategoryUseCase construit le cas d'usage.
func NewSubcategoryUseCase(
	repo repository.SubcategoryRepository,
	catRepo repository.CategoryRepository,
	sscRepo repository.SubsubcategoryRepository,
	productRepo repository.ProductRepository,
) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, catRepo: catRepo, sscRepo: sscRepo, productRepo: productRepo}
}

// Create crée une sous-catégorie rattachée à une catégorie existante. Le nom
// est unique sur tout le catalogue, pas seulement dans la catégorie.
func (uc *SubcategoryUseCase) Create(ctx context.Context, in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	parent, err := uc.catRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	sub := &entity.Subcategory{
		ID:         uuid.New().String(),
		CategoryID: in.CategoryID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(sub), nil
}

// List retourne toutes les sous-catégories.
func (uc *SubcategoryUseCase) List(ctx context.Context) ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items, nil
}

// ListByCategory retourne les sous-catégories d'une catégorie.
func (uc *SubcategoryUseCase) ListByCategory(ctx context.Context, categoryID string) ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items, nil
}

// GetByID retourne une sous-catégorie par identifiant.
func (uc *SubcategoryUseCase) GetByID(ctx context.Context, id string) (*dto.SubcategoryResponse, error) {
	sub, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return toSubcategoryResponse(sub), nil
}

// Update met à jour une sous-catégorie. Un changement de catégorie parente est
// accepté si la nouvelle catégorie existe.
func (uc *SubcategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	sub, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil && *in.CategoryID != sub.CategoryID {
		parent, err := uc.catRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		sub.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		sub.Name = name
	}
	sub.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(sub), nil
}

// Delete supprime une sous-catégorie, refusé tant qu'elle est référencée.
func (uc *SubcategoryUseCase) Delete(ctx context.Context, id string) error {
	sub, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	sscs, err := uc.sscRepo.CountBySubcategory(ctx, id)
	if err != nil {
		return err
	}
	if sscs > 0 {
		return domain.ErrReferenced
	}
	products, err := uc.productRepo.CountBySubcategory(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(ctx, id)
}
