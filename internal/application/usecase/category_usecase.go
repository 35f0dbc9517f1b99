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

// CategoryUseCase cas d'usage CRUD des catégories racines, plus la lecture de
// l'arborescence complète pour les menus de la vitrine.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	subRepo     repository.SubcategoryRepository
	sscRepo     repository.SubsubcategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryUseCase construit le cas d'usage.
func NewCategoryUseCase(
	repo repository.CategoryRepository,
	subRepo repository.SubcategoryRepository,
	sscRepo repository.SubsubcategoryRepository,
	productRepo repository.ProductRepository,
) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, subRepo: subRepo, sscRepo: sscRepo, productRepo: productRepo}
}

// Create crée une catégorie. Le nom est unique (insensible aux espaces de bord).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      name,
		IsMark:    in.IsMark,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// CreateWithSubs crée une catégorie et ses sous-catégories en un appel
// (amorçage du catalogue). Les noms vides sont ignorés. Le lot n'est pas
// transactionnel : un échec sur la Nième sous-catégorie laisse la catégorie
// et les précédentes en place, l'appelant corrige le nom et rejoue.
func (uc *CategoryUseCase) CreateWithSubs(ctx context.Context, in dto.CreateCategoryWithSubsRequest) (*dto.CategoryTreeResponse, error) {
	created, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: in.Name})
	if err != nil {
		return nil, err
	}
	tree := &dto.CategoryTreeResponse{
		CategoryResponse: *created,
		Subcategories:    []dto.SubcategoryTreeResponse{},
	}
	for _, subName := range in.Subcategories {
		subName = strings.TrimSpace(subName)
		if subName == "" {
			continue
		}
		now := time.Now()
		sub := &entity.Subcategory{
			ID:         uuid.New().String(),
			CategoryID: created.ID,
			Name:       subName,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := uc.subRepo.Create(ctx, sub); err != nil {
			return nil, err
		}
		tree.Subcategories = append(tree.Subcategories, dto.SubcategoryTreeResponse{
			SubcategoryResponse: *toSubcategoryResponse(sub),
			Subsubcategories:    []dto.SubsubcategoryResponse{},
		})
	}
	return tree, nil
}

// List retourne les catégories ; isMark non nil filtre sur le flag hérité.
func (uc *CategoryUseCase) List(ctx context.Context, isMark *bool) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, isMark)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID retourne une catégorie par identifiant.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Tree retourne toutes les catégories avec leurs enfants résolus à la lecture.
// L'arborescence est recomposée depuis les références parent, jamais stockée.
func (uc *CategoryUseCase) Tree(ctx context.Context) ([]dto.CategoryTreeResponse, error) {
	categories, err := uc.repo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	subs, err := uc.subRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sscs, err := uc.sscRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sscBySub := make(map[string][]dto.SubsubcategoryResponse)
	for _, ssc := range sscs {
		sscBySub[ssc.SubcategoryID] = append(sscBySub[ssc.SubcategoryID], *toSubsubcategoryResponse(ssc))
	}
	subByCat := make(map[string][]dto.SubcategoryTreeResponse)
	for _, sub := range subs {
		children := sscBySub[sub.ID]
		if children == nil {
			children = []dto.SubsubcategoryResponse{}
		}
		subByCat[sub.CategoryID] = append(subByCat[sub.CategoryID], dto.SubcategoryTreeResponse{
			SubcategoryResponse: *toSubcategoryResponse(sub),
			Subsubcategories:    children,
		})
	}

	trees := make([]dto.CategoryTreeResponse, 0, len(categories))
	for _, c := range categories {
		children := subByCat[c.ID]
		if children == nil {
			children = []dto.SubcategoryTreeResponse{}
		}
		trees = append(trees, dto.CategoryTreeResponse{
			CategoryResponse: *toCategoryResponse(c),
			Subcategories:    children,
		})
	}
	return trees, nil
}

// Update met à jour partiellement une catégorie.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = name
	}
	if in.IsMark != nil {
		category.IsMark = *in.IsMark
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete supprime une catégorie. La suppression est refusée tant que des
// sous-catégories ou des produits la référencent.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	subs, err := uc.subRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if subs > 0 {
		return domain.ErrReferenced
	}
	products, err := uc.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(ctx, id)
}
