package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

// MarkUseCase cas d'usage CRUD des marques distribuées.
type MarkUseCase struct {
	repo        repository.MarkRepository
	productRepo repository.ProductRepository
}

// NewMarkUseCase construit le cas d'usage.
func NewMarkUseCase(repo repository.MarkRepository, productRepo repository.ProductRepository) *MarkUseCase {
	return &MarkUseCase{repo: repo, productRepo: productRepo}
}

// Create crée une marque. Le nom est unique.
func (uc *MarkUseCase) Create(ctx context.Context, in dto.CreateMarkRequest) (*dto.MarkResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	mark := &entity.Mark{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, mark); err != nil {
		return nil, err
	}
	return toMarkResponse(mark), nil
}

// ImportNames crée en lot les marques manquantes, idempotent sur le nom.
// Retourne la liste complète des marques correspondant aux noms demandés.
func (uc *MarkUseCase) ImportNames(ctx context.Context, names []string) ([]dto.MarkResponse, error) {
	items := make([]dto.MarkResponse, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		existing, err := uc.repo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			items = append(items, *toMarkResponse(existing))
			continue
		}
		created, err := uc.Create(ctx, dto.CreateMarkRequest{Name: name})
		if err != nil {
			// Course possible entre le GetByName et le Create ; la marque
			// existante fait foi.
			if errors.Is(err, domain.ErrDuplicate) {
				existing, gerr := uc.repo.GetByName(ctx, name)
				if gerr != nil {
					return nil, gerr
				}
				if existing != nil {
					items = append(items, *toMarkResponse(existing))
					continue
				}
			}
			return nil, err
		}
		items = append(items, *created)
	}
	return items, nil
}

// List retourne toutes les marques.
func (uc *MarkUseCase) List(ctx context.Context) ([]dto.MarkResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MarkResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMarkResponse(m))
	}
	return items, nil
}

// GetByID retourne une marque par identifiant.
func (uc *MarkUseCase) GetByID(ctx context.Context, id string) (*dto.MarkResponse, error) {
	mark, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mark == nil {
		return nil, domain.ErrNotFound
	}
	return toMarkResponse(mark), nil
}

// Update met à jour une marque.
func (uc *MarkUseCase) Update(ctx context.Context, id string, in dto.UpdateMarkRequest) (*dto.MarkResponse, error) {
	mark, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mark == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		mark.Name = name
	}
	mark.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, mark); err != nil {
		return nil, err
	}
	return toMarkResponse(mark), nil
}

// Delete supprime une marque, refusé tant que des produits la référencent.
func (uc *MarkUseCase) Delete(ctx context.Context, id string) error {
	mark, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mark == nil {
		return domain.ErrNotFound
	}
	products, err := uc.productRepo.CountByMark(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(ctx, id)
}
