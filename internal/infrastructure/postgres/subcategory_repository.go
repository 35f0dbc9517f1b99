package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implémentation du port SubcategoryRepository sur PostgreSQL (pool ou tx).
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

// Create persiste une sous-catégorie. Nom unique sur tout le magasin, pas
// seulement au sein de sa catégorie (contrat historique).
func (r *SubcategoryRepo) Create(ctx context.Context, s *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, category_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, s.ID, s.CategoryID, s.Name, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID retourne la sous-catégorie ou nil si absente.
func (r *SubcategoryRepo) GetByID(ctx context.Context, id string) (*entity.Subcategory, error) {
	query := `
		SELECT id, category_id, name, created_at, updated_at
		FROM subcategories WHERE id = $1`
	var s entity.Subcategory
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.CategoryID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}

// List retourne toutes les sous-catégories.
func (r *SubcategoryRepo) List(ctx context.Context) ([]*entity.Subcategory, error) {
	return r.list(ctx, `
		SELECT id, category_id, name, created_at, updated_at
		FROM subcategories ORDER BY name`)
}

// ListByCategory retourne les sous-catégories d'une catégorie (enfants calculés à la lecture).
func (r *SubcategoryRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error) {
	return r.list(ctx, `
		SELECT id, category_id, name, created_at, updated_at
		FROM subcategories WHERE category_id = $1 ORDER BY name`, categoryID)
}

func (r *SubcategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Subcategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountByCategory compte les sous-catégories rattachées à une catégorie.
func (r *SubcategoryRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM subcategories WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count subcategories: %w", err)
	}
	return n, nil
}

// Update met à jour nom et rattachement.
func (r *SubcategoryRepo) Update(ctx context.Context, s *entity.Subcategory) error {
	query := `
		UPDATE subcategories SET category_id = $2, name = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.CategoryID, s.Name, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// Delete supprime la sous-catégorie.
func (r *SubcategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}
