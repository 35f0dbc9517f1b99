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

var _ repository.SubsubcategoryRepository = (*SubsubcategoryRepo)(nil)

// SubsubcategoryRepo implémentation du port SubsubcategoryRepository sur PostgreSQL (pool ou tx).
type SubsubcategoryRepo struct {
	q Querier
}

// NewSubsubcategoryRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewSubsubcategoryRepository(q Querier) *SubsubcategoryRepo {
	return &SubsubcategoryRepo{q: q}
}

// Create persiste une sous-sous-catégorie. Nom unique sur tout le magasin.
func (r *SubsubcategoryRepo) Create(ctx context.Context, s *entity.Subsubcategory) error {
	query := `
		INSERT INTO subsubcategories (id, subcategory_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, s.ID, s.SubcategoryID, s.Name, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subsubcategory: %w", err)
	}
	return nil
}

// GetByID retourne la sous-sous-catégorie ou nil si absente.
func (r *SubsubcategoryRepo) GetByID(ctx context.Context, id string) (*entity.Subsubcategory, error) {
	query := `
		SELECT id, subcategory_id, name, created_at, updated_at
		FROM subsubcategories WHERE id = $1`
	var s entity.Subsubcategory
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.SubcategoryID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subsubcategory: %w", err)
	}
	return &s, nil
}

// List retourne toutes les sous-sous-catégories.
func (r *SubsubcategoryRepo) List(ctx context.Context) ([]*entity.Subsubcategory, error) {
	return r.list(ctx, `
		SELECT id, subcategory_id, name, created_at, updated_at
		FROM subsubcategories ORDER BY name`)
}

// ListBySubcategory retourne les enfants d'une sous-catégorie.
func (r *SubsubcategoryRepo) ListBySubcategory(ctx context.Context, subcategoryID string) ([]*entity.Subsubcategory, error) {
	return r.list(ctx, `
		SELECT id, subcategory_id, name, created_at, updated_at
		FROM subsubcategories WHERE subcategory_id = $1 ORDER BY name`, subcategoryID)
}

func (r *SubsubcategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Subsubcategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subsubcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subsubcategory
	for rows.Next() {
		var s entity.Subsubcategory
		if err := rows.Scan(&s.ID, &s.SubcategoryID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subsubcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountBySubcategory compte les sous-sous-catégories rattachées à une sous-catégorie.
func (r *SubsubcategoryRepo) CountBySubcategory(ctx context.Context, subcategoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM subsubcategories WHERE subcategory_id = $1`, subcategoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count subsubcategories: %w", err)
	}
	return n, nil
}

// Update met à jour nom et rattachement.
func (r *SubsubcategoryRepo) Update(ctx context.Context, s *entity.Subsubcategory) error {
	query := `
		UPDATE subsubcategories SET subcategory_id = $2, name = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.SubcategoryID, s.Name, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subsubcategory: %w", err)
	}
	return nil
}

// Delete supprime la sous-sous-catégorie.
func (r *SubsubcategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM subsubcategories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete subsubcategory: %w", err)
	}
	return nil
}
