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

var _ repository.MarkRepository = (*MarkRepo)(nil)

// MarkRepo implémentation du port MarkRepository sur PostgreSQL (pool ou tx).
type MarkRepo struct {
	q Querier
}

// NewMarkRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewMarkRepository(q Querier) *MarkRepo {
	return &MarkRepo{q: q}
}

// Create persiste une marque. Nom unique.
func (r *MarkRepo) Create(ctx context.Context, m *entity.Mark) error {
	query := `
		INSERT INTO marks (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, m.ID, m.Name, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert mark: %w", err)
	}
	return nil
}

// GetByID retourne la marque ou nil si absente.
func (r *MarkRepo) GetByID(ctx context.Context, id string) (*entity.Mark, error) {
	return r.get(ctx, `SELECT id, name, created_at, updated_at FROM marks WHERE id = $1`, id)
}

// GetByName retourne la marque par nom ou nil (import en lot idempotent).
func (r *MarkRepo) GetByName(ctx context.Context, name string) (*entity.Mark, error) {
	return r.get(ctx, `SELECT id, name, created_at, updated_at FROM marks WHERE name = $1`, name)
}

func (r *MarkRepo) get(ctx context.Context, query string, arg any) (*entity.Mark, error) {
	var m entity.Mark
	err := r.q.QueryRow(ctx, query, arg).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mark: %w", err)
	}
	return &m, nil
}

// List retourne toutes les marques.
func (r *MarkRepo) List(ctx context.Context) ([]*entity.Mark, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at, updated_at FROM marks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mark
	for rows.Next() {
		var m entity.Mark
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mark: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update met à jour le nom.
func (r *MarkRepo) Update(ctx context.Context, m *entity.Mark) error {
	_, err := r.q.Exec(ctx,
		`UPDATE marks SET name = $2, updated_at = $3 WHERE id = $1`,
		m.ID, m.Name, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update mark: %w", err)
	}
	return nil
}

// Delete supprime la marque.
func (r *MarkRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM marks WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete mark: %w", err)
	}
	return nil
}
