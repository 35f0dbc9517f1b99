package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implémentation du port ClientRepository sur PostgreSQL (pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un client.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, fullname, email, company, phone, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Fullname, c.Email,
		nullable(c.Company), nullable(c.Phone), nullable(c.Message),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID retourne le client ou nil si absent.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, fullname, email, company, phone, message, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	var company, phone, message *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Fullname, &c.Email, &company, &phone, &message, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	c.Company, c.Phone, c.Message = deref(company), deref(phone), deref(message)
	return &c, nil
}

// List retourne tous les clients, les plus récents d'abord.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	query := `
		SELECT id, fullname, email, company, phone, message, created_at, updated_at
		FROM clients ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		var company, phone, message *string
		if err := rows.Scan(&c.ID, &c.Fullname, &c.Email, &company, &phone, &message, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		c.Company, c.Phone, c.Message = deref(company), deref(phone), deref(message)
		list = append(list, &c)
	}
	return list, rows.Err()
}
