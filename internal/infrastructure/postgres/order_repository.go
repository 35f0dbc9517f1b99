package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implémentation du port OrderRepository sur PostgreSQL (pool ou tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create écrit la commande puis ses lignes. À appeler sous transaction pour
// que l'écriture soit tout-ou-rien.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, client_id, date, total_quantity, send_notif, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.ClientID, o.Date, o.TotalQuantity, o.SendNotif, nullable(o.Notes),
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	lineQuery := `
		INSERT INTO order_lines (order_id, position, product_id, name, quantity)
		VALUES ($1, $2, $3, $4, $5)`
	for i, line := range o.Lines {
		if _, err := r.q.Exec(ctx, lineQuery, o.ID, i, line.ProductID, line.Name, line.Quantity); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID retourne la commande avec ses lignes, ou nil si absente.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, client_id, date, total_quantity, send_notif, notes, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	var notes *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.ClientID, &o.Date, &o.TotalQuantity, &o.SendNotif, &notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Notes = deref(notes)
	if o.Lines, err = r.lines(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

// List retourne toutes les commandes avec leurs lignes, les plus récentes d'abord.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT id, client_id, date, total_quantity, send_notif, notes, created_at, updated_at
		FROM orders ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var notes *string
		if err := rows.Scan(&o.ID, &o.ClientID, &o.Date, &o.TotalQuantity, &o.SendNotif, &notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Notes = deref(notes)
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if o.Lines, err = r.lines(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *OrderRepo) lines(ctx context.Context, orderID string) ([]entity.OrderLine, error) {
	query := `
		SELECT product_id, name, quantity
		FROM order_lines WHERE order_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Delete supprime la commande ; les lignes suivent par ON DELETE CASCADE.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
