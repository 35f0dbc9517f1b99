package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implémentation du port NotificationRepository sur PostgreSQL (pool ou tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create insère une intention d'envoi (même transaction que la commande).
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, order_id, kind, recipient, status, attempts, last_error, next_retry_at, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.OrderID, n.Kind, n.Recipient, n.Status, n.Attempts,
		nullable(n.LastError), n.NextRetryAt, n.SentAt, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListDue retourne les notifications pending dont l'échéance est passée ou nulle.
func (r *NotificationRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, order_id, kind, recipient, status, attempts, last_error, next_retry_at, sent_at, created_at
		FROM notifications
		WHERE status = $1 AND (next_retry_at IS NULL OR next_retry_at <= $2)
		ORDER BY created_at
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, entity.NotifPending, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		var lastErr *string
		if err := rows.Scan(&n.ID, &n.OrderID, &n.Kind, &n.Recipient, &n.Status, &n.Attempts,
			&lastErr, &n.NextRetryAt, &n.SentAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.LastError = deref(lastErr)
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Update met à jour l'état d'une notification après une tentative d'envoi.
func (r *NotificationRepo) Update(ctx context.Context, n *entity.Notification) error {
	query := `
		UPDATE notifications SET status = $2, attempts = $3, last_error = $4, next_retry_at = $5, sent_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.Status, n.Attempts, nullable(n.LastError), n.NextRetryAt, n.SentAt)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

// ListByOrder retourne les notifications d'une commande (diagnostic ops).
func (r *NotificationRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.Notification, error) {
	query := `
		SELECT id, order_id, kind, recipient, status, attempts, last_error, next_retry_at, sent_at, created_at
		FROM notifications WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		var lastErr *string
		if err := rows.Scan(&n.ID, &n.OrderID, &n.Kind, &n.Recipient, &n.Status, &n.Attempts,
			&lastErr, &n.NextRetryAt, &n.SentAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.LastError = deref(lastErr)
		list = append(list, &n)
	}
	return list, rows.Err()
}
