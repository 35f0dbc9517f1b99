package repository

import (
	"context"
	"time"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

// NotificationRepository définit le port de persistance de l'outbox de notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// ListDue retourne au plus limit notifications pending dont l'échéance de
	// retry est passée (ou jamais tentées), les plus anciennes d'abord.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*entity.Notification, error)
	Update(ctx context.Context, n *entity.Notification) error
	ListByOrder(ctx context.Context, orderID string) ([]*entity.Notification, error)
}
