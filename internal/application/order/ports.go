package order

import (
	"context"

	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

// TxRunner port transactionnel : client éventuel, commande, lignes et intentions
// de notification sont persistés en une seule transaction.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		orderRepo repository.OrderRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}
