package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hygimar/catalogue-api/internal/application/order"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

var _ order.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder ouvre une transaction, exécute fn avec des repos liés à la tx et
// fait Commit ou Rollback. Client, commande, lignes et outbox partent en un seul write.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	orderRepo repository.OrderRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	clientRepo := NewClientRepository(tx)
	orderRepo := NewOrderRepository(tx)
	notifRepo := NewNotificationRepository(tx)

	if err := fn(clientRepo, orderRepo, notifRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
