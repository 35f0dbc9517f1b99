package repository

import (
	"context"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

// OrderRepository définit le port de persistance pour Order (DIP).
// Create écrit la commande et ses lignes ; appelé sous transaction via le TxRunner.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	Delete(ctx context.Context, id string) error
}
