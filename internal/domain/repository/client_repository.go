package repository

import (
	"context"

	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

// ClientRepository définit le port de persistance pour Client (DIP).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
}
