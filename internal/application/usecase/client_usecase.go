package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

// ClientUseCase cas d'usage des clients professionnels.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create enregistre un client. Nom complet et email sont requis.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	fullname := strings.TrimSpace(in.Fullname)
	email := strings.TrimSpace(in.Email)
	if fullname == "" || email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Fullname:  fullname,
		Email:     email,
		Company:   strings.TrimSpace(in.Company),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   in.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List retourne tous les clients, du plus récent au plus ancien.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return items, nil
}

// GetByID retourne un client par identifiant.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}
