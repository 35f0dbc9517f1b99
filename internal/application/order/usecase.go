// Package order porte le cas d'usage d'agrégation des commandes : résolution
// des produits, instantanés de noms, écriture transactionnelle avec l'outbox
// de notifications.
package order

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

// UseCase cas d'usage des commandes. Les lectures passent par les repos liés
// au pool ; l'écriture d'une commande passe par le TxRunner pour que client,
// commande, lignes et intentions de notification partent en une transaction.
type UseCase struct {
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	orderRepo   repository.OrderRepository
	tx          TxRunner
	adminEmail  string
}

// NewUseCase construit le cas d'usage. adminEmail reçoit la notification
// interne de chaque commande.
func NewUseCase(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	orderRepo repository.OrderRepository,
	tx TxRunner,
	adminEmail string,
) *UseCase {
	return &UseCase{
		productRepo: productRepo,
		clientRepo:  clientRepo,
		orderRepo:   orderRepo,
		tx:          tx,
		adminEmail:  adminEmail,
	}
}

// Create crée une commande pour un client déjà enregistré.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	order, err := uc.buildOrder(ctx, client.ID, in.Products, in.SendNotif, in.Notes)
	if err != nil {
		return nil, err
	}
	if err := uc.persist(ctx, nil, order, client.Email); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// CreateWithClient enregistre le client et sa commande dans la même
// transaction : si une ligne ne se résout pas, le client n'est pas créé non plus.
// Le message libre du client est figé dans les notes de la commande.
func (uc *UseCase) CreateWithClient(ctx context.Context, in dto.CreateOrderWithClientRequest) (*dto.OrderResponse, error) {
	fullname := strings.TrimSpace(in.ClientDetails.Fullname)
	email := strings.TrimSpace(in.ClientDetails.Email)
	if fullname == "" || email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Fullname:  fullname,
		Email:     email,
		Company:   strings.TrimSpace(in.ClientDetails.Company),
		Phone:     strings.TrimSpace(in.ClientDetails.Phone),
		Message:   in.ClientDetails.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	order, err := uc.buildOrder(ctx, client.ID, in.OrderDetails.Products, in.OrderDetails.SendNotif, strings.TrimSpace(in.ClientDetails.Message))
	if err != nil {
		return nil, err
	}
	if err := uc.persist(ctx, client, order, client.Email); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID retourne une commande avec ses lignes.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List retourne toutes les commandes, les plus récentes d'abord.
func (uc *UseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// Delete supprime une commande et ses lignes.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(ctx, id)
}

// buildOrder résout chaque ligne contre le catalogue avant toute écriture.
// Tout ou rien : un produit introuvable rejette la commande entière.
func (uc *UseCase) buildOrder(ctx context.Context, clientID string, lines []dto.OrderLineRequest, sendNotif bool, notes string) (*entity.Order, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	resolved := make([]entity.OrderLine, 0, len(lines))
	total := 0
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrUnresolvedProduct
		}
		// Le nom est figé ici : renommer le produit plus tard ne réécrit
		// pas l'historique des commandes.
		resolved = append(resolved, entity.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  l.Quantity,
		})
		total += l.Quantity
	}
	now := time.Now()
	return &entity.Order{
		ID:            uuid.New().String(),
		ClientID:      clientID,
		Date:          now,
		Lines:         resolved,
		TotalQuantity: total,
		SendNotif:     sendNotif,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// persist écrit le client éventuel, la commande et l'outbox en une transaction.
// La notification interne part toujours ; celle du client seulement si demandé.
func (uc *UseCase) persist(ctx context.Context, newClient *entity.Client, order *entity.Order, clientEmail string) error {
	return uc.tx.RunOrder(ctx, func(
		clientRepo repository.ClientRepository,
		orderRepo repository.OrderRepository,
		notifRepo repository.NotificationRepository,
	) error {
		if newClient != nil {
			if err := clientRepo.Create(ctx, newClient); err != nil {
				return err
			}
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		notifications := []*entity.Notification{{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Kind:      entity.NotifKindAdmin,
			Recipient: uc.adminEmail,
			Status:    entity.NotifPending,
			CreatedAt: time.Now(),
		}}
		if order.SendNotif {
			notifications = append(notifications, &entity.Notification{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				Kind:      entity.NotifKindClient,
				Recipient: clientEmail,
				Status:    entity.NotifPending,
				CreatedAt: time.Now(),
			})
		}
		for _, n := range notifications {
			if err := notifRepo.Create(ctx, n); err != nil {
				return err
			}
		}
		return nil
	})
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		ClientID:      o.ClientID,
		Date:          o.Date,
		Products:      lines,
		TotalQuantity: o.TotalQuantity,
		SendNotif:     o.SendNotif,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
