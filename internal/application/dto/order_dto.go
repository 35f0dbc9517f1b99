package dto

import "time"

// OrderLineRequest ligne demandée : produit existant et quantité >= 1.
type OrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest commande pour un client déjà enregistré.
type CreateOrderRequest struct {
	ClientID  string             `json:"client_id"`
	Products  []OrderLineRequest `json:"products"`
	SendNotif bool               `json:"sendNotif"`
	Notes     string             `json:"notes"`
}

// CreateOrderWithClientRequest commande avec création du client dans le même appel.
type CreateOrderWithClientRequest struct {
	ClientDetails CreateClientRequest `json:"clientDetails"`
	OrderDetails  struct {
		Products  []OrderLineRequest `json:"products"`
		SendNotif bool               `json:"sendNotif"`
	} `json:"orderDetails"`
}

// OrderLineResponse ligne persistée, nom du produit figé à la création.
type OrderLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse commande exposée.
type OrderResponse struct {
	ID            string              `json:"_id"`
	ClientID      string              `json:"client_id"`
	Date          time.Time           `json:"date"`
	Products      []OrderLineResponse `json:"products"`
	TotalQuantity int                 `json:"totalQuantity"`
	SendNotif     bool                `json:"sendNotif"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
