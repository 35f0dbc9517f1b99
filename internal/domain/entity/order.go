package entity

import "time"

// OrderLine ligne de commande. Name est un instantané du nom du produit au
// moment de la création : renommer le produit ne modifie pas l'historique.
type OrderLine struct {
	ProductID string
	Name      string
	Quantity  int // >= 1
}

// Order représente une commande agrégée.
// Invariant : TotalQuantity == somme des quantités des lignes, len(Lines) >= 1.
type Order struct {
	ID            string
	ClientID      string
	Date          time.Time
	Lines         []OrderLine
	TotalQuantity int
	SendNotif     bool // notifier aussi le client par mail
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
