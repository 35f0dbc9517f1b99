package entity

import "time"

// Client représente un client professionnel (registre B2B).
type Client struct {
	ID        string
	Fullname  string
	Email     string
	Company   string // optionnel
	Phone     string // optionnel
	Message   string // texte libre saisi à la prise de contact
	CreatedAt time.Time
	UpdatedAt time.Time
}
