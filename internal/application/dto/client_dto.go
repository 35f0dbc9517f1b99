package dto

import "time"

// CreateClientRequest enregistrement d'un client professionnel.
type CreateClientRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ClientResponse client exposé.
type ClientResponse struct {
	ID        string    `json:"_id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
