package entity

import "time"

// Mark représente une marque, indépendante de l'arbre des catégories.
type Mark struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
