package entity

import "time"

// Category représente une catégorie racine du catalogue.
// IsMark est un reliquat de l'ancien schéma où les marques étaient des
// catégories marquées ; l'entité Mark est le modèle canonique.
type Category struct {
	ID        string
	Name      string
	IsMark    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subcategory représente une sous-catégorie ; elle porte la référence vers sa
// catégorie (source de vérité unique, pas de liste d'enfants persistée).
type Subcategory struct {
	ID         string
	CategoryID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Subsubcategory représente le troisième niveau de l'arborescence.
type Subsubcategory struct {
	ID            string
	SubcategoryID string
	Name          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CategoryTree catégorie avec ses enfants résolus à la lecture (menus imbriqués).
type CategoryTree struct {
	Category
	Subcategories []SubcategoryTree
}

// SubcategoryTree sous-catégorie avec ses sous-sous-catégories.
type SubcategoryTree struct {
	Subcategory
	Subsubcategories []Subsubcategory
}
