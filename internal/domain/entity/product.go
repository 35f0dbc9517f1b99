package entity

import "time"

// Product représente un produit du catalogue.
// Invariant : PrimaryImage est vide ou appartient à Images.
// SubsubcategoryID, si présent, doit appartenir à SubcategoryID (validé à l'écriture).
type Product struct {
	ID               string
	Name             string // unique
	Slug             string // dérivé du nom, unique
	Description      string
	Images           []string // locators retournés par le stockage, ordre d'upload
	PrimaryImage     string   // vide = aucune image
	TecSheet         string   // fiche technique, optionnelle
	CategoryID       string   // requis
	SubcategoryID    string   // optionnel
	SubsubcategoryID string   // optionnel
	MarkID           string   // optionnel
	Quantity         int      // >= 0
	InStock          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProductView produit joint aux quatre dimensions de taxonomie (lecture vitrine).
type ProductView struct {
	Product
	CategoryName       string
	SubcategoryName    string
	SubsubcategoryName string
	MarkName           string
}
