package dto

import "time"

// ProductFields champs texte d'un create/update produit. Dans les requêtes
// multipart ils arrivent en form values ; les fichiers (`images`, `tec_sheet`)
// sont traités à part par la passerelle d'upload.
type ProductFields struct {
	Name             string `json:"name" form:"name"`
	Description      string `json:"description" form:"description"`
	CategoryID       string `json:"id_catg" form:"id_catg"`
	SubcategoryID    string `json:"id_subcatg" form:"id_subcatg"`
	SubsubcategoryID string `json:"id_subsubcatg" form:"id_subsubcatg"`
	MarkID           string `json:"id_mark" form:"id_mark"`
	Quantity         int    `json:"quantity" form:"quantity"`
	InStock          bool   `json:"inStock" form:"inStock"`
	// PrimaryImage porte le nom de fichier d'origine d'une des images envoyées ;
	// si absent ou inconnu, la première image stockée devient principale.
	PrimaryImage string `json:"primaryImage" form:"primaryImage"`
}

// StoredUpload fichier déjà poussé vers le stockage par la passerelle.
type StoredUpload struct {
	OriginalName string // nom de fichier envoyé par le navigateur
	Locator      string // URL/chemin adressable retourné par le stockage
}

// ProductResponse produit exposé, joint à la taxonomie.
type ProductResponse struct {
	ID                 string    `json:"_id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description"`
	Images             []string  `json:"images"`
	PrimaryImage       string    `json:"primaryImage,omitempty"`
	TecSheet           string    `json:"tec_sheet,omitempty"`
	CategoryID         string    `json:"id_catg"`
	SubcategoryID      string    `json:"id_subcatg,omitempty"`
	SubsubcategoryID   string    `json:"id_subsubcatg,omitempty"`
	MarkID             string    `json:"id_mark,omitempty"`
	CategoryName       string    `json:"catg_name,omitempty"`
	SubcategoryName    string    `json:"subcatg_name,omitempty"`
	SubsubcategoryName string    `json:"subsubcatg_name,omitempty"`
	MarkName           string    `json:"mark_name,omitempty"`
	Quantity           int       `json:"quantity"`
	InStock            bool      `json:"inStock"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
