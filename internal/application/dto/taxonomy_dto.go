package dto

import "time"

// Les noms de champs JSON reprennent le contrat historique de la vitrine
// (catg_name, id_catg, ...) pour ne pas casser les clients existants.

// CreateCategoryRequest création de catégorie.
type CreateCategoryRequest struct {
	Name   string `json:"catg_name"`
	IsMark bool   `json:"isMark"`
}

// UpdateCategoryRequest mise à jour partielle de catégorie.
type UpdateCategoryRequest struct {
	Name   *string `json:"catg_name"`
	IsMark *bool   `json:"isMark"`
}

// CategoryResponse catégorie exposée.
type CategoryResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"catg_name"`
	IsMark    bool      `json:"isMark"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateSubcategoryRequest création de sous-catégorie.
type CreateSubcategoryRequest struct {
	CategoryID string `json:"id_catg"`
	Name       string `json:"subcatg_name"`
}

// UpdateSubcategoryRequest mise à jour de sous-catégorie.
type UpdateSubcategoryRequest struct {
	CategoryID *string `json:"id_catg"`
	Name       *string `json:"subcatg_name"`
}

// SubcategoryResponse sous-catégorie exposée.
type SubcategoryResponse struct {
	ID         string    `json:"_id"`
	CategoryID string    `json:"id_catg"`
	Name       string    `json:"subcatg_name"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateSubsubcategoryRequest création de sous-sous-catégorie.
type CreateSubsubcategoryRequest struct {
	SubcategoryID string `json:"id_subcatg"`
	Name          string `json:"subsubcatg_name"`
}

// UpdateSubsubcategoryRequest mise à jour de sous-sous-catégorie.
type UpdateSubsubcategoryRequest struct {
	SubcategoryID *string `json:"id_subcatg"`
	Name          *string `json:"subsubcatg_name"`
}

// SubsubcategoryResponse sous-sous-catégorie exposée.
type SubsubcategoryResponse struct {
	ID            string    `json:"_id"`
	SubcategoryID string    `json:"id_subcatg"`
	Name          string    `json:"subsubcatg_name"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateMarkRequest création de marque.
type CreateMarkRequest struct {
	Name string `json:"mark_name"`
}

// UpdateMarkRequest mise à jour de marque.
type UpdateMarkRequest struct {
	Name *string `json:"mark_name"`
}

// MarkResponse marque exposée.
type MarkResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"mark_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCategoryWithSubsRequest création d'une catégorie et de ses
// sous-catégories en un appel (import initial du catalogue).
type CreateCategoryWithSubsRequest struct {
	Name          string   `json:"catg_name"`
	Subcategories []string `json:"subcategories"`
}

// SubcategoryTreeResponse sous-catégorie avec ses enfants (menu imbriqué).
type SubcategoryTreeResponse struct {
	SubcategoryResponse
	Subsubcategories []SubsubcategoryResponse `json:"subsubcategories"`
}

// CategoryTreeResponse catégorie avec l'arborescence complète.
type CategoryTreeResponse struct {
	CategoryResponse
	Subcategories []SubcategoryTreeResponse `json:"subcategories"`
}

// CategoryDetailsResponse catégorie et ses produits directs (sans cascade).
type CategoryDetailsResponse struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

// SubcategoryDetailsResponse sous-catégorie et ses produits directs.
type SubcategoryDetailsResponse struct {
	Subcategory SubcategoryResponse `json:"subcategory"`
	Products    []ProductResponse   `json:"products"`
}

// SubsubcategoryDetailsResponse sous-sous-catégorie et ses produits directs.
type SubsubcategoryDetailsResponse struct {
	Subsubcategory SubsubcategoryResponse `json:"subsubcategory"`
	Products       []ProductResponse      `json:"products"`
}

// MarkDetailsResponse marque et ses produits.
type MarkDetailsResponse struct {
	Mark     MarkResponse      `json:"mark"`
	Products []ProductResponse `json:"products"`
}
