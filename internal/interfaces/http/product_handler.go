package http

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/application/usecase"
	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/infrastructure/storage"
)

// maxImages plafond d'images par produit, hérité du contrat de la vitrine.
const maxImages = 5

// Champs fichiers du formulaire multipart.
const (
	imagesField   = "images"
	tecSheetField = "tec_sheet"
)

// ProductHandler gère les requêtes HTTP des produits. Les écritures arrivent
// en multipart : champs texte plus fichiers `images` et `tec_sheet` ; les
// fichiers passent par la passerelle de stockage avant le cas d'usage.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	catalog *usecase.CatalogUseCase
	store   storage.FileStore
}

// NewProductHandler construit le handler.
func NewProductHandler(uc *usecase.ProductUseCase, catalog *usecase.CatalogUseCase, store storage.FileStore) *ProductHandler {
	return &ProductHandler{uc: uc, catalog: catalog, store: store}
}

// Create godoc
// @Summary      Créer un produit
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        name       formData  string  true   "Nom du produit"
// @Param        id_catg    formData  string  true   "ID de la catégorie"
// @Param        images     formData  file    false  "Images (5 max)"
// @Param        tec_sheet  formData  file    false  "Fiche technique"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/product/create [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	fields, images, tecSheet, err := h.parseProductForm(c)
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), fields, images, tecSheet)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Mettre à jour un produit
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path      string  true   "ID du produit"
// @Param        images     formData  file    false  "Nouvelles images, remplacent les anciennes"
// @Param        tec_sheet  formData  file    false  "Nouvelle fiche technique"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/update/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	fields, images, tecSheet, err := h.parseProductForm(c)
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), fields, images, tecSheet)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetAll godoc
// @Summary      Lister tous les produits
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/product/getall [get]
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.catalog.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un produit
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/get/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.catalog.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Related godoc
// @Summary      Produits liés à un produit
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID du produit ancre"
// @Success      200  {array}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/related/{id} [get]
func (h *ProductHandler) Related(c *fiber.Ctx) error {
	out, err := h.catalog.Related(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ByCategory godoc
// @Summary      Produits d'une catégorie
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID de la catégorie"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/product/bycategory/{id} [get]
func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	out, err := h.catalog.ByCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// BySubcategory godoc
// @Summary      Produits d'une sous-catégorie
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID de la sous-catégorie"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/product/bysubcategory/{id} [get]
func (h *ProductHandler) BySubcategory(c *fiber.Ctx) error {
	out, err := h.catalog.BySubcategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// BySubsubcategory godoc
// @Summary      Produits d'une sous-sous-catégorie
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID de la sous-sous-catégorie"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/product/bysubsubcategory/{id} [get]
func (h *ProductHandler) BySubsubcategory(c *fiber.Ctx) error {
	out, err := h.catalog.BySubsubcategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ByMark godoc
// @Summary      Produits d'une marque
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID de la marque"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/product/bymark/{id} [get]
func (h *ProductHandler) ByMark(c *fiber.Ctx) error {
	out, err := h.catalog.ByMark(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un produit
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/delete/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "produit supprimé"})
}

// parseProductForm lit les champs texte puis pousse les fichiers vers le
// stockage. Les formulaires de l'ancienne vitrine envoient la chaîne "null"
// pour les références optionnelles absentes, on la neutralise ici.
func (h *ProductHandler) parseProductForm(c *fiber.Ctx) (dto.ProductFields, []dto.StoredUpload, *dto.StoredUpload, error) {
	var fields dto.ProductFields
	if err := c.BodyParser(&fields); err != nil {
		return fields, nil, nil, domain.ErrInvalidInput
	}
	fields.SubcategoryID = nullToEmpty(fields.SubcategoryID)
	fields.SubsubcategoryID = nullToEmpty(fields.SubsubcategoryID)
	fields.MarkID = nullToEmpty(fields.MarkID)

	form, err := c.MultipartForm()
	if err != nil {
		// Pas de multipart : écriture sans fichiers, les champs JSON suffisent.
		return fields, nil, nil, nil
	}

	imageHeaders := form.File[imagesField]
	if len(imageHeaders) > maxImages {
		return fields, nil, nil, domain.ErrInvalidInput
	}
	images := make([]dto.StoredUpload, 0, len(imageHeaders))
	for _, fh := range imageHeaders {
		stored, err := h.storeUpload(c, fh)
		if err != nil {
			return fields, nil, nil, err
		}
		images = append(images, stored)
	}

	var tecSheet *dto.StoredUpload
	if sheets := form.File[tecSheetField]; len(sheets) > 0 {
		stored, err := h.storeUpload(c, sheets[0])
		if err != nil {
			return fields, nil, nil, err
		}
		tecSheet = &stored
	}
	return fields, images, tecSheet, nil
}

// storeUpload pousse un fichier du formulaire vers le stockage, sous délai borné.
func (h *ProductHandler) storeUpload(c *fiber.Ctx, fh *multipart.FileHeader) (dto.StoredUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return dto.StoredUpload{}, domain.ErrUpload
	}
	defer f.Close()
	ctx, cancel := context.WithTimeout(c.UserContext(), storage.OpTimeout)
	defer cancel()
	locator, err := h.store.Store(ctx, f, fh.Filename)
	if err != nil {
		return dto.StoredUpload{}, domain.ErrUpload
	}
	return dto.StoredUpload{OriginalName: fh.Filename, Locator: locator}, nil
}

func nullToEmpty(s string) string {
	if s == "null" || s == "undefined" {
		return ""
	}
	return s
}
