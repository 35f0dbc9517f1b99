package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/application/usecase"
)

// SubcategoryHandler gère les requêtes HTTP des sous-catégories.
type SubcategoryHandler struct {
	uc      *usecase.SubcategoryUseCase
	catalog *usecase.CatalogUseCase
}

// NewSubcategoryHandler construit le handler.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase, catalog *usecase.CatalogUseCase) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc, catalog: catalog}
}

// Create godoc
// @Summary      Créer une sous-catégorie
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubcategoryRequest  true  "Sous-catégorie"
// @Success      201   {object}  dto.SubcategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subcategory/create [post]
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAll godoc
// @Summary      Lister toutes les sous-catégories
// @Tags         subcategories
// @Produce      json
// @Success      200  {array}  dto.SubcategoryResponse
// @Router       /api/subcategory/getall [get]
func (h *SubcategoryHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ByCategory godoc
// @Summary      Sous-catégories d'une catégorie
// @Tags         subcategories
// @Produce      json
// @Param        id   path  string  true  "ID de la catégorie"
// @Success      200  {array}  dto.SubcategoryResponse
// @Router       /api/subcategory/bycategory/{id} [get]
func (h *SubcategoryHandler) ByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir une sous-catégorie
// @Tags         subcategories
// @Produce      json
// @Param        id   path  string  true  "ID de la sous-catégorie"
// @Success      200  {object}  dto.SubcategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategory/get/{id} [get]
func (h *SubcategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Details godoc
// @Summary      Sous-catégorie et ses produits directs
// @Tags         subcategories
// @Produce      json
// @Param        id   path  string  true  "ID de la sous-catégorie"
// @Success      200  {object}  dto.SubcategoryDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategory/details/{id} [get]
func (h *SubcategoryHandler) Details(c *fiber.Ctx) error {
	out, err := h.catalog.SubcategoryDetails(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour une sous-catégorie
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sous-catégorie"
// @Param        body  body  dto.UpdateSubcategoryRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.SubcategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subcategory/update/{id} [put]
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une sous-catégorie
// @Tags         subcategories
// @Produce      json
// @Param        id   path  string  true  "ID de la sous-catégorie"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/subcategory/delete/{id} [delete]
func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sous-catégorie supprimée"})
}
