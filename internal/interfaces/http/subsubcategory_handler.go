package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/application/usecase"
)

// SubsubcategoryHandler gère les requêtes HTTP du troisième niveau de taxonomie.
type SubsubcategoryHandler struct {
	uc      *usecase.SubsubcategoryUseCase
	catalog *usecase.CatalogUseCase
}

// NewSubsubcategoryHandler construit le handler.
func NewSubsubcategoryHandler(uc *usecase.SubsubcategoryUseCase, catalog *usecase.CatalogUseCase) *SubsubcategoryHandler {
	return &SubsubcategoryHandler{uc: uc, catalog: catalog}
}

// Create godoc
// @Summary      Créer une sous-sous-catégorie
// @Tags         subsubcategories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubsubcategoryRequest  true  "Sous-sous-catégorie"
// @Success      201   {object}  dto.SubsubcategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subsubcategory/create [post]
func (h *SubsubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubsubcategoryRequest
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
// @Summary      Lister toutes les sous-sous-catégories
// @Tags         subsubcategories
// @Produce      json
// @Success      200  {array}  dto.SubsubcategoryResponse
// @Router       /api/subsubcategory/getall [get]
func (h *SubsubcategoryHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// BySubcategory godoc
// @Summary      Sous-sous-catégories d'une sous-catégorie
// @Tags         subsubcategories
// @Produce      json
// @Param        id   path  string  true  "ID de la sous-catégorie"
// @Success      200  {array}  dto.SubsubcategoryResponse
// @Router       /api/subsubcategory/bysubcategory/{id} [get]
func (h *SubsubcategoryHandler) BySubcategory(c *fiber.Ctx) error {
	out, err := h.uc.ListBySubcategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir une sous-sous-catégorie
// @Tags         subsubcategories
// @Produce      json
// @Param        id   path  string  true  "ID de la sous-sous-catégorie"
// @Success      200  {object}  dto.SubsubcategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subsubcategory/get/{id} [get]
func (h *SubsubcategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Details godoc
// @Summary      Sous-sous-catégorie et ses produits
// @Tags         subsubcategories
// @Produce      json
// @Param        id   path  string  true  "ID de la sous-sous-catégorie"
// @Success      200  {object}  dto.SubsubcategoryDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subsubcategory/details/{id} [get]
func (h *SubsubcategoryHandler) Details(c *fiber.Ctx) error {
	out, err := h.catalog.SubsubcategoryDetails(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour une sous-sous-catégorie
// @Tags         subsubcategories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sous-sous-catégorie"
// @Param        body  body  dto.UpdateSubsubcategoryRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.SubsubcategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subsubcategory/update/{id} [put]
func (h *SubsubcategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubsubcategoryRequest
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
// @Summary      Supprimer une sous-sous-catégorie
// @Tags         subsubcategories
// @Produce      json
// @Param        id   path  string  true  "ID de la sous-sous-catégorie"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/subsubcategory/delete/{id} [delete]
func (h *SubsubcategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sous-sous-catégorie supprimée"})
}
