package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/application/usecase"
)

// CategoryHandler gère les requêtes HTTP des catégories.
type CategoryHandler struct {
	uc      *usecase.CategoryUseCase
	catalog *usecase.CatalogUseCase
}

// NewCategoryHandler construit le handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, catalog *usecase.CatalogUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, catalog: catalog}
}

// Create godoc
// @Summary      Créer une catégorie
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Catégorie"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/category/create [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateWithSubs godoc
// @Summary      Créer une catégorie et ses sous-catégories
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryWithSubsRequest  true  "Catégorie et enfants"
// @Success      201   {object}  dto.CategoryTreeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/category/createwithsub [post]
func (h *CategoryHandler) CreateWithSubs(c *fiber.Ctx) error {
	var in dto.CreateCategoryWithSubsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateWithSubs(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAll godoc
// @Summary      Lister toutes les catégories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/category/getall [get]
func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), nil)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetRegular godoc
// @Summary      Lister les catégories du menu (hors flag marque hérité)
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/category/getcatg [get]
func (h *CategoryHandler) GetRegular(c *fiber.Ctx) error {
	isMark := false
	out, err := h.uc.List(c.UserContext(), &isMark)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetMarked godoc
// @Summary      Lister les catégories portant le flag marque hérité
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/category/getmarked [get]
func (h *CategoryHandler) GetMarked(c *fiber.Ctx) error {
	isMark := true
	out, err := h.uc.List(c.UserContext(), &isMark)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Tree godoc
// @Summary      Arborescence complète des catégories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryTreeResponse
// @Router       /api/category/withsub [get]
func (h *CategoryHandler) Tree(c *fiber.Ctx) error {
	out, err := h.uc.Tree(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Details godoc
// @Summary      Catégorie et ses produits directs
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la catégorie"
// @Success      200  {object}  dto.CategoryDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/category/details/{id} [get]
func (h *CategoryHandler) Details(c *fiber.Ctx) error {
	out, err := h.catalog.CategoryDetails(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour une catégorie
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la catégorie"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/category/update/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
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
// @Summary      Supprimer une catégorie
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la catégorie"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/category/delete/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "catégorie supprimée"})
}
