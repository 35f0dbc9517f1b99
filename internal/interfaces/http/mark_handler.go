package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/application/usecase"
)

// MarkHandler gère les requêtes HTTP des marques.
type MarkHandler struct {
	uc      *usecase.MarkUseCase
	catalog *usecase.CatalogUseCase
}

// NewMarkHandler construit le handler.
func NewMarkHandler(uc *usecase.MarkUseCase, catalog *usecase.CatalogUseCase) *MarkHandler {
	return &MarkHandler{uc: uc, catalog: catalog}
}

// Create godoc
// @Summary      Créer une marque
// @Tags         marks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMarkRequest  true  "Marque"
// @Success      201   {object}  dto.MarkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mark/create [post]
func (h *MarkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMarkRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Import godoc
// @Summary      Importer des marques par nom, idempotent
// @Tags         marks
// @Accept       json
// @Produce      json
// @Param        body  body  []string  true  "Noms de marques"
// @Success      200   {array}  dto.MarkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/mark/import [post]
func (h *MarkHandler) Import(c *fiber.Ctx) error {
	var names []string
	if err := c.BodyParser(&names); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ImportNames(c.UserContext(), names)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetAll godoc
// @Summary      Lister toutes les marques
// @Tags         marks
// @Produce      json
// @Success      200  {array}  dto.MarkResponse
// @Router       /api/mark/getall [get]
func (h *MarkHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir une marque
// @Tags         marks
// @Produce      json
// @Param        id   path  string  true  "ID de la marque"
// @Success      200  {object}  dto.MarkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mark/get/{id} [get]
func (h *MarkHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Details godoc
// @Summary      Marque et ses produits
// @Tags         marks
// @Produce      json
// @Param        id   path  string  true  "ID de la marque"
// @Success      200  {object}  dto.MarkDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mark/details/{id} [get]
func (h *MarkHandler) Details(c *fiber.Ctx) error {
	out, err := h.catalog.MarkDetails(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour une marque
// @Tags         marks
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la marque"
// @Param        body  body  dto.UpdateMarkRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.MarkResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/mark/update/{id} [put]
func (h *MarkHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMarkRequest
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
// @Summary      Supprimer une marque
// @Tags         marks
// @Produce      json
// @Param        id   path  string  true  "ID de la marque"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/mark/delete/{id} [delete]
func (h *MarkHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "marque supprimée"})
}
