package usecase

import (
	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		IsMark:    c.IsMark,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toSubcategoryResponse(s *entity.Subcategory) *dto.SubcategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubcategoryResponse{
		ID:         s.ID,
		CategoryID: s.CategoryID,
		Name:       s.Name,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func toSubsubcategoryResponse(s *entity.Subsubcategory) *dto.SubsubcategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubsubcategoryResponse{
		ID:            s.ID,
		SubcategoryID: s.SubcategoryID,
		Name:          s.Name,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toMarkResponse(m *entity.Mark) *dto.MarkResponse {
	if m == nil {
		return nil
	}
	return &dto.MarkResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toProductResponse(v *entity.ProductView) *dto.ProductResponse {
	if v == nil {
		return nil
	}
	images := v.Images
	if images == nil {
		images = []string{}
	}
	return &dto.ProductResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Slug:               v.Slug,
		Description:        v.Description,
		Images:             images,
		PrimaryImage:       v.PrimaryImage,
		TecSheet:           v.TecSheet,
		CategoryID:         v.CategoryID,
		SubcategoryID:      v.SubcategoryID,
		SubsubcategoryID:   v.SubsubcategoryID,
		MarkID:             v.MarkID,
		CategoryName:       v.CategoryName,
		SubcategoryName:    v.SubcategoryName,
		SubsubcategoryName: v.SubsubcategoryName,
		MarkName:           v.MarkName,
		Quantity:           v.Quantity,
		InStock:            v.InStock,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func toProductResponses(views []*entity.ProductView) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(views))
	for _, v := range views {
		items = append(items, *toProductResponse(v))
	}
	return items
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Fullname:  c.Fullname,
		Email:     c.Email,
		Company:   c.Company,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
