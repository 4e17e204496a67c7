package dto

import (
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
)

type CreateTestimonialRequest struct {
	Name       string  `json:"name" validate:"required,max=255"`
	Location   string  `json:"location" validate:"required,max=255"`
	Text       string  `json:"text" validate:"required"`
	Rating     *int    `json:"rating" validate:"omitnil,min=1,max=5"`
	Project    *string `json:"project" validate:"omitempty,max=255"`
	OrderIndex int     `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
	IsFeatured bool    `json:"is_featured"`
}

func (r CreateTestimonialRequest) ToModel() *models.Testimonial {
	t := &models.Testimonial{
		Name:       r.Name,
		Location:   r.Location,
		Text:       r.Text,
		Rating:     5,
		Project:    r.Project,
		OrderIndex: r.OrderIndex,
		IsActive:   true,
		IsFeatured: r.IsFeatured,
	}
	if r.Rating != nil {
		t.Rating = *r.Rating
	}
	if r.IsActive != nil {
		t.IsActive = *r.IsActive
	}
	return t
}

type UpdateTestimonialRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Location   *string `json:"location" validate:"omitempty,max=255"`
	Text       *string `json:"text"`
	Rating     *int    `json:"rating" validate:"omitnil,min=1,max=5"`
	Project    *string `json:"project" validate:"omitempty,max=255"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
	IsFeatured *bool   `json:"is_featured"`
}

func (r UpdateTestimonialRequest) ToPatch() repositories.Patch { return ToPatch(r) }

// ReorderRequest sets an item's order_index. Duplicates are allowed.
type ReorderRequest struct {
	OrderIndex *int `json:"order_index" form:"order_index" validate:"required"`
}
