package dto

import (
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
)

type CreateProjectRequest struct {
	Slug        string  `json:"slug" validate:"required,max=255,slug"`
	Number      string  `json:"number" validate:"required,max=10"`
	Title       string  `json:"title" validate:"required,max=255"`
	Category    string  `json:"category" validate:"required,max=100"`
	Location    string  `json:"location" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Duration    *string `json:"duration" validate:"omitempty,max=100"`
	Surface     *string `json:"surface" validate:"omitempty,max=100"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
	IsFeatured  bool    `json:"is_featured"`
}

func (r CreateProjectRequest) ToModel() *models.Project {
	return &models.Project{
		Slug:        r.Slug,
		Number:      r.Number,
		Title:       r.Title,
		Category:    r.Category,
		Location:    r.Location,
		Description: r.Description,
		Duration:    r.Duration,
		Surface:     r.Surface,
		Image:       r.Image,
		IsFeatured:  r.IsFeatured,
	}
}

type UpdateProjectRequest struct {
	Slug        *string `json:"slug" validate:"omitempty,max=255,slug"`
	Number      *string `json:"number" validate:"omitempty,max=10"`
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Duration    *string `json:"duration" validate:"omitempty,max=100"`
	Surface     *string `json:"surface" validate:"omitempty,max=100"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
	IsFeatured  *bool   `json:"is_featured"`
}

func (r UpdateProjectRequest) ToPatch() repositories.Patch { return ToPatch(r) }

type CreateProjectImageRequest struct {
	BeforeImage string  `json:"before_image" validate:"required,max=500"`
	AfterImage  string  `json:"after_image" validate:"required,max=500"`
	Label       *string `json:"label" validate:"omitempty,max=255"`
	OrderIndex  int     `json:"order_index" validate:"min=0"`
}

func (r CreateProjectImageRequest) ToModel() *models.ProjectImage {
	return &models.ProjectImage{
		BeforeImage: r.BeforeImage,
		AfterImage:  r.AfterImage,
		Label:       r.Label,
		OrderIndex:  r.OrderIndex,
	}
}

type UpdateProjectImageRequest struct {
	BeforeImage *string `json:"before_image" validate:"omitempty,max=500"`
	AfterImage  *string `json:"after_image" validate:"omitempty,max=500"`
	Label       *string `json:"label" validate:"omitempty,max=255"`
	OrderIndex  *int    `json:"order_index" validate:"omitempty,min=0"`
}

func (r UpdateProjectImageRequest) ToPatch() repositories.Patch { return ToPatch(r) }
