package dto

import (
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"

	"gorm.io/datatypes"
)

type CreateServiceRequest struct {
	Number          string   `json:"number" validate:"required,max=10"`
	Slug            string   `json:"slug" validate:"required,max=255,slug"`
	Title           string   `json:"title" validate:"required,max=255"`
	Description     string   `json:"description" validate:"required"`
	LongDescription *string  `json:"long_description"`
	Image           *string  `json:"image" validate:"omitempty,max=500"`
	Timeline        *string  `json:"timeline" validate:"omitempty,max=100"`
	Benefits        []string `json:"benefits"`
}

func (r CreateServiceRequest) ToModel() *models.Service {
	return &models.Service{
		Number:          r.Number,
		Slug:            r.Slug,
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Image:           r.Image,
		Timeline:        r.Timeline,
		Benefits:        datatypes.JSONSlice[string](r.Benefits),
	}
}

type UpdateServiceRequest struct {
	Number          *string   `json:"number" validate:"omitempty,max=10"`
	Slug            *string   `json:"slug" validate:"omitempty,max=255,slug"`
	Title           *string   `json:"title" validate:"omitempty,max=255"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	Image           *string   `json:"image" validate:"omitempty,max=500"`
	Timeline        *string   `json:"timeline" validate:"omitempty,max=100"`
	Benefits        *[]string `json:"benefits"`
}

func (r UpdateServiceRequest) ToPatch() repositories.Patch { return ToPatch(r) }
