package dto

import (
	"sitecms_backend/internal/models"

	"gorm.io/datatypes"
)

// CreateContactRequest is the public contact form payload.
type CreateContactRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Email       string   `json:"email" validate:"required,email,max=255"`
	Phone       *string  `json:"phone" validate:"omitempty,max=50"`
	Services    []string `json:"services"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
	ProjectType *string  `json:"project_type" validate:"omitempty,max=100"`
	Surface     *string  `json:"surface" validate:"omitempty,max=100"`
	Message     string   `json:"message" validate:"required"`
}

func (r CreateContactRequest) ToModel() *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Services:    datatypes.JSONSlice[string](r.Services),
		Location:    r.Location,
		ProjectType: r.ProjectType,
		Surface:     r.Surface,
		Message:     r.Message,
	}
}
