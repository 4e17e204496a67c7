package dto

import (
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
)

type CreateSocialMediaRequest struct {
	Platform   string  `json:"platform" validate:"required,max=50"`
	URL        string  `json:"url" validate:"required,url,max=500"`
	Icon       *string `json:"icon" validate:"omitempty,max=100"`
	OrderIndex int     `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}

func (r CreateSocialMediaRequest) ToModel() *models.SocialMediaLink {
	link := &models.SocialMediaLink{
		Platform:   r.Platform,
		URL:        r.URL,
		Icon:       r.Icon,
		OrderIndex: r.OrderIndex,
		IsActive:   true,
	}
	if r.IsActive != nil {
		link.IsActive = *r.IsActive
	}
	return link
}

type UpdateSocialMediaRequest struct {
	Platform   *string `json:"platform" validate:"omitempty,max=50"`
	URL        *string `json:"url" validate:"omitempty,url,max=500"`
	Icon       *string `json:"icon" validate:"omitempty,max=100"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}

func (r UpdateSocialMediaRequest) ToPatch() repositories.Patch { return ToPatch(r) }
