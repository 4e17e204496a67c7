package services

import (
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"

	"gorm.io/gorm"
)

type SocialMediaService struct {
	*ContentService[models.SocialMediaLink]
	repo *repositories.SocialMediaRepository
}

func NewSocialMediaService(repo *repositories.SocialMediaRepository) *SocialMediaService {
	return &SocialMediaService{
		ContentService: NewContentService(repo.Repository, "social_media_link"),
		repo:           repo,
	}
}

func (s *SocialMediaService) ByPlatform(db *gorm.DB, platform string) (*models.SocialMediaLink, error) {
	link, err := s.repo.GetByPlatform(db, platform)
	return s.found(link, err)
}
