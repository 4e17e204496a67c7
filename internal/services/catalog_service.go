package services

import (
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"

	"gorm.io/gorm"
)

// CatalogService manages the company's service offerings.
type CatalogService struct {
	*ContentService[models.Service]
	repo *repositories.ServiceRepository
}

func NewCatalogService(repo *repositories.ServiceRepository) *CatalogService {
	return &CatalogService{
		ContentService: NewContentService(repo.Repository, "service"),
		repo:           repo,
	}
}

func (s *CatalogService) GetByNumber(db *gorm.DB, number string) (*models.Service, error) {
	service, err := s.repo.GetByNumber(db, number)
	return s.found(service, err)
}
