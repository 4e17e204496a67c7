package services

import (
	"context"

	"sitecms_backend/internal/logger"
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
	"sitecms_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService struct {
	*ContentService[models.Project]
	repo *repositories.ProjectRepository
}

func NewProjectService(repo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		ContentService: NewContentService(repo.Repository, "project"),
		repo:           repo,
	}
}

func (s *ProjectService) GetWithImages(db *gorm.DB, id uint) (*models.Project, error) {
	project, err := s.repo.GetWithImages(db, id)
	return s.found(project, err)
}

func (s *ProjectService) GetBySlugWithImages(db *gorm.DB, slug string) (*models.Project, error) {
	project, err := s.repo.GetBySlugWithImages(db, slug)
	return s.found(project, err)
}

func (s *ProjectService) ListWithImages(db *gorm.DB, skip, limit int) ([]models.Project, error) {
	projects, err := s.repo.ListWithImages(db, skip, limit)
	return projects, s.dbError(err)
}

// Delete removes the project together with its images.
func (s *ProjectService) Delete(db *gorm.DB, id uint) (*models.Project, error) {
	project, err := s.repo.Delete(db, id)
	if err != nil {
		return nil, s.dbError(err)
	}
	if project == nil {
		return nil, apperrors.ErrNotFound(s.domain)
	}
	logger.CtxInfo(ctxOf(db), "project deleted", "project_id", id, "images", len(project.Images))
	return project, nil
}

func (s *ProjectService) Images(db *gorm.DB, projectID uint) ([]models.ProjectImage, error) {
	if _, err := s.Get(db, projectID); err != nil {
		return nil, err
	}
	images, err := s.repo.ListImages(db, projectID)
	return images, s.dbError(err)
}

func (s *ProjectService) AddImage(db *gorm.DB, projectID uint, image *models.ProjectImage) (*models.ProjectImage, error) {
	created, err := s.repo.AddImage(db, projectID, image)
	if err != nil {
		return nil, s.dbError(err)
	}
	if created == nil {
		return nil, apperrors.ErrNotFound(s.domain)
	}
	return created, nil
}

func (s *ProjectService) UpdateImage(db *gorm.DB, imageID uint, patch repositories.Patch) (*models.ProjectImage, error) {
	image, err := s.repo.UpdateImage(db, imageID, patch)
	return imageFound(image, err, s)
}

func (s *ProjectService) DeleteImage(db *gorm.DB, imageID uint) (*models.ProjectImage, error) {
	image, err := s.repo.DeleteImage(db, imageID)
	return imageFound(image, err, s)
}

func imageFound(image *models.ProjectImage, err error, s *ProjectService) (*models.ProjectImage, error) {
	if err != nil {
		return nil, s.dbError(err)
	}
	if image == nil {
		return nil, apperrors.ErrNotFound("project_image")
	}
	return image, nil
}

func ctxOf(db *gorm.DB) context.Context {
	if db != nil && db.Statement != nil && db.Statement.Context != nil {
		return db.Statement.Context
	}
	return context.Background()
}

func (s *ProjectService) ReorderImage(db *gorm.DB, imageID uint, n int) (*models.ProjectImage, error) {
	image, err := s.repo.ReorderImage(db, imageID, n)
	return imageFound(image, err, s)
}
