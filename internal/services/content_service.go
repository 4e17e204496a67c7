package services

import (
	"errors"
	"fmt"

	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
	"sitecms_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ContentService turns repository results into API semantics: absence
// becomes NotFound, duplicate slugs become Conflict.
type ContentService[T models.Entity] struct {
	repo   *repositories.Repository[T]
	domain string
}

func NewContentService[T models.Entity](repo *repositories.Repository[T], domain string) *ContentService[T] {
	return &ContentService[T]{repo: repo, domain: domain}
}

func (s *ContentService[T]) Domain() string {
	return s.domain
}

func (s *ContentService[T]) Get(db *gorm.DB, id uint) (*T, error) {
	entity, err := s.repo.Get(db, id)
	return s.found(entity, err)
}

func (s *ContentService[T]) GetBySlug(db *gorm.DB, slug string) (*T, error) {
	entity, err := s.repo.GetBySlug(db, slug)
	return s.found(entity, err)
}

func (s *ContentService[T]) List(db *gorm.DB, skip, limit int) ([]T, error) {
	items, err := s.repo.List(db, skip, limit)
	return items, s.dbError(err)
}

func (s *ContentService[T]) ListByCategory(db *gorm.DB, category string) ([]T, error) {
	items, err := s.repo.GetByCategory(db, category)
	return items, s.dbError(err)
}

func (s *ContentService[T]) Search(db *gorm.DB, q string) ([]T, error) {
	items, err := s.repo.Search(db, q)
	return items, s.dbError(err)
}

func (s *ContentService[T]) Active(db *gorm.DB) ([]T, error) {
	items, err := s.repo.GetActive(db)
	return items, s.dbError(err)
}

func (s *ContentService[T]) Featured(db *gorm.DB, limit int) ([]T, error) {
	items, err := s.repo.GetFeatured(db, limit)
	return items, s.dbError(err)
}

func (s *ContentService[T]) Create(db *gorm.DB, entity *T) (*T, error) {
	if slugged, ok := any(*entity).(models.Slugged); ok {
		if err := s.ensureSlugFree(db, slugged.GetSlug(), 0); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(db, entity)
	if err != nil {
		return nil, s.dbError(err)
	}
	return created, nil
}

// Update applies a sparse patch. Changing the slug to one already taken by
// another row is a Conflict.
func (s *ContentService[T]) Update(db *gorm.DB, id uint, patch repositories.Patch) (*T, error) {
	if slug, ok := patch["slug"].(string); ok && s.repo.Options().SlugColumn != "" {
		if err := s.ensureSlugFree(db, slug, id); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(db, id, patch)
	return s.found(updated, err)
}

func (s *ContentService[T]) Delete(db *gorm.DB, id uint) (*T, error) {
	deleted, err := s.repo.Delete(db, id)
	return s.found(deleted, err)
}

func (s *ContentService[T]) ToggleActive(db *gorm.DB, id uint) (*T, error) {
	entity, err := s.repo.ToggleActive(db, id)
	return s.found(entity, err)
}

func (s *ContentService[T]) ToggleFeatured(db *gorm.DB, id uint) (*T, error) {
	entity, err := s.repo.ToggleFeatured(db, id)
	return s.found(entity, err)
}

func (s *ContentService[T]) Reorder(db *gorm.DB, id uint, n int) (*T, error) {
	entity, err := s.repo.Reorder(db, id, n)
	return s.found(entity, err)
}

func (s *ContentService[T]) ensureSlugFree(db *gorm.DB, slug string, selfID uint) error {
	existing, err := s.repo.GetBySlug(db, slug)
	if err != nil {
		return s.dbError(err)
	}
	if existing != nil && (*existing).GetID() != selfID {
		return apperrors.ErrConflict(nil, s.domain, fmt.Sprintf("slug %q is already in use", slug))
	}
	return nil
}

func (s *ContentService[T]) found(entity *T, err error) (*T, error) {
	if err != nil {
		return nil, s.dbError(err)
	}
	if entity == nil {
		return nil, apperrors.ErrNotFound(s.domain)
	}
	return entity, nil
}

func (s *ContentService[T]) dbError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.ErrConflict(err, s.domain, "a record with the same unique value already exists")
	case errors.Is(err, repositories.ErrUnknownField):
		return apperrors.NewBadRequestError(err.Error())
	case errors.Is(err, repositories.ErrUnsupported):
		return apperrors.NewBadRequestError(err.Error())
	default:
		return apperrors.DatabaseError(err)
	}
}
