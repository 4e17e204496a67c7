package repositories

import (
	"sitecms_backend/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository adds the project → images relation to the generic
// operations. Images are always returned in order_index order.
type ProjectRepository struct {
	*Repository[models.Project]
	images *Repository[models.ProjectImage]
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		Repository: New[models.Project](Options{
			DefaultOrder:   []string{"number ASC"},
			SlugColumn:     "slug",
			CategoryColumn: "category",
			SearchColumns:  []string{"title", "description", "location"},
			FeaturedColumn: "is_featured",
		}),
		images: New[models.ProjectImage](Options{
			DefaultOrder: []string{"order_index ASC"},
			OrderColumn:  "order_index",
		}),
	}
}

// withImages returns a reusable session that eager-loads images in one
// extra query per statement, however many projects it returns.
func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_index ASC").Order("id ASC")
	}).Session(&gorm.Session{})
}

func (r *ProjectRepository) GetWithImages(db *gorm.DB, id uint) (*models.Project, error) {
	return r.Get(withImages(db), id)
}

func (r *ProjectRepository) GetBySlugWithImages(db *gorm.DB, slug string) (*models.Project, error) {
	return r.GetBySlug(withImages(db), slug)
}

func (r *ProjectRepository) ListWithImages(db *gorm.DB, skip, limit int) ([]models.Project, error) {
	return r.List(withImages(db), skip, limit)
}

// Delete removes the project and all of its images atomically and returns
// the project as it was, images included.
func (r *ProjectRepository) Delete(db *gorm.DB, id uint) (*models.Project, error) {
	var deleted *models.Project
	err := db.Transaction(func(tx *gorm.DB) error {
		project, err := r.GetWithImages(tx, id)
		if err != nil || project == nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		deleted = project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *ProjectRepository) GetImage(db *gorm.DB, imageID uint) (*models.ProjectImage, error) {
	return r.images.Get(db, imageID)
}

func (r *ProjectRepository) ListImages(db *gorm.DB, projectID uint) ([]models.ProjectImage, error) {
	return r.images.Filter(db, "project_id", projectID)
}

// AddImage attaches image to the project. Returns nil when the project
// does not exist.
func (r *ProjectRepository) AddImage(db *gorm.DB, projectID uint, image *models.ProjectImage) (*models.ProjectImage, error) {
	project, err := r.Get(db, projectID)
	if err != nil || project == nil {
		return nil, err
	}
	image.ProjectID = projectID
	return r.images.Create(db, image)
}

// UpdateImage patches an image. The owning project cannot be changed.
func (r *ProjectRepository) UpdateImage(db *gorm.DB, imageID uint, patch Patch) (*models.ProjectImage, error) {
	clean := make(Patch, len(patch))
	for k, v := range patch {
		if k != "project_id" {
			clean[k] = v
		}
	}
	return r.images.Update(db, imageID, clean)
}

func (r *ProjectRepository) ReorderImage(db *gorm.DB, imageID uint, n int) (*models.ProjectImage, error) {
	return r.images.Reorder(db, imageID, n)
}

func (r *ProjectRepository) DeleteImage(db *gorm.DB, imageID uint) (*models.ProjectImage, error) {
	return r.images.Delete(db, imageID)
}
