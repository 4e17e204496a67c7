package repositories

import (
	"sitecms_backend/internal/models"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	*Repository[models.Service]
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{New[models.Service](Options{
		DefaultOrder:  []string{"number ASC"},
		SlugColumn:    "slug",
		SearchColumns: []string{"title", "description"},
	})}
}

func (r *ServiceRepository) GetByNumber(db *gorm.DB, number string) (*models.Service, error) {
	return r.GetBy(db, "number", number)
}

type BlogRepository struct {
	*Repository[models.BlogPost]
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{New[models.BlogPost](Options{
		DefaultOrder:   []string{"date DESC"},
		SlugColumn:     "slug",
		CategoryColumn: "category",
		SearchColumns:  []string{"title", "excerpt"},
	})}
}

type ContactRepository struct {
	*Repository[models.ContactSubmission]
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{New[models.ContactSubmission](Options{
		DefaultOrder: []string{"created_at DESC"},
	})}
}

func (r *ContactRepository) GetUnread(db *gorm.DB) ([]models.ContactSubmission, error) {
	return r.Filter(db, "is_read", false)
}

// SetRead marks a submission read or unread; nil when it does not exist.
func (r *ContactRepository) SetRead(db *gorm.DB, id uint, read bool) (*models.ContactSubmission, error) {
	return r.Update(db, id, Patch{"is_read": read})
}

type TestimonialRepository struct {
	*Repository[models.Testimonial]
}

func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{New[models.Testimonial](Options{
		DefaultOrder:   []string{"order_index ASC"},
		OrderColumn:    "order_index",
		ActiveColumn:   "is_active",
		FeaturedColumn: "is_featured",
	})}
}

type SocialMediaRepository struct {
	*Repository[models.SocialMediaLink]
}

func NewSocialMediaRepository() *SocialMediaRepository {
	return &SocialMediaRepository{New[models.SocialMediaLink](Options{
		DefaultOrder: []string{"order_index ASC"},
		OrderColumn:  "order_index",
		ActiveColumn: "is_active",
	})}
}

func (r *SocialMediaRepository) GetByPlatform(db *gorm.DB, platform string) (*models.SocialMediaLink, error) {
	return r.GetBy(db, "platform", platform)
}
