package services

import (
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
)

type TestimonialService struct {
	*ContentService[models.Testimonial]
}

func NewTestimonialService(repo *repositories.TestimonialRepository) *TestimonialService {
	return &TestimonialService{ContentService: NewContentService(repo.Repository, "testimonial")}
}
