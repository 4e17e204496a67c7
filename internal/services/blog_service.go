package services

import (
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
)

type BlogService struct {
	*ContentService[models.BlogPost]
}

func NewBlogService(repo *repositories.BlogRepository) *BlogService {
	return &BlogService{ContentService: NewContentService(repo.Repository, "blog_post")}
}
