package dto

import (
	"time"

	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
)

// DateLayout is the wire format of BlogPost.date.
const DateLayout = "2006-01-02"

type CreateBlogPostRequest struct {
	Slug     string  `json:"slug" validate:"required,max=255,slug"`
	Title    string  `json:"title" validate:"required,max=255"`
	Category string  `json:"category" validate:"required,max=100"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Excerpt  string  `json:"excerpt" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Image    *string `json:"image" validate:"omitempty,max=500"`
	Author   *string `json:"author" validate:"omitempty,max=255"`
	ReadTime *string `json:"read_time" validate:"omitempty,max=50"`
}

func (r CreateBlogPostRequest) ToModel() *models.BlogPost {
	date, _ := time.Parse(DateLayout, r.Date)
	return &models.BlogPost{
		Slug:     r.Slug,
		Title:    r.Title,
		Category: r.Category,
		Date:     date,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		Image:    r.Image,
		Author:   r.Author,
		ReadTime: r.ReadTime,
	}
}

type UpdateBlogPostRequest struct {
	Slug     *string `json:"slug" validate:"omitempty,max=255,slug"`
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Image    *string `json:"image" validate:"omitempty,max=500"`
	Author   *string `json:"author" validate:"omitempty,max=255"`
	ReadTime *string `json:"read_time" validate:"omitempty,max=50"`
}

func (r UpdateBlogPostRequest) ToPatch() repositories.Patch {
	patch := ToPatch(r)
	if r.Date != nil {
		if date, err := time.Parse(DateLayout, *r.Date); err == nil {
			patch["date"] = date
		}
	}
	return patch
}

type BlogSearchRequest struct {
	Q string `form:"q" json:"q" validate:"required,min=1,max=255"`
}
