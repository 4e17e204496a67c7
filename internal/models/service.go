package models

import "gorm.io/datatypes"

// Service is one offering in the company's service catalogue.
type Service struct {
	BaseModel
	Number          string                      `gorm:"size:10;not null;index" json:"number"`
	Slug            string                      `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Title           string                      `gorm:"size:255;not null" json:"title"`
	Description     string                      `gorm:"type:text;not null" json:"description"`
	LongDescription *string                     `gorm:"type:text" json:"long_description"`
	Image           *string                     `gorm:"size:500" json:"image"`
	Timeline        *string                     `gorm:"size:100" json:"timeline"`
	Benefits        datatypes.JSONSlice[string] `json:"benefits"`
}

func (s Service) GetSlug() string { return s.Slug }
