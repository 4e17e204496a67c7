package models

import "time"

type BlogPost struct {
	BaseModel
	Slug     string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Category string    `gorm:"size:100;not null;index" json:"category"`
	Date     time.Time `gorm:"type:date;not null;index" json:"date"`
	Excerpt  string    `gorm:"type:text;not null" json:"excerpt"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	Image    *string   `gorm:"size:500" json:"image"`
	Author   *string   `gorm:"size:255" json:"author"`
	ReadTime *string   `gorm:"size:50" json:"read_time"`
}

func (b BlogPost) GetSlug() string { return b.Slug }
