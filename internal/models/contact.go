package models

import "gorm.io/datatypes"

// ContactSubmission is a message left through the public contact form.
type ContactSubmission struct {
	BaseModel
	Name        string                      `gorm:"size:255;not null" json:"name"`
	Email       string                      `gorm:"size:255;not null" json:"email"`
	Phone       *string                     `gorm:"size:50" json:"phone"`
	Services    datatypes.JSONSlice[string] `json:"services"`
	Location    *string                     `gorm:"size:255" json:"location"`
	ProjectType *string                     `gorm:"size:100" json:"project_type"`
	Surface     *string                     `gorm:"size:100" json:"surface"`
	Message     string                      `gorm:"type:text;not null" json:"message"`
	IsRead      bool                        `gorm:"not null;default:false;index" json:"is_read"`
}
