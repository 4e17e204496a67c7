package models

type Testimonial struct {
	BaseModel
	Name       string  `gorm:"size:255;not null" json:"name"`
	Location   string  `gorm:"size:255;not null" json:"location"`
	Text       string  `gorm:"type:text;not null" json:"text"`
	Rating     int     `gorm:"not null" json:"rating"`
	Project    *string `gorm:"size:255" json:"project"`
	OrderIndex int     `gorm:"not null;default:0" json:"order_index"`
	IsActive   bool    `gorm:"not null" json:"is_active"`
	IsFeatured bool    `gorm:"not null;default:false" json:"is_featured"`
}
