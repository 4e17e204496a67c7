package models

type SocialMediaLink struct {
	BaseModel
	Platform   string  `gorm:"size:50;not null;index" json:"platform"`
	URL        string  `gorm:"size:500;not null" json:"url"`
	Icon       *string `gorm:"size:100" json:"icon"`
	OrderIndex int     `gorm:"not null;default:0" json:"order_index"`
	IsActive   bool    `gorm:"not null" json:"is_active"`
}

func (SocialMediaLink) TableName() string {
	return "social_media_links"
}
