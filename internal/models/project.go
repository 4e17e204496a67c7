package models

// Project is a portfolio entry; it owns an ordered set of before/after images.
type Project struct {
	BaseModel
	Slug        string  `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Number      string  `gorm:"size:10;not null;index" json:"number"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Category    string  `gorm:"size:100;not null;index" json:"category"`
	Location    string  `gorm:"size:255;not null" json:"location"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Duration    *string `gorm:"size:100" json:"duration"`
	Surface     *string `gorm:"size:100" json:"surface"`
	Image       *string `gorm:"size:500" json:"image"`
	IsFeatured  bool    `gorm:"not null;default:false" json:"is_featured"`

	Images []ProjectImage `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (p Project) GetSlug() string { return p.Slug }

// ProjectImage is a before/after pair belonging to exactly one project.
type ProjectImage struct {
	BaseModel
	ProjectID   uint    `gorm:"not null;index" json:"project_id"`
	BeforeImage string  `gorm:"size:500;not null" json:"before_image"`
	AfterImage  string  `gorm:"size:500;not null" json:"after_image"`
	Label       *string `gorm:"size:255" json:"label"`
	OrderIndex  int     `gorm:"not null;default:0" json:"order_index"`
}
