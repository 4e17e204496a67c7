package models

import (
	"time"
)

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (m BaseModel) GetID() uint {
	return m.ID
}

// Entity is any persisted content type.
type Entity interface {
	GetID() uint
}

// Slugged is implemented by entities addressable by a unique slug.
type Slugged interface {
	GetSlug() string
}
