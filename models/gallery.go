package models

import (
	"time"
)

type Gallery struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	CoverURL  string    `gorm:"size:500" json:"cover_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Images []GalleryImage `gorm:"foreignKey:GalleryID" json:"images"`
}

type GalleryImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GalleryID uint      `gorm:"not null;index" json:"gallery_id"`
	ImageURL  string    `gorm:"size:500;not null" json:"image_url"`
	Caption   string    `gorm:"size:255" json:"caption"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
