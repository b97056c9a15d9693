package models

import (
	"time"
)

type News struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Slug       string    `gorm:"size:255;index" json:"slug"`
	Content    string    `gorm:"type:text" json:"content"`
	ImageURL   string    `gorm:"size:500" json:"image_url"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Category NewsCategory `gorm:"foreignKey:CategoryID" json:"category"`
}
