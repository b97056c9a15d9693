package models

import (
	"time"
)

type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"size:255;index" json:"slug"`
	Description string     `gorm:"type:text" json:"description"`
	ImageURL    string     `gorm:"size:500" json:"image_url"`
	Venue       string     `gorm:"size:255" json:"venue"`
	StartsAt    *time.Time `json:"starts_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
