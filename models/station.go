package models

import (
	"time"
)

type RadioStation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Tagline   string    `gorm:"size:255" json:"tagline"`
	StreamURL string    `gorm:"size:500" json:"stream_url"`
	LogoURL   string    `gorm:"size:500" json:"logo_url"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Address   string    `gorm:"size:255" json:"address"`
	Facebook  string    `gorm:"size:255" json:"facebook"`
	Twitter   string    `gorm:"size:255" json:"twitter"`
	Instagram string    `gorm:"size:255" json:"instagram"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
