package models

import (
	"time"
)

// Personality is an on-air host/presenter referenced by podcasts and programs.
type Personality struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Tagline    string    `gorm:"size:255" json:"tagline"`
	PhotoURL   string    `gorm:"size:500" json:"photo_url"`
	Status     string    `gorm:"size:20;default:'active'" json:"status"`
	HourlyRate float64   `json:"hourly_rate"`
	Facebook   string    `gorm:"size:255" json:"facebook"`
	Twitter    string    `gorm:"size:255" json:"twitter"`
	Instagram  string    `gorm:"size:255" json:"instagram"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
