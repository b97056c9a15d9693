package models

import (
	"time"
)

type Program struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	ImageURL      string    `gorm:"size:500" json:"image_url"`
	Schedule      string    `gorm:"size:255" json:"schedule"`
	PersonalityID *uint     `gorm:"index" json:"personality_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Personality *Personality `gorm:"foreignKey:PersonalityID" json:"personality,omitempty"`
}
