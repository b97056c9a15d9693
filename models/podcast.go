package models

import (
	"time"
)

type Podcast struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Slug            string     `gorm:"size:255;index" json:"slug"`
	Description     string     `gorm:"type:text" json:"description"`
	PosterURL       string     `gorm:"size:500" json:"poster_url"`
	ExternalLink    string     `gorm:"size:500" json:"external_link"`
	DurationMinutes int        `json:"duration_minutes"`
	PublishDate     *time.Time `json:"publish_date"`
	PersonalityID   *uint      `gorm:"index" json:"personality_id"`
	CategoryID      uint       `gorm:"not null;index" json:"category_id"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Personality *Personality    `gorm:"foreignKey:PersonalityID" json:"personality,omitempty"`
	Category    PodcastCategory `gorm:"foreignKey:CategoryID" json:"category"`
}
