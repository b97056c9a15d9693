package models

import (
	"time"
)

type MusicTrack struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Artist    string    `gorm:"size:255;not null" json:"artist"`
	CoverURL  string    `gorm:"size:500" json:"cover_url"`
	AudioURL  string    `gorm:"size:500" json:"audio_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
