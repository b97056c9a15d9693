package models

import (
	"time"
)

// ListenEvent records one playback-start signal for a podcast. Rows are
// immutable; every signal inserts a new one.
type ListenEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PodcastID uint      `gorm:"not null;index" json:"podcast_id"`
	IPAddress string    `gorm:"size:64" json:"ip_address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Podcast Podcast `gorm:"foreignKey:PodcastID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ListenEvent) TableName() string {
	return "listen_events"
}
