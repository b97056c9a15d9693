package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255" json:"-"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	Role      string    `gorm:"size:20;default:'editor'" json:"role"`
	Avatar    string    `gorm:"size:255;default:''" json:"avatar"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
