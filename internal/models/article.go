package models

import "time"

type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Header      string    `gorm:"size:100;uniqueIndex;not null" json:"header"`
	Description string    `gorm:"not null" json:"description"`
	AuthorID    uint      `gorm:"not null;index" json:"author"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
