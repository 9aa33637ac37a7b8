package models

import (
	"time"
)

type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	PostID uint   `gorm:"not null;index" json:"post_id"`
	Post   Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	// Comments are never edited, so CreatedAt is the only timestamp.
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (c Comment) String() string {
	return cropText(c.Text)
}
