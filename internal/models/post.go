package models

import (
	"time"
)

// CropLenText is the display length of post and comment text: String()
// returns at most this many runes.
const CropLenText = 15

type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Text    string `gorm:"type:text;not null" json:"text"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	GroupID *uint  `gorm:"index" json:"group_id"` // nullable, a post may live outside any group
	Group   *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group"`
	Image   string `json:"image"` // media path, optional
	// CreatedAt is set once on insert and never touched by updates.
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Not a database column, filled by list queries.
	CommentCount int `gorm:"-" json:"comment_count"`
}

func (p Post) String() string {
	return cropText(p.Text)
}

func cropText(s string) string {
	runes := []rune(s)
	if len(runes) <= CropLenText {
		return s
	}
	return string(runes[:CropLenText])
}
