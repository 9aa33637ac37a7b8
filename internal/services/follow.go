package services

import (
	"errors"
	"yatube/internal/db"
	"yatube/internal/models"

	"gorm.io/gorm"
)

// FollowAuthor creates a follow edge from user to author. Following
// yourself or an author you already follow is a silent no-op, so the
// operation is idempotent.
func FollowAuthor(userID, authorID uint) error {
	if userID == authorID {
		return nil
	}

	var existing models.Follow
	err := db.DB.Where("user_id = ? AND author_id = ?", userID, authorID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.DB.Create(&models.Follow{UserID: userID, AuthorID: authorID}).Error
}

// UnfollowAuthor removes the follow edge. Unlike FollowAuthor this is not
// idempotent: deleting an edge that does not exist returns
// gorm.ErrRecordNotFound.
func UnfollowAuthor(userID, authorID uint) error {
	result := db.DB.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsFollowing reports whether the follow edge exists. Callers with an
// anonymous viewer must not call this; the profile view keeps a tri-state
// (*bool) so "not signed in" stays distinguishable from "not following".
func IsFollowing(userID, authorID uint) bool {
	var count int64
	db.DB.Model(&models.Follow{}).Where("user_id = ? AND author_id = ?", userID, authorID).Count(&count)
	return count > 0
}

// FollowedAuthors returns a subquery selecting the ids of every author the
// user follows, for use in "author IN (...)" feed filters.
func FollowedAuthors(userID uint) *gorm.DB {
	return db.DB.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)
}
