package handlers

import (
	"errors"
	"net/http"
	"yatube/internal/db"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/services"
	"yatube/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FollowHandler struct{}

func NewFollowHandler() *FollowHandler {
	return &FollowHandler{}
}

// FollowIndex is the followed-authors feed: posts by everyone the current
// user follows. Following nobody yields an empty feed, not an error.
func (h *FollowHandler) FollowIndex(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	page := utils.StringToInt(c.Query("page"))

	var total int64
	db.DB.Model(&models.Post{}).
		Where("user_id IN (?)", services.FollowedAuthors(user.ID)).
		Count(&total)
	pg := utils.Paginate(total, page)

	var posts []models.Post
	db.DB.Preload("User").Preload("Group").
		Where("user_id IN (?)", services.FollowedAuthors(user.ID)).
		Order("created_at DESC").
		Limit(utils.PerPage).
		Offset(pg.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	Render(c, http.StatusOK, "posts/follow.html", gin.H{
		"Title":  "Followed authors",
		"Posts":  posts,
		"Groups": listGroups(),
		"Page":   pg,
	})
}

// Follow creates the edge and always sends the caller back to the profile,
// whether or not an edge was created.
func (h *FollowHandler) Follow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := services.FollowAuthor(user.ID, author.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not follow")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

// Unfollow removes the edge; a missing edge is a 404, not a no-op.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := services.UnfollowAuthor(user.ID, author.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RenderError(c, http.StatusNotFound, "You are not following this author")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not unfollow")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
