package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"yatube/internal/db"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/services"
	"yatube/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// fillCommentCounts batch-loads comment counts for a page of posts.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

// listGroups loads all groups for navigation and the post form selector.
func listGroups() []models.Group {
	var groups []models.Group
	db.DB.Order("id ASC").Find(&groups)
	return groups
}

// Index is the global feed. The route wraps it in the page cache, so within
// the TTL window repeated requests never reach this handler.
func (h *PostHandler) Index(c *gin.Context) {
	page := utils.StringToInt(c.Query("page"))

	var total int64
	db.DB.Model(&models.Post{}).Count(&total)
	pg := utils.Paginate(total, page)

	var posts []models.Post
	db.DB.Preload("User").Preload("Group").
		Order("created_at DESC").
		Limit(utils.PerPage).
		Offset(pg.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	Render(c, http.StatusOK, "posts/index.html", gin.H{
		"Title":  "Latest updates",
		"Posts":  posts,
		"Groups": listGroups(),
		"Page":   pg,
	})
}

// GroupPosts lists the posts of one group, addressed by slug.
func (h *PostHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")

	var group models.Group
	if err := db.DB.Where("slug = ?", slug).First(&group).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Group not found")
		return
	}

	page := utils.StringToInt(c.Query("page"))

	var total int64
	db.DB.Model(&models.Post{}).Where("group_id = ?", group.ID).Count(&total)
	pg := utils.Paginate(total, page)

	var posts []models.Post
	db.DB.Preload("User").Preload("Group").
		Where("group_id = ?", group.ID).
		Order("created_at DESC").
		Limit(utils.PerPage).
		Offset(pg.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	Render(c, http.StatusOK, "posts/group_list.html", gin.H{
		"Title":  group.Title,
		"Group":  group,
		"Posts":  posts,
		"Groups": listGroups(),
		"Page":   pg,
	})
}

// Profile shows an author's feed plus follow status for the viewer.
func (h *PostHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	page := utils.StringToInt(c.Query("page"))

	var total int64
	db.DB.Model(&models.Post{}).Where("user_id = ?", author.ID).Count(&total)
	pg := utils.Paginate(total, page)

	var posts []models.Post
	db.DB.Preload("User").Preload("Group").
		Where("user_id = ?", author.ID).
		Order("created_at DESC").
		Limit(utils.PerPage).
		Offset(pg.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	// Tri-state: nil means the viewer is anonymous, which the template
	// renders differently from "not following".
	var following *bool
	if viewer, exists := c.Get(middleware.CheckUserKey); exists {
		f := services.IsFollowing(viewer.(*models.User).ID, author.ID)
		following = &f
	}

	var followerCount, followingCount int64
	db.DB.Model(&models.Follow{}).Where("author_id = ?", author.ID).Count(&followerCount)
	db.DB.Model(&models.Follow{}).Where("user_id = ?", author.ID).Count(&followingCount)

	Render(c, http.StatusOK, "posts/profile.html", gin.H{
		"Title":          author.Username,
		"Author":         author,
		"Posts":          posts,
		"Page":           pg,
		"Following":      following,
		"PostCount":      total,
		"FollowerCount":  followerCount,
		"FollowingCount": followingCount,
		"DaysSince":      utils.GetDaysSinceJoined(author.CreatedAt),
	})
}

// Detail shows one post with its paginated comments and the comment form.
func (h *PostHandler) Detail(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("User").Preload("Group").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	page := utils.StringToInt(c.Query("page"))

	var total int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&total)
	pg := utils.Paginate(total, page)

	var comments []models.Comment
	db.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at DESC").
		Limit(utils.PerPage).
		Offset(pg.Offset).
		Find(&comments)

	type renderedComment struct {
		models.Comment
		TextHTML template.HTML
	}
	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
		}
	}

	Render(c, http.StatusOK, "posts/post_detail.html", gin.H{
		"Title":    post.String(),
		"Post":     post,
		"PostHTML": utils.RenderMarkdown(post.Text),
		"Comments": rendered,
		"Page":     pg,
	})
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "posts/create_post.html", gin.H{
		"Title":  "New post",
		"Groups": listGroups(),
	})
}

// postForm holds the validated create/edit input.
type postForm struct {
	text    string
	groupID *uint
	image   string
}

// bindPostForm validates the shared create/edit form. An empty error string
// means the form is valid.
func bindPostForm(c *gin.Context) (postForm, string) {
	var form postForm

	form.text = strings.TrimSpace(c.PostForm("text"))
	if form.text == "" {
		return form, "Text is required"
	}

	if groupStr := c.PostForm("group"); groupStr != "" {
		var group models.Group
		if err := db.DB.First(&group, utils.StringToInt(groupStr)).Error; err != nil {
			return form, "Unknown group"
		}
		form.groupID = &group.ID
	}

	if header, err := c.FormFile("image"); err == nil && header != nil {
		path, err := services.SavePostImage(header)
		if err != nil {
			return form, "Could not save the image"
		}
		form.image = path
	}

	return form, ""
}

func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	form, errMsg := bindPostForm(c)
	if errMsg != "" {
		Render(c, http.StatusOK, "posts/create_post.html", gin.H{
			"Title":  "New post",
			"Error":  errMsg,
			"Text":   c.PostForm("text"),
			"Groups": listGroups(),
		})
		return
	}

	// The author is always the signed-in user, whatever the client sent.
	post := models.Post{
		Text:    form.text,
		UserID:  user.ID,
		GroupID: form.groupID,
		Image:   form.image,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "posts/create_post.html", gin.H{
			"Title":  "New post",
			"Error":  "Could not save the post",
			"Text":   form.text,
			"Groups": listGroups(),
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	// Non-authors are bounced to the read-only view, not an error page.
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
		return
	}

	Render(c, http.StatusOK, "posts/create_post.html", gin.H{
		"Title":  "Edit post",
		"IsEdit": true,
		"Post":   post,
		"Groups": listGroups(),
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
		return
	}

	form, errMsg := bindPostForm(c)
	if errMsg != "" {
		// Redisplay with what was submitted, not the stored text.
		post.Text = c.PostForm("text")
		Render(c, http.StatusOK, "posts/create_post.html", gin.H{
			"Title":  "Edit post",
			"IsEdit": true,
			"Error":  errMsg,
			"Post":   post,
			"Groups": listGroups(),
		})
		return
	}

	post.Text = form.text
	post.GroupID = form.groupID
	if form.image != "" {
		post.Image = form.image
	}

	if err := db.DB.Save(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "posts/create_post.html", gin.H{
			"Title":  "Edit post",
			"IsEdit": true,
			"Error":  "Could not save the post",
			"Post":   post,
			"Groups": listGroups(),
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
}

// AddComment attaches a comment to a post. Invalid comment text simply
// redisplays the detail view without a comment.
func (h *PostHandler) AddComment(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	detailURL := fmt.Sprintf("/posts/%d/", post.ID)

	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	comment := models.Comment{
		Text:   text,
		PostID: post.ID,
		UserID: user.ID,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the comment")
		return
	}

	c.Redirect(http.StatusFound, detailURL)
}
