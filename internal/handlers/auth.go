package handlers

import (
	"net/http"
	"strings"
	"yatube/internal/db"
	"yatube/internal/models"
	"yatube/internal/services"
	"yatube/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	captchaService *services.CaptchaService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		captchaService: services.NewCaptchaService(),
	}
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	question, answer := h.captchaService.GenerateMathProblem()
	session := sessions.Default(c)
	session.Set("captcha_answer", answer)
	session.Save()
	Render(c, http.StatusOK, "auth/signup.html", gin.H{"Title": "Sign up", "Captcha": question})
}

// redisplaySignup re-renders the signup form with a fresh captcha.
// Validation failures keep a success status; only the form shows the error.
func (h *AuthHandler) redisplaySignup(c *gin.Context, errMsg string) {
	question, answer := h.captchaService.GenerateMathProblem()
	session := sessions.Default(c)
	session.Set("captcha_answer", answer)
	session.Save()
	Render(c, http.StatusOK, "auth/signup.html", gin.H{
		"Title":    "Sign up",
		"Error":    errMsg,
		"Captcha":  question,
		"Username": c.PostForm("username"),
		"Email":    c.PostForm("email"),
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	captchaInput := c.PostForm("captcha")

	session := sessions.Default(c)
	expectedAnswer, ok := session.Get("captcha_answer").(int)
	if !ok || utils.StringToInt(captchaInput) != expectedAnswer {
		h.redisplaySignup(c, "Wrong captcha answer")
		return
	}
	session.Delete("captcha_answer")
	session.Save()

	if username == "" {
		h.redisplaySignup(c, "Username is required")
		return
	}
	if !strings.Contains(email, "@") {
		h.redisplaySignup(c, "Invalid email address")
		return
	}
	if len(password) < 6 {
		h.redisplaySignup(c, "Password must be at least 6 characters")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Signup failed")
		return
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Avatar:   utils.GetRandomEmoji(),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		h.redisplaySignup(c, "Username or email is already taken")
		return
	}

	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title":   "Log in",
		"Success": "Account created, please log in.",
	})
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title": "Log in",
		"Next":  c.Query("next"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	next := c.PostForm("next")

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		Render(c, http.StatusOK, "auth/login.html", gin.H{
			"Title": "Log in",
			"Error": "Wrong username or password",
			"Next":  next,
		})
		return
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusOK, "auth/login.html", gin.H{
			"Title": "Log in",
			"Error": "Wrong username or password",
			"Next":  next,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	// Only local paths are honored; "//host" is protocol-relative and
	// would leave the site.
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
