package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"yatube/internal/cache"
	"yatube/internal/db"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/router"
	"yatube/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "password123"

// setupApp builds the full application against a fresh in-memory database,
// with the real template set and route table.
func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.DB = gdb

	// The page cache is process wide; start every test cold.
	cache.Default().Purge()

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("yatube_session", store))
	r.HTMLRender = router.LoadTemplates("../../web/templates")
	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)
	return r
}

func createUser(t *testing.T, username string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		Avatar:   "🌱",
	}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

// login performs a real login request and returns the session cookies.
func login(t *testing.T, r *gin.Engine, username string) []*http.Cookie {
	t.Helper()
	form := url.Values{"username": {username}, "password": {testPassword}}
	w := doPost(r, "/auth/login/", form, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("Login for %s failed with status %d", username, w.Code)
	}
	return w.Result().Cookies()
}

func doGet(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
