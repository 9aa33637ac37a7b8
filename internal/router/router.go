package router

import (
	"net/http"
	"yatube/internal/cache"
	"yatube/internal/handlers"
	"yatube/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	followHandler := handlers.NewFollowHandler()

	// Public routes. The global feed is the only cached view.
	r.GET("/", middleware.CachePage(cache.Default(), middleware.IndexCacheTTL, middleware.IndexCacheKey), postHandler.Index)
	r.GET("/group/:slug/", postHandler.GroupPosts)      // group feed
	r.GET("/profile/:username/", postHandler.Profile)   // author feed + follow status
	r.GET("/posts/:id/", postHandler.Detail)            // post detail + comments

	r.GET("/auth/signup/", authHandler.ShowSignup)
	r.POST("/auth/signup/", authHandler.Signup)
	r.GET("/auth/login/", authHandler.ShowLogin)
	r.POST("/auth/login/", authHandler.Login)
	r.GET("/auth/logout/", authHandler.Logout)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create/", postHandler.ShowCreate)
		authorized.POST("/create/", postHandler.Create)
		authorized.GET("/posts/:id/edit/", postHandler.ShowEdit)
		authorized.POST("/posts/:id/edit/", postHandler.Update)
		authorized.POST("/posts/:id/comment/", postHandler.AddComment)

		authorized.GET("/follow/", followHandler.FollowIndex)                    // followed-authors feed
		authorized.GET("/profile/:username/follow/", followHandler.Follow)       // create edge
		authorized.GET("/profile/:username/unfollow/", followHandler.Unfollow)   // remove edge
	}

	r.NoRoute(func(c *gin.Context) {
		handlers.RenderError(c, http.StatusNotFound, "Page not found")
	})
}
