package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/marcosboni7/backsleeping/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth)
	router.GET("/health", handler.HealthCheck)

	// Account endpoints (public)
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)

	// Profile endpoints
	router.GET("/users/:id/profile", handler.GetProfile)
	router.GET("/users/:id/inventory", handler.ListInventory)
	router.PUT("/users/profile", middleware.Auth(authCfg), handler.UpdateProfile)
	router.POST("/users/avatar", middleware.Auth(authCfg), handler.UploadAvatar)
	router.POST("/users/equip-aura", middleware.Auth(authCfg), handler.EquipAura)
	router.POST("/users/xp", middleware.Auth(authCfg), handler.RaiseExperience)
	router.GET("/users/contacts", middleware.Auth(authCfg), handler.ListContacts)
	router.GET("/users/ledger", middleware.Auth(authCfg), handler.ListLedger)

	// Follow graph endpoints
	router.POST("/users/follow", middleware.Auth(authCfg), handler.Follow)
	router.POST("/users/unfollow", middleware.Auth(authCfg), handler.Unfollow)
	router.POST("/users/block", middleware.Auth(authCfg), handler.Block)
	router.POST("/users/unblock", middleware.Auth(authCfg), handler.Unblock)

	// Shop endpoints
	router.GET("/shop", handler.ListShop)
	router.POST("/shop/buy", middleware.Auth(authCfg), handler.Purchase)

	// Feed endpoints; the feed personalizes like flags when a token is present
	router.GET("/posts", middleware.OptionalAuth(authCfg), handler.ListFeed)
	router.POST("/posts/upload", middleware.Auth(authCfg), handler.CreatePost)
	router.POST("/posts/:id/like", middleware.Auth(authCfg), handler.ToggleLike)
	router.GET("/posts/:id/comments", handler.ListComments)
	router.POST("/posts/:id/comments", middleware.Auth(authCfg), handler.CreateComment)

	// Event endpoints (public)
	router.GET("/events", handler.ListEvents)
	router.GET("/events/:tag", handler.GetEvent)
}
