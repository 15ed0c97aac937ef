package rest

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marcosboni7/backsleeping/internal/api/middleware"
	"github.com/marcosboni7/backsleeping/internal/api/shared/dto"
	"github.com/marcosboni7/backsleeping/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Register creates an account
	// POST /register
	Register(c *gin.Context)

	// Login exchanges credentials for a session token
	// POST /login
	Login(c *gin.Context)

	// GetProfile returns an account's public profile with follow counters
	// GET /users/:id/profile
	GetProfile(c *gin.Context)

	// UpdateProfile changes the caller's profile fields
	// PUT /users/profile
	UpdateProfile(c *gin.Context)

	// UploadAvatar replaces the caller's avatar image
	// POST /users/avatar (multipart field "avatar")
	UploadAvatar(c *gin.Context)

	// EquipAura sets the caller's equipped cosmetic color
	// POST /users/equip-aura
	EquipAura(c *gin.Context)

	// RaiseExperience reports XP earned by the caller
	// POST /users/xp
	RaiseExperience(c *gin.Context)

	// ListContacts returns the accounts the caller follows
	// GET /users/contacts
	ListContacts(c *gin.Context)

	// ListShop returns the item catalog
	// GET /shop
	ListShop(c *gin.Context)

	// Purchase buys an item for the caller
	// POST /shop/buy
	Purchase(c *gin.Context)

	// ListInventory returns an account's owned items
	// GET /users/:id/inventory
	ListInventory(c *gin.Context)

	// ListLedger returns the caller's recent currency movements
	// GET /users/ledger
	ListLedger(c *gin.Context)

	// Follow follows the target account
	// POST /users/follow
	Follow(c *gin.Context)

	// Unfollow unfollows the target account
	// POST /users/unfollow
	Unfollow(c *gin.Context)

	// Block blocks the target account and severs follow edges both ways
	// POST /users/block
	Block(c *gin.Context)

	// Unblock lifts a block placed by the caller
	// POST /users/unblock
	Unblock(c *gin.Context)

	// CreatePost uploads a video post
	// POST /posts/upload (multipart fields "video", optional "thumbnail", "title", "description")
	CreatePost(c *gin.Context)

	// ListFeed returns the feed, newest first, with like flags for the viewer
	// GET /posts
	ListFeed(c *gin.Context)

	// ToggleLike flips the caller's like on a post
	// POST /posts/:id/like
	ToggleLike(c *gin.Context)

	// ListComments returns a post's comments, oldest first
	// GET /posts/:id/comments
	ListComments(c *gin.Context)

	// CreateComment adds a comment to a post
	// POST /posts/:id/comments
	CreateComment(c *gin.Context)

	// ListEvents returns the active hashtag challenges
	// GET /events
	ListEvents(c *gin.Context)

	// GetEvent returns a challenge with its ranked posts
	// GET /events/:tag
	GetEvent(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug        bool
	executor     executor.Executor
	maxImageSize int64
	maxVideoSize int64
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor, maxImageSize, maxVideoSize int64) Handler {
	return &handler{
		debug:        debug,
		executor:     exec,
		maxImageSize: maxImageSize,
		maxVideoSize: maxVideoSize,
	}
}

func (h *handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	resp, err := h.executor.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to login")
		return
	}

	resp, err := h.executor.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetProfile(c *gin.Context) {
	accountID, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.executor.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}
	if profile == nil {
		respondNotFound(c, "Account not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *handler) UpdateProfile(c *gin.Context) {
	accountID := middleware.AccountID(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	account, err := h.executor.UpdateProfile(c.Request.Context(), accountID, &req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *handler) UploadAvatar(c *gin.Context) {
	accountID := middleware.AccountID(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		respondBadRequest(c, "Avatar file is required")
		return
	}
	if file.Size > h.maxImageSize {
		respondBadRequest(c, fmt.Sprintf("Avatar must be at most %d bytes", h.maxImageSize))
		return
	}

	reader, err := file.Open()
	if err != nil {
		respondInternalError(c, err, "Failed to read avatar")
		return
	}
	defer func() { _ = reader.Close() }()

	account, err := h.executor.UploadAvatar(c.Request.Context(), accountID, reader, file.Filename)
	if err != nil {
		respondError(c, err, "Failed to upload avatar")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *handler) EquipAura(c *gin.Context) {
	accountID := middleware.AccountID(c)

	var req dto.EquipAuraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to equip aura")
		return
	}

	account, err := h.executor.EquipAura(c.Request.Context(), accountID, req.Color)
	if err != nil {
		respondError(c, err, "Failed to equip aura")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *handler) RaiseExperience(c *gin.Context) {
	accountID := middleware.AccountID(c)

	var req dto.RaiseExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to raise experience")
		return
	}

	account, err := h.executor.RaiseExperience(c.Request.Context(), accountID, req.XP)
	if err != nil {
		respondError(c, err, "Failed to raise experience")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *handler) ListContacts(c *gin.Context) {
	accountID := middleware.AccountID(c)

	contacts, err := h.executor.ListContacts(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Failed to list contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *handler) ListShop(c *gin.Context) {
	items, err := h.executor.ListShop(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list shop items")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *handler) Purchase(c *gin.Context) {
	accountID := middleware.AccountID(c)

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to purchase item")
		return
	}

	resp, err := h.executor.Purchase(c.Request.Context(), accountID, req.ItemID)
	if err != nil {
		respondError(c, err, "Failed to purchase item")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListInventory(c *gin.Context) {
	accountID, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.executor.ListInventory(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Failed to list inventory")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *handler) ListLedger(c *gin.Context) {
	accountID := middleware.AccountID(c)

	entries, err := h.executor.ListLedger(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Failed to list ledger entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *handler) Follow(c *gin.Context) {
	h.followAction(c, h.executor.Follow, "Failed to follow")
}

func (h *handler) Unfollow(c *gin.Context) {
	h.followAction(c, h.executor.Unfollow, "Failed to unfollow")
}

func (h *handler) Block(c *gin.Context) {
	h.followAction(c, h.executor.Block, "Failed to block")
}

func (h *handler) Unblock(c *gin.Context) {
	h.followAction(c, h.executor.Unblock, "Failed to unblock")
}

// followAction handles the shared request shape of follow, unfollow and block
func (h *handler) followAction(c *gin.Context, action func(ctx context.Context, accountID, targetID int64) error, fallback string) {
	accountID := middleware.AccountID(c)

	var req dto.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, fallback)
		return
	}

	if err := action(c.Request.Context(), accountID, req.TargetID); err != nil {
		respondError(c, err, fallback)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) CreatePost(c *gin.Context) {
	accountID := middleware.AccountID(c)

	form := dto.CreatePostForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if err := form.Validate(); err != nil {
		respondError(c, err, "Failed to create post")
		return
	}

	videoHeader, err := c.FormFile("video")
	if err != nil {
		respondBadRequest(c, "Video file is required")
		return
	}
	if videoHeader.Size > h.maxVideoSize {
		respondBadRequest(c, fmt.Sprintf("Video must be at most %d bytes", h.maxVideoSize))
		return
	}

	video, err := videoHeader.Open()
	if err != nil {
		respondInternalError(c, err, "Failed to read video")
		return
	}
	defer func() { _ = video.Close() }()

	var (
		thumb     multipart.File
		thumbName string
	)
	if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
		if thumbHeader.Size > h.maxImageSize {
			respondBadRequest(c, fmt.Sprintf("Thumbnail must be at most %d bytes", h.maxImageSize))
			return
		}
		thumb, err = thumbHeader.Open()
		if err != nil {
			respondInternalError(c, err, "Failed to read thumbnail")
			return
		}
		defer func() { _ = thumb.Close() }()
		thumbName = thumbHeader.Filename
	}

	var thumbReader io.Reader
	if thumb != nil {
		thumbReader = thumb
	}

	post, err := h.executor.CreatePost(c.Request.Context(), accountID, &form, video, videoHeader.Filename, thumbReader, thumbName)
	if err != nil {
		respondError(c, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *handler) ListFeed(c *gin.Context) {
	var viewerID *int64
	if id, ok := middleware.OptionalAccountID(c); ok {
		viewerID = &id
	}

	posts, err := h.executor.ListFeed(c.Request.Context(), viewerID)
	if err != nil {
		respondError(c, err, "Failed to list feed")
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *handler) ToggleLike(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	accountID := middleware.AccountID(c)

	result, err := h.executor.ToggleLike(c.Request.Context(), postID, accountID)
	if err != nil {
		respondError(c, err, "Failed to toggle like")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.executor.ListComments(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err, "Failed to list comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *handler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	accountID := middleware.AccountID(c)

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}

	comment, err := h.executor.CreateComment(c.Request.Context(), postID, accountID, req.Content)
	if err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *handler) ListEvents(c *gin.Context) {
	events, err := h.executor.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *handler) GetEvent(c *gin.Context) {
	tag := c.Param("tag")
	if tag == "" {
		respondBadRequest(c, "Event tag is required")
		return
	}

	event, err := h.executor.GetEvent(c.Request.Context(), tag)
	if err != nil {
		respondError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// pathID parses a numeric path parameter, responding with 400 when invalid
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return id, true
}
