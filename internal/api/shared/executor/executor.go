package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/marcosboni7/backsleeping/internal/api/shared/constants"
	"github.com/marcosboni7/backsleeping/internal/api/shared/dto"
	apierrors "github.com/marcosboni7/backsleeping/internal/api/shared/errors"
	"github.com/marcosboni7/backsleeping/internal/domain"
	"github.com/marcosboni7/backsleeping/internal/media"
	"github.com/marcosboni7/backsleeping/internal/store"
	"github.com/marcosboni7/backsleeping/internal/store/schema"
)

// Executor is the interface for the API business logic
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Register creates an account and returns it with a session token
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	// Login verifies credentials and returns the account with a session token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)

	// GetProfile returns an account's public view with follow counters
	GetProfile(ctx context.Context, accountID int64) (*dto.ProfileResponse, error)
	// UpdateProfile applies profile changes
	UpdateProfile(ctx context.Context, accountID int64, req *dto.UpdateProfileRequest) (*dto.AccountResponse, error)
	// UploadAvatar stores a new avatar image and points the account at it
	UploadAvatar(ctx context.Context, accountID int64, r io.Reader, filename string) (*dto.AccountResponse, error)
	// EquipAura sets the equipped cosmetic color
	EquipAura(ctx context.Context, accountID int64, color string) (*dto.AccountResponse, error)
	// RaiseExperience reports earned XP; the counter never decreases
	RaiseExperience(ctx context.Context, accountID int64, xp int64) (*dto.AccountResponse, error)
	// ListContacts returns the accounts the caller follows
	ListContacts(ctx context.Context, accountID int64) ([]store.Contact, error)

	// ListShop returns the catalog
	ListShop(ctx context.Context) ([]schema.ShopItem, error)
	// Purchase buys an item for the caller
	Purchase(ctx context.Context, accountID, itemID int64) (*dto.PurchaseResponse, error)
	// ListInventory returns the caller's owned items
	ListInventory(ctx context.Context, accountID int64) ([]store.InventoryItem, error)
	// ListLedger returns the caller's recent currency movements
	ListLedger(ctx context.Context, accountID int64) ([]schema.LedgerEntry, error)

	// Follow creates a follow edge from the caller to the target
	Follow(ctx context.Context, accountID, targetID int64) error
	// Unfollow removes a follow edge
	Unfollow(ctx context.Context, accountID, targetID int64) error
	// Block blocks the target and severs follow edges both ways
	Block(ctx context.Context, accountID, targetID int64) error
	// Unblock lifts a block placed by the account on the target
	Unblock(ctx context.Context, accountID, targetID int64) error

	// CreatePost uploads the media and stores a feed entry
	CreatePost(ctx context.Context, accountID int64, form *dto.CreatePostForm, video io.Reader, videoName string, thumb io.Reader, thumbName string) (*dto.PostResponse, error)
	// ListFeed returns the feed, personalized when a viewer is known
	ListFeed(ctx context.Context, viewerID *int64) ([]store.FeedPost, error)
	// ToggleLike flips the caller's like on a post
	ToggleLike(ctx context.Context, postID, accountID int64) (*store.LikeResult, error)
	// CreateComment adds a comment to a post
	CreateComment(ctx context.Context, postID, accountID int64, content string) (*store.CommentWithAuthor, error)
	// ListComments returns a post's comments
	ListComments(ctx context.Context, postID int64) ([]store.CommentWithAuthor, error)

	// ListEvents returns the active hashtag challenges
	ListEvents(ctx context.Context) ([]schema.Event, error)
	// GetEvent returns a challenge with its ranked posts, creating the
	// challenge row on first access
	GetEvent(ctx context.Context, tag string) (*dto.EventResponse, error)
}

// Config holds the executor's auth settings
type Config struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

type executor struct {
	store    store.Store
	uploader media.Uploader
	config   Config
}

// NewExecutor creates the shared business logic layer
func NewExecutor(st store.Store, uploader media.Uploader, cfg Config) Executor {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 7 * 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &executor{store: st, uploader: uploader, config: cfg}
}

func (e *executor) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), e.config.BcryptCost)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to hash password")
	}

	account, err := e.store.CreateAccount(ctx, store.CreateAccountInput{
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    string(hash),
		StartingBalance: constants.STARTING_BALANCE,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCredential) {
			return nil, apierrors.NewDuplicateCredentialError("Username or email already in use")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create account: %v", err))
	}

	token, err := e.issueToken(account.ID)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to issue token")
	}

	return &dto.AuthResponse{Token: token, User: dto.MapAccountToDTO(account)}, nil
}

func (e *executor) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := e.store.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get account: %v", err))
	}
	// A missing account and a wrong password answer the same way
	if account == nil {
		return nil, apierrors.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierrors.NewUnauthorizedError("Invalid credentials")
	}

	token, err := e.issueToken(account.ID)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to issue token")
	}

	return &dto.AuthResponse{Token: token, User: dto.MapAccountToDTO(account)}, nil
}

func (e *executor) GetProfile(ctx context.Context, accountID int64) (*dto.ProfileResponse, error) {
	account, err := e.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get account: %v", err))
	}
	if account == nil {
		return nil, nil
	}

	counts, err := e.store.ProfileCounts(ctx, accountID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get profile counts: %v", err))
	}

	return &dto.ProfileResponse{
		AccountResponse: dto.MapAccountToDTO(account),
		Followers:       counts.Followers,
		Following:       counts.Following,
	}, nil
}

func (e *executor) UpdateProfile(ctx context.Context, accountID int64, req *dto.UpdateProfileRequest) (*dto.AccountResponse, error) {
	account, err := e.store.UpdateProfile(ctx, accountID, store.UpdateProfileInput{Username: req.Username})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return nil, apierrors.NewNotFoundError("Account not found")
		case errors.Is(err, domain.ErrDuplicateCredential):
			return nil, apierrors.NewDuplicateCredentialError("Username already in use")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update profile: %v", err))
	}

	return dto.MapAccountToDTO(account), nil
}

func (e *executor) UploadAvatar(ctx context.Context, accountID int64, r io.Reader, filename string) (*dto.AccountResponse, error) {
	result, err := e.uploader.UploadImage(ctx, r, filename)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedMediaType):
			return nil, apierrors.NewUnsupportedMediaError("Avatar must be an image")
		case errors.Is(err, domain.ErrUploadFailed):
			return nil, apierrors.NewUploadFailedError("Failed to store avatar")
		}
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to process avatar: %v", err))
	}

	account, err := e.store.UpdateProfile(ctx, accountID, store.UpdateProfileInput{AvatarURL: &result.URL})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, apierrors.NewNotFoundError("Account not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update avatar: %v", err))
	}

	return dto.MapAccountToDTO(account), nil
}

func (e *executor) EquipAura(ctx context.Context, accountID int64, color string) (*dto.AccountResponse, error) {
	account, err := e.store.EquipAura(ctx, accountID, color)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, apierrors.NewNotFoundError("Account not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to equip aura: %v", err))
	}

	return dto.MapAccountToDTO(account), nil
}

func (e *executor) RaiseExperience(ctx context.Context, accountID int64, xp int64) (*dto.AccountResponse, error) {
	account, err := e.store.RaiseExperience(ctx, accountID, xp)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, apierrors.NewNotFoundError("Account not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to raise experience: %v", err))
	}

	return dto.MapAccountToDTO(account), nil
}

func (e *executor) ListContacts(ctx context.Context, accountID int64) ([]store.Contact, error) {
	contacts, err := e.store.ListContacts(ctx, accountID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list contacts: %v", err))
	}
	return contacts, nil
}

func (e *executor) ListShop(ctx context.Context) ([]schema.ShopItem, error) {
	items, err := e.store.ListShopItems(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list shop items: %v", err))
	}
	return items, nil
}

func (e *executor) Purchase(ctx context.Context, accountID, itemID int64) (*dto.PurchaseResponse, error) {
	account, err := e.store.PurchaseItem(ctx, accountID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return nil, apierrors.NewNotFoundError("Account not found")
		case errors.Is(err, domain.ErrItemNotFound):
			return nil, apierrors.NewNotFoundError("Item not found")
		case errors.Is(err, domain.ErrAlreadyOwned):
			return nil, apierrors.NewAlreadyOwnedError()
		case errors.Is(err, domain.ErrInsufficientBalance):
			return nil, apierrors.NewInsufficientBalanceError()
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to purchase item: %v", err))
	}

	return &dto.PurchaseResponse{User: dto.MapAccountToDTO(account)}, nil
}

func (e *executor) ListInventory(ctx context.Context, accountID int64) ([]store.InventoryItem, error) {
	items, err := e.store.ListInventory(ctx, accountID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list inventory: %v", err))
	}
	return items, nil
}

func (e *executor) ListLedger(ctx context.Context, accountID int64) ([]schema.LedgerEntry, error) {
	entries, err := e.store.ListLedgerEntries(ctx, accountID, constants.LEDGER_DEFAULT_LIMIT)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list ledger entries: %v", err))
	}
	return entries, nil
}

func (e *executor) Follow(ctx context.Context, accountID, targetID int64) error {
	target, err := e.store.GetAccountByID(ctx, targetID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get account: %v", err))
	}
	if target == nil {
		return apierrors.NewNotFoundError("Account not found")
	}

	blocked, err := e.store.IsBlocked(ctx, accountID, targetID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to check block status: %v", err))
	}
	if blocked {
		return apierrors.NewForbiddenError("Cannot follow a blocked account")
	}

	if err := e.store.Follow(ctx, accountID, targetID); err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfFollow):
			return apierrors.NewBadRequestError("Cannot follow yourself")
		case errors.Is(err, domain.ErrAlreadyFollowing):
			return apierrors.NewConflictError("Already following")
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to follow: %v", err))
	}

	return nil
}

func (e *executor) Unfollow(ctx context.Context, accountID, targetID int64) error {
	if err := e.store.Unfollow(ctx, accountID, targetID); err != nil {
		if errors.Is(err, domain.ErrNotFollowing) {
			return apierrors.NewConflictError("Not following")
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to unfollow: %v", err))
	}

	return nil
}

func (e *executor) Block(ctx context.Context, accountID, targetID int64) error {
	if accountID == targetID {
		return apierrors.NewBadRequestError("Cannot block yourself")
	}

	if err := e.store.Block(ctx, accountID, targetID); err != nil {
		if errors.Is(err, domain.ErrAlreadyBlocked) {
			return apierrors.NewConflictError("Already blocked")
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to block: %v", err))
	}

	return nil
}

func (e *executor) Unblock(ctx context.Context, accountID, targetID int64) error {
	if err := e.store.Unblock(ctx, accountID, targetID); err != nil {
		if errors.Is(err, domain.ErrNotBlocked) {
			return apierrors.NewConflictError("Not blocked")
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to unblock: %v", err))
	}

	return nil
}

func (e *executor) CreatePost(ctx context.Context, accountID int64, form *dto.CreatePostForm, video io.Reader, videoName string, thumb io.Reader, thumbName string) (*dto.PostResponse, error) {
	uploaded, err := e.uploader.UploadPostMedia(ctx, video, videoName, thumb, thumbName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedMediaType):
			return nil, apierrors.NewUnsupportedMediaError("Post media must be a video with an optional image thumbnail")
		case errors.Is(err, domain.ErrUploadFailed):
			return nil, apierrors.NewUploadFailedError("Failed to store post media")
		}
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to process post media: %v", err))
	}

	post, err := e.store.CreatePost(ctx, store.CreatePostInput{
		AccountID:    accountID,
		Title:        form.Title,
		Description:  form.Description,
		VideoURL:     uploaded.VideoURL,
		ThumbnailURL: uploaded.ThumbnailURL,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create post: %v", err))
	}

	return dto.MapPostToDTO(post), nil
}

func (e *executor) ListFeed(ctx context.Context, viewerID *int64) ([]store.FeedPost, error) {
	posts, err := e.store.ListFeed(ctx, viewerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list feed: %v", err))
	}
	return posts, nil
}

func (e *executor) ToggleLike(ctx context.Context, postID, accountID int64) (*store.LikeResult, error) {
	result, err := e.store.ToggleLike(ctx, postID, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, apierrors.NewNotFoundError("Post not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to toggle like: %v", err))
	}
	return result, nil
}

func (e *executor) CreateComment(ctx context.Context, postID, accountID int64, content string) (*store.CommentWithAuthor, error) {
	post, err := e.store.GetPostByID(ctx, postID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get post: %v", err))
	}
	if post == nil {
		return nil, apierrors.NewNotFoundError("Post not found")
	}

	comment, err := e.store.CreateComment(ctx, postID, accountID, content)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create comment: %v", err))
	}
	return comment, nil
}

func (e *executor) ListComments(ctx context.Context, postID int64) ([]store.CommentWithAuthor, error) {
	comments, err := e.store.ListComments(ctx, postID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list comments: %v", err))
	}
	return comments, nil
}

func (e *executor) ListEvents(ctx context.Context) ([]schema.Event, error) {
	events, err := e.store.ListActiveEvents(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list events: %v", err))
	}
	return events, nil
}

func (e *executor) GetEvent(ctx context.Context, tag string) (*dto.EventResponse, error) {
	event, err := e.store.GetOrCreateEventByTag(ctx, tag)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get event: %v", err))
	}

	posts, err := e.store.ListEventPosts(ctx, tag)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list event posts: %v", err))
	}

	return &dto.EventResponse{Event: event, Posts: posts}, nil
}

// issueToken signs an HS256 session token whose subject is the account ID
func (e *executor) issueToken(accountID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(e.config.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(e.config.JWTSecret))
}
