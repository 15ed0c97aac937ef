package store

import (
	"context"

	"github.com/marcosboni7/backsleeping/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateAccount registers a new account with the fixed starting balance.
	// A duplicate email or username yields domain.ErrDuplicateCredential.
	CreateAccount(ctx context.Context, input CreateAccountInput) (*schema.Account, error)
	// GetAccountByID retrieves an account by ID, nil when absent
	GetAccountByID(ctx context.Context, id int64) (*schema.Account, error)
	// GetAccountByEmail retrieves an account by its lower-cased email, nil when absent
	GetAccountByEmail(ctx context.Context, email string) (*schema.Account, error)
	// GetAccountByUsername retrieves an account by username, nil when absent
	GetAccountByUsername(ctx context.Context, username string) (*schema.Account, error)
	// UpdateProfile applies the non-empty fields of input to the account
	UpdateProfile(ctx context.Context, accountID int64, input UpdateProfileInput) (*schema.Account, error)
	// EquipAura sets the equipped cosmetic color on the account
	EquipAura(ctx context.Context, accountID int64, color string) (*schema.Account, error)
	// RaiseExperience raises the account's XP to the given value. XP is
	// monotonic: a value at or below the current one leaves it unchanged.
	RaiseExperience(ctx context.Context, accountID int64, xp int64) (*schema.Account, error)
	// ListContacts returns the accounts the given account follows
	ListContacts(ctx context.Context, accountID int64) ([]Contact, error)

	// ListShopItems returns the full catalog
	ListShopItems(ctx context.Context) ([]schema.ShopItem, error)
	// GetShopItemByID retrieves a catalog item, nil when absent
	GetShopItemByID(ctx context.Context, id int64) (*schema.ShopItem, error)
	// PurchaseItem atomically debits the account by the item price, creates the
	// inventory-ownership edge, applies the aura side effect for cosmetic items
	// and appends a ledger entry. Preconditions are checked inside the same
	// transaction; on failure everything rolls back and one of
	// domain.ErrAccountNotFound, domain.ErrItemNotFound, domain.ErrAlreadyOwned
	// or domain.ErrInsufficientBalance is returned. Returns the updated account.
	PurchaseItem(ctx context.Context, accountID, itemID int64) (*schema.Account, error)
	// ListInventory returns the account's owned items joined with catalog data
	ListInventory(ctx context.Context, accountID int64) ([]InventoryItem, error)
	// ListLedgerEntries returns the account's most recent currency movements
	ListLedgerEntries(ctx context.Context, accountID int64, limit int) ([]schema.LedgerEntry, error)

	// Follow creates a follow edge; domain.ErrSelfFollow and
	// domain.ErrAlreadyFollowing guard the edge set
	Follow(ctx context.Context, followerID, followeeID int64) error
	// Unfollow removes a follow edge; domain.ErrNotFollowing when absent
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	// Block creates a block edge and removes follow edges in both directions
	// within one transaction
	Block(ctx context.Context, blockerID, blockedID int64) error
	// Unblock removes a block edge; domain.ErrNotBlocked when absent
	Unblock(ctx context.Context, blockerID, blockedID int64) error
	// IsBlocked reports whether a block edge exists in either direction
	// between the two accounts
	IsBlocked(ctx context.Context, accountID, otherID int64) (bool, error)
	// ProfileCounts returns follower/following counts for an account
	ProfileCounts(ctx context.Context, accountID int64) (*ProfileCounts, error)

	// CreatePost stores a feed entry for already-uploaded media
	CreatePost(ctx context.Context, input CreatePostInput) (*schema.Post, error)
	// ListFeed returns all posts newest-first joined with author data; when
	// viewerID is set each post carries the viewer's liked flag
	ListFeed(ctx context.Context, viewerID *int64) ([]FeedPost, error)
	// GetPostByID retrieves a post, nil when absent
	GetPostByID(ctx context.Context, id int64) (*schema.Post, error)
	// ToggleLike likes the post when no like exists and unlikes it otherwise,
	// keeping the denormalized counter in step within one transaction
	ToggleLike(ctx context.Context, postID, accountID int64) (*LikeResult, error)
	// CreateComment stores a comment and returns it joined with author data
	CreateComment(ctx context.Context, postID, accountID int64, content string) (*CommentWithAuthor, error)
	// ListComments returns a post's comments oldest-first joined with author data
	ListComments(ctx context.Context, postID int64) ([]CommentWithAuthor, error)

	// SaveMessage persists a chat message
	SaveMessage(ctx context.Context, msg *schema.Message) error
	// ListRoomTail returns the most recent limit messages of a room ordered
	// oldest-to-newest
	ListRoomTail(ctx context.Context, room string, limit int) ([]schema.Message, error)

	// ListActiveEvents returns active events newest-first
	ListActiveEvents(ctx context.Context) ([]schema.Event, error)
	// GetOrCreateEventByTag fetches the event for a tag, creating a default one
	// on first access
	GetOrCreateEventByTag(ctx context.Context, tag string) (*schema.Event, error)
	// ListEventPosts returns posts tagged with #tag ordered by like count
	ListEventPosts(ctx context.Context, tag string) ([]FeedPost, error)
}
