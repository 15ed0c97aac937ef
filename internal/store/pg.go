package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marcosboni7/backsleeping/internal/domain"
	"github.com/marcosboni7/backsleeping/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateAccount registers a new account with the fixed starting balance
func (s *pgStore) CreateAccount(ctx context.Context, input CreateAccountInput) (*schema.Account, error) {
	account := schema.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Balance:      input.StartingBalance,
		Role:         domain.RoleUser,
		AuraColor:    domain.DefaultAuraColor,
	}

	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateCredential
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &account, nil
}

// GetAccountByID retrieves an account by its internal ID
func (s *pgStore) GetAccountByID(ctx context.Context, id int64) (*schema.Account, error) {
	var account schema.Account
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetAccountByEmail retrieves an account by its lower-cased email
func (s *pgStore) GetAccountByEmail(ctx context.Context, email string) (*schema.Account, error) {
	var account schema.Account
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &account, nil
}

// GetAccountByUsername retrieves an account by its public handle
func (s *pgStore) GetAccountByUsername(ctx context.Context, username string) (*schema.Account, error) {
	var account schema.Account
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by username: %w", err)
	}
	return &account, nil
}

// UpdateProfile applies the non-empty fields of input to the account
func (s *pgStore) UpdateProfile(ctx context.Context, accountID int64, input UpdateProfileInput) (*schema.Account, error) {
	updates := map[string]interface{}{}
	if input.Username != nil {
		updates["username"] = *input.Username
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}

	if len(updates) > 0 {
		result := s.db.WithContext(ctx).Model(&schema.Account{}).
			Where("id = ?", accountID).
			Updates(updates)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return nil, domain.ErrDuplicateCredential
			}
			return nil, fmt.Errorf("failed to update profile: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, domain.ErrAccountNotFound
		}
	}

	return s.GetAccountByID(ctx, accountID)
}

// EquipAura sets the equipped cosmetic color on the account
func (s *pgStore) EquipAura(ctx context.Context, accountID int64, color string) (*schema.Account, error) {
	result := s.db.WithContext(ctx).Model(&schema.Account{}).
		Where("id = ?", accountID).
		Update("aura_color", color)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to equip aura: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrAccountNotFound
	}

	return s.GetAccountByID(ctx, accountID)
}

// RaiseExperience raises the account's XP to the given value. The counter is
// monotonic: a value at or below the current one is a no-op, never a decrease.
func (s *pgStore) RaiseExperience(ctx context.Context, accountID int64, xp int64) (*schema.Account, error) {
	result := s.db.WithContext(ctx).Model(&schema.Account{}).
		Where("id = ?", accountID).
		Update("xp", gorm.Expr("GREATEST(xp, ?)", xp))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to raise experience: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrAccountNotFound
	}

	return s.GetAccountByID(ctx, accountID)
}

// ListContacts returns the accounts the given account follows
func (s *pgStore) ListContacts(ctx context.Context, accountID int64) ([]Contact, error) {
	contacts := []Contact{}
	err := s.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.username, users.avatar_url").
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", accountID).
		Order("users.username ASC").
		Scan(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// ListShopItems returns the full catalog
func (s *pgStore) ListShopItems(ctx context.Context) ([]schema.ShopItem, error) {
	items := []schema.ShopItem{}
	if err := s.db.WithContext(ctx).Order("price ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list shop items: %w", err)
	}
	return items, nil
}

// GetShopItemByID retrieves a catalog item by ID
func (s *pgStore) GetShopItemByID(ctx context.Context, id int64) (*schema.ShopItem, error) {
	var item schema.ShopItem
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shop item: %w", err)
	}
	return &item, nil
}

// PurchaseItem atomically moves currency from the account to the shop and
// grants the corresponding entitlement. All preconditions are checked inside
// the transaction, after taking a row-level lock on the account, so a
// concurrent purchase cannot pass the balance check twice: the second
// transaction blocks on the lock and re-reads the already-debited balance.
func (s *pgStore) PurchaseItem(ctx context.Context, accountID, itemID int64) (*schema.Account, error) {
	var account schema.Account

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the account row for the duration of the transaction
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", accountID).
			First(&account).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		var item schema.ShopItem
		err = tx.Where("id = ?", itemID).First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return fmt.Errorf("failed to get item: %w", err)
		}

		// No duplicate ownership: one inventory edge per (account, item)
		var owned int64
		err = tx.Model(&schema.InventoryEntry{}).
			Where("user_id = ? AND item_id = ?", accountID, itemID).
			Count(&owned).Error
		if err != nil {
			return fmt.Errorf("failed to check ownership: %w", err)
		}
		if owned > 0 {
			return domain.ErrAlreadyOwned
		}

		if account.Balance < item.Price {
			return domain.ErrInsufficientBalance
		}

		account.Balance -= item.Price
		updates := map[string]interface{}{"balance": account.Balance}

		// Purchasing a cosmetic equips it in the same atomic unit
		if item.Category == schema.ItemCategoryAura && item.EffectValue != "" {
			account.AuraColor = item.EffectValue
			updates["aura_color"] = item.EffectValue
		}

		if err := tx.Model(&schema.Account{}).Where("id = ?", accountID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to debit account: %w", err)
		}

		entry := schema.InventoryEntry{
			AccountID:  accountID,
			ItemID:     itemID,
			AcquiredAt: time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyOwned
			}
			return fmt.Errorf("failed to create inventory entry: %w", err)
		}

		ledger := schema.LedgerEntry{
			AccountID: accountID,
			Delta:     -item.Price,
			Label:     fmt.Sprintf("purchase:%s", item.Name),
			Reference: ulid.Make().String(),
		}
		if err := tx.Create(&ledger).Error; err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// ListInventory returns the account's owned items joined with catalog data
func (s *pgStore) ListInventory(ctx context.Context, accountID int64) ([]InventoryItem, error) {
	items := []InventoryItem{}
	err := s.db.WithContext(ctx).
		Table("inventory").
		Select(`inventory.id AS inventory_id, products.id AS item_id, products.name,
			products.description, products.price, products.category,
			products.effect_value, products.image_url, inventory.acquired_at`).
		Joins("JOIN products ON products.id = inventory.item_id").
		Where("inventory.user_id = ?", accountID).
		Order("inventory.acquired_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// ListLedgerEntries returns the account's most recent currency movements
func (s *pgStore) ListLedgerEntries(ctx context.Context, accountID int64, limit int) ([]schema.LedgerEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	entries := []schema.LedgerEntry{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

// Follow creates a follow edge
func (s *pgStore) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return domain.ErrSelfFollow
	}

	edge := schema.FollowEdge{FollowerID: followerID, FolloweeID: followeeID}
	if err := s.db.WithContext(ctx).Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyFollowing
		}
		return fmt.Errorf("failed to create follow edge: %w", err)
	}
	return nil
}

// Unfollow removes a follow edge
func (s *pgStore) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followeeID).
		Delete(&schema.FollowEdge{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove follow edge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFollowing
	}
	return nil
}

// Block creates a block edge and severs the follow relation in both directions
func (s *pgStore) Block(ctx context.Context, blockerID, blockedID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		edge := schema.BlockEdge{BlockerID: blockerID, BlockedID: blockedID}
		if err := tx.Create(&edge).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyBlocked
			}
			return fmt.Errorf("failed to create block edge: %w", err)
		}

		err := tx.Where(
			"(follower_id = ? AND following_id = ?) OR (follower_id = ? AND following_id = ?)",
			blockerID, blockedID, blockedID, blockerID,
		).Delete(&schema.FollowEdge{}).Error
		if err != nil {
			return fmt.Errorf("failed to remove follow edges: %w", err)
		}

		return nil
	})
}

// Unblock removes a block edge
func (s *pgStore) Unblock(ctx context.Context, blockerID, blockedID int64) error {
	result := s.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&schema.BlockEdge{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove block edge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotBlocked
	}
	return nil
}

// IsBlocked reports whether either account blocks the other
func (s *pgStore) IsBlocked(ctx context.Context, accountID, otherID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.BlockEdge{}).
		Where(
			"(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			accountID, otherID, otherID, accountID,
		).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check block edge: %w", err)
	}
	return count > 0, nil
}

// ProfileCounts returns follower/following counts for an account
func (s *pgStore) ProfileCounts(ctx context.Context, accountID int64) (*ProfileCounts, error) {
	var counts ProfileCounts

	err := s.db.WithContext(ctx).Model(&schema.FollowEdge{}).
		Where("following_id = ?", accountID).
		Count(&counts.Followers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}

	err = s.db.WithContext(ctx).Model(&schema.FollowEdge{}).
		Where("follower_id = ?", accountID).
		Count(&counts.Following).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count following: %w", err)
	}

	return &counts, nil
}

// CreatePost stores a feed entry for already-uploaded media
func (s *pgStore) CreatePost(ctx context.Context, input CreatePostInput) (*schema.Post, error) {
	post := schema.Post{
		AccountID:    input.AccountID,
		Title:        input.Title,
		Description:  input.Description,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

const feedColumns = `posts.id, posts.user_id, posts.title, posts.description,
	posts.video_url, posts.thumbnail_url, posts.likes_count, posts.created_at,
	users.username, users.avatar_url, users.aura_color`

// ListFeed returns all posts newest-first joined with author data. When a
// viewer is known, a correlated existence check marks the posts they liked.
func (s *pgStore) ListFeed(ctx context.Context, viewerID *int64) ([]FeedPost, error) {
	posts := []FeedPost{}

	query := s.db.WithContext(ctx).
		Table("posts").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC")

	if viewerID != nil {
		query = query.Select(
			feedColumns+`, EXISTS(
				SELECT 1 FROM post_likes
				WHERE post_likes.post_id = posts.id AND post_likes.user_id = ?
			) AS liked`, *viewerID)
	} else {
		query = query.Select(feedColumns + `, FALSE AS liked`)
	}

	if err := query.Scan(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}
	return posts, nil
}

// GetPostByID retrieves a post by ID
func (s *pgStore) GetPostByID(ctx context.Context, id int64) (*schema.Post, error) {
	var post schema.Post
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// ToggleLike flips the viewer's like on a post. The like row and the
// denormalized counter move together inside one transaction, with the post row
// locked so concurrent toggles cannot drift the counter.
func (s *pgStore) ToggleLike(ctx context.Context, postID, accountID int64) (*LikeResult, error) {
	var result LikeResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post schema.Post
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", postID).
			First(&post).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPostNotFound
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		var existing schema.Like
		err = tx.Where("post_id = ? AND user_id = ?", postID, accountID).First(&existing).Error
		switch {
		case err == nil:
			// Unlike
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to delete like: %w", err)
			}
			if err := tx.Model(&post).
				Update("likes_count", gorm.Expr("GREATEST(likes_count - 1, 0)")).Error; err != nil {
				return fmt.Errorf("failed to decrement like count: %w", err)
			}
			result.Liked = false
			result.Likes = post.LikesCount - 1
			if result.Likes < 0 {
				result.Likes = 0
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			// Like
			like := schema.Like{PostID: postID, AccountID: accountID}
			if err := tx.Create(&like).Error; err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			if err := tx.Model(&post).
				Update("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return fmt.Errorf("failed to increment like count: %w", err)
			}
			result.Liked = true
			result.Likes = post.LikesCount + 1

		default:
			return fmt.Errorf("failed to check existing like: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateComment stores a comment and returns it joined with author data
func (s *pgStore) CreateComment(ctx context.Context, postID, accountID int64, content string) (*CommentWithAuthor, error) {
	comment := schema.Comment{
		PostID:    postID,
		AccountID: accountID,
		Content:   content,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	var out CommentWithAuthor
	err := s.db.WithContext(ctx).
		Table("comments").
		Select(`comments.id, comments.post_id, comments.user_id, comments.content,
			comments.created_at, users.username, users.avatar_url, users.aura_color, users.role`).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.id = ?", comment.ID).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read back comment: %w", err)
	}
	return &out, nil
}

// ListComments returns a post's comments oldest-first joined with author data
func (s *pgStore) ListComments(ctx context.Context, postID int64) ([]CommentWithAuthor, error) {
	comments := []CommentWithAuthor{}
	err := s.db.WithContext(ctx).
		Table("comments").
		Select(`comments.id, comments.post_id, comments.user_id, comments.content,
			comments.created_at, users.username, users.avatar_url, users.aura_color, users.role`).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// SaveMessage persists a chat message
func (s *pgStore) SaveMessage(ctx context.Context, msg *schema.Message) error {
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// ListRoomTail returns the most recent limit messages of a room ordered
// oldest-to-newest. The tail is selected newest-first then reversed so the
// limit trims history from the front, not the back.
func (s *pgStore) ListRoomTail(ctx context.Context, room string, limit int) ([]schema.Message, error) {
	if limit <= 0 {
		limit = 50
	}

	messages := []schema.Message{}
	err := s.db.WithContext(ctx).
		Where("room = ?", room).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list room tail: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// ListActiveEvents returns active events newest-first
func (s *pgStore) ListActiveEvents(ctx context.Context) ([]schema.Event, error) {
	events := []schema.Event{}
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// GetOrCreateEventByTag fetches the event for a tag, lazily creating a default
// one on first access
func (s *pgStore) GetOrCreateEventByTag(ctx context.Context, tag string) (*schema.Event, error) {
	var event schema.Event
	err := s.db.WithContext(ctx).Where("tag = ?", tag).First(&event).Error
	if err == nil {
		return &event, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	event = schema.Event{
		Tag:         tag,
		Title:       fmt.Sprintf("Desafio #%s", tag),
		Description: fmt.Sprintf("Poste seu vídeo com a tag #%s!", tag),
		Active:      true,
	}
	// A concurrent first access may win the insert; fall back to reading
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tag"}},
		DoNothing: true,
	}).Create(&event).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	if event.ID == 0 {
		if err := s.db.WithContext(ctx).Where("tag = ?", tag).First(&event).Error; err != nil {
			return nil, fmt.Errorf("failed to re-read event: %w", err)
		}
	}

	return &event, nil
}

// ListEventPosts returns posts tagged with #tag ordered by like count
func (s *pgStore) ListEventPosts(ctx context.Context, tag string) ([]FeedPost, error) {
	posts := []FeedPost{}
	err := s.db.WithContext(ctx).
		Table("posts").
		Select(feedColumns+`, FALSE AS liked`).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.description LIKE ?", "%#"+tag+"%").
		Order("posts.likes_count DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list event posts: %w", err)
	}
	return posts, nil
}
