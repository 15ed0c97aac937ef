package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcosboni7/backsleeping/internal/domain"
	"github.com/marcosboni7/backsleeping/internal/store/schema"
)

type initTestStoreFunc func(t *testing.T) Store
type cleanupTestStoreFunc func(t *testing.T)

var accountSeq int

// newTestAccount registers an account with a unique handle and the default
// starting balance
func newTestAccount(t *testing.T, s Store) *schema.Account {
	accountSeq++
	account, err := s.CreateAccount(context.Background(), CreateAccountInput{
		Username:        fmt.Sprintf("user_%d", accountSeq),
		Email:           fmt.Sprintf("user_%d@example.com", accountSeq),
		PasswordHash:    "$2a$10$hashhashhashhashhashha",
		StartingBalance: 1000,
	})
	require.NoError(t, err)
	require.NotNil(t, account)
	return account
}

func newTestPost(t *testing.T, s Store, authorID int64, description string) *schema.Post {
	post, err := s.CreatePost(context.Background(), CreatePostInput{
		AccountID:   authorID,
		Title:       "clip",
		Description: description,
		VideoURL:    "https://videodelivery.net/abc/manifest/video.m3u8",
	})
	require.NoError(t, err)
	require.NotNil(t, post)
	return post
}

// RunStoreTests runs the complete store test suite against an implementation
func RunStoreTests(t *testing.T, initFn initTestStoreFunc, cleanupFn cleanupTestStoreFunc) {
	t.Run("CreateAccount", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)
		assert.NotZero(t, account.ID)
		assert.Equal(t, int64(1000), account.Balance)
		assert.Equal(t, domain.RoleUser, account.Role)
		assert.Equal(t, domain.DefaultAuraColor, account.AuraColor)

		// Same email again must be rejected
		_, err := s.CreateAccount(ctx, CreateAccountInput{
			Username:        account.Username + "_other",
			Email:           account.Email,
			PasswordHash:    "x",
			StartingBalance: 1000,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateCredential)

		// Same username again must be rejected
		_, err = s.CreateAccount(ctx, CreateAccountInput{
			Username:        account.Username,
			Email:           "other_" + account.Email,
			PasswordHash:    "x",
			StartingBalance: 1000,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateCredential)
	})

	t.Run("GetAccount", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)

		byID, err := s.GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, account.Username, byID.Username)

		byEmail, err := s.GetAccountByEmail(ctx, account.Email)
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, account.ID, byEmail.ID)

		byUsername, err := s.GetAccountByUsername(ctx, account.Username)
		require.NoError(t, err)
		require.NotNil(t, byUsername)
		assert.Equal(t, account.ID, byUsername.ID)

		missing, err := s.GetAccountByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)

		newName := account.Username + "_renamed"
		avatar := "https://imagedelivery.net/acc/avatar/public"
		updated, err := s.UpdateProfile(ctx, account.ID, UpdateProfileInput{
			Username:  &newName,
			AvatarURL: &avatar,
		})
		require.NoError(t, err)
		assert.Equal(t, newName, updated.Username)
		assert.Equal(t, avatar, updated.AvatarURL)

		// Renaming onto an existing handle is rejected
		other := newTestAccount(t, s)
		_, err = s.UpdateProfile(ctx, other.ID, UpdateProfileInput{Username: &newName})
		assert.ErrorIs(t, err, domain.ErrDuplicateCredential)

		ghost := "ghost_handle"
		_, err = s.UpdateProfile(ctx, 999999, UpdateProfileInput{Username: &ghost})
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("EquipAura", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)

		updated, err := s.EquipAura(ctx, account.ID, "#ff00ff")
		require.NoError(t, err)
		assert.Equal(t, "#ff00ff", updated.AuraColor)

		_, err = s.EquipAura(ctx, 999999, "#ff00ff")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("RaiseExperience", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)

		updated, err := s.RaiseExperience(ctx, account.ID, 120)
		require.NoError(t, err)
		assert.Equal(t, int64(120), updated.XP)

		// A lower value never decreases the counter
		updated, err = s.RaiseExperience(ctx, account.ID, 40)
		require.NoError(t, err)
		assert.Equal(t, int64(120), updated.XP)

		updated, err = s.RaiseExperience(ctx, account.ID, 200)
		require.NoError(t, err)
		assert.Equal(t, int64(200), updated.XP)
	})

	t.Run("PurchaseItem", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)

		// Aura Dourada: price 300, color #ffd700
		updated, err := s.PurchaseItem(ctx, account.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(700), updated.Balance)
		assert.Equal(t, "#ffd700", updated.AuraColor)

		inventory, err := s.ListInventory(ctx, account.ID)
		require.NoError(t, err)
		require.Len(t, inventory, 1)
		assert.Equal(t, int64(1), inventory[0].ItemID)
		assert.Equal(t, "Aura Dourada", inventory[0].Name)

		entries, err := s.ListLedgerEntries(ctx, account.ID, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(-300), entries[0].Delta)
		assert.Equal(t, "purchase:Aura Dourada", entries[0].Label)
		assert.NotEmpty(t, entries[0].Reference)
	})

	t.Run("PurchaseItemAlreadyOwned", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)

		_, err := s.PurchaseItem(ctx, account.ID, 1)
		require.NoError(t, err)

		_, err = s.PurchaseItem(ctx, account.ID, 1)
		assert.ErrorIs(t, err, domain.ErrAlreadyOwned)

		// The failed attempt must not touch the balance
		after, err := s.GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(700), after.Balance)
	})

	t.Run("PurchaseItemInsufficientBalance", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)

		// Moldura Estelar costs 2000, the starting balance is 1000
		_, err := s.PurchaseItem(ctx, account.ID, 4)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		after, err := s.GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), after.Balance)

		inventory, err := s.ListInventory(ctx, account.ID)
		require.NoError(t, err)
		assert.Empty(t, inventory)

		entries, err := s.ListLedgerEntries(ctx, account.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("PurchaseItemNotFound", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)

		_, err := s.PurchaseItem(ctx, account.ID, 999999)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		_, err = s.PurchaseItem(ctx, 999999, 1)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("PurchaseGenericItemKeepsAura", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		account := newTestAccount(t, s)

		// Boost de XP is not a cosmetic
		updated, err := s.PurchaseItem(ctx, account.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(850), updated.Balance)
		assert.Equal(t, domain.DefaultAuraColor, updated.AuraColor)
	})

	t.Run("ListShopItems", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		items, err := s.ListShopItems(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(items), 4)
		// Cheapest first
		for i := 1; i < len(items); i++ {
			assert.LessOrEqual(t, items[i-1].Price, items[i].Price)
		}

		item, err := s.GetShopItemByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Aura Dourada", item.Name)
		assert.Equal(t, schema.ItemCategoryAura, item.Category)

		missing, err := s.GetShopItemByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("FollowUnfollow", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		alice := newTestAccount(t, s)
		bob := newTestAccount(t, s)

		require.NoError(t, s.Follow(ctx, alice.ID, bob.ID))

		assert.ErrorIs(t, s.Follow(ctx, alice.ID, bob.ID), domain.ErrAlreadyFollowing)
		assert.ErrorIs(t, s.Follow(ctx, alice.ID, alice.ID), domain.ErrSelfFollow)

		counts, err := s.ProfileCounts(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts.Followers)
		assert.Equal(t, int64(0), counts.Following)

		contacts, err := s.ListContacts(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, bob.ID, contacts[0].ID)
		assert.Equal(t, bob.Username, contacts[0].Username)

		require.NoError(t, s.Unfollow(ctx, alice.ID, bob.ID))
		assert.ErrorIs(t, s.Unfollow(ctx, alice.ID, bob.ID), domain.ErrNotFollowing)
	})

	t.Run("BlockSeversFollows", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		alice := newTestAccount(t, s)
		bob := newTestAccount(t, s)

		require.NoError(t, s.Follow(ctx, alice.ID, bob.ID))
		require.NoError(t, s.Follow(ctx, bob.ID, alice.ID))

		require.NoError(t, s.Block(ctx, alice.ID, bob.ID))
		assert.ErrorIs(t, s.Block(ctx, alice.ID, bob.ID), domain.ErrAlreadyBlocked)

		counts, err := s.ProfileCounts(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), counts.Followers)
		assert.Equal(t, int64(0), counts.Following)

		// Either side of the edge counts as blocked
		blocked, err := s.IsBlocked(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, blocked)
		blocked, err = s.IsBlocked(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.True(t, blocked)

		require.NoError(t, s.Unblock(ctx, alice.ID, bob.ID))
		assert.ErrorIs(t, s.Unblock(ctx, alice.ID, bob.ID), domain.ErrNotBlocked)

		blocked, err = s.IsBlocked(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, blocked)
	})

	t.Run("FeedAndLikes", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		author := newTestAccount(t, s)
		viewer := newTestAccount(t, s)

		first := newTestPost(t, s, author.ID, "first clip")
		second := newTestPost(t, s, author.ID, "second clip")

		// Like flips on
		result, err := s.ToggleLike(ctx, first.ID, viewer.ID)
		require.NoError(t, err)
		assert.True(t, result.Liked)
		assert.Equal(t, int64(1), result.Likes)

		feed, err := s.ListFeed(ctx, &viewer.ID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(feed), 2)

		byID := map[int64]FeedPost{}
		for _, p := range feed {
			byID[p.ID] = p
		}
		assert.True(t, byID[first.ID].Liked)
		assert.Equal(t, int64(1), byID[first.ID].LikesCount)
		assert.False(t, byID[second.ID].Liked)
		assert.Equal(t, author.Username, byID[first.ID].Username)

		// Anonymous feed carries no liked flags
		anon, err := s.ListFeed(ctx, nil)
		require.NoError(t, err)
		for _, p := range anon {
			assert.False(t, p.Liked)
		}

		// Like flips off and the counter follows
		result, err = s.ToggleLike(ctx, first.ID, viewer.ID)
		require.NoError(t, err)
		assert.False(t, result.Liked)
		assert.Equal(t, int64(0), result.Likes)

		_, err = s.ToggleLike(ctx, 999999, viewer.ID)
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
	})

	t.Run("Comments", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		author := newTestAccount(t, s)
		commenter := newTestAccount(t, s)
		post := newTestPost(t, s, author.ID, "clip with comments")

		created, err := s.CreateComment(ctx, post.ID, commenter.ID, "nice clip")
		require.NoError(t, err)
		assert.Equal(t, commenter.Username, created.Username)
		assert.Equal(t, "nice clip", created.Content)

		_, err = s.CreateComment(ctx, post.ID, author.ID, "thanks")
		require.NoError(t, err)

		comments, err := s.ListComments(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		// Oldest first
		assert.Equal(t, "nice clip", comments[0].Content)
		assert.Equal(t, "thanks", comments[1].Content)
	})

	t.Run("MessageTail", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		sender := newTestAccount(t, s)
		room := fmt.Sprintf("room_%d", sender.ID)

		for i := 0; i < 55; i++ {
			msg := &schema.Message{
				Room:     room,
				Username: sender.Username,
				Text:     fmt.Sprintf("message %d", i),
				SenderID: &sender.ID,
			}
			require.NoError(t, s.SaveMessage(ctx, msg))
		}

		tail, err := s.ListRoomTail(ctx, room, 50)
		require.NoError(t, err)
		require.Len(t, tail, 50)
		// The tail keeps the newest messages, ordered oldest to newest
		assert.Equal(t, "message 5", tail[0].Text)
		assert.Equal(t, "message 54", tail[49].Text)

		empty, err := s.ListRoomTail(ctx, "empty_room", 50)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("Events", func(t *testing.T) {
		defer cleanupFn(t)
		s := initFn(t)
		ctx := context.Background()

		event, err := s.GetOrCreateEventByTag(ctx, "dancinha")
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, "dancinha", event.Tag)
		assert.True(t, event.Active)

		// Second access returns the same row
		again, err := s.GetOrCreateEventByTag(ctx, "dancinha")
		require.NoError(t, err)
		assert.Equal(t, event.ID, again.ID)

		active, err := s.ListActiveEvents(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, active)

		author := newTestAccount(t, s)
		viewer := newTestAccount(t, s)
		popular := newTestPost(t, s, author.ID, "meu video #dancinha")
		newTestPost(t, s, author.ID, "sem tag")
		other := newTestPost(t, s, author.ID, "outro #dancinha")

		_, err = s.ToggleLike(ctx, other.ID, viewer.ID)
		require.NoError(t, err)
		_, err = s.ToggleLike(ctx, other.ID, author.ID)
		require.NoError(t, err)
		_, err = s.ToggleLike(ctx, popular.ID, viewer.ID)
		require.NoError(t, err)

		posts, err := s.ListEventPosts(ctx, "dancinha")
		require.NoError(t, err)
		require.Len(t, posts, 2)
		// Most liked first
		assert.Equal(t, other.ID, posts[0].ID)
		assert.Equal(t, popular.ID, posts[1].ID)
	})
}
