package domain

import "errors"

var (
	// ErrAccountNotFound is returned when the referenced account does not exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrItemNotFound is returned when the referenced shop item does not exist
	ErrItemNotFound = errors.New("item not found")

	// ErrPostNotFound is returned when the referenced post does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrInsufficientBalance is returned when an account cannot afford a purchase
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAlreadyOwned is returned when an account already owns the item being purchased
	ErrAlreadyOwned = errors.New("item already owned")

	// ErrDuplicateCredential is returned when the email or username is already registered
	ErrDuplicateCredential = errors.New("email or username already registered")

	// ErrSelfFollow is returned when an account attempts to follow itself
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrAlreadyFollowing is returned when the follow edge already exists
	ErrAlreadyFollowing = errors.New("already following")

	// ErrNotFollowing is returned when unfollowing without an existing edge
	ErrNotFollowing = errors.New("not following")

	// ErrAlreadyBlocked is returned when the block edge already exists
	ErrAlreadyBlocked = errors.New("already blocked")

	// ErrNotBlocked is returned when unblocking without an existing edge
	ErrNotBlocked = errors.New("not blocked")

	// ErrUploadFailed is returned when the media storage provider rejects an upload
	ErrUploadFailed = errors.New("media upload failed")

	// ErrUnsupportedMediaType is returned when an uploaded payload is neither
	// a video (posts) nor an image (thumbnails, avatars)
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
