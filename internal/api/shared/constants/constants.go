package constants

const (
	// STARTING_BALANCE is the currency granted to every new account
	STARTING_BALANCE = int64(1000)

	// MESSAGE_TAIL_LIMIT is how many messages are replayed when joining a room
	MESSAGE_TAIL_LIMIT = 50

	// LEDGER_DEFAULT_LIMIT caps the ledger listing page size
	LEDGER_DEFAULT_LIMIT = 100

	// MAX_USERNAME_LENGTH bounds the public handle
	MAX_USERNAME_LENGTH = 32
	MIN_USERNAME_LENGTH = 3

	// MIN_PASSWORD_LENGTH bounds the registration password
	MIN_PASSWORD_LENGTH = 6

	// MAX_COMMENT_LENGTH bounds a single comment body
	MAX_COMMENT_LENGTH = 500

	// MAX_POST_TITLE_LENGTH bounds the post title
	MAX_POST_TITLE_LENGTH = 120

	// MAX_POST_DESCRIPTION_LENGTH bounds the post description
	MAX_POST_DESCRIPTION_LENGTH = 2000
)
