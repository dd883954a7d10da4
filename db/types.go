package db

import "time"

// Oauth2PasswordSentinel is stored in the password column of accounts created
// through an external identity provider. No credential is collected in that
// flow and the model carries no separate auth-method field, so the sentinel
// is what distinguishes provider-issued accounts. It can never match a bcrypt
// hash, so such accounts cannot log in with a password.
const Oauth2PasswordSentinel = "oauth2"

// User represents one account.
// Timestamps (Created and Updated) use RFC3339 format in UTC timezone.
// Example: "2024-03-07T15:04:05Z"
type User struct {
	ID    string
	Email string
	Name  string
	// Password holds a bcrypt hash for local accounts or
	// Oauth2PasswordSentinel for provider-issued accounts.
	Password string
	// Favorite is the title of the single favorited movie. Empty means no
	// favorite has been set (stored as NULL).
	Favorite string
	Created  time.Time
	Updated  time.Time
}

// Session is one server-side session record: the minimal principal captured
// at login time plus its lifecycle bounds. It deliberately carries no
// password material.
type Session struct {
	ID     string
	UserID string
	Email  string
	// Favorite is the favorite title as of login; it is not refreshed when
	// the user record changes.
	Favorite string
	Created  time.Time
	Expires  time.Time
}
