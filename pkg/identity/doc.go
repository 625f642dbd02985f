// Package identity implements the IntelliStudy account store: durable
// registration records plus the single active session, persisted through an
// injected kv.Store.
//
// # Data model
//
// An account is keyed by its email, which is unique across the collection
// (case-sensitive, exactly as stored). Alongside the display name, avatar
// URL and credential secret it embeds study Preferences: an ordered subject
// list, a Difficulty level and a free-text weekly study-hours budget.
//
// The session is the public projection of exactly one account — every field
// except the secret. At most one session exists at a time: authentication
// replaces it wholesale, sign-out clears it, profile updates rewrite it to
// stay consistent with the underlying account.
//
// # Usage
//
//	svc := identity.New(kv.NewMemoryStore())
//
//	account, err := svc.Register(ctx, "Ada", "ada@x.com", "s3cret", "")
//	if err != nil { ... }
//
//	account, err = svc.Authenticate(ctx, "ada@x.com", "s3cret")
//	if err != nil { ... }
//
//	hours := "20 hours/week"
//	account, err = svc.UpdateProfile(ctx, identity.ProfileUpdate{
//	    Preferences: &identity.PreferencesUpdate{StudyHours: &hours},
//	})
//
// # Error handling
//
//   - ErrAccountExists      – registration (or email change) conflict
//   - ErrInvalidCredentials – unknown email or wrong secret, indistinguishable
//   - ErrNoActiveSession    – session-scoped operation with no session
//
// A failed operation performs no writes. Persisted data that fails to parse
// is logged and treated as absent/empty instead of being raised.
//
// # Secret storage
//
// By default secrets are stored verbatim and compared in constant time,
// matching the browser demo this store descends from. Production setups
// should pass WithSecretHasher(identity.BcryptHasher{}) to store salted
// hashes instead.
package identity
