package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/intellistudy/studykit/pkg/kv"
)

const (
	defaultAccountsKey = "studykit:accounts"
	defaultSessionKey  = "studykit:session"
)

// Service is the identity store: durable account bookkeeping plus tracking
// of the single active session.
type Service interface {
	Register(ctx context.Context, name, email, secret, avatarURL string) (*Account, error)
	Authenticate(ctx context.Context, email, secret string) (*Account, error)
	SignOut(ctx context.Context) error
	CurrentSession(ctx context.Context) (*Account, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*Account, error)
}

type service struct {
	storage     kv.Store
	logger      *slog.Logger
	hasher      SecretHasher
	accountsKey string
	sessionKey  string
	newID       func() string
	avatarURL   func(email string) string
}

// Option configures the identity service during construction.
type Option func(*service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSecretHasher replaces the default verbatim secret storage with a
// hashing scheme such as BcryptHasher.
func WithSecretHasher(h SecretHasher) Option {
	return func(s *service) {
		if h != nil {
			s.hasher = h
		}
	}
}

// WithAccountsKey overrides the storage key holding the account collection.
func WithAccountsKey(key string) Option {
	return func(s *service) {
		if key != "" {
			s.accountsKey = key
		}
	}
}

// WithSessionKey overrides the storage key holding the current session.
func WithSessionKey(key string) Option {
	return func(s *service) {
		if key != "" {
			s.sessionKey = key
		}
	}
}

// WithIDGenerator overrides account id generation. Useful in tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithAvatarURL overrides derivation of the placeholder avatar for
// registrations that supply none.
func WithAvatarURL(fn func(email string) string) Option {
	return func(s *service) {
		if fn != nil {
			s.avatarURL = fn
		}
	}
}

// New creates an identity service persisting through storage.
func New(storage kv.Store, opts ...Option) Service {
	s := &service{
		storage:     storage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		hasher:      PlaintextHasher{},
		accountsKey: defaultAccountsKey,
		sessionKey:  defaultSessionKey,
		newID:       uuid.NewString,
		avatarURL:   defaultAvatarURL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register creates a new account. The email must not already be taken.
// The session is left untouched.
func (s *service) Register(ctx context.Context, name, email, secret, avatarURL string) (*Account, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range accounts {
		if a.Email == email {
			return nil, ErrAccountExists
		}
	}

	storedSecret, err := s.hasher.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}

	if avatarURL == "" {
		avatarURL = s.avatarURL(email)
	}

	account := storedAccount{
		ID:          s.newID(),
		Name:        name,
		Email:       email,
		Secret:      storedSecret,
		AvatarURL:   avatarURL,
		Preferences: defaultPreferences(),
	}

	accounts = append(accounts, account)
	if err := s.saveAccounts(ctx, accounts); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "account registered", slog.String("account_id", account.ID))
	return account.public(), nil
}

// Authenticate verifies the credentials and, on success, replaces the
// current session with the matched account's public projection. Unknown
// email and wrong secret fail identically.
func (s *service) Authenticate(ctx context.Context, email, secret string) (*Account, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range accounts {
		if a.Email == email && s.hasher.Compare(a.Secret, secret) {
			account := a.public()
			if err := s.writeSession(ctx, account); err != nil {
				return nil, err
			}
			s.logger.InfoContext(ctx, "session started", slog.String("account_id", account.ID))
			return account, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// SignOut clears the current session. Idempotent.
func (s *service) SignOut(ctx context.Context) error {
	if err := s.storage.Remove(ctx, s.sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentSession returns the persisted session's public projection, or
// ErrNoActiveSession when absent. Unparseable session data is treated as
// absent rather than surfaced.
func (s *service) CurrentSession(ctx context.Context) (*Account, error) {
	raw, err := s.storage.Get(ctx, s.sessionKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var account Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		s.logger.WarnContext(ctx, "discarding unparseable session",
			slog.Any("error", errors.Join(ErrCorruptState, err)))
		return nil, ErrNoActiveSession
	}
	return &account, nil
}

// UpdateProfile merges a partial update over the current session's account,
// persisting the result to both the account collection and the session.
func (s *service) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Account, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	if update.Preferences != nil && update.Preferences.Difficulty != nil && !update.Preferences.Difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, a := range accounts {
		if a.ID == session.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Session refers to an account that no longer exists in the
		// collection; treat it like a missing session.
		s.logger.WarnContext(ctx, "session account missing from collection",
			slog.String("account_id", session.ID))
		return nil, ErrNoActiveSession
	}

	merged := accounts[idx]
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil && *update.Email != merged.Email {
		for _, a := range accounts {
			if a.ID != merged.ID && a.Email == *update.Email {
				return nil, ErrAccountExists
			}
		}
		merged.Email = *update.Email
	}
	if update.AvatarURL != nil {
		merged.AvatarURL = *update.AvatarURL
	}
	if p := update.Preferences; p != nil {
		if p.Subjects != nil {
			merged.Preferences.Subjects = append([]string(nil), p.Subjects...)
		}
		if p.Difficulty != nil {
			merged.Preferences.Difficulty = *p.Difficulty
		}
		if p.StudyHours != nil {
			merged.Preferences.StudyHours = *p.StudyHours
		}
	}

	accounts[idx] = merged
	if err := s.saveAccounts(ctx, accounts); err != nil {
		return nil, err
	}

	account := merged.public()
	if err := s.writeSession(ctx, account); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "profile updated", slog.String("account_id", account.ID))
	return account, nil
}

// loadAccounts reads the account collection. A missing key yields an empty
// collection; unparseable data is logged and recovered as empty.
func (s *service) loadAccounts(ctx context.Context) ([]storedAccount, error) {
	raw, err := s.storage.Get(ctx, s.accountsKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	var accounts []storedAccount
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		s.logger.WarnContext(ctx, "discarding unparseable account collection",
			slog.Any("error", errors.Join(ErrCorruptState, err)))
		return nil, nil
	}
	return accounts, nil
}

func (s *service) saveAccounts(ctx context.Context, accounts []storedAccount) error {
	b, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := s.storage.Set(ctx, s.accountsKey, string(b)); err != nil {
		return fmt.Errorf("failed to persist accounts: %w", err)
	}
	return nil
}

func (s *service) writeSession(ctx context.Context, account *Account) error {
	b, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.storage.Set(ctx, s.sessionKey, string(b)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Compile-time interface assertion
var _ Service = (*service)(nil)
