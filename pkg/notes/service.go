package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/intellistudy/studykit/pkg/genai"
	"github.com/intellistudy/studykit/pkg/kv"
)

const defaultKeyPrefix = "studykit:notes:"

// Note is a study note with optional AI-produced summary and keywords.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary,omitempty"`
	Keywords  []string  `json:"keywords,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service keeps per-account notes and enriches them through a generator.
type Service interface {
	Add(ctx context.Context, accountID, title, content string) (*Note, error)
	List(ctx context.Context, accountID string) ([]Note, error)
	Get(ctx context.Context, accountID, noteID string) (*Note, error)
	Remove(ctx context.Context, accountID, noteID string) error

	// Summarize asks the generator for a summary of the note's content and
	// stores it back on the note.
	Summarize(ctx context.Context, accountID, noteID string) (*Note, error)

	// Quiz generates count multiple-choice questions from the note's content.
	Quiz(ctx context.Context, accountID, noteID string, count int) (*genai.Quiz, error)
}

type service struct {
	storage   kv.Store
	gen       genai.Generator
	logger    *slog.Logger
	keyPrefix string
	newID     func() string
	now       func() time.Time
}

// Option configures the notes service during construction.
type Option func(*service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithKeyPrefix overrides the storage key prefix for note collections.
func WithKeyPrefix(prefix string) Option {
	return func(s *service) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// WithIDGenerator overrides note id generation. Useful in tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the time source. Useful in tests.
func WithClock(fn func() time.Time) Option {
	return func(s *service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// New creates a notes service persisting through storage and generating
// summaries and quizzes through gen.
func New(storage kv.Store, gen genai.Generator, opts ...Option) Service {
	s := &service{
		storage:   storage,
		gen:       gen,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		keyPrefix: defaultKeyPrefix,
		newID:     uuid.NewString,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add stores a new note for the account.
func (s *service) Add(ctx context.Context, accountID, title, content string) (*Note, error) {
	collection, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}

	note := Note{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}

	collection = append(collection, note)
	if err := s.save(ctx, accountID, collection); err != nil {
		return nil, err
	}
	return &note, nil
}

// List returns all notes for the account, oldest first.
func (s *service) List(ctx context.Context, accountID string) ([]Note, error) {
	return s.load(ctx, accountID)
}

// Get returns a single note by id.
func (s *service) Get(ctx context.Context, accountID, noteID string) (*Note, error) {
	collection, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for i := range collection {
		if collection[i].ID == noteID {
			note := collection[i]
			return &note, nil
		}
	}
	return nil, ErrNoteNotFound
}

// Remove deletes a note by id.
func (s *service) Remove(ctx context.Context, accountID, noteID string) error {
	collection, err := s.load(ctx, accountID)
	if err != nil {
		return err
	}
	for i := range collection {
		if collection[i].ID == noteID {
			collection = append(collection[:i], collection[i+1:]...)
			return s.save(ctx, accountID, collection)
		}
	}
	return ErrNoteNotFound
}

// Summarize generates and stores a summary for the note.
func (s *service) Summarize(ctx context.Context, accountID, noteID string) (*Note, error) {
	collection, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range collection {
		if collection[i].ID == noteID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNoteNotFound
	}

	summary, err := s.gen.Summarize(ctx, collection[idx].Content)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize note: %w", err)
	}

	collection[idx].Summary = summary
	if err := s.save(ctx, accountID, collection); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "note summarized", slog.String("note_id", noteID))
	note := collection[idx]
	return &note, nil
}

// Quiz generates multiple-choice questions from the note's content.
func (s *service) Quiz(ctx context.Context, accountID, noteID string, count int) (*genai.Quiz, error) {
	note, err := s.Get(ctx, accountID, noteID)
	if err != nil {
		return nil, err
	}
	return s.gen.GenerateQuiz(ctx, note.Content, count)
}

func (s *service) key(accountID string) string {
	return s.keyPrefix + accountID
}

func (s *service) load(ctx context.Context, accountID string) ([]Note, error) {
	if accountID == "" {
		return nil, ErrInvalidAccount
	}

	raw, err := s.storage.Get(ctx, s.key(accountID))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	var collection []Note
	if err := json.Unmarshal([]byte(raw), &collection); err != nil {
		s.logger.WarnContext(ctx, "discarding unparseable note collection",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
		return nil, nil
	}
	return collection, nil
}

func (s *service) save(ctx context.Context, accountID string, collection []Note) error {
	b, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := s.storage.Set(ctx, s.key(accountID), string(b)); err != nil {
		return fmt.Errorf("failed to persist notes: %w", err)
	}
	return nil
}

// Compile-time interface assertion
var _ Service = (*service)(nil)
