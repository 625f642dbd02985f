package notes

import "errors"

var (
	// ErrNoteNotFound indicates no note exists with the requested id.
	ErrNoteNotFound = errors.New("notes.note_not_found")

	// ErrInvalidAccount indicates an empty account id.
	ErrInvalidAccount = errors.New("notes.invalid_account")
)
