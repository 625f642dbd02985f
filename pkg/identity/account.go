package identity

import "fmt"

// Difficulty is a study difficulty level. Only the three enumerated values
// are ever persisted.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the enumerated difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Preferences holds a user's study configuration.
type Preferences struct {
	// Subjects is ordered and may contain duplicates; order is significant
	// for display.
	Subjects   []string   `json:"subjects"`
	Difficulty Difficulty `json:"difficulty"`
	StudyHours string     `json:"studyHours"`
}

// Account is the public projection of a registered account. It never
// carries the credential secret.
type Account struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	AvatarURL   string      `json:"avatar"`
	Preferences Preferences `json:"preferences"`
}

// ProfileUpdate describes a partial profile change. Nil fields keep their
// prior values.
type ProfileUpdate struct {
	Name        *string
	Email       *string
	AvatarURL   *string
	Preferences *PreferencesUpdate
}

// PreferencesUpdate describes a partial preferences change, merged
// field-by-field. A non-nil Subjects replaces the whole slice.
type PreferencesUpdate struct {
	Subjects   []string
	Difficulty *Difficulty
	StudyHours *string
}

// storedAccount is the persisted account record, the only place the secret
// lives.
type storedAccount struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Secret      string      `json:"secret,omitempty"`
	AvatarURL   string      `json:"avatar"`
	Preferences Preferences `json:"preferences"`
}

// public strips the secret and returns the account's public projection.
func (a storedAccount) public() *Account {
	prefs := a.Preferences
	prefs.Subjects = append([]string(nil), a.Preferences.Subjects...)
	return &Account{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		AvatarURL:   a.AvatarURL,
		Preferences: prefs,
	}
}

// defaultPreferences returns the preferences assigned at registration.
func defaultPreferences() Preferences {
	return Preferences{
		Subjects:   []string{},
		Difficulty: DifficultyBeginner,
		StudyHours: "5 hours per week",
	}
}

// defaultAvatarURL derives the deterministic placeholder avatar for an
// email address.
func defaultAvatarURL(email string) string {
	return fmt.Sprintf("https://i.pravatar.cc/150?u=%s", email)
}
