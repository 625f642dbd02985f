package genai

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Quiz is a generated set of multiple-choice questions.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// StudyPlan maps a day name to the activities planned for it.
type StudyPlan map[string][]string
