package genai

import (
	"context"
	"fmt"
)

// MockGenerator returns fixed responses without calling any provider. It is
// the fallback used when no API key is configured, and doubles as a test
// double.
type MockGenerator struct{}

// NewMockGenerator creates the provider-free generator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (MockGenerator) Respond(ctx context.Context, prompt string) (string, error) {
	return "This is a mocked AI response as the API key is not configured.", nil
}

func (MockGenerator) Summarize(ctx context.Context, text string) (string, error) {
	return "This is a mocked summary as the API key is not configured.", nil
}

func (MockGenerator) GenerateQuiz(ctx context.Context, text string, count int) (*Quiz, error) {
	questions := make([]QuizQuestion, 0, count)
	for i := range count {
		questions = append(questions, QuizQuestion{
			Question: fmt.Sprintf("This is mock question %d?", i+1),
			Options:  []string{"Option A", "Option B", "Option C", "Option D"},
			Answer:   "Option A",
		})
	}
	return &Quiz{Questions: questions}, nil
}

func (MockGenerator) GenerateStudyPlan(ctx context.Context, subjects, hours string) (StudyPlan, error) {
	return StudyPlan{
		"Monday":    {"Study Mock Subject 1 (2 hours)"},
		"Wednesday": {"Review Mock Subject 1 notes (1 hour)"},
		"Friday":    {"Take practice quiz for Mock Subject 1 (1 hour)"},
	}, nil
}

// Compile-time interface assertion
var _ Generator = (*MockGenerator)(nil)
