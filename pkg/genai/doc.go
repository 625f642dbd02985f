// Package genai is a thin client for a hosted generative-text provider,
// shaped around the three study-assistant needs: free-text completion,
// JSON quiz generation and JSON study-plan generation.
//
// The provider is treated as an opaque black box behind the Generator
// interface. Structured calls send a response schema so the reply is a JSON
// document parsed directly into Quiz or StudyPlan.
//
// New returns a MockGenerator when no API key is configured, so the rest of
// the application works offline with canned responses.
//
//	var cfg genai.Config
//	config.MustLoad(&cfg)
//	gen := genai.New(cfg)
//
//	quiz, err := gen.GenerateQuiz(ctx, noteText, 5)
package genai
