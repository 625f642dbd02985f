package genai

import "errors"

var (
	// ErrEmptyResponse indicates the provider returned no candidates.
	ErrEmptyResponse = errors.New("genai.empty_response")

	// ErrRequestFailed indicates a transport-level or non-2xx failure.
	ErrRequestFailed = errors.New("genai.request_failed")

	// ErrQuizGeneration indicates quiz generation or parsing failed.
	ErrQuizGeneration = errors.New("genai.quiz_generation_failed")

	// ErrPlanGeneration indicates study-plan generation or parsing failed.
	ErrPlanGeneration = errors.New("genai.plan_generation_failed")
)
