package genai

import "time"

// Config holds connection settings for the generative-text provider.
// An empty APIKey switches the package to the mocked generator.
type Config struct {
	APIKey  string        `env:"GENAI_API_KEY"`
	Model   string        `env:"GENAI_MODEL" envDefault:"gemini-2.5-flash"`
	BaseURL string        `env:"GENAI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `env:"GENAI_TIMEOUT" envDefault:"30s"`
}
