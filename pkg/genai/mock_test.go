package genai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellistudy/studykit/pkg/genai"
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gen := genai.NewMockGenerator()

	t.Run("respond", func(t *testing.T) {
		t.Parallel()

		reply, err := gen.Respond(ctx, "anything")
		require.NoError(t, err)
		assert.Contains(t, reply, "mocked AI response")
	})

	t.Run("summarize", func(t *testing.T) {
		t.Parallel()

		summary, err := gen.Summarize(ctx, "anything")
		require.NoError(t, err)
		assert.Contains(t, summary, "mocked summary")
	})

	t.Run("quiz has the requested question count", func(t *testing.T) {
		t.Parallel()

		quiz, err := gen.GenerateQuiz(ctx, "text", 5)
		require.NoError(t, err)
		require.Len(t, quiz.Questions, 5)
		for _, q := range quiz.Questions {
			assert.Len(t, q.Options, 4)
			assert.Equal(t, "Option A", q.Answer)
		}
	})

	t.Run("plan covers three days", func(t *testing.T) {
		t.Parallel()

		plan, err := gen.GenerateStudyPlan(ctx, "Math", "5 hours")
		require.NoError(t, err)
		assert.Len(t, plan, 3)
		assert.Contains(t, plan, "Monday")
	})
}
