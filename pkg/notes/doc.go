// Package notes keeps per-account study notes in a kv.Store and enriches
// them through a genai.Generator: summaries are generated on demand and
// stored back on the note, and quizzes can be derived from a note's content.
package notes
