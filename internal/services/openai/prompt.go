package openai

import "fmt"

const scoreSystemPrompt = "You are an expert interview coach. Evaluate the user's answer to the question using a short rubric. " +
	"Return a JSON object containing at least: score (0-10), feedback (brief text). " +
	"You may include optional fields like polarity, relevance. Be concise and return only valid JSON or text that includes JSON."

const (
	probeSystemPrompt = "You are a test assistant."
	probeUserPrompt   = "Reply with OK."
)

func scoreUserPrompt(question, answer string) string {
	return fmt.Sprintf(
		"Question: %s\n\nAnswer: %s\n\nProvide a short evaluation and a numeric score from 0 (poor) to 10 (excellent). Return the result as JSON.",
		question, answer,
	)
}
