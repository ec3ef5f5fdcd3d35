package llm

import "context"

// ChatModel is the minimal abstraction the enhancement gateway needs from a
// chat-based LLM. Concrete providers stay behind it so the domain never
// imports one directly.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
