package history

import (
	"evalassist-be/internal/constant"
	"evalassist-be/pkg/chat"
	"evalassist-be/pkg/llm"
)

// Trimmer selects the most recent turns that fit beneath the token budget
// and assembles the outbound message sequence: exactly one leading system
// entry, the kept turns in chronological order, and the current question as
// the final user entry.
type Trimmer struct {
	counter  TokenCounter
	budget   int // max model tokens minus the reserved margin
	maxTurns int
}

func NewTrimmer(counter TokenCounter, maxModelTokens, reservedTokens, maxTurns int) *Trimmer {
	budget := maxModelTokens - reservedTokens
	if budget < 0 {
		budget = 0
	}
	return &Trimmer{
		counter:  counter,
		budget:   budget,
		maxTurns: maxTurns,
	}
}

// Build walks prior turns from most recent to oldest, keeping each turn
// whose addition stays under the budget and stopping at the first that does
// not. Turns missing a role or content are skipped; unrecognized roles are
// coerced to user.
func (t *Trimmer) Build(systemPrompt string, turns []chat.Turn, question string) []llm.Message {
	if t.maxTurns > 0 && len(turns) > t.maxTurns {
		turns = turns[len(turns)-t.maxTurns:]
	}

	total := t.counter.Count(systemPrompt)
	kept := make([]llm.Message, 0, len(turns))

	for i := len(turns) - 1; i >= 0; i-- {
		turn := turns[i]
		if turn.Role == "" || turn.Content == "" {
			continue
		}

		role := turn.Role
		switch role {
		case constant.ChatRoleUser, constant.ChatRoleAssistant, constant.ChatRoleSystem:
		default:
			role = constant.ChatRoleUser
		}

		cost := t.counter.Count(turn.Content)
		if total+cost > t.budget {
			break
		}
		total += cost
		kept = append(kept, llm.Message{Role: role, Content: turn.Content})
	}

	messages := make([]llm.Message, 0, len(kept)+2)
	messages = append(messages, llm.Message{Role: constant.ChatRoleSystem, Content: systemPrompt})
	// kept is newest-first; re-reverse to chronological order
	for i := len(kept) - 1; i >= 0; i-- {
		messages = append(messages, kept[i])
	}
	messages = append(messages, llm.Message{Role: constant.ChatRoleUser, Content: question})

	return messages
}
