package chat

// Turn is one message exchanged in a conversation: the speaker role, the
// text, and an advisory step label. Turns live only in session memory and
// are append-only within a session.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Step    string `json:"step,omitempty"`
}
