package events

import "time"

// FeedbackEvent records a thumbs up/down on one answered turn. Events live
// only on the in-process bus; there is no persistence.
type FeedbackEvent struct {
	SessionID  string    `json:"session_id,omitempty"`
	Question   string    `json:"question"`
	Response   string    `json:"response"`
	Step       string    `json:"step"`
	Helpful    bool      `json:"helpful"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventType returns the unique code for this event.
func (FeedbackEvent) EventType() string {
	return "CHAT_FEEDBACK"
}
