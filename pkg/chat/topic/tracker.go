package topic

// Tracker keeps the single "current topic" derived from the most recent
// recognized intents. The topic only flavors the system prompt; it never
// gates routing.
//
// The zero value is a tracker with no topic set.
type Tracker struct {
	current string
	set     bool
}

// General is assigned when intents were recognized but none maps to a
// known topic.
const General = "general"

// Update derives a topic from the recognized intents. With no intents the
// current topic is kept as-is (including unset) rather than being silently
// re-derived.
func (t *Tracker) Update(intents []string) {
	if len(intents) == 0 {
		return
	}
	// first recognized intent wins; intents are already canonical topics
	t.current = intents[0]
	t.set = true
}

// Current returns the topic and whether one has been set this session.
func (t *Tracker) Current() (string, bool) {
	return t.current, t.set
}

// Reset clears the topic back to unset.
func (t *Tracker) Reset() {
	t.current = ""
	t.set = false
}
