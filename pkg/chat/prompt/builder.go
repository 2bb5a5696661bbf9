package prompt

import (
	"strings"
)

// Builder assembles the system prompt sent ahead of every model request.
type Builder struct {
	assistantName string
	platformName  string
}

func NewBuilder(assistantName, platformName string) *Builder {
	return &Builder{
		assistantName: assistantName,
		platformName:  platformName,
	}
}

// Build renders the system prompt. The current topic, when set, is included
// so the model stays on the conversation's subject; it never affects
// routing.
func (b *Builder) Build(currentTopic string, topicSet bool) string {
	var p strings.Builder

	p.WriteString("You are ")
	p.WriteString(b.assistantName)
	p.WriteString(", an expert assistant for ")
	p.WriteString(b.platformName)
	p.WriteString(", specializing in the US property market.\n")

	if topicSet {
		p.WriteString("Current Topic: ")
		p.WriteString(currentTopic)
		p.WriteString("\n")
	}

	p.WriteString("Provide accurate, up-to-date information with a professional yet friendly tone.\n")
	p.WriteString("Consider the user's previous questions when answering.")

	return p.String()
}
