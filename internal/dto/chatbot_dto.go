package dto

import (
	"evalassist-be/pkg/chat"
)

type ChatRequest struct {
	// empty questions are routed (they refuse as off-topic), not rejected
	UserQuestion string      `json:"user_question"`
	ChatHistory  []chat.Turn `json:"chat_history"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Step     string `json:"step"`
}

type FeedbackRequest struct {
	Question string `json:"question" validate:"required"`
	Response string `json:"response" validate:"required"`
	Step     string `json:"step"`
	Helpful  *bool  `json:"helpful" validate:"required"`
}
