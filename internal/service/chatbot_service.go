package service

import (
	"context"

	"evalassist-be/internal/dto"
	"evalassist-be/internal/pkg/logger"
	"evalassist-be/pkg/chat/router"
)

type IChatbotService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatbotService struct {
	router *router.Router
	log    logger.ILogger
}

func NewChatbotService(r *router.Router, log logger.ILogger) IChatbotService {
	return &chatbotService{router: r, log: log}
}

// Chat routes the question against the supplied history. Routing never
// fails: model errors are already absorbed into the apology response, so
// the error return exists only for interface symmetry.
func (s *chatbotService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	result := s.router.Route(ctx, req.UserQuestion, req.ChatHistory)

	s.log.Info("chatbot", "question routed", map[string]interface{}{
		"step":    result.Step,
		"history": len(req.ChatHistory),
	})

	return &dto.ChatResponse{
		Response: result.Response,
		Step:     result.Step,
	}, nil
}
