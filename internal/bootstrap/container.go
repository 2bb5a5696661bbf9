package bootstrap

import (
	"context"
	"log"
	"time"

	"evalassist-be/internal/config"
	"evalassist-be/internal/controller"
	"evalassist-be/internal/pkg/logger"
	"evalassist-be/internal/service"
	"evalassist-be/pkg/chat/history"
	"evalassist-be/pkg/chat/intent"
	"evalassist-be/pkg/chat/prompt"
	"evalassist-be/pkg/chat/relevance"
	"evalassist-be/pkg/chat/router"
	"evalassist-be/pkg/llm/factory"
	"evalassist-be/pkg/qa"
	"evalassist-be/pkg/session"
	"evalassist-be/pkg/valtool"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	ChatbotController controller.IChatbotController

	// Services (exposed for middleware wiring and for main.go)
	AuthService service.IAuthService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Misconfiguration is fatal at startup, never at request time.
	if cfg.ValTool.BaseURL == "" {
		log.Fatalf("[FATAL] VALTOOL_API_URL is not set")
	}
	valtoolClient := valtool.NewClient(cfg.ValTool.BaseURL)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider
	llmProvider, err := factory.NewProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OpenAIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Chat pipeline
	matcher := qa.NewMatcher(qa.DefaultEntries(), cfg.Chat.FuzzyThreshold)
	filter := relevance.NewFilter(relevance.DefaultKeywords())
	extractor := intent.NewExtractor(intent.DefaultKeywords())
	trimmer := history.NewTrimmer(
		history.NewTiktokenCounter(cfg.Ai.Model),
		cfg.Chat.MaxModelTokens,
		cfg.Chat.ReservedTokens,
		cfg.Chat.MaxHistoryTurns,
	)
	prompts := prompt.NewBuilder("EvalAssist", "WAIV")
	chatRouter := router.New(matcher, filter, extractor, trimmer, prompts, llmProvider, sysLogger)

	// 5. Sessions
	sessionStore := session.NewStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)

	// 6. Services
	authService := service.NewAuthService(
		valtoolClient,
		sessionStore,
		cfg.Session.JWTSecret,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		sysLogger,
	)
	chatbotService := service.NewChatbotService(chatRouter, sysLogger)
	feedbackService := service.NewFeedbackService(pubSub, cfg.App.FeedbackTopic, sysLogger)

	// 7. Background consumer
	if err := service.RunFeedbackConsumer(context.Background(), pubSub, cfg.App.FeedbackTopic, sysLogger); err != nil {
		log.Printf("[WARN] Feedback consumer failed to start: %v", err)
	}

	// 8. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		ChatbotController: controller.NewChatbotController(chatbotService, feedbackService),
		AuthService:       authService,
		Logger:            sysLogger,
	}
}
