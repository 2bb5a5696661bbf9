package controller

import (
	"evalassist-be/internal/dto"
	"evalassist-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router, sessionAuth fiber.Handler)
	Chat(ctx *fiber.Ctx) error
	Feedback(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbot  service.IChatbotService
	feedback service.IFeedbackService
	validate *validator.Validate
}

func NewChatbotController(chatbot service.IChatbotService, feedback service.IFeedbackService) IChatbotController {
	return &chatbotController{
		chatbot:  chatbot,
		feedback: feedback,
		validate: validator.New(),
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router, sessionAuth fiber.Handler) {
	h := r.Group("/chatbot")
	h.Post("/chat", sessionAuth, c.Chat)
	h.Post("/feedback", sessionAuth, c.Feedback)
}

// Chat returns a flat {response, step} body rather than the usual envelope
// so clients can render the answer without unwrapping.
func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "Invalid request body",
		})
	}

	res, err := c.chatbot.Chat(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": "Failed to process question",
		})
	}
	return ctx.JSON(res)
}

func (c *chatbotController) Feedback(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "Invalid request body",
		})
	}

	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "question, response and helpful are required",
		})
	}

	sessionID, _ := ctx.Locals("session_id").(string)
	if err := c.feedback.Submit(ctx.Context(), sessionID, &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": "Failed to record feedback",
		})
	}

	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"code":    202,
		"message": "Feedback recorded",
		"data":    nil,
	})
}
