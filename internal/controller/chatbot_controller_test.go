package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evalassist-be/internal/constant"
	"evalassist-be/internal/dto"
	"evalassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatbotService struct {
	res     *dto.ChatResponse
	err     error
	lastReq *dto.ChatRequest
}

func (s *stubChatbotService) Chat(_ context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	s.lastReq = req
	return s.res, s.err
}

type stubFeedbackService struct {
	err       error
	submitted []dto.FeedbackRequest
	sessionID string
}

func (s *stubFeedbackService) Submit(_ context.Context, sessionID string, req *dto.FeedbackRequest) error {
	s.sessionID = sessionID
	s.submitted = append(s.submitted, *req)
	return s.err
}

func newChatbotApp(chatbot service.IChatbotService, feedback service.IFeedbackService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewChatbotController(chatbot, feedback).RegisterRoutes(api, passthroughAuth)
	return app
}

func TestChatReturnsFlatBody(t *testing.T) {
	chatbot := &stubChatbotService{
		res: &dto.ChatResponse{Response: "AVM stands for Automated Valuation Model.", Step: constant.StepQAExactMatch},
	}
	app := newChatbotApp(chatbot, &stubFeedbackService{})

	resp := postJSON(t, app, "/api/chatbot/chat", dto.ChatRequest{UserQuestion: "What is AVM?"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	// flat body: response and step at the top level, no envelope
	body := decodeEnvelope(t, resp)
	assert.Equal(t, "AVM stands for Automated Valuation Model.", body["response"])
	assert.Equal(t, constant.StepQAExactMatch, body["step"])
	_, hasSuccess := body["success"]
	assert.False(t, hasSuccess)
}

func TestChatForwardsHistory(t *testing.T) {
	chatbot := &stubChatbotService{res: &dto.ChatResponse{Response: "ok", Step: constant.StepChatbotResponse}}
	app := newChatbotApp(chatbot, &stubFeedbackService{})

	payload := map[string]interface{}{
		"user_question": "And in Texas?",
		"chat_history": []map[string]string{
			{"role": "user", "content": "How is the housing market?"},
			{"role": "assistant", "content": "Cooling slightly."},
		},
	}
	resp := postJSON(t, app, "/api/chatbot/chat", payload)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, chatbot.lastReq)
	assert.Equal(t, "And in Texas?", chatbot.lastReq.UserQuestion)
	require.Len(t, chatbot.lastReq.ChatHistory, 2)
	assert.Equal(t, "assistant", chatbot.lastReq.ChatHistory[1].Role)
}

func TestChatEmptyQuestionIsAccepted(t *testing.T) {
	// empty questions reach the service (which refuses them as off-topic)
	// instead of being rejected by validation
	chatbot := &stubChatbotService{
		res: &dto.ChatResponse{Response: constant.OffTopicResponse, Step: constant.StepOffTopic},
	}
	app := newChatbotApp(chatbot, &stubFeedbackService{})

	resp := postJSON(t, app, "/api/chatbot/chat", dto.ChatRequest{UserQuestion: ""})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, constant.StepOffTopic, body["step"])
}

func TestChatMalformedBody(t *testing.T) {
	app := newChatbotApp(&stubChatbotService{}, &stubFeedbackService{})

	req := httptest.NewRequest("POST", "/api/chatbot/chat", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFeedbackAccepted(t *testing.T) {
	feedback := &stubFeedbackService{}
	app := newChatbotApp(&stubChatbotService{}, feedback)

	helpful := true
	resp := postJSON(t, app, "/api/chatbot/feedback", dto.FeedbackRequest{
		Question: "What is AVM?",
		Response: "AVM stands for Automated Valuation Model.",
		Step:     constant.StepQAExactMatch,
		Helpful:  &helpful,
	})

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Len(t, feedback.submitted, 1)
	assert.Equal(t, "session-123", feedback.sessionID)
	assert.True(t, *feedback.submitted[0].Helpful)
}

func TestFeedbackValidation(t *testing.T) {
	feedback := &stubFeedbackService{}
	app := newChatbotApp(&stubChatbotService{}, feedback)

	// helpful missing entirely
	resp := postJSON(t, app, "/api/chatbot/feedback", map[string]string{
		"question": "q",
		"response": "r",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, feedback.submitted)
}

func TestFeedbackHelpfulFalseIsValid(t *testing.T) {
	// helpful=false must pass "required": the pointer distinguishes false
	// from absent
	feedback := &stubFeedbackService{}
	app := newChatbotApp(&stubChatbotService{}, feedback)

	helpful := false
	resp := postJSON(t, app, "/api/chatbot/feedback", dto.FeedbackRequest{
		Question: "q",
		Response: "r",
		Helpful:  &helpful,
	})

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Len(t, feedback.submitted, 1)
	assert.False(t, *feedback.submitted[0].Helpful)
}
