package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	"evalassist-be/internal/constant"
	"evalassist-be/internal/pkg/logger"
	"evalassist-be/pkg/chat"
	"evalassist-be/pkg/chat/history"
	"evalassist-be/pkg/chat/intent"
	"evalassist-be/pkg/chat/prompt"
	"evalassist-be/pkg/chat/relevance"
	"evalassist-be/pkg/llm"
	"evalassist-be/pkg/qa"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
	lastMsgs []llm.Message
}

func (f *fakeProvider) Chat(_ context.Context, messages []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	f.lastMsgs = messages
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type wordCounter struct{}

func (wordCounter) Count(text string) int { return len(strings.Fields(text)) }

func newTestRouter(provider *fakeProvider) *Router {
	entries := []qa.Entry{
		{Question: "What is AVM?", Answer: "AVM stands for Automated Valuation Model."},
		{Question: "What is WAIV?", Answer: "WAIV is a valuation platform."},
	}
	return New(
		qa.NewMatcher(entries, 0.6),
		relevance.NewFilter(relevance.DefaultKeywords()),
		intent.NewExtractor(intent.DefaultKeywords()),
		history.NewTrimmer(wordCounter{}, 4096, 500, 10),
		prompt.NewBuilder("EvalAssist", "WAIV"),
		provider,
		logger.Nop{},
	)
}

func TestRouteExactMatch(t *testing.T) {
	provider := &fakeProvider{response: "generated"}
	r := newTestRouter(provider)

	got := r.Route(context.Background(), "what is avm?", nil)

	if got.Step != constant.StepQAExactMatch {
		t.Errorf("Step = %q, want %q", got.Step, constant.StepQAExactMatch)
	}
	if got.Response != "AVM stands for Automated Valuation Model." {
		t.Errorf("Response = %q, want the canned answer verbatim", got.Response)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0", provider.calls)
	}
}

func TestRoutePartialMatch(t *testing.T) {
	provider := &fakeProvider{response: "AVMs use statistical models over recent sales."}
	r := newTestRouter(provider)

	got := r.Route(context.Background(), "what's avm", nil)

	if got.Step != constant.StepQAPartialMatch {
		t.Fatalf("Step = %q, want %q", got.Step, constant.StepQAPartialMatch)
	}
	if !strings.HasPrefix(got.Response, "AVM stands for Automated Valuation Model.") {
		t.Errorf("Response must start with the canned answer, got %q", got.Response)
	}
	if !strings.Contains(got.Response, constant.AdditionalInfoHeader) {
		t.Errorf("Response missing %q section: %q", constant.AdditionalInfoHeader, got.Response)
	}
	if !strings.Contains(got.Response, provider.response) {
		t.Errorf("Response missing generated text: %q", got.Response)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
}

func TestRoutePartialMatchCompletionFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("rate limited")}
	r := newTestRouter(provider)

	got := r.Route(context.Background(), "what's avm", nil)

	if got.Step != constant.StepQAPartialMatch {
		t.Errorf("Step = %q, want branch label kept on completion failure", got.Step)
	}
	if !strings.HasPrefix(got.Response, "AVM stands for Automated Valuation Model.") {
		t.Errorf("canned answer missing: %q", got.Response)
	}
	if !strings.Contains(got.Response, constant.ApologyResponse) {
		t.Errorf("apology substitution missing: %q", got.Response)
	}
}

func TestRouteOffTopic(t *testing.T) {
	provider := &fakeProvider{response: "generated"}
	r := newTestRouter(provider)

	history := []chat.Turn{
		{Role: "user", Content: "what are mortgage rates", Step: constant.StepUserInput},
		{Role: "assistant", Content: "rates vary", Step: constant.StepChatbotResponse},
	}
	got := r.Route(context.Background(), "What's the weather today?", history)

	if got.Step != constant.StepOffTopic {
		t.Errorf("Step = %q, want %q regardless of history", got.Step, constant.StepOffTopic)
	}
	if got.Response != constant.OffTopicResponse {
		t.Errorf("Response = %q, want the fixed refusal", got.Response)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0", provider.calls)
	}
}

func TestRouteEmptyQuestionIsOffTopic(t *testing.T) {
	provider := &fakeProvider{response: "generated"}
	r := newTestRouter(provider)

	got := r.Route(context.Background(), "   ", nil)
	if got.Step != constant.StepOffTopic {
		t.Errorf("Step = %q, want %q for empty question", got.Step, constant.StepOffTopic)
	}
}

func TestRouteChatbotResponse(t *testing.T) {
	provider := &fakeProvider{response: "Rates are around 6.5% this week."}
	r := newTestRouter(provider)

	got := r.Route(context.Background(), "What are today's mortgage rates?", nil)

	if got.Step != constant.StepChatbotResponse {
		t.Fatalf("Step = %q, want %q", got.Step, constant.StepChatbotResponse)
	}
	if got.Response != provider.response {
		t.Errorf("Response = %q, want the generated text", got.Response)
	}

	// request shape: system prompt first, current question last
	if len(provider.lastMsgs) < 2 {
		t.Fatalf("messages = %+v, want at least system+question", provider.lastMsgs)
	}
	if provider.lastMsgs[0].Role != constant.ChatRoleSystem {
		t.Errorf("first message role = %q, want system", provider.lastMsgs[0].Role)
	}
	last := provider.lastMsgs[len(provider.lastMsgs)-1]
	if last.Role != constant.ChatRoleUser || last.Content != "What are today's mortgage rates?" {
		t.Errorf("last message = %+v, want the current question", last)
	}
}

func TestRouteChatbotFailureSubstitutesApology(t *testing.T) {
	provider := &fakeProvider{err: errors.New("boom")}
	r := newTestRouter(provider)

	got := r.Route(context.Background(), "What are today's mortgage rates?", nil)

	if got.Step != constant.StepChatbotResponse {
		t.Errorf("Step = %q, want branch label kept", got.Step)
	}
	if got.Response != constant.ApologyResponse {
		t.Errorf("Response = %q, want the apology sentence", got.Response)
	}
}

func TestRouteIdempotentAcrossAppendedHistory(t *testing.T) {
	provider := &fakeProvider{response: "generated"}
	r := newTestRouter(provider)

	question := "what is avm?"
	first := r.Route(context.Background(), question, nil)

	appended := []chat.Turn{
		{Role: "user", Content: question, Step: constant.StepUserInput},
		{Role: "assistant", Content: first.Response, Step: first.Step},
	}
	second := r.Route(context.Background(), question, appended)

	if first != second {
		t.Errorf("lookup changed after appending the turn: %+v vs %+v", first, second)
	}
}

func TestSystemPromptCarriesTopic(t *testing.T) {
	provider := &fakeProvider{response: "generated"}
	r := newTestRouter(provider)

	r.Route(context.Background(), "Tell me about property valuation near Austin", nil)

	if len(provider.lastMsgs) == 0 {
		t.Fatal("provider saw no messages")
	}
	if !strings.Contains(provider.lastMsgs[0].Content, "Current Topic: valuation") {
		t.Errorf("system prompt missing topic: %q", provider.lastMsgs[0].Content)
	}
}
