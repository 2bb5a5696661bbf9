package router

import (
	"context"

	"evalassist-be/internal/constant"
	"evalassist-be/internal/pkg/logger"
	"evalassist-be/pkg/chat"
	"evalassist-be/pkg/chat/history"
	"evalassist-be/pkg/chat/intent"
	"evalassist-be/pkg/chat/prompt"
	"evalassist-be/pkg/chat/relevance"
	"evalassist-be/pkg/chat/topic"
	"evalassist-be/pkg/llm"
	"evalassist-be/pkg/qa"
)

// Result is one routing decision: the answer text and the advisory step
// label for the turn.
type Result struct {
	Response string
	Step     string
}

// Router decides, per incoming question, whether to answer from the Q&A
// table, combine a canned answer with a generated completion, refuse as
// off-topic, or forward to the model. First matching rule wins:
//
//  1. exact normalized Q&A match
//  2. fuzzy Q&A match at or above the similarity threshold
//  3. off-topic refusal when no domain keyword is present
//  4. generated response over the trimmed history
//
// The router holds no per-conversation state; everything it needs arrives
// with the call, so one instance serves all users.
type Router struct {
	matcher   *qa.Matcher
	filter    *relevance.Filter
	extractor *intent.Extractor
	trimmer   *history.Trimmer
	prompts   *prompt.Builder
	provider  llm.Provider
	log       logger.ILogger
}

func New(
	matcher *qa.Matcher,
	filter *relevance.Filter,
	extractor *intent.Extractor,
	trimmer *history.Trimmer,
	prompts *prompt.Builder,
	provider llm.Provider,
	log logger.ILogger,
) *Router {
	return &Router{
		matcher:   matcher,
		filter:    filter,
		extractor: extractor,
		trimmer:   trimmer,
		prompts:   prompts,
		provider:  provider,
		log:       log,
	}
}

// Route answers the question given the prior turns.
func (r *Router) Route(ctx context.Context, question string, turns []chat.Turn) Result {
	match := r.matcher.Find(question)

	switch match.Kind {
	case qa.MatchExact:
		return Result{Response: match.Answer, Step: constant.StepQAExactMatch}

	case qa.MatchPartial:
		generated := r.complete(ctx, question, turns)
		return Result{
			Response: match.Answer + "\n\n" + constant.AdditionalInfoHeader + "\n" + generated,
			Step:     constant.StepQAPartialMatch,
		}
	}

	// Empty questions carry no keywords and short-circuit here too.
	if !r.filter.IsRelevant(question) {
		return Result{Response: constant.OffTopicResponse, Step: constant.StepOffTopic}
	}

	return Result{
		Response: r.complete(ctx, question, turns),
		Step:     constant.StepChatbotResponse,
	}
}

// complete builds the trimmed request and asks the model. Failures are
// absorbed: the apology sentence is substituted and the caller keeps its
// branch label.
func (r *Router) complete(ctx context.Context, question string, turns []chat.Turn) string {
	systemPrompt := r.prompts.Build(r.deriveTopic(question, turns).Current())
	messages := r.trimmer.Build(systemPrompt, turns, question)

	response, err := r.provider.Chat(ctx, messages)
	if err != nil {
		r.log.Error("router", "completion request failed", map[string]interface{}{
			"error":   err.Error(),
			"outcome": constant.StepErrorResponse,
		})
		return constant.ApologyResponse
	}
	return response
}

// deriveTopic rebuilds the topic from the user turns so far plus the
// current question. Cosmetic: it only flavors the system prompt.
func (r *Router) deriveTopic(question string, turns []chat.Turn) *topic.Tracker {
	tracker := &topic.Tracker{}
	for _, turn := range turns {
		if turn.Role != constant.ChatRoleUser {
			continue
		}
		tracker.Update(r.extractor.Extract(turn.Content))
	}
	tracker.Update(r.extractor.Extract(question))
	return tracker
}
