package service

import (
	"context"
	"encoding/json"
	"time"

	"evalassist-be/internal/dto"
	"evalassist-be/internal/pkg/logger"
	"evalassist-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IFeedbackService interface {
	Submit(ctx context.Context, sessionID string, req *dto.FeedbackRequest) error
}

type feedbackService struct {
	publisher message.Publisher
	topic     string
	log       logger.ILogger
}

func NewFeedbackService(publisher message.Publisher, topic string, log logger.ILogger) IFeedbackService {
	return &feedbackService{publisher: publisher, topic: topic, log: log}
}

// Submit publishes the feedback onto the in-process bus and returns. The
// consumer picks it up asynchronously; the caller never waits on it.
func (s *feedbackService) Submit(_ context.Context, sessionID string, req *dto.FeedbackRequest) error {
	event := events.FeedbackEvent{
		SessionID:  sessionID,
		Question:   req.Question,
		Response:   req.Response,
		Step:       req.Step,
		Helpful:    *req.Helpful,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", event.EventType())

	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.log.Error("feedback", "publish failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// RunFeedbackConsumer drains the feedback topic and logs each event until
// the context is cancelled. Run it on its own goroutine.
func RunFeedbackConsumer(ctx context.Context, subscriber message.Subscriber, topic string, log logger.ILogger) error {
	messages, err := subscriber.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var event events.FeedbackEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				log.Warn("feedback", "dropping malformed feedback event", map[string]interface{}{
					"message_id": msg.UUID,
					"error":      err.Error(),
				})
				msg.Ack()
				continue
			}

			log.Info("feedback", "feedback received", map[string]interface{}{
				"session_id": event.SessionID,
				"step":       event.Step,
				"helpful":    event.Helpful,
				"question":   event.Question,
			})
			msg.Ack()
		}
	}()

	return nil
}
