package consumer

import (
	"context"
	"encoding/json"

	"hivedesk/internal/events"
	"hivedesk/internal/task"
	"hivedesk/internal/user"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeUserLifecycle seeds the onboarding checklist for freshly created
// employee accounts. Assignment conflicts are handled inside the task
// service, so a redelivered event is harmless.
func ConsumeUserLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	taskService task.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.user_lifecycle")
	log.Info("user lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("user lifecycle consumer stopped")
				return
			}
			log.Error("fetch user lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.UserCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode user_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.EventType != "user.created" || event.Role != user.RoleEmployee {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		assigned, err := taskService.AssignActiveTasks(ctx, event.CreatedBy, event.UserID)
		if err != nil {
			log.Error("bootstrap onboarding tasks failed",
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit user lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("onboarding tasks assigned from user_created event",
			zap.String("user_id", event.UserID),
			zap.Int("assigned", assigned),
		)
	}
}
