package consumer

import (
	"context"
	"encoding/json"

	"github.com/businessanalystdm/projecthrm/internal/employee"
	"github.com/businessanalystdm/projecthrm/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle tails the lifecycle topic, writes an audit line
// per event and drops the employee options cache so other API instances
// serve fresh data.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		log.Named("audit").Info("employee lifecycle event",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
			zap.String("emp_id", event.EmpID),
			zap.String("effective_date", event.EffectiveDate),
			zap.Time("occurred_at", event.OccurredAt),
		)

		if rdb != nil {
			if err := rdb.Del(ctx, employee.OptionsCacheKey).Err(); err != nil {
				log.Error("invalidate employee options cache failed",
					zap.String("key", employee.OptionsCacheKey),
					zap.Error(err),
				)
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}
