package notification

import (
	"context"

	"go.uber.org/zap"
)

type Message struct {
	Token string
	Title string
	Body  string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notify delivers each message in order. Failures are logged and never
// returned; the count of accepted messages is.
func Notify(ctx context.Context, sender Sender, logger *zap.Logger, msgs ...Message) int {
	delivered := 0
	for _, msg := range msgs {
		if msg.Token == "" {
			continue
		}
		if err := sender.Send(ctx, msg); err != nil {
			logger.Warn("push notification failed",
				zap.String("title", msg.Title),
				zap.Error(err),
			)
			continue
		}
		delivered++
	}
	return delivered
}
