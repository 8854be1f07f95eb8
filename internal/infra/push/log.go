package push

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/notification"
)

// LogSender writes notifications to the log instead of delivering them.
type LogSender struct {
	log *zap.Logger
}

var _ notification.Sender = (*LogSender)(nil)

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg notification.Message) error {
	s.log.Info("push notification",
		zap.String("title", msg.Title),
		zap.String("body", msg.Body),
	)
	return nil
}
