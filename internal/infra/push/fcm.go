package push

import (
	"context"
	"encoding/base64"
	"fmt"

	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/option"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/config"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/notification"
)

// FCMSender delivers notifications through the Firebase Cloud Messaging HTTP v1 API.
type FCMSender struct {
	svc    *fcm.Service
	parent string
}

var _ notification.Sender = (*FCMSender)(nil)

func NewFCMSender(ctx context.Context, cfg config.PushConfig) (*FCMSender, error) {
	creds, err := base64.StdEncoding.DecodeString(cfg.Credentials)
	if err != nil {
		return nil, fmt.Errorf("decode FIREBASE_CREDENTIALS: %w", err)
	}

	svc, err := fcm.NewService(ctx, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("create fcm client: %w", err)
	}

	return &FCMSender{svc: svc, parent: "projects/" + cfg.ProjectID}, nil
}

func (s *FCMSender) Send(ctx context.Context, msg notification.Message) error {
	req := &fcm.SendMessageRequest{
		Message: &fcm.Message{
			Token: msg.Token,
			Notification: &fcm.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
		},
	}

	if _, err := s.svc.Projects.Messages.Send(s.parent, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}
	return nil
}
