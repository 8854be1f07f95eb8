package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	domainReport "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/notification"
)

var ErrFake = errors.New("fake failure")

// ImageStore keeps uploads in memory and hands out deterministic URLs.
type ImageStore struct {
	mu       sync.Mutex
	Uploaded []domainReport.ImageFile
	Deleted  []string
	Fail     bool
}

func (s *ImageStore) Upload(_ context.Context, file domainReport.ImageFile) (domainReport.StoredImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail {
		return domainReport.StoredImage{}, ErrFake
	}
	s.Uploaded = append(s.Uploaded, file)
	key := fmt.Sprintf("reports/%d-%s", len(s.Uploaded), file.Name)
	return domainReport.StoredImage{Key: key, URL: "https://cdn.test/" + key}, nil
}

func (s *ImageStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Deleted = append(s.Deleted, key)
	return nil
}

// PushSender records messages; tokens listed in FailTokens are rejected.
type PushSender struct {
	mu         sync.Mutex
	Sent       []notification.Message
	FailTokens map[string]bool
}

func (s *PushSender) Send(_ context.Context, msg notification.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailTokens[msg.Token] {
		return ErrFake
	}
	s.Sent = append(s.Sent, msg)
	return nil
}

func (s *PushSender) Tokens() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.Sent))
	for _, m := range s.Sent {
		out = append(out, m.Token)
	}
	return out
}

type AuditRecorder struct {
	mu     sync.Mutex
	Events []audit.Event
}

func (r *AuditRecorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
}

func (r *AuditRecorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, ev.Action)
	}
	return out
}
