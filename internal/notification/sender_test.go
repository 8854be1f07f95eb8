package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type flakySender struct {
	sent []Message
}

func (s *flakySender) Send(_ context.Context, msg Message) error {
	if msg.Token == "broken" {
		return errors.New("unregistered device")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func TestNotifySwallowsFailures(t *testing.T) {
	s := &flakySender{}

	n := Notify(context.Background(), s, zap.NewNop(),
		Message{Token: "a", Title: "t"},
		Message{Token: "broken", Title: "t"},
		Message{Token: "", Title: "skipped"},
		Message{Token: "b", Title: "t"},
	)

	assert.Equal(t, 2, n)
	assert.Len(t, s.sent, 2)
	assert.Equal(t, "a", s.sent[0].Token)
	assert.Equal(t, "b", s.sent[1].Token)
}
