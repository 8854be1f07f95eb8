package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/testutil"
)

func TestDispatcherPersistsEventsOnClose(t *testing.T) {
	db := testutil.NewDB(t)
	d := audit.NewDispatcher(audit.New(db), zap.NewNop())

	roomID := uint(7)
	d.Dispatch(audit.Event{
		Actor:    "cafa@hotel.mx",
		Action:   "room_created",
		Entity:   "room",
		EntityID: &roomID,
		Metadata: map[string]any{"number": "101"},
	})
	d.Dispatch(audit.Event{Actor: "cafa@hotel.mx", Action: "room_deleted", Entity: "room"})
	d.Close()
	d.Close()

	var logs []models.AuditLog
	require.NoError(t, db.Order("id").Find(&logs).Error)
	require.Len(t, logs, 2)

	assert.Equal(t, "room_created", logs[0].Action)
	require.NotNil(t, logs[0].EntityID)
	assert.Equal(t, uint(7), *logs[0].EntityID)
	assert.JSONEq(t, `{"number":"101"}`, logs[0].Metadata)

	assert.Equal(t, "room_deleted", logs[1].Action)
	assert.Empty(t, logs[1].Metadata)
}

func TestDiscardIgnoresEvents(t *testing.T) {
	assert.NotPanics(t, func() {
		audit.Discard.Dispatch(audit.Event{Action: "anything"})
	})
}
