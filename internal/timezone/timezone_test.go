package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBack(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
}

func TestParseLocal(t *testing.T) {
	got, err := ParseLocal("2026-04-01T08:30", "UTC")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC)))

	got, err = ParseLocal("2026-04-01T08:30:00-06:00", "UTC")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 4, 1, 14, 30, 0, 0, time.UTC)))

	_, err = ParseLocal("yesterday", "UTC")
	assert.Error(t, err)
}
