package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrayerStatusDisplayRoundTrip(t *testing.T) {
	for _, status := range validPrayerStatuses {
		display := status.Display()
		backend, err := display.Backend()
		require.NoError(t, err)
		assert.Equal(t, status, backend, "display %s should map back to %s", display, status)
	}
}

func TestUnknownPrayerStatusDisplaysAsPending(t *testing.T) {
	assert.Equal(t, PrayerDisplayPending, PrayerStatus("MYSTERY").Display())
}

func TestUnknownDisplayStatusHasNoBackendValue(t *testing.T) {
	_, err := PrayerDisplayStatus("WAITING").Backend()
	require.Error(t, err)
}

func TestParsePrayerDisplayStatus(t *testing.T) {
	parsed, err := ParsePrayerDisplayStatus("IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, PrayerDisplayInProgress, parsed)

	_, err = ParsePrayerDisplayStatus("in_progress")
	require.Error(t, err)
}
