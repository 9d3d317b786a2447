package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRelative_Buckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		delta time.Duration
		want  string
	}{
		{"zero", 0, "À l'instant"},
		{"thirty seconds", 30 * time.Second, "À l'instant"},
		{"just under a minute", 59*time.Second + 999*time.Millisecond, "À l'instant"},
		{"one minute", time.Minute, "Il y a 1 min"},
		{"two and a half minutes floors to 2", 150 * time.Second, "Il y a 2 min"},
		{"fifty nine minutes", 59 * time.Minute, "Il y a 59 min"},
		{"one hour", time.Hour, "Il y a 1 h"},
		{"twenty five hours floors to 1 day", 25 * time.Hour, "Il y a 1 j"},
		{"six days", 6 * 24 * time.Hour, "Il y a 6 j"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Relative(now.Add(-tc.delta), now)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRelative_FallsThroughToAbsoluteDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	ts := now.Add(-(7*24*time.Hour + time.Millisecond))
	require.Equal(t, "08/06/2025", Relative(ts, now))
}

func TestRelative_FutureTimestampClamps(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "À l'instant", Relative(now.Add(5*time.Minute), now))
}
