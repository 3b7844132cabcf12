package game

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// ticksToDuration converts frame ticks at tps to wall time.
func ticksToDuration(ticks uint64, tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Duration(ticks) * time.Second / time.Duration(tps)
}
