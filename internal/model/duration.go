package model

import (
	"fmt"
	"time"
)

// FormatDuration renders d as zero-padded MM:SS using whole seconds.
// Minutes are not wrapped into hours, so long recordings read e.g. "125:07".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	minutes := total / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
