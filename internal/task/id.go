package task

import (
	"fmt"
	"time"
)

// DefaultIDPrefix is the prefix used for generated task IDs.
const DefaultIDPrefix = "todo"

// GenerateID returns a timestamp-based task ID of the form
// <prefix>_<YYYYMMDD_HHMMSS> from the local clock. IDs are only
// distinguishable for calls more than one second apart; two adds within
// the same second produce the same ID.
func GenerateID(prefix string) string {
	return generateID(prefix, time.Now())
}

func generateID(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return fmt.Sprintf("%s_%s", prefix, now.Format("20060102_150405"))
}
