package repository

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Timestamps are stored as fixed-width UTC strings so BETWEEN filters on them
// compare correctly as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err == nil {
		return t
	}
	// Tolerate items written before the fixed-width layout.
	t, err = time.Parse(time.RFC3339Nano, s)
	if err != nil {
		log.Printf("[repository][dynamodb] unparseable timestamp %q, treating as zero time", s)
	}
	return t
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
