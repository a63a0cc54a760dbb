package format

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Backend timestamps are ISO-8601, with or without fractional seconds.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999Z",
	"2006-01-02 15:04:05",
}

func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Time renders a timestamp relative to now, e.g. "3 hours ago". Values that
// don't parse are returned unchanged.
func Time(s string) string {
	t, ok := ParseTimestamp(s)
	if !ok {
		return s
	}
	return humanize.Time(t)
}

func Count(n int) string {
	return humanize.Comma(int64(n))
}

func Bytes(n int64) string {
	return humanize.Bytes(uint64(n))
}
