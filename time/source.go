// Package time provides a replaceable source for the current time.
package time

import "time"

// ISO8601 is the layout for timestamps in UTC with millisecond precision.
const ISO8601 = "2006-01-02T15:04:05.000Z"

type Source interface {
	Now() time.Time
}

type StdSource struct{}

func (s *StdSource) Now() time.Time {
	return time.Now()
}

type TestSource struct {
	N time.Time
}

func (t *TestSource) Now() time.Time {
	return t.N
}

func (t *TestSource) Set(sec int64, nsec int64) {
	t.N = time.Unix(sec, nsec)
}

// Format returns t in UTC formatted as ISO8601.
func Format(t time.Time) string {
	return t.UTC().Format(ISO8601)
}
