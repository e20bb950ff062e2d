package shop

import "time"

// Clock stamps day ticks. The aging rule itself never reads it.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
