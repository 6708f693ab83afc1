package clock

import "time"

// SystemClock returns the current wall-clock time in the local zone, which is
// what the claim form's visible date field should carry.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now() }
