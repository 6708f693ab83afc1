package clock

import "time"

// Clock provides time to the application; the workflow uses it to stamp the
// draft's date field. An interface keeps date-dependent behavior testable.
type Clock interface {
	Now() time.Time
}
