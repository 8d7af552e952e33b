package impl

import "time"

// windowClock recovers the wall-clock time of an appointment window bound
// from its epoch milliseconds, in the same UTC frame the window was built in.
func windowClock(millis int64) (hour, minute int) {
	t := time.UnixMilli(millis).UTC()

	return t.Hour(), t.Minute()
}
