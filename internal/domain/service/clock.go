package service

import "time"

// Clock supplies the current time. Age derivation and the date arithmetic of
// the age filters go through it so tests can pin the calendar.
type Clock interface {
	Now() time.Time
}
