package ports

import "time"

// Clock supplies the current time to the command handlers.
type Clock interface {
	Now() time.Time
}
