package soap

import "time"

// Observer receives the outcome of every remote call. Implementations must be
// safe for concurrent use.
type Observer interface {
	ObserveCall(operation string, duration time.Duration, err error)
}
