package mathset

import "sync/atomic"

// idCounter is the process-wide identity registry. It is the only state
// shared between container instances, so taking an id is atomic; all other
// per-instance state is left to the caller to synchronize.
var idCounter atomic.Uint64

// nextID returns the pre-increment counter value, so the first container
// built in a process gets id 0. Ids are diagnostic aids only and never
// participate in equality, hashing or ordering.
func nextID() uint64 {
	return idCounter.Add(1) - 1
}
