package scheduling

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidInterval is returned when a candidate shift is not strictly
// chronological.
var ErrInvalidInterval = errors.New("end time must be after start time")

// ValidateInterval rejects any candidate shift whose end does not strictly
// exceed its start. Zero-length shifts are invalid.
func ValidateInterval(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidInterval
	}
	return nil
}

// Overlaps reports whether [s, e) and [start, end) share at least one
// instant. Touching endpoints (e == start or end == s) do not overlap.
func Overlaps(s, e, start, end time.Time) bool {
	return s.Before(end) && e.After(start)
}

// workerLocks serializes shift creation per worker. The conflict check and
// the insert are a read-then-write sequence with no storage-level isolation,
// so concurrent creations for the same worker must not interleave between
// check and write.
var workerLocks sync.Map // worker id -> *sync.Mutex

// LockWorker acquires the creation lock for a worker and returns the unlock
// function.
func LockWorker(workerID uint) func() {
	v, _ := workerLocks.LoadOrStore(workerID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
