package admission

import "sync"

// courseLocks hands out one mutex per course id so admissions and drops for
// the same course serialize without blocking unrelated courses. Entries are
// reference counted and removed once the last holder releases, keeping the
// map bounded by concurrent demand rather than course count.
type courseLocks struct {
	mu    sync.Mutex
	locks map[int64]*courseLock
}

type courseLock struct {
	mu   sync.Mutex
	refs int
}

func newCourseLocks() *courseLocks {
	return &courseLocks{locks: make(map[int64]*courseLock)}
}

// acquire blocks until the course lock is held and returns the release func.
func (c *courseLocks) acquire(courseID int64) func() {
	c.mu.Lock()
	lock, ok := c.locks[courseID]
	if !ok {
		lock = &courseLock{}
		c.locks[courseID] = lock
	}
	lock.refs++
	c.mu.Unlock()

	lock.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			lock.mu.Unlock()
			c.mu.Lock()
			lock.refs--
			if lock.refs == 0 {
				delete(c.locks, courseID)
			}
			c.mu.Unlock()
		})
	}
}
