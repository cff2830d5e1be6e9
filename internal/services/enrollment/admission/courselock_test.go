package admission

import (
	"sync"
	"testing"
)

func TestCourseLocksSerializeSameCourse(t *testing.T) {
	locks := newCourseLocks()

	const workers = 16
	var inSection int
	var maxInSection int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.acquire(7)
			mu.Lock()
			inSection++
			if inSection > maxInSection {
				maxInSection = inSection
			}
			mu.Unlock()

			mu.Lock()
			inSection--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	if maxInSection != 1 {
		t.Fatalf("max concurrent holders = %d, want 1", maxInSection)
	}
}

func TestCourseLocksReleaseEntries(t *testing.T) {
	locks := newCourseLocks()

	release := locks.acquire(7)
	release()
	release() // release is idempotent

	locks.mu.Lock()
	remaining := len(locks.locks)
	locks.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("lock map holds %d entries after release, want 0", remaining)
	}
}

func TestCourseLocksIndependentCourses(t *testing.T) {
	locks := newCourseLocks()

	releaseA := locks.acquire(7)
	done := make(chan struct{})
	go func() {
		releaseB := locks.acquire(8)
		releaseB()
		close(done)
	}()
	<-done // a held lock on course 7 must not block course 8
	releaseA()
}
