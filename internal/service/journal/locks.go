package journal

import "sync"

// dayLocks hands out one mutex per day key. Entries are dropped once no
// goroutine holds or waits for them.
type dayLocks struct {
	mu    sync.Mutex
	locks map[string]*dayLock
}

type dayLock struct {
	mu   sync.Mutex
	refs int
}

func newDayLocks() *dayLocks {
	return &dayLocks{locks: make(map[string]*dayLock)}
}

// lock acquires the mutex of day and returns its release func.
func (d *dayLocks) lock(day string) func() {
	d.mu.Lock()
	l, ok := d.locks[day]
	if !ok {
		l = &dayLock{}
		d.locks[day] = l
	}
	l.refs++
	d.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		d.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(d.locks, day)
		}
		d.mu.Unlock()
	}
}

func (d *dayLocks) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.locks)
}
