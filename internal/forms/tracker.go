// internal/forms/tracker.go
package forms

import (
	"errors"
	"sync"
)

var ErrSubmissionInFlight = errors.New("a submission for this form is already in progress")

// Tracker gates duplicate submissions of the same form. Each form is
// identified by a key such as "property:<id>" or "property:new".
type Tracker struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{inFlight: make(map[string]struct{})}
}

// Begin marks key as in flight. The returned func must be called when the
// submission finishes.
func (t *Tracker) Begin(key string) (func(), error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, busy := t.inFlight[key]; busy {
		return nil, ErrSubmissionInFlight
	}
	t.inFlight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.inFlight, key)
			t.mu.Unlock()
		})
	}, nil
}

func (t *Tracker) InFlight(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.inFlight[key]
	return busy
}
