package subscribers

import (
	"sync"

	"github.com/mitchelldurbincs/frontline/internal/game/events"
)

// Recorder keeps every event it receives in memory, in delivery order
type Recorder struct {
	id     string
	mu     sync.Mutex
	events []events.Event
	counts map[string]int
}

// NewRecorder creates an empty recorder
func NewRecorder(id string) *Recorder {
	return &Recorder{id: id, counts: make(map[string]int)}
}

func (r *Recorder) ID() string { return r.id }
func (r *Recorder) InterestedIn(string) bool { return true }

func (r *Recorder) HandleEvent(event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	r.counts[event.Type()]++
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

// OfType returns the recorded events with the given type
func (r *Recorder) OfType(eventType string) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []events.Event
	for _, e := range r.events {
		if e.Type() == eventType {
			matched = append(matched, e)
		}
	}
	return matched
}

// Counts returns how many events of each type were recorded
func (r *Recorder) Counts() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		counts[k] = v
	}
	return counts
}

// Reset drops everything recorded so far
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.counts = make(map[string]int)
}
