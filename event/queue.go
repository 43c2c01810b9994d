package event

// Queue is the MPSC event queue between producer goroutines and the
// session loop.
// Thread-Safety:
//   - Push: multiple producers OK
//   - Next: single consumer (session loop), blocks until an event arrives
//
// Delivery is FIFO across all producers, each event exactly once. A full
// queue back-pressures producers instead of dropping or overwriting.
type Queue struct {
	ch chan GameEvent
}

func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan GameEvent, size)}
}

// Push enqueues one event. Blocks only when the queue is full.
func (q *Queue) Push(ev GameEvent) {
	q.ch <- ev
}

// Next returns the oldest pending event, blocking until one is available
func (q *Queue) Next() GameEvent {
	return <-q.ch
}

// Len returns the approximate pending event count
func (q *Queue) Len() int {
	return len(q.ch)
}
