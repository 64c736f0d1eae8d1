package ripple

// FrameQueue is a Scheduler driven by the host game loop: each Tick runs the
// callbacks requested before it. Callbacks requested during a Tick wait for
// the next one.
type FrameQueue struct {
	next    FrameID
	pending map[FrameID]func()
	order   []FrameID
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func())}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

// CancelFrame implements Scheduler. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Len returns the number of pending callbacks.
func (q *FrameQueue) Len() int { return len(q.pending) }

// Tick runs every callback pending at the start of the call.
func (q *FrameQueue) Tick() {
	order := q.order
	q.order = nil
	for _, id := range order {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn()
	}
}
