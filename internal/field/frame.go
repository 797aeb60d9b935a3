package field

// Scheduler invokes fn once, as close as possible to the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a Scheduler drained by the host once per refresh. It is not
// safe for concurrent use; the host pumps it from its frame loop.
type FrameQueue struct {
	pending []func()
}

func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Pump runs every callback requested before the call. Callbacks requested
// while pumping wait for the next Pump. It returns how many callbacks ran.
func (q *FrameQueue) Pump() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len reports the number of callbacks waiting for the next Pump.
func (q *FrameQueue) Len() int { return len(q.pending) }
