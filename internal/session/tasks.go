package session

import (
	"github.com/google/uuid"
)

// Task is one scheduled unit of cooperative timed work. Tasks fire on the
// simulation tick whose elapsed time passes their deadline; there is no
// preemption and nothing runs between ticks.
type Task struct {
	name   string
	scope  uuid.UUID // Zero scope = session lifetime
	fireAt float64   // Elapsed-seconds deadline
	seq    uint64
	fn     func()
	done   bool
}

// TaskQueue is the scheduled task queue, keyed by next-fire time and
// advanced once per tick. It replaces engine coroutines for periodic work
// such as the random item arrival routine.
type TaskQueue struct {
	tasks []*Task
	now   float64
	seq   uint64
}

// NewTaskQueue creates an empty queue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Reset drops all pending tasks and rewinds the clock.
func (q *TaskQueue) Reset() {
	q.tasks = nil
	q.now = 0
	q.seq = 0
}

// Schedule enqueues fn to fire delay seconds from now, session-scoped.
func (q *TaskQueue) Schedule(name string, delay float64, fn func()) {
	q.ScheduleScoped(name, uuid.UUID{}, delay, fn)
}

// ScheduleScoped enqueues fn scoped to an owner; cancelling the scope
// cancels the task. Insertion keeps the queue sorted by deadline, ties
// broken by scheduling order so firing stays deterministic.
func (q *TaskQueue) ScheduleScoped(name string, scope uuid.UUID, delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	t := &Task{
		name:   name,
		scope:  scope,
		fireAt: q.now + delay,
		seq:    q.seq,
		fn:     fn,
	}
	q.seq++

	idx := len(q.tasks)
	for i, other := range q.tasks {
		if t.fireAt < other.fireAt || (t.fireAt == other.fireAt && t.seq < other.seq) {
			idx = i
			break
		}
	}
	q.tasks = append(q.tasks, nil)
	copy(q.tasks[idx+1:], q.tasks[idx:])
	q.tasks[idx] = t
}

// Advance moves the queue clock to now and fires every due task in
// deadline order. Fired callbacks may schedule new tasks; tasks scheduled
// with zero delay during advancement fire on this same call.
func (q *TaskQueue) Advance(now float64) {
	if now > q.now {
		q.now = now
	}
	for len(q.tasks) > 0 && q.tasks[0].fireAt <= q.now {
		t := q.tasks[0]
		q.tasks = q.tasks[1:]
		if t.done {
			continue
		}
		t.done = true
		t.fn()
	}
}

// CancelScope cancels all pending tasks owned by any of the given scopes.
// Destroying a segment cancels in-flight work scoped to it.
func (q *TaskQueue) CancelScope(scopes []uuid.UUID) {
	if len(scopes) == 0 {
		return
	}
	owned := make(map[uuid.UUID]bool, len(scopes))
	for _, s := range scopes {
		owned[s] = true
	}
	kept := q.tasks[:0]
	for _, t := range q.tasks {
		if owned[t.scope] {
			continue
		}
		kept = append(kept, t)
	}
	q.tasks = kept
}

// Len returns the number of pending tasks.
func (q *TaskQueue) Len() int {
	return len(q.tasks)
}
