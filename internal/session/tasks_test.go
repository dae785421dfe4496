package session

import (
	"testing"

	"github.com/google/uuid"
)

func TestTasksFireInDeadlineOrder(t *testing.T) {
	q := NewTaskQueue()

	var order []string
	q.Schedule("late", 3, func() { order = append(order, "late") })
	q.Schedule("early", 1, func() { order = append(order, "early") })
	q.Schedule("mid", 2, func() { order = append(order, "mid") })

	q.Advance(5)
	if len(order) != 3 {
		t.Fatalf("Expected 3 fired tasks, got %d", len(order))
	}
	if order[0] != "early" || order[1] != "mid" || order[2] != "late" {
		t.Errorf("Wrong firing order: %v", order)
	}
}

func TestTasksTieBreakByScheduleOrder(t *testing.T) {
	q := NewTaskQueue()

	var order []string
	q.Schedule("a", 1, func() { order = append(order, "a") })
	q.Schedule("b", 1, func() { order = append(order, "b") })
	q.Schedule("c", 1, func() { order = append(order, "c") })

	q.Advance(1)
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("Simultaneous deadlines should fire in scheduling order, got %v", order)
	}
}

func TestTaskNotDueStaysQueued(t *testing.T) {
	q := NewTaskQueue()
	fired := false
	q.Schedule("later", 10, func() { fired = true })

	q.Advance(9.99)
	if fired {
		t.Fatal("Task fired before its deadline")
	}
	if q.Len() != 1 {
		t.Fatalf("Expected 1 pending task, got %d", q.Len())
	}

	q.Advance(10)
	if !fired {
		t.Error("Task should fire exactly at its deadline")
	}
}

func TestRescheduledPeriodicTask(t *testing.T) {
	q := NewTaskQueue()

	fires := 0
	var routine func()
	routine = func() {
		fires++
		q.Schedule("periodic", 2, routine)
	}
	q.Schedule("periodic", 2, routine)

	for now := 1.0; now <= 10; now++ {
		q.Advance(now)
	}
	// Deadlines at 2, 4, 6, 8, 10.
	if fires != 5 {
		t.Errorf("Expected 5 fires over 10 seconds, got %d", fires)
	}
}

func TestZeroDelayFiresOnSameAdvance(t *testing.T) {
	q := NewTaskQueue()

	var order []string
	q.Schedule("first", 1, func() {
		order = append(order, "first")
		q.Schedule("chained", 0, func() { order = append(order, "chained") })
	})

	q.Advance(1)
	if len(order) != 2 || order[1] != "chained" {
		t.Errorf("Zero-delay chained task should fire on the same advance, got %v", order)
	}
}

func TestCancelScopeDropsOwnedTasks(t *testing.T) {
	q := NewTaskQueue()
	segA := uuid.New()
	segB := uuid.New()

	var fired []string
	q.ScheduleScoped("a", segA, 1, func() { fired = append(fired, "a") })
	q.ScheduleScoped("b", segB, 1, func() { fired = append(fired, "b") })
	q.Schedule("session", 1, func() { fired = append(fired, "session") })

	q.CancelScope([]uuid.UUID{segA})
	q.Advance(2)

	if len(fired) != 2 {
		t.Fatalf("Expected 2 fired tasks, got %v", fired)
	}
	for _, name := range fired {
		if name == "a" {
			t.Error("Cancelled task fired")
		}
	}
}

func TestNegativeDelayClampedToNow(t *testing.T) {
	q := NewTaskQueue()
	q.Advance(5)

	fired := false
	q.Schedule("immediate", -3, func() { fired = true })
	q.Advance(5)
	if !fired {
		t.Error("Negative delay should fire on the next advance")
	}
}

func TestResetDropsEverything(t *testing.T) {
	q := NewTaskQueue()
	q.Schedule("x", 1, func() { t.Error("Task fired after reset") })
	q.Reset()
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
	q.Advance(10)
}
