package flow

import "testing"

func TestSPSCQueue_ExactCapacity(t *testing.T) {
	q := newSpscQueue[int](5)
	for i := 0; i < 5; i++ {
		if !q.offer(i) {
			t.Fatalf("offer %d failed below capacity", i)
		}
	}
	if q.offer(5) {
		t.Error("offer succeeded at capacity 5")
	}
	if got := q.size(); got != 5 {
		t.Errorf("expected size 5, got %d", got)
	}
}

func TestSPSCQueue_FIFO(t *testing.T) {
	q := newSpscQueue[string](4)
	for _, s := range []string{"a", "b", "c"} {
		q.offer(s)
	}
	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.poll()
		if !ok || got != want {
			t.Fatalf("poll = %q, %v; want %q", got, ok, want)
		}
	}
	if _, ok := q.poll(); ok {
		t.Error("poll succeeded on empty queue")
	}
	if !q.isEmpty() {
		t.Error("queue should report empty after draining")
	}
}

func TestSPSCQueue_Wraparound(t *testing.T) {
	q := newSpscQueue[int](3)
	next := 0
	for cycle := 0; cycle < 10; cycle++ {
		for i := 0; i < 3; i++ {
			if !q.offer(next + i) {
				t.Fatalf("offer failed in cycle %d", cycle)
			}
		}
		for i := 0; i < 3; i++ {
			got, ok := q.poll()
			if !ok || got != next+i {
				t.Fatalf("cycle %d: poll = %d, %v; want %d", cycle, got, ok, next+i)
			}
		}
		next += 3
	}
}

func TestSPSCQueue_Clear(t *testing.T) {
	q := newSpscQueue[int](8)
	for i := 0; i < 6; i++ {
		q.offer(i)
	}
	q.clear()
	if !q.isEmpty() {
		t.Error("queue not empty after clear")
	}
	if !q.offer(42) {
		t.Error("offer failed after clear")
	}
	if got, ok := q.poll(); !ok || got != 42 {
		t.Errorf("poll = %d, %v; want 42", got, ok)
	}
}
