package flow_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/flow"
	"github.com/kbukum/streamkit/flow/flowtest"
)

// Rebatch turns an arbitrary downstream demand pattern into fixed upstream
// batches: the first request is the batch size, every later one is the
// batch size minus a quarter.
func TestRebatch_RequestTrace(t *testing.T) {
	var requests []int64
	src := flowtest.OnRequest(flow.Range(1, 50), func(n int64) {
		requests = append(requests, n)
	})
	p, err := flow.Rebatch(src, 20)
	if err != nil {
		t.Fatalf("Rebatch: %v", err)
	}
	ts := flowtest.NewSubscriber[int](flow.Unbounded)
	p.Subscribe(ts)
	if err := ts.AwaitDone(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := len(ts.Items()); got != 50 {
		t.Fatalf("expected 50 items, got %d", got)
	}
	if !ts.Completed() {
		t.Error("expected completion")
	}
	want := []int64{20, 15, 15, 15}
	if len(requests) != len(want) {
		t.Fatalf("request trace %v, want %v", requests, want)
	}
	for i := range want {
		if requests[i] != want[i] {
			t.Fatalf("request trace %v, want %v", requests, want)
		}
	}
}

func TestRebatch_HonorsDownstreamDemand(t *testing.T) {
	var requests []int64
	src := flowtest.OnRequest(flow.Range(1, 50), func(n int64) {
		requests = append(requests, n)
	})
	p, err := flow.Rebatch(src, 20)
	if err != nil {
		t.Fatalf("Rebatch: %v", err)
	}
	ts := flowtest.NewSubscriber[int](0)
	p.Subscribe(ts)

	ts.Request(5)
	if got := len(ts.Items()); got != 5 {
		t.Fatalf("expected 5 items after request(5), got %d", got)
	}
	if len(requests) != 1 || requests[0] != 20 {
		t.Fatalf("expected only the initial batch request, got %v", requests)
	}

	ts.Request(45)
	if err := ts.AwaitDone(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := len(ts.Items()); got != 50 {
		t.Fatalf("expected 50 items, got %d", got)
	}
}

// Rebatching preserves the failure policy of a delayed-error boundary:
// everything already batched is delivered before the failure.
func TestRebatch_DelaysFailure(t *testing.T) {
	boom := stderrors.New("boom")
	src := &firehose{n: 3, err: boom}
	p, err := flow.Rebatch[int](src, 8)
	if err != nil {
		t.Fatalf("Rebatch: %v", err)
	}
	ts := flowtest.NewSubscriber[int](flow.Unbounded)
	p.Subscribe(ts)
	if err := ts.AwaitDone(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := len(ts.Items()); got != 3 {
		t.Fatalf("expected 3 items before the failure, got %d", got)
	}
	if !stderrors.Is(ts.Err(), boom) {
		t.Errorf("expected cause to be preserved, got %v", ts.Err())
	}
}

func TestRebatch_InvalidBatchSize(t *testing.T) {
	_, err := flow.Rebatch(flow.Range(1, 10), -99)
	if err == nil {
		t.Fatal("expected construction error")
	}
	if !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", errors.CodeOf(err))
	}
	var se *errors.StreamError
	if !stderrors.As(err, &se) {
		t.Fatalf("expected *StreamError, got %T", err)
	}
	if se.Message != "bufferSize > 0 required but it was -99" {
		t.Errorf("unexpected message %q", se.Message)
	}
}
