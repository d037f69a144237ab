package flow

import "testing"

func TestDemand_AddAccumulates(t *testing.T) {
	var d demand
	if prev := d.add(5); prev != 0 {
		t.Errorf("expected previous 0, got %d", prev)
	}
	if prev := d.add(7); prev != 5 {
		t.Errorf("expected previous 5, got %d", prev)
	}
	if got := d.outstanding(); got != 12 {
		t.Errorf("expected outstanding 12, got %d", got)
	}
}

func TestDemand_AddSaturates(t *testing.T) {
	var d demand
	d.add(Unbounded - 1)
	d.add(Unbounded - 1)
	if got := d.outstanding(); got != Unbounded {
		t.Errorf("expected saturation at Unbounded, got %d", got)
	}
	// Further additions stay pinned.
	d.add(1)
	if got := d.outstanding(); got != Unbounded {
		t.Errorf("expected Unbounded to be sticky, got %d", got)
	}
}

func TestDemand_ProducedFloorsAtZero(t *testing.T) {
	var d demand
	d.add(3)
	if got := d.produced(1); got != 2 {
		t.Errorf("expected 2 remaining, got %d", got)
	}
	if got := d.produced(10); got != 0 {
		t.Errorf("expected floor at 0, got %d", got)
	}
	if got := d.outstanding(); got != 0 {
		t.Errorf("expected outstanding 0, got %d", got)
	}
}

func TestDemand_ProducedKeepsUnbounded(t *testing.T) {
	var d demand
	d.add(Unbounded)
	if got := d.produced(1_000_000); got != Unbounded {
		t.Errorf("expected Unbounded to survive production, got %d", got)
	}
}

func TestDemand_DeliveredNeverExceedsGranted(t *testing.T) {
	var d demand
	d.add(10)
	var delivered int
	for d.outstanding() > 0 {
		d.produced(1)
		delivered++
	}
	if delivered != 10 {
		t.Errorf("expected exactly 10 deliveries, got %d", delivered)
	}
}
