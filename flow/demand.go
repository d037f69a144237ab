package flow

import "sync/atomic"

// demand is an overflow-safe counter of consumer-granted demand. Additions
// saturate at Unbounded; subtraction never goes below zero.
type demand struct {
	n atomic.Int64
}

// add adds n to the outstanding demand, saturating at Unbounded, and returns
// the value before the addition. Callers validate n > 0.
func (d *demand) add(n int64) int64 {
	for {
		cur := d.n.Load()
		if cur == Unbounded {
			return cur
		}
		next := cur + n
		if next < 0 { // overflowed past Unbounded
			next = Unbounded
		}
		if d.n.CompareAndSwap(cur, next) {
			return cur
		}
	}
}

// produced subtracts k delivered items from the outstanding demand and
// returns the new value. Unbounded demand stays unbounded; the counter is
// floored at zero.
func (d *demand) produced(k int64) int64 {
	for {
		cur := d.n.Load()
		if cur == Unbounded {
			return cur
		}
		next := cur - k
		if next < 0 {
			next = 0
		}
		if d.n.CompareAndSwap(cur, next) {
			return next
		}
	}
}

// outstanding returns the current demand.
func (d *demand) outstanding() int64 {
	return d.n.Load()
}
