package cashdrop

import "github.com/shopspring/decimal"

// Allocation is the suggested split of a drawer into the cash to drop and
// the cash that stays behind.
type Allocation struct {
	Breakdown Counts
	Remainder Counts

	// Allocated is the value of Breakdown. It can be less than the target
	// when the drawer runs out of small denominations.
	Allocated decimal.Decimal
	Shortfall decimal.Decimal
}

// Allocate computes a greedy largest-denomination-first breakdown of target
// out of drawer. It never takes more units of a denomination than the
// drawer holds and never exceeds target; it does not backtrack, so a drawer
// short on small change yields a partial breakdown rather than an error.
//
// ok is false when target is zero or negative: there is nothing to drop.
func Allocate(drawer Counts, target decimal.Decimal) (alloc Allocation, ok bool) {
	remaining := ToCents(target)
	if remaining <= 0 {
		return Allocation{}, false
	}
	want := remaining

	alloc.Breakdown = make(Counts, len(Denominations))
	alloc.Remainder = make(Counts, len(Denominations))
	for _, d := range Denominations {
		v := d.Cents()
		available := int64(drawer[d])
		if available < 0 {
			available = 0
		}
		var count int64
		if remaining >= v {
			count = remaining / v
			if count > available {
				count = available
			}
			remaining -= count * v
		}
		alloc.Breakdown[d] = int(count)
		alloc.Remainder[d] = drawer[d] - int(count)
	}

	alloc.Allocated = FromCents(want - remaining)
	alloc.Shortfall = FromCents(remaining)
	return alloc, true
}
