package cashdrop

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DENOMINATIONS - Fixed US currency catalog, descending by value
// =============================================================================

type Denomination string

const (
	Hundreds    Denomination = "hundreds"
	Fifties     Denomination = "fifties"
	Twenties    Denomination = "twenties"
	Tens        Denomination = "tens"
	Fives       Denomination = "fives"
	Twos        Denomination = "twos"
	Ones        Denomination = "ones"
	HalfDollars Denomination = "half_dollars"
	Quarters    Denomination = "quarters"
	Dimes       Denomination = "dimes"
	Nickels     Denomination = "nickels"
	Pennies     Denomination = "pennies"
)

// Denominations is the catalog in allocation order. Do not reorder.
var Denominations = []Denomination{
	Hundreds, Fifties, Twenties, Tens, Fives, Twos, Ones,
	HalfDollars, Quarters, Dimes, Nickels, Pennies,
}

type denominationInfo struct {
	cents int64
	label string
}

var catalog = map[Denomination]denominationInfo{
	Hundreds:    {10000, "Hundreds ($100)"},
	Fifties:     {5000, "Fifties ($50)"},
	Twenties:    {2000, "Twenties ($20)"},
	Tens:        {1000, "Tens ($10)"},
	Fives:       {500, "Fives ($5)"},
	Twos:        {200, "Twos ($2)"},
	Ones:        {100, "Ones ($1)"},
	HalfDollars: {50, "Half Dollars ($0.50)"},
	Quarters:    {25, "Quarters ($0.25)"},
	Dimes:       {10, "Dimes ($0.10)"},
	Nickels:     {5, "Nickels ($0.05)"},
	Pennies:     {1, "Pennies ($0.01)"},
}

// Valid reports whether d is part of the catalog.
func (d Denomination) Valid() bool {
	_, ok := catalog[d]
	return ok
}

// Cents returns the value of one unit in cents, 0 for unknown denominations.
func (d Denomination) Cents() int64 { return catalog[d].cents }

// Value returns the value of one unit in dollars.
func (d Denomination) Value() decimal.Decimal { return decimal.New(d.Cents(), -2) }

// Label is the human-readable name used by the terminal UI.
func (d Denomination) Label() string { return catalog[d].label }

// =============================================================================
// COUNTS - Units per denomination
// =============================================================================

// MaxCount bounds the units of one denomination in a single count. It keeps
// every total well inside int64 cents.
const MaxCount = 1_000_000

// Counts maps a denomination to a number of physical units. Missing keys
// are zero.
type Counts map[Denomination]int

// Validate rejects unknown denominations and counts outside [0, MaxCount].
func (c Counts) Validate() error {
	for d, n := range c {
		if !d.Valid() {
			return &ValidationError{Field: string(d), Message: "unknown denomination"}
		}
		if n < 0 {
			return &ValidationError{Field: string(d), Message: fmt.Sprintf("count must not be negative, got %d", n)}
		}
		if n > MaxCount {
			return &ValidationError{Field: string(d), Message: fmt.Sprintf("count must not exceed %d, got %d", MaxCount, n)}
		}
	}
	return nil
}

// TotalCents sums count × value over the whole catalog in integer cents.
func (c Counts) TotalCents() int64 {
	var total int64
	for _, d := range Denominations {
		total += int64(c[d]) * d.Cents()
	}
	return total
}

// Total is TotalCents expressed in dollars.
func (c Counts) Total() decimal.Decimal {
	return decimal.New(c.TotalCents(), -2)
}

// Add returns the per-denomination sum of c and other.
func (c Counts) Add(other Counts) Counts {
	out := c.Normalize()
	for _, d := range Denominations {
		out[d] += other[d]
	}
	return out
}

// Normalize returns a copy holding an explicit entry for every denomination.
func (c Counts) Normalize() Counts {
	out := make(Counts, len(Denominations))
	for _, d := range Denominations {
		out[d] = c[d]
	}
	return out
}

// Units is the total number of physical pieces.
func (c Counts) Units() int {
	n := 0
	for _, d := range Denominations {
		n += c[d]
	}
	return n
}

// ToCents converts a dollar amount to integer cents, rounding to the
// nearest cent.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// checkAmount rejects negative amounts and amounts finer than one cent.
// Every money input passes through it before it is stored or compared.
func checkAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return invalid(field, "must not be negative")
	}
	if !amount.Equal(amount.Truncate(2)) {
		return invalid(field, "must be a whole number of cents, got %s", amount.String())
	}
	return nil
}

// FromCents converts integer cents to a dollar amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
