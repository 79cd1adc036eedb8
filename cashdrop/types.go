/*
Package cashdrop is the bookkeeping core for register cash drops.

PURPOSE:
  Employees count a register drawer and drop the cash above the starting
  float. Administrators recount and reconcile each drop, then group
  reconciled drops into a bank deposit. This package holds the rules for
  all of that; persistence and transport live elsewhere.

KEY CONCEPTS IN THIS FILE (types.go):
  - Drawer:        A counted snapshot of one register drawer
  - CashDrop:      The cash removed from that drawer, with its breakdown
  - BankDropBatch: A deposit made of many reconciled drops
  - Actor:         The caller, passed explicitly to every operation

DESIGN PRINCIPLES:
  1. Money is decimal.Decimal, arithmetic done in cents
  2. Status is one explicit enum; transitions are methods on CashDrop
  3. A drop's breakdown is computed once at save time and never recomputed

SEE ALSO:
  - allocator.go: Greedy breakdown
  - lifecycle.go: Draft/submit/reconcile/ignore orchestration
  - bankdrop.go:  Batching and aggregation
*/
package cashdrop

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReconcileTolerance is the largest |admin count - drop amount| treated as
// an exact match.
var ReconcileTolerance = decimal.New(1, -2)

// Actor identifies who is calling. There is no session state: every
// operation receives the actor explicitly.
type Actor struct {
	UserID string
	Admin  bool
}

func (a Actor) requireUser() error {
	if strings.TrimSpace(a.UserID) == "" {
		return invalid("user_id", "is required")
	}
	return nil
}

func (a Actor) requireAdmin(action string) error {
	if err := a.requireUser(); err != nil {
		return err
	}
	if !a.Admin {
		return &ForbiddenError{Action: action}
	}
	return nil
}

// =============================================================================
// DRAWER
// =============================================================================

type Drawer struct {
	ID           string
	UserID       string
	Workstation  string
	Shift        string
	Date         Date
	StartingCash decimal.Decimal
	TotalCash    decimal.Decimal
	Counts       Counts
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// =============================================================================
// CASH DROP
// =============================================================================

type CashDrop struct {
	ID          string
	DrawerID    string
	UserID      string
	Workstation string
	Shift       string
	Date        Date

	DropAmount    decimal.Decimal // total cash - starting cash
	ReceiptAmount decimal.Decimal // cash the POS receipt says was taken
	Variance      decimal.Decimal // drop amount - receipt amount
	Breakdown     Counts
	Notes         string

	Status Status

	AdminCountAmount    decimal.NullDecimal
	ReconcileDelta      decimal.NullDecimal
	ReconciliationNotes string
	ReconciledBy        string
	ReconciledAt        *time.Time

	IgnoreReason        string
	BankDropBatchNumber string

	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Slot is the workstation/shift/date key a submitted drop occupies.
type Slot struct {
	Workstation string
	Shift       string
	Date        Date
}

func (d *CashDrop) Slot() Slot {
	return Slot{Workstation: d.Workstation, Shift: d.Shift, Date: d.Date}
}

// Submit moves a draft (or a fresh record) to submitted.
func (d *CashDrop) Submit(at time.Time) error {
	// reconciled -> submitted is Unreconcile, not a resubmission
	if d.Status != "" && d.Status != StatusDrafted {
		return transitionError(d.ID, d.Status, StatusSubmitted)
	}
	if !d.DropAmount.IsPositive() {
		return invalid("drop_amount", "must be positive to submit, got %s", d.DropAmount.StringFixed(2))
	}
	d.Status = StatusSubmitted
	d.SubmittedAt = &at
	return nil
}

// ReconcileMode selects which reconciliation path the caller intends.
type ReconcileMode string

const (
	ReconcileAuto  ReconcileMode = ""      // pick by delta
	ReconcileExact ReconcileMode = "exact" // counted == dropped, within tolerance
	ReconcileDelta ReconcileMode = "delta" // counted != dropped, notes required
)

type ReconcileInput struct {
	AdminCountAmount decimal.Decimal
	Notes            string
	Mode             ReconcileMode
}

// Reconcile records the administrator's recount. Within tolerance it is an
// exact reconcile and notes are optional; beyond tolerance notes are
// required. The signed delta is stored as computed.
func (d *CashDrop) Reconcile(in ReconcileInput, by string, at time.Time) error {
	if !d.Status.CanTransition(StatusReconciled) {
		return transitionError(d.ID, d.Status, StatusReconciled)
	}
	if err := checkAmount("admin_count_amount", in.AdminCountAmount); err != nil {
		return err
	}

	delta := in.AdminCountAmount.Sub(d.DropAmount)
	exact := delta.Abs().LessThanOrEqual(ReconcileTolerance)
	notes := strings.TrimSpace(in.Notes)

	switch in.Mode {
	case ReconcileExact:
		if !exact {
			return invalid("admin_count_amount", "counted %s does not match drop amount %s; reconcile with a delta and notes",
				in.AdminCountAmount.StringFixed(2), d.DropAmount.StringFixed(2))
		}
	case ReconcileDelta:
		if exact {
			return invalid("admin_count_amount", "counted amount matches the drop amount; use an exact reconcile")
		}
	case ReconcileAuto:
	default:
		return invalid("mode", "unknown reconcile mode %q", in.Mode)
	}
	if !exact && notes == "" {
		return invalid("reconciliation_notes", "required when counted amount differs by %s", delta.StringFixed(2))
	}

	d.Status = StatusReconciled
	d.AdminCountAmount = decimal.NewNullDecimal(in.AdminCountAmount)
	d.ReconcileDelta = decimal.NewNullDecimal(delta)
	d.ReconciliationNotes = notes
	d.ReconciledBy = by
	d.ReconciledAt = &at
	return nil
}

// Unreconcile returns a reconciled drop to submitted so it can be recounted.
func (d *CashDrop) Unreconcile() error {
	if d.Status != StatusReconciled {
		return transitionError(d.ID, d.Status, StatusSubmitted)
	}
	d.Status = StatusSubmitted
	d.AdminCountAmount = decimal.NullDecimal{}
	d.ReconcileDelta = decimal.NullDecimal{}
	d.ReconciliationNotes = ""
	d.ReconciledBy = ""
	d.ReconciledAt = nil
	return nil
}

// Ignore sets a drafted or submitted drop aside with a reason.
func (d *CashDrop) Ignore(reason string) error {
	if !d.Status.CanTransition(StatusIgnored) {
		return transitionError(d.ID, d.Status, StatusIgnored)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return invalid("reason", "is required to ignore a cash drop")
	}
	d.Status = StatusIgnored
	d.IgnoreReason = reason
	return nil
}

// MarkBankDropped stamps a reconciled drop with its deposit batch.
func (d *CashDrop) MarkBankDropped(batchNumber string) error {
	if d.Status != StatusReconciled {
		return transitionError(d.ID, d.Status, StatusBankDropped)
	}
	d.Status = StatusBankDropped
	d.BankDropBatchNumber = batchNumber
	return nil
}

// =============================================================================
// BANK DROP BATCH
// =============================================================================

// BankDropBatch is immutable once created.
type BankDropBatch struct {
	BatchNumber string
	DropIDs     []string
	TotalAmount decimal.Decimal
	Totals      Counts
	CreatedBy   string
	CreatedAt   time.Time
}

// =============================================================================
// SETTINGS - Administratively maintained parameters
// =============================================================================

type Settings struct {
	MaxCashDropsPerDay int
	StartingAmount     decimal.Decimal
	Shifts             []string
	Workstations       []string
	UpdatedAt          time.Time
}

const DefaultMaxCashDropsPerDay = 10

// DefaultStartingAmount is the standard register float.
var DefaultStartingAmount = decimal.New(20000, -2)

func DefaultSettings() Settings {
	return Settings{
		MaxCashDropsPerDay: DefaultMaxCashDropsPerDay,
		StartingAmount:     DefaultStartingAmount,
	}
}

func (s Settings) Validate() error {
	if s.MaxCashDropsPerDay < 1 {
		return invalid("max_cash_drops_per_day", "must be at least 1")
	}
	if err := checkAmount("starting_amount", s.StartingAmount); err != nil {
		return err
	}
	return nil
}
