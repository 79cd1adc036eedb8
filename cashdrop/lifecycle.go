package cashdrop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// LIFECYCLE - Draft, submit, reconcile, ignore
// =============================================================================

// Lifecycle applies the cash-drop rules against a transactional store.
// Every check that guards a write runs inside the same store transaction
// as the write.
type Lifecycle struct {
	Store    TxStore
	Calendar *Calendar
	Logger   logrus.FieldLogger

	// Defaults are used until an administrator saves settings.
	Defaults Settings

	NewID func() string
}

func NewLifecycle(store TxStore, calendar *Calendar, logger logrus.FieldLogger) *Lifecycle {
	calendar, logger = withDefaults(calendar, logger)
	return &Lifecycle{
		Store:    store,
		Calendar: calendar,
		Logger:   logger,
		Defaults: DefaultSettings(),
		NewID:    uuid.NewString,
	}
}

func withDefaults(calendar *Calendar, logger logrus.FieldLogger) (*Calendar, logrus.FieldLogger) {
	if calendar == nil {
		calendar = NewCalendar(time.UTC)
	}
	if logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		logger = l
	}
	return calendar, logger
}

// DropInput is what the register terminal sends when saving or submitting.
type DropInput struct {
	ID          string // draft being edited; empty for a new drop
	Workstation string
	Shift       string
	Date        Date

	// StartingCash defaults to the configured starting amount when not set.
	StartingCash  decimal.NullDecimal
	Counts        Counts
	ReceiptAmount decimal.Decimal
	Notes         string
}

func (in DropInput) validate() error {
	if strings.TrimSpace(in.Workstation) == "" {
		return invalid("workstation", "is required")
	}
	if strings.TrimSpace(in.Shift) == "" {
		return invalid("shift", "is required")
	}
	return in.validateAmounts()
}

// validateAmounts checks the money and count fields shared by preview,
// draft and submit.
func (in DropInput) validateAmounts() error {
	if in.StartingCash.Valid {
		if err := checkAmount("starting_cash", in.StartingCash.Decimal); err != nil {
			return err
		}
	}
	if err := checkAmount("receipt_amount", in.ReceiptAmount); err != nil {
		return err
	}
	return in.Counts.Validate()
}

// Computation is the derived arithmetic for a drawer count.
type Computation struct {
	StartingCash decimal.Decimal
	TotalCash    decimal.Decimal
	DropAmount   decimal.Decimal
	Variance     decimal.Decimal

	// Breakdown and Remainder are empty when DropAmount is not positive.
	Breakdown Counts
	Remainder Counts
	Shortfall decimal.Decimal
}

// Compute derives total cash, drop amount, variance and the suggested
// breakdown from a drawer count.
func Compute(counts Counts, startingCash, receipt decimal.Decimal) Computation {
	c := Computation{
		StartingCash: startingCash,
		TotalCash:    counts.Total(),
	}
	c.DropAmount = c.TotalCash.Sub(startingCash)
	c.Variance = c.DropAmount.Sub(receipt)
	if alloc, ok := Allocate(counts, c.DropAmount); ok {
		c.Breakdown = alloc.Breakdown
		c.Remainder = alloc.Remainder
		c.Shortfall = alloc.Shortfall
	} else {
		c.Breakdown = Counts{}.Normalize()
		c.Remainder = counts.Normalize()
		c.Shortfall = decimal.Zero
	}
	return c
}

// Preview computes what a drop would look like without storing anything.
func (l *Lifecycle) Preview(ctx context.Context, in DropInput) (Computation, error) {
	if err := in.validateAmounts(); err != nil {
		return Computation{}, err
	}
	settings, err := l.settings(ctx, l.Store)
	if err != nil {
		return Computation{}, err
	}
	return Compute(in.Counts, l.startingCash(in, settings), in.ReceiptAmount), nil
}

// SaveDraft creates or updates the actor's draft. Drafts are exempt from
// the daily cap and the submitted-slot guard, but a user may hold only one
// draft per workstation, shift and date.
func (l *Lifecycle) SaveDraft(ctx context.Context, actor Actor, in DropInput) (*CashDrop, error) {
	if err := actor.requireUser(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := l.Calendar.CheckDropDate(in.Date); err != nil {
		return nil, err
	}

	var saved CashDrop
	err := l.Store.WithTx(ctx, func(s Store) error {
		settings, err := l.settings(ctx, s)
		if err != nil {
			return err
		}
		existing, err := l.editableDraft(ctx, s, actor, in.ID)
		if err != nil {
			return err
		}
		if err := l.checkDraftSlot(ctx, s, actor, in, existing); err != nil {
			return err
		}

		drawer, drop := l.build(actor, in, settings, existing)
		drawer.Status = StatusDrafted
		drop.Status = StatusDrafted

		if err := l.write(ctx, s, drawer, drop); err != nil {
			return err
		}
		saved = drop
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.Logger.WithFields(logrus.Fields{
		"drop_id":     saved.ID,
		"workstation": saved.Workstation,
		"shift":       saved.Shift,
		"date":        saved.Date.String(),
		"actor":       actor.UserID,
	}).Info("cash drop draft saved")
	return &saved, nil
}

// Submit finalizes a drop, either fresh or promoted from the actor's draft.
// The drawer is written only after the duplicate guard and the daily cap
// have both passed.
func (l *Lifecycle) Submit(ctx context.Context, actor Actor, in DropInput) (*CashDrop, error) {
	if err := actor.requireUser(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := l.Calendar.CheckDropDate(in.Date); err != nil {
		return nil, err
	}

	var saved CashDrop
	err := l.Store.WithTx(ctx, func(s Store) error {
		settings, err := l.settings(ctx, s)
		if err != nil {
			return err
		}
		existing, err := l.editableDraft(ctx, s, actor, in.ID)
		if err != nil {
			return err
		}
		// a fresh submit must not strand the actor's draft for the same slot
		if existing == nil {
			if err := l.checkDraftSlot(ctx, s, actor, in, nil); err != nil {
				return err
			}
		}

		drawer, drop := l.build(actor, in, settings, existing)
		if err := drop.Submit(l.now()); err != nil {
			return err
		}
		if err := l.checkSlot(ctx, s, drop.Slot(), drop.ID); err != nil {
			return err
		}
		if err := l.checkDailyCap(ctx, s, drop.Date, settings.MaxCashDropsPerDay); err != nil {
			return err
		}

		drawer.Status = StatusSubmitted
		if err := l.write(ctx, s, drawer, drop); err != nil {
			return err
		}
		saved = drop
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.Logger.WithFields(logrus.Fields{
		"drop_id":     saved.ID,
		"drop_amount": saved.DropAmount.StringFixed(2),
		"variance":    saved.Variance.StringFixed(2),
		"actor":       actor.UserID,
	}).Info("cash drop submitted")
	return &saved, nil
}

// ValidateSubmission runs the submit-time checks without writing. excludeID
// names a draft being edited so it does not collide with itself.
func (l *Lifecycle) ValidateSubmission(ctx context.Context, slot Slot, excludeID string) error {
	if strings.TrimSpace(slot.Workstation) == "" {
		return invalid("workstation", "is required")
	}
	if strings.TrimSpace(slot.Shift) == "" {
		return invalid("shift", "is required")
	}
	if err := l.Calendar.CheckDropDate(slot.Date); err != nil {
		return err
	}
	settings, err := l.settings(ctx, l.Store)
	if err != nil {
		return err
	}
	if err := l.checkSlot(ctx, l.Store, slot, excludeID); err != nil {
		return err
	}
	return l.checkDailyCap(ctx, l.Store, slot.Date, settings.MaxCashDropsPerDay)
}

// DeleteDraft removes a draft and its draft drawer. Submitted and later
// records are never deleted.
func (l *Lifecycle) DeleteDraft(ctx context.Context, actor Actor, id string) error {
	if err := actor.requireUser(); err != nil {
		return err
	}
	err := l.Store.WithTx(ctx, func(s Store) error {
		drop, err := l.editableDraft(ctx, s, actor, id)
		if err != nil {
			return err
		}
		if err := s.DeleteDrop(ctx, drop.ID); err != nil {
			return fmt.Errorf("delete cash drop: %w", err)
		}
		if drop.DrawerID == "" {
			return nil
		}
		drawer, err := s.GetDrawer(ctx, drop.DrawerID)
		if errors.Is(err, ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load drawer: %w", err)
		}
		if drawer.Status != StatusDrafted {
			return nil
		}
		if err := s.DeleteDrawer(ctx, drawer.ID); err != nil {
			return fmt.Errorf("delete drawer: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	l.Logger.WithFields(logrus.Fields{"drop_id": id, "actor": actor.UserID}).Info("cash drop draft deleted")
	return nil
}

// Ignore sets a drop and its drawer aside together.
func (l *Lifecycle) Ignore(ctx context.Context, actor Actor, id, reason string) (*CashDrop, error) {
	if err := actor.requireAdmin("ignore cash drops"); err != nil {
		return nil, err
	}
	return l.mutate(ctx, id, func(s Store, drop *CashDrop) error {
		if err := drop.Ignore(reason); err != nil {
			return err
		}
		if drop.DrawerID == "" {
			return nil
		}
		drawer, err := s.GetDrawer(ctx, drop.DrawerID)
		if errors.Is(err, ErrRecordNotFound) {
			return notFound("drawer", drop.DrawerID)
		}
		if err != nil {
			return fmt.Errorf("load drawer: %w", err)
		}
		drawer.Status = StatusIgnored
		drawer.UpdatedAt = l.now()
		if err := s.SaveDrawer(ctx, *drawer); err != nil {
			return fmt.Errorf("save drawer: %w", err)
		}
		return nil
	}, actor, "ignored")
}

// Reconcile records an administrator's recount of a submitted drop.
func (l *Lifecycle) Reconcile(ctx context.Context, actor Actor, id string, in ReconcileInput) (*CashDrop, error) {
	if err := actor.requireAdmin("reconcile cash drops"); err != nil {
		return nil, err
	}
	return l.mutate(ctx, id, func(_ Store, drop *CashDrop) error {
		return drop.Reconcile(in, actor.UserID, l.now())
	}, actor, "reconciled")
}

// Unreconcile clears a recount so the drop can be counted again.
func (l *Lifecycle) Unreconcile(ctx context.Context, actor Actor, id string) (*CashDrop, error) {
	if err := actor.requireAdmin("unreconcile cash drops"); err != nil {
		return nil, err
	}
	return l.mutate(ctx, id, func(_ Store, drop *CashDrop) error {
		return drop.Unreconcile()
	}, actor, "unreconciled")
}

// StatusPatch is a requested status change with its supporting fields.
type StatusPatch struct {
	Status              Status
	Reason              string
	AdminCountAmount    decimal.NullDecimal
	ReconciliationNotes string
	Mode                ReconcileMode
}

// PatchStatus dispatches a status change to Ignore, Reconcile or
// Unreconcile.
func (l *Lifecycle) PatchStatus(ctx context.Context, actor Actor, id string, patch StatusPatch) (*CashDrop, error) {
	switch patch.Status {
	case StatusIgnored:
		return l.Ignore(ctx, actor, id, patch.Reason)
	case StatusReconciled:
		if !patch.AdminCountAmount.Valid {
			return nil, invalid("admin_count_amount", "is required to reconcile")
		}
		return l.Reconcile(ctx, actor, id, ReconcileInput{
			AdminCountAmount: patch.AdminCountAmount.Decimal,
			Notes:            patch.ReconciliationNotes,
			Mode:             patch.Mode,
		})
	case StatusSubmitted:
		return l.Unreconcile(ctx, actor, id)
	default:
		return nil, invalid("status", "cannot patch a cash drop to %q", patch.Status)
	}
}

// =============================================================================
// READS
// =============================================================================

func (l *Lifecycle) GetDrop(ctx context.Context, id string) (*CashDrop, error) {
	drop, err := l.Store.GetDrop(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return nil, notFound("cash_drop", id)
	}
	return drop, err
}

func (l *Lifecycle) ListDrops(ctx context.Context, filter DropFilter) ([]CashDrop, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, invalid("dateto", "must not be before datefrom")
	}
	return l.Store.ListDrops(ctx, filter)
}

func (l *Lifecycle) GetDrawer(ctx context.Context, id string) (*Drawer, error) {
	drawer, err := l.Store.GetDrawer(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return nil, notFound("drawer", id)
	}
	return drawer, err
}

func (l *Lifecycle) ListDrawers(ctx context.Context, filter DrawerFilter) ([]Drawer, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, invalid("dateto", "must not be before datefrom")
	}
	return l.Store.ListDrawers(ctx, filter)
}

// =============================================================================
// SETTINGS
// =============================================================================

// Settings returns the effective settings.
func (l *Lifecycle) Settings(ctx context.Context) (Settings, error) {
	return l.settings(ctx, l.Store)
}

func (l *Lifecycle) UpdateSettings(ctx context.Context, actor Actor, settings Settings) (Settings, error) {
	if err := actor.requireAdmin("change settings"); err != nil {
		return Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	settings.UpdatedAt = l.now()
	if err := l.Store.SaveSettings(ctx, settings); err != nil {
		return Settings{}, fmt.Errorf("save settings: %w", err)
	}
	l.Logger.WithFields(logrus.Fields{
		"max_cash_drops_per_day": settings.MaxCashDropsPerDay,
		"starting_amount":        settings.StartingAmount.StringFixed(2),
		"actor":                  actor.UserID,
	}).Info("settings updated")
	return settings, nil
}

// SeedSettings stores settings only when no row exists yet and reports
// whether it wrote one. A row saved by an administrator is left alone.
func (l *Lifecycle) SeedSettings(ctx context.Context, settings Settings) (bool, error) {
	if err := settings.Validate(); err != nil {
		return false, err
	}
	seeded := false
	err := l.Store.WithTx(ctx, func(s Store) error {
		if _, err := s.GetSettings(ctx); err == nil {
			return nil
		} else if !errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("load settings: %w", err)
		}
		settings.UpdatedAt = l.now()
		if err := s.SaveSettings(ctx, settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		l.Logger.WithFields(logrus.Fields{
			"max_cash_drops_per_day": settings.MaxCashDropsPerDay,
			"starting_amount":        settings.StartingAmount.StringFixed(2),
		}).Info("settings seeded")
	}
	return seeded, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func (l *Lifecycle) now() time.Time { return l.Calendar.now().UTC() }

func (l *Lifecycle) settings(ctx context.Context, s Store) (Settings, error) {
	stored, err := s.GetSettings(ctx)
	if errors.Is(err, ErrRecordNotFound) {
		return l.Defaults, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return *stored, nil
}

func (l *Lifecycle) startingCash(in DropInput, settings Settings) decimal.Decimal {
	if in.StartingCash.Valid {
		return in.StartingCash.Decimal
	}
	return settings.StartingAmount
}

// editableDraft loads the draft named by id, or returns nil for a new drop.
func (l *Lifecycle) editableDraft(ctx context.Context, s Store, actor Actor, id string) (*CashDrop, error) {
	if id == "" {
		return nil, nil
	}
	drop, err := s.GetDrop(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return nil, notFound("cash_drop", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load cash drop: %w", err)
	}
	if drop.UserID != actor.UserID && !actor.Admin {
		return nil, &ForbiddenError{Action: "edit another user's draft"}
	}
	if drop.Status != StatusDrafted {
		return nil, &ConflictError{
			Reason:  ConflictInvalidTransition,
			Message: fmt.Sprintf("cash drop %s is %s; only drafts can be edited", drop.ID, drop.Status),
		}
	}
	return drop, nil
}

func (l *Lifecycle) checkDraftSlot(ctx context.Context, s Store, actor Actor, in DropInput, existing *CashDrop) error {
	owner := actor.UserID
	if existing != nil {
		owner = existing.UserID
	}
	drafts, err := s.ListDrops(ctx, DropFilter{
		From:        in.Date,
		To:          in.Date,
		Workstation: in.Workstation,
		Shift:       in.Shift,
		UserID:      owner,
		Statuses:    []Status{StatusDrafted},
	})
	if err != nil {
		return fmt.Errorf("check drafts: %w", err)
	}
	for _, d := range drafts {
		if existing != nil && d.ID == existing.ID {
			continue
		}
		return &ConflictError{
			Reason:     ConflictDuplicateDraft,
			Message:    fmt.Sprintf("a draft already exists for workstation %s, shift %s on %s", in.Workstation, in.Shift, in.Date),
			ExistingID: d.ID,
		}
	}
	return nil
}

// checkSlot is the duplicate guard: one submitted-or-later drop per slot.
func (l *Lifecycle) checkSlot(ctx context.Context, s Store, slot Slot, excludeID string) error {
	taken, err := s.ListDrops(ctx, DropFilter{
		From:        slot.Date,
		To:          slot.Date,
		Workstation: slot.Workstation,
		Shift:       slot.Shift,
		Statuses:    SubmittedStatuses,
	})
	if err != nil {
		return fmt.Errorf("check duplicate submission: %w", err)
	}
	for _, d := range taken {
		if excludeID != "" && d.ID == excludeID {
			continue
		}
		return duplicateSubmission(slot, d.ID)
	}
	return nil
}

// checkDailyCap counts submitted-or-later drops for the date across all
// workstations.
func (l *Lifecycle) checkDailyCap(ctx context.Context, s Store, date Date, max int) error {
	n, err := s.CountDrops(ctx, date, SubmittedStatuses)
	if err != nil {
		return fmt.Errorf("count cash drops: %w", err)
	}
	if n >= max {
		return &ConflictError{
			Reason:  ConflictDailyCap,
			Message: fmt.Sprintf("maximum of %d cash drops already submitted for %s", max, date),
		}
	}
	return nil
}

func duplicateSubmission(slot Slot, existingID string) error {
	return &ConflictError{
		Reason: ConflictDuplicateSubmission,
		Message: fmt.Sprintf("a cash drop was already submitted for workstation %s, shift %s on %s",
			slot.Workstation, slot.Shift, slot.Date),
		ExistingID: existingID,
	}
}

// build assembles the drawer and drop records for in, reusing ids from an
// existing draft so the pair is updated in place.
func (l *Lifecycle) build(actor Actor, in DropInput, settings Settings, existing *CashDrop) (Drawer, CashDrop) {
	now := l.now()
	calc := Compute(in.Counts, l.startingCash(in, settings), in.ReceiptAmount)

	drawer := Drawer{
		ID:           l.NewID(),
		UserID:       actor.UserID,
		Workstation:  in.Workstation,
		Shift:        in.Shift,
		Date:         in.Date,
		StartingCash: calc.StartingCash,
		TotalCash:    calc.TotalCash,
		Counts:       in.Counts.Normalize(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	drop := CashDrop{
		ID:            l.NewID(),
		UserID:        actor.UserID,
		Workstation:   in.Workstation,
		Shift:         in.Shift,
		Date:          in.Date,
		DropAmount:    calc.DropAmount,
		ReceiptAmount: in.ReceiptAmount,
		Variance:      calc.Variance,
		Breakdown:     calc.Breakdown,
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if existing != nil {
		drop.ID = existing.ID
		drop.UserID = existing.UserID
		drop.CreatedAt = existing.CreatedAt
		drop.Status = existing.Status
		drawer.UserID = existing.UserID
		drawer.CreatedAt = existing.CreatedAt
		if existing.DrawerID != "" {
			drawer.ID = existing.DrawerID
		}
	}
	drop.DrawerID = drawer.ID
	return drawer, drop
}

func (l *Lifecycle) write(ctx context.Context, s Store, drawer Drawer, drop CashDrop) error {
	if err := s.SaveDrawer(ctx, drawer); err != nil {
		return fmt.Errorf("save drawer: %w", err)
	}
	if err := s.SaveDrop(ctx, drop); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateSlot):
			return duplicateSubmission(drop.Slot(), "")
		case errors.Is(err, ErrDuplicateDraft):
			return &ConflictError{Reason: ConflictDuplicateDraft, Message: err.Error()}
		}
		return fmt.Errorf("save cash drop: %w", err)
	}
	return nil
}

// mutate loads a drop, applies fn and saves it in one transaction.
func (l *Lifecycle) mutate(ctx context.Context, id string, fn func(Store, *CashDrop) error, actor Actor, event string) (*CashDrop, error) {
	var saved CashDrop
	err := l.Store.WithTx(ctx, func(s Store) error {
		drop, err := s.GetDrop(ctx, id)
		if errors.Is(err, ErrRecordNotFound) {
			return notFound("cash_drop", id)
		}
		if err != nil {
			return fmt.Errorf("load cash drop: %w", err)
		}
		if err := fn(s, drop); err != nil {
			return err
		}
		drop.UpdatedAt = l.now()
		if err := s.SaveDrop(ctx, *drop); err != nil {
			return fmt.Errorf("save cash drop: %w", err)
		}
		saved = *drop
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.Logger.WithFields(logrus.Fields{
		"drop_id": saved.ID,
		"status":  saved.Status,
		"actor":   actor.UserID,
	}).Infof("cash drop %s", event)
	return &saved, nil
}
