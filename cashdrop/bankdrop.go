package cashdrop

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// BANK DROP - Grouping reconciled drops into a deposit
// =============================================================================

type BankDrop struct {
	Store    TxStore
	Calendar *Calendar
	Logger   logrus.FieldLogger

	// NewBatchNumber generates a batch number when the caller supplies none.
	NewBatchNumber func(at time.Time) string
}

func NewBankDrop(store TxStore, calendar *Calendar, logger logrus.FieldLogger) *BankDrop {
	calendar, logger = withDefaults(calendar, logger)
	return &BankDrop{
		Store:          store,
		Calendar:       calendar,
		Logger:         logger,
		NewBatchNumber: GenerateBatchNumber,
	}
}

// GenerateBatchNumber returns BD-YYYYMMDD-HHMMSS-xxxxxxxx. The random
// suffix keeps two batches created in the same second apart; the store's
// unique constraint is the final word.
func GenerateBatchNumber(at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("BD-%s-%s", at.UTC().Format("20060102-150405"), suffix)
}

// Selection picks drops either by id or by the batches they belong to.
type Selection struct {
	DropIDs      []string
	BatchNumbers []string
}

// Summary aggregates a set of drops.
type Summary struct {
	Count       int
	TotalAmount decimal.Decimal
	Totals      Counts
}

// Summarize sums drop amounts and stored breakdowns. Breakdowns are not
// recomputed from drawers.
func Summarize(drops []CashDrop) Summary {
	s := Summary{TotalAmount: decimal.Zero, Totals: Counts{}.Normalize()}
	for _, d := range drops {
		s.Count++
		s.TotalAmount = s.TotalAmount.Add(d.DropAmount)
		s.Totals = s.Totals.Add(d.Breakdown)
	}
	return s
}

// Summary previews a selection. Unknown ids or batch numbers are reported
// as not found.
func (b *BankDrop) Summary(ctx context.Context, sel Selection) (Summary, error) {
	drops, err := b.selectDrops(ctx, sel)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(drops), nil
}

func (b *BankDrop) selectDrops(ctx context.Context, sel Selection) ([]CashDrop, error) {
	ids := unique(sel.DropIDs)
	numbers := unique(sel.BatchNumbers)
	switch {
	case len(ids) > 0 && len(numbers) > 0:
		return nil, invalid("selection", "give either cash_drop_ids or batch_numbers, not both")
	case len(ids) > 0:
		drops, err := b.Store.ListDrops(ctx, DropFilter{IDs: ids})
		if err != nil {
			return nil, fmt.Errorf("load cash drops: %w", err)
		}
		found := make(map[string]bool, len(drops))
		for _, d := range drops {
			found[d.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, notFound("cash_drop", id)
			}
		}
		return drops, nil
	case len(numbers) > 0:
		for _, n := range numbers {
			if _, err := b.Store.GetBatch(ctx, n); err != nil {
				if errors.Is(err, ErrRecordNotFound) {
					return nil, notFound("batch", n)
				}
				return nil, fmt.Errorf("load batch: %w", err)
			}
		}
		drops, err := b.Store.ListDrops(ctx, DropFilter{BatchNumbers: numbers})
		if err != nil {
			return nil, fmt.Errorf("load cash drops: %w", err)
		}
		return drops, nil
	default:
		return nil, invalid("selection", "select at least one cash drop or batch")
	}
}

type CommitInput struct {
	DropIDs     []string
	BatchNumber string
}

// ItemError reports why one selected drop was not batched.
type ItemError struct {
	ID      string
	Message string
}

type CommitResult struct {
	UpdatedCount int
	UpdatedIDs   []string
	BatchNumber  string
	Errors       []ItemError
	Batch        *BankDropBatch
}

// Commit moves every eligible selected drop to bank_dropped under one batch
// number and creates the batch, in one store transaction. Drops that are
// missing or not reconciled are reported per id and do not stop the rest.
// If nothing was eligible the result carries the per-id errors and a
// ConflictError is returned.
func (b *BankDrop) Commit(ctx context.Context, actor Actor, in CommitInput) (*CommitResult, error) {
	if err := actor.requireAdmin("bank drop cash drops"); err != nil {
		return nil, err
	}
	ids := unique(in.DropIDs)
	if len(ids) == 0 {
		return nil, invalid("cash_drop_ids", "select at least one cash drop")
	}

	now := b.Calendar.now().UTC()
	number := strings.TrimSpace(in.BatchNumber)
	if number == "" {
		number = b.NewBatchNumber(now)
	}

	result := &CommitResult{BatchNumber: number, UpdatedIDs: []string{}, Errors: []ItemError{}}
	err := b.Store.WithTx(ctx, func(s Store) error {
		if _, err := s.GetBatch(ctx, number); err == nil {
			return batchTaken(number)
		} else if !errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("check batch number: %w", err)
		}

		var batched []CashDrop
		for _, id := range ids {
			drop, err := s.GetDrop(ctx, id)
			if errors.Is(err, ErrRecordNotFound) {
				result.Errors = append(result.Errors, ItemError{ID: id, Message: "cash drop not found"})
				continue
			}
			if err != nil {
				return fmt.Errorf("load cash drop %s: %w", id, err)
			}
			if err := drop.MarkBankDropped(number); err != nil {
				result.Errors = append(result.Errors, ItemError{
					ID:      id,
					Message: fmt.Sprintf("cash drop is %s; only reconciled drops can be bank dropped", drop.Status),
				})
				continue
			}
			drop.UpdatedAt = now
			if err := s.SaveDrop(ctx, *drop); err != nil {
				return fmt.Errorf("save cash drop %s: %w", id, err)
			}
			batched = append(batched, *drop)
			result.UpdatedIDs = append(result.UpdatedIDs, id)
		}

		if len(batched) == 0 {
			return nil
		}
		summary := Summarize(batched)
		batch := BankDropBatch{
			BatchNumber: number,
			DropIDs:     result.UpdatedIDs,
			TotalAmount: summary.TotalAmount,
			Totals:      summary.Totals,
			CreatedBy:   actor.UserID,
			CreatedAt:   now,
		}
		if err := s.CreateBatch(ctx, batch); err != nil {
			if errors.Is(err, ErrDuplicateBatchNumber) {
				return batchTaken(number)
			}
			return fmt.Errorf("create batch: %w", err)
		}
		result.Batch = &batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.UpdatedCount = len(result.UpdatedIDs)

	log := b.Logger.WithFields(logrus.Fields{
		"batch_number": number,
		"updated":      result.UpdatedCount,
		"failed":       len(result.Errors),
		"actor":        actor.UserID,
	})
	if result.UpdatedCount == 0 {
		result.BatchNumber = ""
		log.Warn("bank drop committed nothing")
		return result, &ConflictError{
			Reason:  ConflictNothingEligible,
			Message: "none of the selected cash drops can be bank dropped",
		}
	}
	log.Info("bank drop committed")
	return result, nil
}

func batchTaken(number string) error {
	return &ConflictError{
		Reason:     ConflictBatchNumberTaken,
		Message:    fmt.Sprintf("batch number %s is already in use", number),
		ExistingID: number,
	}
}

// HistoryEntry is one row of the bank-drop history.
type HistoryEntry struct {
	BatchNumber     string
	DropCount       int
	CreatedAt       time.Time
	BatchDropAmount decimal.Decimal
}

// History lists batches, newest first.
func (b *BankDrop) History(ctx context.Context) ([]HistoryEntry, error) {
	batches, err := b.Store.ListBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].CreatedAt.After(batches[j].CreatedAt)
	})
	out := make([]HistoryEntry, len(batches))
	for i, batch := range batches {
		out[i] = HistoryEntry{
			BatchNumber:     batch.BatchNumber,
			DropCount:       len(batch.DropIDs),
			CreatedAt:       batch.CreatedAt,
			BatchDropAmount: batch.TotalAmount,
		}
	}
	return out, nil
}

// Batch returns one batch with its member drops.
func (b *BankDrop) Batch(ctx context.Context, number string) (*BankDropBatch, []CashDrop, error) {
	batch, err := b.Store.GetBatch(ctx, number)
	if errors.Is(err, ErrRecordNotFound) {
		return nil, nil, notFound("batch", number)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load batch: %w", err)
	}
	drops, err := b.Store.ListDrops(ctx, DropFilter{BatchNumbers: []string{number}})
	if err != nil {
		return nil, nil, fmt.Errorf("load cash drops: %w", err)
	}
	return batch, drops, nil
}

// Candidates lists reconciled drops in [from, to] that are ready to batch.
func (b *BankDrop) Candidates(ctx context.Context, from, to Date) ([]CashDrop, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, invalid("dateto", "must not be before datefrom")
	}
	return b.Store.ListDrops(ctx, DropFilter{From: from, To: to, Statuses: []Status{StatusReconciled}})
}

func unique(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
