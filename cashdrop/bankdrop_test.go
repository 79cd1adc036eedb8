package cashdrop_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/cash-office/cashdrop"
	"github.com/warp/cash-office/cashdrop/store"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestBankDrop() (*cashdrop.BankDrop, *store.Memory) {
	mem := store.NewMemory()
	return cashdrop.NewBankDrop(mem, fixedCalendar(), nil), mem
}

// seedDrop stores a drop directly, bypassing the lifecycle.
func seedDrop(t *testing.T, mem *store.Memory, id, ws string, status cashdrop.Status, amount string, breakdown cashdrop.Counts) cashdrop.CashDrop {
	t.Helper()
	drop := cashdrop.CashDrop{
		ID:          id,
		UserID:      clerk.UserID,
		Workstation: ws,
		Shift:       "1",
		Date:        today,
		DropAmount:  dollars(amount),
		Breakdown:   breakdown.Normalize(),
		Status:      status,
		CreatedAt:   time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, mem.SaveDrop(context.Background(), drop))
	return drop
}

func seedPair(t *testing.T, mem *store.Memory) {
	t.Helper()
	seedDrop(t, mem, "A", "R1", cashdrop.StatusReconciled, "20.00", cashdrop.Counts{cashdrop.Ones: 20})
	seedDrop(t, mem, "B", "R2", cashdrop.StatusReconciled, "35.50", cashdrop.Counts{
		cashdrop.Twenties: 1, cashdrop.Tens: 1, cashdrop.Fives: 1,
	})
}

// =============================================================================
// SUMMARY
// =============================================================================

func TestSummary_AggregatesAmountsAndDenominations(t *testing.T) {
	b, mem := newTestBankDrop()
	seedPair(t, mem)

	sum, err := b.Summary(context.Background(), cashdrop.Selection{DropIDs: []string{"A", "B"}})
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Count)
	assertMoney(t, "55.50", sum.TotalAmount)
	assert.Equal(t, 20, sum.Totals[cashdrop.Ones])
	assert.Equal(t, 1, sum.Totals[cashdrop.Twenties])
	assert.Equal(t, 1, sum.Totals[cashdrop.Tens])
	assert.Equal(t, 1, sum.Totals[cashdrop.Fives])
	assert.Equal(t, 0, sum.Totals[cashdrop.Hundreds])
}

func TestSummary_UsesStoredBreakdownNotDrawer(t *testing.T) {
	// The drawer for this drop was short on change, so its stored
	// breakdown falls 0.50 below its amount. The summary keeps both as-is.
	l, mem := newTestLifecycle()
	b := cashdrop.NewBankDrop(mem, fixedCalendar(), nil)
	ctx := context.Background()

	in := input("R1", "1", today)
	in.StartingCash.Valid = true
	in.StartingCash.Decimal = dollars("199.50")
	in.Counts = cashdrop.Counts{cashdrop.Hundreds: 2, cashdrop.Twenties: 1, cashdrop.Tens: 1, cashdrop.Fives: 1}
	drop, err := l.Submit(ctx, clerk, in)
	require.NoError(t, err)
	assertMoney(t, "35.50", drop.DropAmount)

	sum, err := b.Summary(ctx, cashdrop.Selection{DropIDs: []string{drop.ID}})
	require.NoError(t, err)
	assertMoney(t, "35.50", sum.TotalAmount)
	assertMoney(t, "35.00", sum.Totals.Total())
}

func TestSummary_SelectionErrors(t *testing.T) {
	b, mem := newTestBankDrop()
	seedPair(t, mem)
	ctx := context.Background()

	_, err := b.Summary(ctx, cashdrop.Selection{})
	assert.True(t, cashdrop.IsValidation(err))

	_, err = b.Summary(ctx, cashdrop.Selection{DropIDs: []string{"A"}, BatchNumbers: []string{"X"}})
	assert.True(t, cashdrop.IsValidation(err))

	_, err = b.Summary(ctx, cashdrop.Selection{DropIDs: []string{"A", "nope"}})
	assert.True(t, cashdrop.IsNotFound(err))

	_, err = b.Summary(ctx, cashdrop.Selection{BatchNumbers: []string{"BD-missing"}})
	assert.True(t, cashdrop.IsNotFound(err))
}

// =============================================================================
// COMMIT
// =============================================================================

func TestCommit_StampsDropsAndCreatesBatch(t *testing.T) {
	b, mem := newTestBankDrop()
	seedPair(t, mem)
	ctx := context.Background()

	res, err := b.Commit(ctx, admin, cashdrop.CommitInput{DropIDs: []string{"A", "B"}, BatchNumber: "DEP-001"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.UpdatedCount)
	assert.Equal(t, []string{"A", "B"}, res.UpdatedIDs)
	assert.Equal(t, "DEP-001", res.BatchNumber)
	assert.Empty(t, res.Errors)

	for _, id := range []string{"A", "B"} {
		d, err := mem.GetDrop(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, cashdrop.StatusBankDropped, d.Status)
		assert.Equal(t, "DEP-001", d.BankDropBatchNumber)
	}

	batch, drops, err := b.Batch(ctx, "DEP-001")
	require.NoError(t, err)
	assertMoney(t, "55.50", batch.TotalAmount)
	assert.Equal(t, 20, batch.Totals[cashdrop.Ones])
	assert.Equal(t, admin.UserID, batch.CreatedBy)
	assert.Len(t, drops, 2)

	sum, err := b.Summary(ctx, cashdrop.Selection{BatchNumbers: []string{"DEP-001"}})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Count)
	assertMoney(t, "55.50", sum.TotalAmount)
}

func TestCommit_PartialSuccessReportedPerID(t *testing.T) {
	// GIVEN: A is reconciled, B is already in another batch
	// THEN: A is batched, B is reported, the call does not fail

	b, mem := newTestBankDrop()
	ctx := context.Background()
	seedDrop(t, mem, "A", "R1", cashdrop.StatusReconciled, "20.00", cashdrop.Counts{cashdrop.Ones: 20})
	old := seedDrop(t, mem, "B", "R2", cashdrop.StatusBankDropped, "10.00", cashdrop.Counts{cashdrop.Tens: 1})
	old.BankDropBatchNumber = "OLD"
	require.NoError(t, mem.SaveDrop(ctx, old))

	res, err := b.Commit(ctx, admin, cashdrop.CommitInput{DropIDs: []string{"A", "B", "ghost"}})
	require.NoError(t, err)

	assert.Equal(t, 1, res.UpdatedCount)
	assert.Equal(t, []string{"A"}, res.UpdatedIDs)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "B", res.Errors[0].ID)
	assert.Contains(t, res.Errors[0].Message, "bank_dropped")
	assert.Equal(t, "ghost", res.Errors[1].ID)

	d, err := mem.GetDrop(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, "OLD", d.BankDropBatchNumber, "ineligible drop must keep its batch")

	batch, _, err := b.Batch(ctx, res.BatchNumber)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, batch.DropIDs)
	assertMoney(t, "20.00", batch.TotalAmount)
}

func TestCommit_NothingEligible(t *testing.T) {
	b, mem := newTestBankDrop()
	ctx := context.Background()
	seedDrop(t, mem, "S", "R1", cashdrop.StatusSubmitted, "20.00", cashdrop.Counts{cashdrop.Ones: 20})

	res, err := b.Commit(ctx, admin, cashdrop.CommitInput{DropIDs: []string{"S"}, BatchNumber: "DEP-9"})
	assert.Equal(t, cashdrop.ConflictNothingEligible, conflictReason(t, err))
	require.NotNil(t, res)
	assert.Zero(t, res.UpdatedCount)
	assert.Len(t, res.Errors, 1)

	_, _, err = b.Batch(ctx, "DEP-9")
	assert.True(t, cashdrop.IsNotFound(err), "no batch is created when nothing was batched")
}

func TestCommit_BatchNumberMustBeUnique(t *testing.T) {
	b, mem := newTestBankDrop()
	seedPair(t, mem)
	ctx := context.Background()

	_, err := b.Commit(ctx, admin, cashdrop.CommitInput{DropIDs: []string{"A"}, BatchNumber: "DEP-1"})
	require.NoError(t, err)

	_, err = b.Commit(ctx, admin, cashdrop.CommitInput{DropIDs: []string{"B"}, BatchNumber: "DEP-1"})
	assert.Equal(t, cashdrop.ConflictBatchNumberTaken, conflictReason(t, err))

	d, err := mem.GetDrop(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, cashdrop.StatusReconciled, d.Status)
}

func TestCommit_GeneratesBatchNumber(t *testing.T) {
	b, mem := newTestBankDrop()
	seedPair(t, mem)

	res, err := b.Commit(context.Background(), admin, cashdrop.CommitInput{DropIDs: []string{"A"}})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BD-20240102-153000-[0-9a-f]{8}$`), res.BatchNumber)
}

func TestCommit_AdminOnlyAndNeedsIDs(t *testing.T) {
	b, mem := newTestBankDrop()
	seedPair(t, mem)
	ctx := context.Background()

	_, err := b.Commit(ctx, clerk, cashdrop.CommitInput{DropIDs: []string{"A"}})
	assert.True(t, cashdrop.IsForbidden(err))

	_, err = b.Commit(ctx, admin, cashdrop.CommitInput{DropIDs: []string{" ", ""}})
	assert.True(t, cashdrop.IsValidation(err))
}

// =============================================================================
// HISTORY AND CANDIDATES
// =============================================================================

func TestHistory_NewestFirst(t *testing.T) {
	b, mem := newTestBankDrop()
	seedPair(t, mem)
	ctx := context.Background()

	clock := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	b.Calendar.Now = func() time.Time { return clock }
	_, err := b.Commit(ctx, admin, cashdrop.CommitInput{DropIDs: []string{"A"}, BatchNumber: "FIRST"})
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	_, err = b.Commit(ctx, admin, cashdrop.CommitInput{DropIDs: []string{"B"}, BatchNumber: "SECOND"})
	require.NoError(t, err)

	history, err := b.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "SECOND", history[0].BatchNumber)
	assert.Equal(t, 1, history[0].DropCount)
	assertMoney(t, "35.50", history[0].BatchDropAmount)
	assert.Equal(t, "FIRST", history[1].BatchNumber)
}

func TestCandidates_OnlyReconciled(t *testing.T) {
	b, mem := newTestBankDrop()
	seedPair(t, mem)
	seedDrop(t, mem, "S", "R3", cashdrop.StatusSubmitted, "5.00", cashdrop.Counts{cashdrop.Fives: 1})

	drops, err := b.Candidates(context.Background(), yesterday, today)
	require.NoError(t, err)
	require.Len(t, drops, 2)
	for _, d := range drops {
		assert.Equal(t, cashdrop.StatusReconciled, d.Status)
	}

	_, err = b.Candidates(context.Background(), today, yesterday)
	assert.True(t, cashdrop.IsValidation(err))
}
