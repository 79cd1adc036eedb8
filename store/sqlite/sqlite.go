/*
Package sqlite provides a SQLite-backed implementation of cashdrop.TxStore.

PURPOSE:
  Persists drawers, cash drops, bank-drop batches and settings. The
  lifecycle checks duplicates and the daily cap as a fast path; the
  constraints below are what actually hold under concurrent submissions.

KEY TABLES:
  drawers:           Counted register snapshots
  cash_drops:        Drops with breakdown, reconciliation and batch stamp
  bank_drop_batches: Immutable deposit batches
  settings:          Single row of administrative parameters

INDEXES:
  - idx_cash_drops_submitted_slot: one submitted/reconciled/bank_dropped drop
    per workstation+shift+date (ErrDuplicateSlot)
  - idx_cash_drops_draft_slot: one draft per workstation+shift+date+user
    (ErrDuplicateDraft)
  - idx_cash_drops_date_status: daily cap count (hot path)
  - idx_cash_drops_batch: batch membership lookups

MONEY:
  Amounts are stored as decimal strings (decimal.Decimal implements
  sql.Scanner and driver.Valuer), never as REAL.

CONNECTIONS:
  The pool is limited to one connection. SQLite allows a single writer, and
  ":memory:" databases are per connection, so a larger pool would hand out
  empty databases.

USAGE:
  store, err := sqlite.New("./data/cashdrop.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  lifecycle := cashdrop.NewLifecycle(store, calendar, logger)

SEE ALSO:
  - cashdrop/store.go: Interface definitions
  - cashdrop/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/cash-office/cashdrop"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements cashdrop.TxStore using SQLite.
type Store struct {
	conn
	db *sql.DB
}

// conn holds every query; Store runs them on the pool and WithTx on a tx.
type conn struct {
	q querier
}

var (
	_ cashdrop.TxStore = (*Store)(nil)
	_ cashdrop.Store   = (*conn)(nil)
)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &Store{conn: conn{q: db}, db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS drawers (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		workstation TEXT NOT NULL,
		shift TEXT NOT NULL,
		date TEXT NOT NULL,
		starting_cash TEXT NOT NULL,
		total_cash TEXT NOT NULL,
		counts_json TEXT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('drafted', 'submitted', 'ignored')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_drawers_date
		ON drawers(date);

	CREATE TABLE IF NOT EXISTS cash_drops (
		id TEXT PRIMARY KEY,
		drawer_id TEXT REFERENCES drawers(id) ON DELETE SET NULL,
		user_id TEXT NOT NULL,
		workstation TEXT NOT NULL,
		shift TEXT NOT NULL,
		date TEXT NOT NULL,
		drop_amount TEXT NOT NULL,
		receipt_amount TEXT NOT NULL,
		variance TEXT NOT NULL,
		breakdown_json TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL CHECK (status IN ('drafted', 'submitted', 'ignored', 'reconciled', 'bank_dropped')),
		admin_count_amount TEXT,
		reconcile_delta TEXT,
		reconciliation_notes TEXT NOT NULL DEFAULT '',
		reconciled_by TEXT NOT NULL DEFAULT '',
		reconciled_at TEXT,
		ignore_reason TEXT NOT NULL DEFAULT '',
		bank_drop_batch_number TEXT,
		submitted_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- CRITICAL: one submitted-or-later drop per register shift and day
	CREATE UNIQUE INDEX IF NOT EXISTS idx_cash_drops_submitted_slot
		ON cash_drops(workstation, shift, date)
		WHERE status IN ('submitted', 'reconciled', 'bank_dropped');

	-- one open draft per user for the same register shift and day
	CREATE UNIQUE INDEX IF NOT EXISTS idx_cash_drops_draft_slot
		ON cash_drops(workstation, shift, date, user_id)
		WHERE status = 'drafted';

	CREATE INDEX IF NOT EXISTS idx_cash_drops_date_status
		ON cash_drops(date, status);

	CREATE INDEX IF NOT EXISTS idx_cash_drops_batch
		ON cash_drops(bank_drop_batch_number) WHERE bank_drop_batch_number IS NOT NULL;

	CREATE TABLE IF NOT EXISTS bank_drop_batches (
		batch_number TEXT PRIMARY KEY,
		drop_ids_json TEXT NOT NULL,
		total_amount TEXT NOT NULL,
		totals_json TEXT NOT NULL,
		created_by TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		max_cash_drops_per_day INTEGER NOT NULL,
		starting_amount TEXT NOT NULL,
		shifts_json TEXT NOT NULL,
		workstations_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// TRANSACTIONAL STORE (cashdrop.TxStore interface)
// =============================================================================

// WithTx executes a function within a database transaction.
func (s *Store) WithTx(ctx context.Context, fn func(store cashdrop.Store) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err := fn(&conn{q: sqlTx}); err != nil {
		return err
	}

	return sqlTx.Commit()
}

// =============================================================================
// CASH DROPS
// =============================================================================

const dropColumns = `
	id, drawer_id, user_id, workstation, shift, date,
	drop_amount, receipt_amount, variance, breakdown_json, notes, status,
	admin_count_amount, reconcile_delta, reconciliation_notes, reconciled_by, reconciled_at,
	ignore_reason, bank_drop_batch_number, submitted_at, created_at, updated_at`

func (c *conn) GetDrop(ctx context.Context, id string) (*cashdrop.CashDrop, error) {
	drops, err := c.queryDrops(ctx, "SELECT "+dropColumns+" FROM cash_drops WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(drops) == 0 {
		return nil, cashdrop.ErrRecordNotFound
	}
	return &drops[0], nil
}

func (c *conn) ListDrops(ctx context.Context, f cashdrop.DropFilter) ([]cashdrop.CashDrop, error) {
	var w where
	w.dateRange(f.From, f.To)
	w.in("status", statusArgs(f.Statuses))
	w.eq("workstation", f.Workstation)
	w.eq("shift", f.Shift)
	w.eq("user_id", f.UserID)
	w.in("id", f.IDs)
	w.in("bank_drop_batch_number", f.BatchNumbers)

	query := "SELECT " + dropColumns + " FROM cash_drops" + w.sql() + " ORDER BY date ASC, created_at ASC, id ASC"
	return c.queryDrops(ctx, query, w.args...)
}

func (c *conn) CountDrops(ctx context.Context, date cashdrop.Date, statuses []cashdrop.Status) (int, error) {
	var w where
	w.eq("date", date.String())
	w.in("status", statusArgs(statuses))

	var n int
	if err := c.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM cash_drops"+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cash drops: %w", err)
	}
	return n, nil
}

// SaveDrop upserts by id. Slot violations surface from the partial unique
// indexes.
func (c *conn) SaveDrop(ctx context.Context, d cashdrop.CashDrop) error {
	breakdown, err := json.Marshal(d.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to encode breakdown: %w", err)
	}

	query := `
		INSERT INTO cash_drops (` + dropColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			drawer_id = excluded.drawer_id,
			user_id = excluded.user_id,
			workstation = excluded.workstation,
			shift = excluded.shift,
			date = excluded.date,
			drop_amount = excluded.drop_amount,
			receipt_amount = excluded.receipt_amount,
			variance = excluded.variance,
			breakdown_json = excluded.breakdown_json,
			notes = excluded.notes,
			status = excluded.status,
			admin_count_amount = excluded.admin_count_amount,
			reconcile_delta = excluded.reconcile_delta,
			reconciliation_notes = excluded.reconciliation_notes,
			reconciled_by = excluded.reconciled_by,
			reconciled_at = excluded.reconciled_at,
			ignore_reason = excluded.ignore_reason,
			bank_drop_batch_number = excluded.bank_drop_batch_number,
			submitted_at = excluded.submitted_at,
			updated_at = excluded.updated_at
	`

	_, err = c.q.ExecContext(ctx, query,
		d.ID,
		nullString(d.DrawerID),
		d.UserID,
		d.Workstation,
		d.Shift,
		d.Date.String(),
		d.DropAmount,
		d.ReceiptAmount,
		d.Variance,
		string(breakdown),
		d.Notes,
		string(d.Status),
		d.AdminCountAmount,
		d.ReconcileDelta,
		d.ReconciliationNotes,
		d.ReconciledBy,
		nullTime(d.ReconciledAt),
		d.IgnoreReason,
		nullString(d.BankDropBatchNumber),
		nullTime(d.SubmittedAt),
		formatTime(d.CreatedAt),
		formatTime(d.UpdatedAt),
	)
	if err != nil {
		// the draft index is the only one covering user_id
		switch {
		case isConstraintError(err, "cash_drops.user_id"):
			return cashdrop.ErrDuplicateDraft
		case isConstraintError(err, "cash_drops.workstation"):
			return cashdrop.ErrDuplicateSlot
		}
		return fmt.Errorf("failed to save cash drop: %w", err)
	}
	return nil
}

func (c *conn) DeleteDrop(ctx context.Context, id string) error {
	if _, err := c.q.ExecContext(ctx, "DELETE FROM cash_drops WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete cash drop: %w", err)
	}
	return nil
}

func (c *conn) queryDrops(ctx context.Context, query string, args ...any) ([]cashdrop.CashDrop, error) {
	rows, err := c.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash drops: %w", err)
	}
	defer rows.Close()

	drops := []cashdrop.CashDrop{}
	for rows.Next() {
		d, err := scanDrop(rows)
		if err != nil {
			return nil, err
		}
		drops = append(drops, d)
	}
	return drops, rows.Err()
}

func scanDrop(rows *sql.Rows) (cashdrop.CashDrop, error) {
	var (
		d            cashdrop.CashDrop
		drawerID     sql.NullString
		date         string
		breakdown    string
		status       string
		reconciledAt sql.NullString
		batchNumber  sql.NullString
		submittedAt  sql.NullString
		createdAt    string
		updatedAt    string
	)

	err := rows.Scan(
		&d.ID, &drawerID, &d.UserID, &d.Workstation, &d.Shift, &date,
		&d.DropAmount, &d.ReceiptAmount, &d.Variance, &breakdown, &d.Notes, &status,
		&d.AdminCountAmount, &d.ReconcileDelta, &d.ReconciliationNotes, &d.ReconciledBy, &reconciledAt,
		&d.IgnoreReason, &batchNumber, &submittedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return d, fmt.Errorf("failed to scan cash drop: %w", err)
	}

	if d.Date, err = cashdrop.ParseDate(date); err != nil {
		return d, err
	}
	if err := json.Unmarshal([]byte(breakdown), &d.Breakdown); err != nil {
		return d, fmt.Errorf("failed to decode breakdown of %s: %w", d.ID, err)
	}
	d.DrawerID = drawerID.String
	d.Status = cashdrop.Status(status)
	d.BankDropBatchNumber = batchNumber.String
	d.ReconciledAt = parseNullTime(reconciledAt)
	d.SubmittedAt = parseNullTime(submittedAt)
	d.CreatedAt = parseTime(createdAt)
	d.UpdatedAt = parseTime(updatedAt)
	return d, nil
}

// =============================================================================
// DRAWERS
// =============================================================================

const drawerColumns = `
	id, user_id, workstation, shift, date, starting_cash, total_cash,
	counts_json, status, created_at, updated_at`

func (c *conn) GetDrawer(ctx context.Context, id string) (*cashdrop.Drawer, error) {
	drawers, err := c.queryDrawers(ctx, "SELECT "+drawerColumns+" FROM drawers WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(drawers) == 0 {
		return nil, cashdrop.ErrRecordNotFound
	}
	return &drawers[0], nil
}

func (c *conn) ListDrawers(ctx context.Context, f cashdrop.DrawerFilter) ([]cashdrop.Drawer, error) {
	var w where
	w.dateRange(f.From, f.To)
	w.in("status", statusArgs(f.Statuses))
	w.eq("user_id", f.UserID)

	query := "SELECT " + drawerColumns + " FROM drawers" + w.sql() + " ORDER BY date ASC, created_at ASC, id ASC"
	return c.queryDrawers(ctx, query, w.args...)
}

func (c *conn) SaveDrawer(ctx context.Context, d cashdrop.Drawer) error {
	counts, err := json.Marshal(d.Counts)
	if err != nil {
		return fmt.Errorf("failed to encode counts: %w", err)
	}

	query := `
		INSERT INTO drawers (` + drawerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			workstation = excluded.workstation,
			shift = excluded.shift,
			date = excluded.date,
			starting_cash = excluded.starting_cash,
			total_cash = excluded.total_cash,
			counts_json = excluded.counts_json,
			status = excluded.status,
			updated_at = excluded.updated_at
	`

	_, err = c.q.ExecContext(ctx, query,
		d.ID,
		d.UserID,
		d.Workstation,
		d.Shift,
		d.Date.String(),
		d.StartingCash,
		d.TotalCash,
		string(counts),
		string(d.Status),
		formatTime(d.CreatedAt),
		formatTime(d.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save drawer: %w", err)
	}
	return nil
}

func (c *conn) DeleteDrawer(ctx context.Context, id string) error {
	if _, err := c.q.ExecContext(ctx, "DELETE FROM drawers WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete drawer: %w", err)
	}
	return nil
}

func (c *conn) queryDrawers(ctx context.Context, query string, args ...any) ([]cashdrop.Drawer, error) {
	rows, err := c.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query drawers: %w", err)
	}
	defer rows.Close()

	drawers := []cashdrop.Drawer{}
	for rows.Next() {
		var (
			d         cashdrop.Drawer
			date      string
			counts    string
			status    string
			createdAt string
			updatedAt string
		)
		err := rows.Scan(&d.ID, &d.UserID, &d.Workstation, &d.Shift, &date,
			&d.StartingCash, &d.TotalCash, &counts, &status, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drawer: %w", err)
		}
		if d.Date, err = cashdrop.ParseDate(date); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(counts), &d.Counts); err != nil {
			return nil, fmt.Errorf("failed to decode counts of %s: %w", d.ID, err)
		}
		d.Status = cashdrop.Status(status)
		d.CreatedAt = parseTime(createdAt)
		d.UpdatedAt = parseTime(updatedAt)
		drawers = append(drawers, d)
	}
	return drawers, rows.Err()
}

// =============================================================================
// BANK DROP BATCHES (insert-only)
// =============================================================================

func (c *conn) CreateBatch(ctx context.Context, b cashdrop.BankDropBatch) error {
	ids, err := json.Marshal(b.DropIDs)
	if err != nil {
		return fmt.Errorf("failed to encode drop ids: %w", err)
	}
	totals, err := json.Marshal(b.Totals)
	if err != nil {
		return fmt.Errorf("failed to encode totals: %w", err)
	}

	_, err = c.q.ExecContext(ctx, `
		INSERT INTO bank_drop_batches
		(batch_number, drop_ids_json, total_amount, totals_json, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.BatchNumber, string(ids), b.TotalAmount, string(totals), b.CreatedBy, formatTime(b.CreatedAt))
	if err != nil {
		if isConstraintError(err, "bank_drop_batches.batch_number") {
			return cashdrop.ErrDuplicateBatchNumber
		}
		return fmt.Errorf("failed to create batch: %w", err)
	}
	return nil
}

func (c *conn) GetBatch(ctx context.Context, batchNumber string) (*cashdrop.BankDropBatch, error) {
	batches, err := c.queryBatches(ctx, `
		SELECT batch_number, drop_ids_json, total_amount, totals_json, created_by, created_at
		FROM bank_drop_batches WHERE batch_number = ?
	`, batchNumber)
	if err != nil {
		return nil, err
	}
	if len(batches) == 0 {
		return nil, cashdrop.ErrRecordNotFound
	}
	return &batches[0], nil
}

func (c *conn) ListBatches(ctx context.Context) ([]cashdrop.BankDropBatch, error) {
	return c.queryBatches(ctx, `
		SELECT batch_number, drop_ids_json, total_amount, totals_json, created_by, created_at
		FROM bank_drop_batches
		ORDER BY created_at DESC, batch_number DESC
	`)
}

func (c *conn) queryBatches(ctx context.Context, query string, args ...any) ([]cashdrop.BankDropBatch, error) {
	rows, err := c.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	batches := []cashdrop.BankDropBatch{}
	for rows.Next() {
		var (
			b         cashdrop.BankDropBatch
			ids       string
			totals    string
			createdAt string
		)
		if err := rows.Scan(&b.BatchNumber, &ids, &b.TotalAmount, &totals, &b.CreatedBy, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		if err := json.Unmarshal([]byte(ids), &b.DropIDs); err != nil {
			return nil, fmt.Errorf("failed to decode drop ids of %s: %w", b.BatchNumber, err)
		}
		if err := json.Unmarshal([]byte(totals), &b.Totals); err != nil {
			return nil, fmt.Errorf("failed to decode totals of %s: %w", b.BatchNumber, err)
		}
		b.CreatedAt = parseTime(createdAt)
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// =============================================================================
// SETTINGS
// =============================================================================

func (c *conn) GetSettings(ctx context.Context) (*cashdrop.Settings, error) {
	var (
		s            cashdrop.Settings
		shifts       string
		workstations string
		updatedAt    string
	)
	err := c.q.QueryRowContext(ctx, `
		SELECT max_cash_drops_per_day, starting_amount, shifts_json, workstations_json, updated_at
		FROM settings WHERE id = 1
	`).Scan(&s.MaxCashDropsPerDay, &s.StartingAmount, &shifts, &workstations, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cashdrop.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := json.Unmarshal([]byte(shifts), &s.Shifts); err != nil {
		return nil, fmt.Errorf("failed to decode shifts: %w", err)
	}
	if err := json.Unmarshal([]byte(workstations), &s.Workstations); err != nil {
		return nil, fmt.Errorf("failed to decode workstations: %w", err)
	}
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

func (c *conn) SaveSettings(ctx context.Context, s cashdrop.Settings) error {
	shifts, err := json.Marshal(nonNil(s.Shifts))
	if err != nil {
		return fmt.Errorf("failed to encode shifts: %w", err)
	}
	workstations, err := json.Marshal(nonNil(s.Workstations))
	if err != nil {
		return fmt.Errorf("failed to encode workstations: %w", err)
	}

	_, err = c.q.ExecContext(ctx, `
		INSERT INTO settings (id, max_cash_drops_per_day, starting_amount, shifts_json, workstations_json, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			max_cash_drops_per_day = excluded.max_cash_drops_per_day,
			starting_amount = excluded.starting_amount,
			shifts_json = excluded.shifts_json,
			workstations_json = excluded.workstations_json,
			updated_at = excluded.updated_at
	`, s.MaxCashDropsPerDay, s.StartingAmount, string(shifts), string(workstations), formatTime(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// =============================================================================
// QUERY BUILDING
// =============================================================================

// where accumulates AND-ed conditions; empty values add nothing.
type where struct {
	clauses []string
	args    []any
}

func (w *where) eq(column, value string) {
	if value == "" {
		return
	}
	w.clauses = append(w.clauses, column+" = ?")
	w.args = append(w.args, value)
}

func (w *where) in(column string, values []string) {
	if len(values) == 0 {
		return
	}
	w.clauses = append(w.clauses, column+" IN ("+strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")+")")
	for _, v := range values {
		w.args = append(w.args, v)
	}
}

func (w *where) dateRange(from, to cashdrop.Date) {
	if !from.IsZero() {
		w.clauses = append(w.clauses, "date >= ?")
		w.args = append(w.args, from.String())
	}
	if !to.IsZero() {
		w.clauses = append(w.clauses, "date <= ?")
		w.args = append(w.args, to.String())
	}
}

func (w *where) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// Helper functions

func statusArgs(statuses []cashdrop.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// timeLayout is fixed width so text order matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseNullTime(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t := parseTime(s.String)
	return &t
}

// isConstraintError matches SQLite's "UNIQUE constraint failed: <columns>"
// message against one of the reported columns.
func isConstraintError(err error, name string) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, name)
}
