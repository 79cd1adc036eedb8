/*
store.go - Persistence interface for drawers, drops, batches and settings

PURPOSE:
  Defines the boundary between the lifecycle rules and the database.
  The lifecycle performs its checks as a fast path; the store enforces the
  real invariants (slot uniqueness, batch number uniqueness) with
  constraints, and runs check-then-write sequences inside WithTx.

KEY INTERFACES:
  Store:   Record reads and writes
  TxStore: Store plus atomic multi-record operations

CONSTRAINTS A STORE MUST ENFORCE:
  - One submitted/reconciled/bank_dropped drop per workstation+shift+date
    (return ErrDuplicateSlot)
  - One drafted drop per workstation+shift+date+user (ErrDuplicateDraft)
  - Unique batch numbers (ErrDuplicateBatchNumber)

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go:    SQLite
  - cashdrop/store/memory.go:  In-memory for tests and local runs

SEE ALSO:
  - lifecycle.go: Uses TxStore.WithTx for submit/ignore/reconcile
  - bankdrop.go:  Uses TxStore.WithTx for batch commit
*/
package cashdrop

import "context"

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/warp/cash-office/cashdrop Store,TxStore

// DropFilter narrows ListDrops. Zero fields do not filter.
type DropFilter struct {
	From         Date
	To           Date
	Statuses     []Status
	Workstation  string
	Shift        string
	UserID       string
	IDs          []string
	BatchNumbers []string
}

// DrawerFilter narrows ListDrawers. Zero fields do not filter.
type DrawerFilter struct {
	From     Date
	To       Date
	Statuses []Status
	UserID   string
}

type Store interface {
	// GetDrop returns ErrRecordNotFound for unknown ids.
	GetDrop(ctx context.Context, id string) (*CashDrop, error)

	// ListDrops returns matching drops ordered by date, then created_at.
	ListDrops(ctx context.Context, filter DropFilter) ([]CashDrop, error)

	// CountDrops counts drops on date whose status is in statuses.
	CountDrops(ctx context.Context, date Date, statuses []Status) (int, error)

	// SaveDrop inserts or replaces a drop keyed by ID.
	SaveDrop(ctx context.Context, drop CashDrop) error

	// DeleteDrop removes a drop. Callers only delete drafts.
	DeleteDrop(ctx context.Context, id string) error

	GetDrawer(ctx context.Context, id string) (*Drawer, error)
	ListDrawers(ctx context.Context, filter DrawerFilter) ([]Drawer, error)
	SaveDrawer(ctx context.Context, drawer Drawer) error
	DeleteDrawer(ctx context.Context, id string) error

	// CreateBatch stores a new batch. Batches are never updated.
	CreateBatch(ctx context.Context, batch BankDropBatch) error
	GetBatch(ctx context.Context, batchNumber string) (*BankDropBatch, error)

	// ListBatches returns all batches, newest first.
	ListBatches(ctx context.Context) ([]BankDropBatch, error)

	// GetSettings returns the stored settings, or ErrRecordNotFound if
	// none were saved yet.
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, settings Settings) error
}

// TxStore wraps Store with transaction support.
type TxStore interface {
	Store

	// WithTx executes fn within a transaction.
	// If fn returns error, every write made through the Store handed to fn
	// is rolled back.
	WithTx(ctx context.Context, fn func(Store) error) error
}
