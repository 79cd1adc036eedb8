// Package store provides in-memory cashdrop.TxStore implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/warp/cash-office/cashdrop"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu    sync.RWMutex
	state memoryState
}

type memoryState struct {
	drops    map[string]cashdrop.CashDrop
	drawers  map[string]cashdrop.Drawer
	batches  map[string]cashdrop.BankDropBatch
	settings *cashdrop.Settings
}

func NewMemory() *Memory {
	return &Memory{state: memoryState{
		drops:   make(map[string]cashdrop.CashDrop),
		drawers: make(map[string]cashdrop.Drawer),
		batches: make(map[string]cashdrop.BankDropBatch),
	}}
}

var _ cashdrop.TxStore = (*Memory)(nil)

func (m *Memory) GetDrop(ctx context.Context, id string) (*cashdrop.CashDrop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.getDrop(id)
}

func (m *Memory) ListDrops(ctx context.Context, f cashdrop.DropFilter) ([]cashdrop.CashDrop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.listDrops(f), nil
}

func (m *Memory) CountDrops(ctx context.Context, date cashdrop.Date, statuses []cashdrop.Status) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.state.listDrops(cashdrop.DropFilter{From: date, To: date, Statuses: statuses})), nil
}

func (m *Memory) SaveDrop(ctx context.Context, d cashdrop.CashDrop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.saveDrop(d)
}

func (m *Memory) DeleteDrop(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.state.drops, id)
	return nil
}

func (m *Memory) GetDrawer(ctx context.Context, id string) (*cashdrop.Drawer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.getDrawer(id)
}

func (m *Memory) ListDrawers(ctx context.Context, f cashdrop.DrawerFilter) ([]cashdrop.Drawer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.listDrawers(f), nil
}

func (m *Memory) SaveDrawer(ctx context.Context, d cashdrop.Drawer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.drawers[d.ID] = cloneDrawer(d)
	return nil
}

func (m *Memory) DeleteDrawer(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.state.drawers, id)
	return nil
}

func (m *Memory) CreateBatch(ctx context.Context, b cashdrop.BankDropBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.createBatch(b)
}

func (m *Memory) GetBatch(ctx context.Context, number string) (*cashdrop.BankDropBatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.getBatch(number)
}

func (m *Memory) ListBatches(ctx context.Context) ([]cashdrop.BankDropBatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.listBatches(), nil
}

func (m *Memory) GetSettings(ctx context.Context) (*cashdrop.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.getSettings()
}

func (m *Memory) SaveSettings(ctx context.Context, s cashdrop.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.settings = cloneSettings(&s)
	return nil
}

// =============================================================================
// TRANSACTIONS - snapshot + rollback on error
// =============================================================================

// WithTx runs fn under the write lock against a snapshot of the current
// state, and restores the snapshot if fn fails.
func (m *Memory) WithTx(ctx context.Context, fn func(cashdrop.Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.state.clone()
	view := &txMemoryView{state: &m.state}
	if err := fn(view); err != nil {
		m.state = snapshot
		return err
	}
	return nil
}

// txMemoryView is the Store handed to WithTx callbacks. The parent lock is
// already held, so it touches state directly.
type txMemoryView struct {
	state *memoryState
}

func (v *txMemoryView) GetDrop(_ context.Context, id string) (*cashdrop.CashDrop, error) {
	return v.state.getDrop(id)
}

func (v *txMemoryView) ListDrops(_ context.Context, f cashdrop.DropFilter) ([]cashdrop.CashDrop, error) {
	return v.state.listDrops(f), nil
}

func (v *txMemoryView) CountDrops(_ context.Context, date cashdrop.Date, statuses []cashdrop.Status) (int, error) {
	return len(v.state.listDrops(cashdrop.DropFilter{From: date, To: date, Statuses: statuses})), nil
}

func (v *txMemoryView) SaveDrop(_ context.Context, d cashdrop.CashDrop) error {
	return v.state.saveDrop(d)
}

func (v *txMemoryView) DeleteDrop(_ context.Context, id string) error {
	delete(v.state.drops, id)
	return nil
}

func (v *txMemoryView) GetDrawer(_ context.Context, id string) (*cashdrop.Drawer, error) {
	return v.state.getDrawer(id)
}

func (v *txMemoryView) ListDrawers(_ context.Context, f cashdrop.DrawerFilter) ([]cashdrop.Drawer, error) {
	return v.state.listDrawers(f), nil
}

func (v *txMemoryView) SaveDrawer(_ context.Context, d cashdrop.Drawer) error {
	v.state.drawers[d.ID] = cloneDrawer(d)
	return nil
}

func (v *txMemoryView) DeleteDrawer(_ context.Context, id string) error {
	delete(v.state.drawers, id)
	return nil
}

func (v *txMemoryView) CreateBatch(_ context.Context, b cashdrop.BankDropBatch) error {
	return v.state.createBatch(b)
}

func (v *txMemoryView) GetBatch(_ context.Context, number string) (*cashdrop.BankDropBatch, error) {
	return v.state.getBatch(number)
}

func (v *txMemoryView) ListBatches(_ context.Context) ([]cashdrop.BankDropBatch, error) {
	return v.state.listBatches(), nil
}

func (v *txMemoryView) GetSettings(_ context.Context) (*cashdrop.Settings, error) {
	return v.state.getSettings()
}

func (v *txMemoryView) SaveSettings(_ context.Context, s cashdrop.Settings) error {
	v.state.settings = cloneSettings(&s)
	return nil
}

// =============================================================================
// STATE - shared by Memory and txMemoryView; callers hold the lock
// =============================================================================

func (s *memoryState) getDrop(id string) (*cashdrop.CashDrop, error) {
	d, ok := s.drops[id]
	if !ok {
		return nil, cashdrop.ErrRecordNotFound
	}
	d = cloneDrop(d)
	return &d, nil
}

// saveDrop enforces the slot and draft uniqueness constraints.
func (s *memoryState) saveDrop(d cashdrop.CashDrop) error {
	for id, other := range s.drops {
		if id == d.ID || other.Slot() != d.Slot() {
			continue
		}
		if d.Status.IsSubmitted() && other.Status.IsSubmitted() {
			return cashdrop.ErrDuplicateSlot
		}
		if d.Status == cashdrop.StatusDrafted && other.Status == cashdrop.StatusDrafted && d.UserID == other.UserID {
			return cashdrop.ErrDuplicateDraft
		}
	}
	s.drops[d.ID] = cloneDrop(d)
	return nil
}

func (s *memoryState) listDrops(f cashdrop.DropFilter) []cashdrop.CashDrop {
	ids := toSet(f.IDs)
	batches := toSet(f.BatchNumbers)
	out := []cashdrop.CashDrop{}
	for _, d := range s.drops {
		if !f.From.IsZero() && d.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && d.Date.After(f.To) {
			continue
		}
		if len(f.Statuses) > 0 && !hasStatus(f.Statuses, d.Status) {
			continue
		}
		if f.Workstation != "" && d.Workstation != f.Workstation {
			continue
		}
		if f.Shift != "" && d.Shift != f.Shift {
			continue
		}
		if f.UserID != "" && d.UserID != f.UserID {
			continue
		}
		if ids != nil && !ids[d.ID] {
			continue
		}
		if batches != nil && !batches[d.BankDropBatchNumber] {
			continue
		}
		out = append(out, cloneDrop(d))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *memoryState) getDrawer(id string) (*cashdrop.Drawer, error) {
	d, ok := s.drawers[id]
	if !ok {
		return nil, cashdrop.ErrRecordNotFound
	}
	d = cloneDrawer(d)
	return &d, nil
}

func (s *memoryState) listDrawers(f cashdrop.DrawerFilter) []cashdrop.Drawer {
	out := []cashdrop.Drawer{}
	for _, d := range s.drawers {
		if !f.From.IsZero() && d.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && d.Date.After(f.To) {
			continue
		}
		if len(f.Statuses) > 0 && !hasStatus(f.Statuses, d.Status) {
			continue
		}
		if f.UserID != "" && d.UserID != f.UserID {
			continue
		}
		out = append(out, cloneDrawer(d))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *memoryState) createBatch(b cashdrop.BankDropBatch) error {
	if _, ok := s.batches[b.BatchNumber]; ok {
		return cashdrop.ErrDuplicateBatchNumber
	}
	s.batches[b.BatchNumber] = cloneBatch(b)
	return nil
}

func (s *memoryState) getBatch(number string) (*cashdrop.BankDropBatch, error) {
	b, ok := s.batches[number]
	if !ok {
		return nil, cashdrop.ErrRecordNotFound
	}
	b = cloneBatch(b)
	return &b, nil
}

func (s *memoryState) listBatches() []cashdrop.BankDropBatch {
	out := make([]cashdrop.BankDropBatch, 0, len(s.batches))
	for _, b := range s.batches {
		out = append(out, cloneBatch(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].BatchNumber > out[j].BatchNumber
	})
	return out
}

func (s *memoryState) getSettings() (*cashdrop.Settings, error) {
	if s.settings == nil {
		return nil, cashdrop.ErrRecordNotFound
	}
	return cloneSettings(s.settings), nil
}

func (s *memoryState) clone() memoryState {
	c := memoryState{
		drops:    make(map[string]cashdrop.CashDrop, len(s.drops)),
		drawers:  make(map[string]cashdrop.Drawer, len(s.drawers)),
		batches:  make(map[string]cashdrop.BankDropBatch, len(s.batches)),
		settings: cloneSettings(s.settings),
	}
	for k, v := range s.drops {
		c.drops[k] = cloneDrop(v)
	}
	for k, v := range s.drawers {
		c.drawers[k] = cloneDrawer(v)
	}
	for k, v := range s.batches {
		c.batches[k] = cloneBatch(v)
	}
	return c
}

// =============================================================================
// COPY HELPERS - records must not alias caller-owned maps and slices
// =============================================================================

func cloneCounts(c cashdrop.Counts) cashdrop.Counts {
	if c == nil {
		return nil
	}
	out := make(cashdrop.Counts, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func cloneDrop(d cashdrop.CashDrop) cashdrop.CashDrop {
	d.Breakdown = cloneCounts(d.Breakdown)
	return d
}

func cloneDrawer(d cashdrop.Drawer) cashdrop.Drawer {
	d.Counts = cloneCounts(d.Counts)
	return d
}

func cloneBatch(b cashdrop.BankDropBatch) cashdrop.BankDropBatch {
	b.DropIDs = append([]string(nil), b.DropIDs...)
	b.Totals = cloneCounts(b.Totals)
	return b
}

func cloneSettings(s *cashdrop.Settings) *cashdrop.Settings {
	if s == nil {
		return nil
	}
	c := *s
	c.Shifts = append([]string(nil), s.Shifts...)
	c.Workstations = append([]string(nil), s.Workstations...)
	return &c
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}

func hasStatus(statuses []cashdrop.Status, s cashdrop.Status) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}
