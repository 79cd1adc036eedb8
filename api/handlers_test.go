/*
handlers_test.go - HTTP tests for the cash-drop API

Tests run the full chi router over the in-memory store with a pinned
business clock (2024-01-02 15:30 UTC), so status codes, error codes and
JSON shapes are checked end to end.
*/
package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/cash-office/api"
	"github.com/warp/cash-office/cashdrop"
	"github.com/warp/cash-office/cashdrop/store"
	"github.com/warp/cash-office/config"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type caller struct {
	id    string
	admin bool
}

var (
	clerk  = caller{id: "clerk-1"}
	boss   = caller{id: "admin-1", admin: true}
	nobody = caller{}
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	mem := store.NewMemory()
	calendar := &cashdrop.Calendar{
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2024, time.January, 2, 15, 30, 0, 0, time.UTC) },
	}
	logger := config.DiscardLogger()
	h := api.NewHandler(
		cashdrop.NewLifecycle(mem, calendar, logger),
		cashdrop.NewBankDrop(mem, calendar, logger),
		logger,
	)
	h.Pinger = pinger{}
	return api.NewRouter(h, []string{"http://localhost:5173"})
}

func do(t *testing.T, srv http.Handler, who caller, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if who.id != "" {
		req.Header.Set(api.HeaderUserID, who.id)
	}
	if who.admin {
		req.Header.Set(api.HeaderAdmin, "true")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// dropBody is a drawer holding the 200.00 float plus 50.00 to drop.
func dropBody(action, ws string) map[string]any {
	return map[string]any{
		"action":         action,
		"workstation":    ws,
		"shift":          "1",
		"date":           "2024-01-02",
		"counts":         map[string]int{"hundreds": 2, "twenties": 2, "tens": 1},
		"receipt_amount": "48.00",
	}
}

func submit(t *testing.T, srv http.Handler, ws string) api.CashDropDTO {
	t.Helper()
	rec := do(t, srv, clerk, http.MethodPost, "/api/cash-drops", dropBody("submit", ws))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.CashDropDTO](t, rec)
}

func reconcile(t *testing.T, srv http.Handler, id, amount string) {
	t.Helper()
	rec := do(t, srv, boss, http.MethodPatch, "/api/cash-drops/"+id+"/status", map[string]any{
		"status":             "reconciled",
		"admin_count_amount": amount,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// =============================================================================
// CASH DROPS
// =============================================================================

func TestSaveDrop_SubmitReturnsComputedDrop(t *testing.T) {
	srv := newTestServer(t)

	drop := submit(t, srv, "R1")

	assert.NotEmpty(t, drop.ID)
	assert.NotEmpty(t, drop.DrawerID)
	assert.Equal(t, "submitted", drop.Status)
	assert.Equal(t, "50.00", drop.DropAmount)
	assert.Equal(t, "2.00", drop.Variance)
	assert.Equal(t, 2, drop.Breakdown["twenties"])
	assert.Equal(t, 1, drop.Breakdown["tens"])
	assert.Equal(t, 0, drop.Breakdown["hundreds"])
	assert.Nil(t, drop.AdminCountAmount)
	require.NotNil(t, drop.SubmittedAt)

	rec := do(t, srv, clerk, http.MethodGet, "/api/cash-drops/"+drop.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, drop.ID, decode[api.CashDropDTO](t, rec).ID)

	rec = do(t, srv, clerk, http.MethodGet, "/api/cash-drawers/"+drop.DrawerID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	drawer := decode[api.DrawerDTO](t, rec)
	assert.Equal(t, "250.00", drawer.TotalCash)
	assert.Equal(t, "200.00", drawer.StartingCash)
}

func TestSaveDrop_DraftThenSubmitKeepsID(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, clerk, http.MethodPost, "/api/cash-drops", dropBody("draft", "R1"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	draft := decode[api.CashDropDTO](t, rec)
	assert.Equal(t, "drafted", draft.Status)

	body := dropBody("submit", "R1")
	body["id"] = draft.ID
	rec = do(t, srv, clerk, http.MethodPost, "/api/cash-drops", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, draft.ID, decode[api.CashDropDTO](t, rec).ID)
}

func TestSaveDrop_DuplicateSubmissionIsConflict(t *testing.T) {
	// GIVEN: R1 shift 1 already submitted today
	srv := newTestServer(t)
	first := submit(t, srv, "R1")

	// WHEN: the same slot is submitted again
	rec := do(t, srv, clerk, http.MethodPost, "/api/cash-drops", dropBody("submit", "R1"))

	// THEN: 409 naming the existing drop
	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}](t, rec)
	assert.Equal(t, "duplicate_submission", resp.Code)
	assert.Equal(t, first.ID, resp.Details["existing_id"])
}

func TestSaveDrop_DailyCapIsConflict(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, boss, http.MethodPut, "/api/admin-settings", map[string]any{
		"max_cash_drops_per_day": 1,
		"starting_amount":        "200.00",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	submit(t, srv, "R1")

	rec = do(t, srv, clerk, http.MethodPost, "/api/cash-drops", dropBody("submit", "R2"))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "daily_cap_reached", decode[api.ErrorResponse](t, rec).Code)
}

func TestSaveDrop_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name   string
		who    caller
		mutate func(map[string]any)
		status int
		code   string
	}{
		{"missing action", clerk, func(b map[string]any) { delete(b, "action") }, http.StatusBadRequest, "validation"},
		{"unknown action", clerk, func(b map[string]any) { b["action"] = "publish" }, http.StatusBadRequest, "validation"},
		{"negative count", clerk, func(b map[string]any) { b["counts"] = map[string]int{"ones": -1} }, http.StatusBadRequest, "validation"},
		{"unknown denomination", clerk, func(b map[string]any) { b["counts"] = map[string]int{"euros": 1} }, http.StatusBadRequest, "validation"},
		{"date out of window", clerk, func(b map[string]any) { b["date"] = "2023-12-31" }, http.StatusBadRequest, "validation"},
		{"no user", nobody, func(map[string]any) {}, http.StatusBadRequest, "validation"},
		{"nothing to drop", clerk, func(b map[string]any) { b["counts"] = map[string]int{"hundreds": 2} }, http.StatusBadRequest, "validation"},
		{"oversized count", clerk, func(b map[string]any) { b["counts"] = map[string]int{"hundreds": 1000001} }, http.StatusBadRequest, "validation"},
		{"fraction of a cent", clerk, func(b map[string]any) { b["receipt_amount"] = "48.005" }, http.StatusBadRequest, "validation"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := dropBody("submit", "R1")
			tc.mutate(body)
			rec := do(t, srv, tc.who, http.MethodPost, "/api/cash-drops", body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			assert.Equal(t, tc.code, decode[api.ErrorResponse](t, rec).Code)
		})
	}
}

func TestValidateDrop_ReportsWithoutWriting(t *testing.T) {
	srv := newTestServer(t)
	req := map[string]any{"workstation": "R1", "shift": "1", "date": "2024-01-02"}

	rec := do(t, srv, clerk, http.MethodPost, "/api/cash-drops/validate", req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[api.ValidateDropResponse](t, rec).OK)

	drop := submit(t, srv, "R1")

	rec = do(t, srv, clerk, http.MethodPost, "/api/cash-drops/validate", req)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[api.ValidateDropResponse](t, rec)
	assert.False(t, resp.OK)
	assert.Equal(t, "duplicate_submission", resp.Code)

	req["exclude_id"] = drop.ID
	rec = do(t, srv, clerk, http.MethodPost, "/api/cash-drops/validate", req)
	assert.True(t, decode[api.ValidateDropResponse](t, rec).OK)
}

func TestPreviewDrop(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, clerk, http.MethodPost, "/api/cash-drops/preview", map[string]any{
		"counts":         map[string]int{"hundreds": 2, "twenties": 2, "tens": 1},
		"receipt_amount": 51,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p := decode[api.PreviewDTO](t, rec)
	assert.Equal(t, "250.00", p.TotalCash)
	assert.Equal(t, "50.00", p.DropAmount)
	assert.Equal(t, "-1.00", p.Variance)
	assert.Equal(t, 2, p.Breakdown["twenties"])
	assert.Equal(t, 2, p.Remainder["hundreds"])

	rec = do(t, srv, clerk, http.MethodGet, "/api/cash-drops", nil)
	assert.Empty(t, decode[[]api.CashDropDTO](t, rec), "preview stores nothing")
}

func TestDeleteDrop_DraftOnly(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, clerk, http.MethodPost, "/api/cash-drops", dropBody("draft", "R1"))
	draft := decode[api.CashDropDTO](t, rec)
	sub := submit(t, srv, "R2")

	rec = do(t, srv, clerk, http.MethodDelete, "/api/cash-drops/"+draft.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, srv, clerk, http.MethodGet, "/api/cash-drawers/"+draft.DrawerID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, clerk, http.MethodDelete, "/api/cash-drops/"+sub.ID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetDrop_NotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, clerk, http.MethodGet, "/api/cash-drops/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode[api.ErrorResponse](t, rec).Code)
}

func TestListDrops_Filters(t *testing.T) {
	srv := newTestServer(t)
	a := submit(t, srv, "R1")
	submit(t, srv, "R2")
	reconcile(t, srv, a.ID, "50.00")

	rec := do(t, srv, clerk, http.MethodGet, "/api/cash-drops?datefrom=2024-01-01&dateto=2024-01-02&status=reconciled", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	drops := decode[[]api.CashDropDTO](t, rec)
	require.Len(t, drops, 1)
	assert.Equal(t, a.ID, drops[0].ID)

	rec = do(t, srv, clerk, http.MethodGet, "/api/cash-drops?workstation=R2", nil)
	assert.Len(t, decode[[]api.CashDropDTO](t, rec), 1)

	rec = do(t, srv, clerk, http.MethodGet, "/api/cash-drops?status=lost", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, clerk, http.MethodGet, "/api/cash-drops?datefrom=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// STATUS CHANGES
// =============================================================================

func TestPatchStatus_ReconcileNeedsAdmin(t *testing.T) {
	srv := newTestServer(t)
	drop := submit(t, srv, "R1")
	path := "/api/cash-drops/" + drop.ID + "/status"
	body := map[string]any{"status": "reconciled", "admin_count_amount": "50.00"}

	rec := do(t, srv, clerk, http.MethodPatch, path, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, srv, boss, http.MethodPatch, path, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[api.CashDropDTO](t, rec)
	assert.Equal(t, "reconciled", got.Status)
	require.NotNil(t, got.ReconcileDelta)
	assert.Equal(t, "0.00", *got.ReconcileDelta)
	assert.Equal(t, boss.id, got.ReconciledBy)
}

func TestPatchStatus_DeltaNeedsNotes(t *testing.T) {
	srv := newTestServer(t)
	drop := submit(t, srv, "R1")
	path := "/api/cash-drops/" + drop.ID + "/status"

	rec := do(t, srv, boss, http.MethodPatch, path, map[string]any{
		"status": "reconciled", "admin_count_amount": "45.00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, boss, http.MethodPatch, path, map[string]any{
		"status": "reconciled", "admin_count_amount": "45.00", "reconciliation_notes": "short a five", "mode": "delta",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "-5.00", *decode[api.CashDropDTO](t, rec).ReconcileDelta)
}

func TestPatchStatus_UnreconcileAndIgnore(t *testing.T) {
	srv := newTestServer(t)
	drop := submit(t, srv, "R1")
	path := "/api/cash-drops/" + drop.ID + "/status"
	reconcile(t, srv, drop.ID, "50.00")

	rec := do(t, srv, boss, http.MethodPatch, path, map[string]any{"status": "ignored", "reason": "test"})
	assert.Equal(t, http.StatusConflict, rec.Code, "reconciled drops cannot be ignored")
	assert.Equal(t, "invalid_transition", decode[api.ErrorResponse](t, rec).Code)

	rec = do(t, srv, boss, http.MethodPatch, path, map[string]any{"status": "submitted"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.CashDropDTO](t, rec)
	assert.Equal(t, "submitted", got.Status)
	assert.Nil(t, got.AdminCountAmount)

	rec = do(t, srv, boss, http.MethodPatch, path, map[string]any{"status": "ignored", "reason": "training drawer"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "training drawer", decode[api.CashDropDTO](t, rec).IgnoreReason)

	rec = do(t, srv, boss, http.MethodPatch, path, map[string]any{"status": "bank_dropped"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// BANK DROP
// =============================================================================

func TestBankDrop_CommitFlow(t *testing.T) {
	// GIVEN: two reconciled drops and one still submitted
	srv := newTestServer(t)
	a := submit(t, srv, "R1")
	b := submit(t, srv, "R2")
	c := submit(t, srv, "R3")
	reconcile(t, srv, a.ID, "50.00")
	reconcile(t, srv, b.ID, "50.00")

	rec := do(t, srv, boss, http.MethodGet, "/api/bank-drop", nil)
	assert.Len(t, decode[[]api.CashDropDTO](t, rec), 2)

	rec = do(t, srv, boss, http.MethodPost, "/api/bank-drop/summary", map[string]any{"cash_drop_ids": []string{a.ID, b.ID}})
	require.Equal(t, http.StatusOK, rec.Code)
	sum := decode[api.SummaryDTO](t, rec)
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, "100.00", sum.TotalAmount)
	assert.Equal(t, 4, sum.Totals["twenties"])

	// WHEN: all three are committed under a chosen number
	rec = do(t, srv, boss, http.MethodPost, "/api/bank-drop/mark-dropped", map[string]any{
		"cash_drop_ids": []string{a.ID, b.ID, c.ID},
		"batch_number":  "DEP-001",
	})

	// THEN: the reconciled two are batched and the third is reported
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[api.CommitResponse](t, rec)
	assert.Equal(t, 2, resp.UpdatedCount)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, resp.UpdatedIDs)
	assert.Equal(t, "DEP-001", resp.BatchNumber)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, c.ID, resp.Errors[0].ID)

	rec = do(t, srv, boss, http.MethodGet, "/api/bank-drop/history", nil)
	history := decode[[]api.HistoryEntryDTO](t, rec)
	require.Len(t, history, 1)
	assert.Equal(t, "DEP-001", history[0].BatchNumber)
	assert.Equal(t, 2, history[0].DropCount)
	assert.Equal(t, "100.00", history[0].BatchDropAmount)

	rec = do(t, srv, boss, http.MethodGet, "/api/bank-drop/batches/DEP-001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	batch := decode[api.BatchDTO](t, rec)
	assert.Equal(t, boss.id, batch.CreatedBy)
	assert.Len(t, batch.Drops, 2)
	for _, d := range batch.Drops {
		assert.Equal(t, "bank_dropped", d.Status)
		assert.Equal(t, "DEP-001", d.BankDropBatchNumber)
	}

	rec = do(t, srv, boss, http.MethodPost, "/api/bank-drop/summary", map[string]any{"batch_numbers": []string{"DEP-001"}})
	assert.Equal(t, 2, decode[api.SummaryDTO](t, rec).Count)
}

func TestBankDrop_NothingEligibleIsConflictWithDetails(t *testing.T) {
	srv := newTestServer(t)
	drop := submit(t, srv, "R1")

	rec := do(t, srv, boss, http.MethodPost, "/api/bank-drop/mark-dropped", map[string]any{
		"cash_drop_ids": []string{drop.ID, "ghost"},
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[struct {
		Code    string             `json:"code"`
		Details api.CommitResponse `json:"details"`
	}](t, rec)
	assert.Equal(t, "nothing_eligible", resp.Code)
	assert.Equal(t, 0, resp.Details.UpdatedCount)
	assert.Len(t, resp.Details.Errors, 2)

	rec = do(t, srv, boss, http.MethodGet, "/api/bank-drop/history", nil)
	assert.Empty(t, decode[[]api.HistoryEntryDTO](t, rec))
}

func TestBankDrop_CommitValidation(t *testing.T) {
	srv := newTestServer(t)
	drop := submit(t, srv, "R1")
	reconcile(t, srv, drop.ID, "50.00")

	rec := do(t, srv, boss, http.MethodPost, "/api/bank-drop/mark-dropped", map[string]any{"cash_drop_ids": []string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, clerk, http.MethodPost, "/api/bank-drop/mark-dropped", map[string]any{"cash_drop_ids": []string{drop.ID}})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, srv, boss, http.MethodPost, "/api/bank-drop/mark-dropped", map[string]any{"cash_drop_ids": []string{drop.ID}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `^BD-20240102-153000-[0-9a-f]{8}$`, decode[api.CommitResponse](t, rec).BatchNumber)

	rec = do(t, srv, boss, http.MethodGet, "/api/bank-drop/batches/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// SETTINGS, CATALOG, HEALTH
// =============================================================================

func TestSettings_GetAndUpdate(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, clerk, http.MethodGet, "/api/admin-settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.SettingsDTO](t, rec)
	assert.Equal(t, cashdrop.DefaultMaxCashDropsPerDay, got.MaxCashDropsPerDay)
	assert.True(t, got.StartingAmount.Equal(cashdrop.DefaultStartingAmount))

	update := map[string]any{
		"max_cash_drops_per_day": 4,
		"starting_amount":        "150.00",
		"shifts":                 []string{"AM", "PM"},
		"workstations":           []string{"R1", "R2"},
	}
	rec = do(t, srv, clerk, http.MethodPut, "/api/admin-settings", update)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, srv, boss, http.MethodPut, "/api/admin-settings", update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, srv, clerk, http.MethodGet, "/api/admin-settings", nil)
	got = decode[api.SettingsDTO](t, rec)
	assert.Equal(t, 4, got.MaxCashDropsPerDay)
	assert.Equal(t, "150.00", got.StartingAmount.StringFixed(2))
	assert.Equal(t, []string{"AM", "PM"}, got.Shifts)

	update["max_cash_drops_per_day"] = 0
	rec = do(t, srv, boss, http.MethodPut, "/api/admin-settings", update)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDenominations_DescendingCatalog(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, nobody, http.MethodGet, "/api/denominations", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	dens := decode[[]api.DenominationDTO](t, rec)
	require.Len(t, dens, len(cashdrop.Denominations))
	assert.Equal(t, "hundreds", dens[0].Key)
	assert.Equal(t, "100.00", dens[0].Value)
	assert.Equal(t, "pennies", dens[len(dens)-1].Key)
	assert.Equal(t, "0.01", dens[len(dens)-1].Value)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, nobody, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	logger := config.DiscardLogger()
	mem := store.NewMemory()
	h := api.NewHandler(cashdrop.NewLifecycle(mem, nil, logger), cashdrop.NewBankDrop(mem, nil, logger), logger)
	h.Pinger = pinger{err: errors.New("disk gone")}
	rec = do(t, api.NewRouter(h, nil), nobody, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORS_AllowsIdentityHeaders(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/cash-drops/abc/status", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", api.HeaderUserID)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}
