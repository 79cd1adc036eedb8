/*
handlers.go - HTTP API handlers for cash drops, drawers and bank drops

PURPOSE:
  Exposes the cashdrop core via REST. Handles HTTP request/response, JSON
  serialization and shape validation, and delegates every rule to
  cashdrop.Lifecycle and cashdrop.BankDrop.

ENDPOINTS:
  Cash drops:
    GET    /api/cash-drops                 List (datefrom, dateto, status, workstation, shift, user_id)
    POST   /api/cash-drops                 Save draft or submit (action: draft | submit)
    POST   /api/cash-drops/validate        Would a submission be admitted?
    POST   /api/cash-drops/preview         Compute totals and breakdown, store nothing
    GET    /api/cash-drops/{id}            One drop
    DELETE /api/cash-drops/{id}            Delete a draft
    PATCH  /api/cash-drops/{id}/status     Ignore, reconcile, unreconcile

  Drawers:
    GET    /api/cash-drawers               List (datefrom, dateto, status)
    GET    /api/cash-drawers/{id}          One drawer

  Bank drop:
    GET    /api/bank-drop                  Reconciled drops ready to batch
    POST   /api/bank-drop/summary          Preview totals for ids or batch numbers
    POST   /api/bank-drop/mark-dropped     Commit a batch
    GET    /api/bank-drop/history          Batches, newest first
    GET    /api/bank-drop/batches/{number} One batch with its drops

  Settings and catalog:
    GET    /api/admin-settings
    PUT    /api/admin-settings
    GET    /api/denominations

IDENTITY:
  The caller is read from X-User-ID / X-User-Admin by middleware and passed
  to the core as a cashdrop.Actor. There is no session.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 403: Actor lacks admin rights or does not own the draft
  - 404: Drop, drawer or batch not found
  - 409: Duplicate submission, daily cap, wrong status, batch number taken
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - middleware.go: Identity and request logging
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/warp/cash-office/cashdrop"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Lifecycle *cashdrop.Lifecycle
	BankDrop  *cashdrop.BankDrop
	Logger    logrus.FieldLogger

	// Pinger is optional; /healthz only checks it when set.
	Pinger Pinger

	validate *validator.Validate
}

// NewHandler creates a new handler over the two core services.
func NewHandler(lifecycle *cashdrop.Lifecycle, bankDrop *cashdrop.BankDrop, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = lifecycle.Logger
	}
	return &Handler{
		Lifecycle: lifecycle,
		BankDrop:  bankDrop,
		Logger:    logger,
		validate:  validator.New(),
	}
}

// =============================================================================
// CASH DROP HANDLERS
// =============================================================================

// ListDrops returns drops in a date range.
// GET /api/cash-drops?datefrom=2024-01-01&dateto=2024-01-31&status=submitted
func (h *Handler) ListDrops(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	statuses, err := parseStatuses(q.Get("status"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	drops, err := h.Lifecycle.ListDrops(r.Context(), cashdrop.DropFilter{
		From:        from,
		To:          to,
		Statuses:    statuses,
		Workstation: q.Get("workstation"),
		Shift:       q.Get("shift"),
		UserID:      q.Get("user_id"),
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCashDropDTOs(drops))
}

// GetDrop returns one drop.
// GET /api/cash-drops/{id}
func (h *Handler) GetDrop(w http.ResponseWriter, r *http.Request) {
	drop, err := h.Lifecycle.GetDrop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCashDropDTO(*drop))
}

// SaveDrop saves a draft or submits a drop.
// POST /api/cash-drops
func (h *Handler) SaveDrop(w http.ResponseWriter, r *http.Request) {
	var req SaveDropRequest
	if !h.decode(w, r, &req) {
		return
	}

	actor := ActorFrom(r.Context())
	var (
		drop *cashdrop.CashDrop
		err  error
	)
	if req.Action == "submit" {
		drop, err = h.Lifecycle.Submit(r.Context(), actor, req.input())
	} else {
		drop, err = h.Lifecycle.SaveDraft(r.Context(), actor, req.input())
	}
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	writeJSON(w, status, toCashDropDTO(*drop))
}

// ValidateDrop runs the submission checks without writing. A rejected
// submission is still a 200 with ok=false; only malformed requests fail.
// POST /api/cash-drops/validate
func (h *Handler) ValidateDrop(w http.ResponseWriter, r *http.Request) {
	var req ValidateDropRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.Lifecycle.ValidateSubmission(r.Context(), cashdrop.Slot{
		Workstation: req.Workstation,
		Shift:       req.Shift,
		Date:        req.Date,
	}, req.ExcludeID)

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, ValidateDropResponse{OK: true})
	case cashdrop.IsValidation(err) || cashdrop.IsConflict(err):
		writeJSON(w, http.StatusOK, ValidateDropResponse{OK: false, Error: err.Error(), Code: errorCode(err)})
	default:
		h.writeDomainError(w, r, err)
	}
}

// PreviewDrop computes totals, variance and the suggested breakdown.
// POST /api/cash-drops/preview
func (h *Handler) PreviewDrop(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	calc, err := h.Lifecycle.Preview(r.Context(), cashdrop.DropInput{
		StartingCash:  req.StartingCash,
		Counts:        toCounts(req.Counts),
		ReceiptAmount: req.ReceiptAmount,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PreviewDTO{
		StartingCash: money(calc.StartingCash),
		TotalCash:    money(calc.TotalCash),
		DropAmount:   money(calc.DropAmount),
		Variance:     money(calc.Variance),
		Breakdown:    fromCounts(calc.Breakdown),
		Remainder:    fromCounts(calc.Remainder),
		Shortfall:    money(calc.Shortfall),
	})
}

// DeleteDrop deletes a draft and its draft drawer.
// DELETE /api/cash-drops/{id}
func (h *Handler) DeleteDrop(w http.ResponseWriter, r *http.Request) {
	if err := h.Lifecycle.DeleteDraft(r.Context(), ActorFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PatchDropStatus ignores, reconciles or unreconciles a drop.
// PATCH /api/cash-drops/{id}/status
func (h *Handler) PatchDropStatus(w http.ResponseWriter, r *http.Request) {
	var req PatchStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	drop, err := h.Lifecycle.PatchStatus(r.Context(), ActorFrom(r.Context()), chi.URLParam(r, "id"), cashdrop.StatusPatch{
		Status:              cashdrop.Status(req.Status),
		Reason:              req.Reason,
		AdminCountAmount:    req.AdminCountAmount,
		ReconciliationNotes: req.ReconciliationNotes,
		Mode:                cashdrop.ReconcileMode(req.Mode),
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCashDropDTO(*drop))
}

// =============================================================================
// DRAWER HANDLERS
// =============================================================================

// ListDrawers returns drawers in a date range.
// GET /api/cash-drawers?datefrom=&dateto=
func (h *Handler) ListDrawers(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	statuses, err := parseStatuses(r.URL.Query().Get("status"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	drawers, err := h.Lifecycle.ListDrawers(r.Context(), cashdrop.DrawerFilter{From: from, To: to, Statuses: statuses})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	dtos := make([]DrawerDTO, len(drawers))
	for i, d := range drawers {
		dtos[i] = toDrawerDTO(d)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetDrawer returns one drawer.
// GET /api/cash-drawers/{id}
func (h *Handler) GetDrawer(w http.ResponseWriter, r *http.Request) {
	drawer, err := h.Lifecycle.GetDrawer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDrawerDTO(*drawer))
}

// =============================================================================
// BANK DROP HANDLERS
// =============================================================================

// BankDropCandidates lists reconciled drops.
// GET /api/bank-drop?datefrom=&dateto=
func (h *Handler) BankDropCandidates(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}
	drops, err := h.BankDrop.Candidates(r.Context(), from, to)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCashDropDTOs(drops))
}

// BankDropSummary previews totals for a selection.
// POST /api/bank-drop/summary
func (h *Handler) BankDropSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if !h.decode(w, r, &req) {
		return
	}
	summary, err := h.BankDrop.Summary(r.Context(), cashdrop.Selection{
		DropIDs:      req.CashDropIDs,
		BatchNumbers: req.BatchNumbers,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// CommitBankDrop batches reconciled drops. Per-id failures are in the body;
// the call is a 409 only when nothing could be batched.
// POST /api/bank-drop/mark-dropped
func (h *Handler) CommitBankDrop(w http.ResponseWriter, r *http.Request) {
	var req CommitRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.BankDrop.Commit(r.Context(), ActorFrom(r.Context()), cashdrop.CommitInput{
		DropIDs:     req.CashDropIDs,
		BatchNumber: req.BatchNumber,
	})
	if err != nil {
		if result != nil {
			writeJSON(w, http.StatusConflict, ErrorResponse{
				Error:   err.Error(),
				Code:    errorCode(err),
				Details: toCommitResponse(result),
			})
			return
		}
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommitResponse(result))
}

// BankDropHistory lists batches, newest first.
// GET /api/bank-drop/history
func (h *Handler) BankDropHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.BankDrop.History(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	dtos := make([]HistoryEntryDTO, len(history))
	for i, e := range history {
		dtos[i] = HistoryEntryDTO{
			BatchNumber:     e.BatchNumber,
			DropCount:       e.DropCount,
			CreatedAt:       timestamp(e.CreatedAt),
			BatchDropAmount: money(e.BatchDropAmount),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetBatch returns a batch with its drops and aggregated totals.
// GET /api/bank-drop/batches/{number}
func (h *Handler) GetBatch(w http.ResponseWriter, r *http.Request) {
	batch, drops, err := h.BankDrop.Batch(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BatchDTO{
		BatchNumber: batch.BatchNumber,
		CreatedBy:   batch.CreatedBy,
		CreatedAt:   timestamp(batch.CreatedAt),
		Summary: SummaryDTO{
			Count:       len(batch.DropIDs),
			TotalAmount: money(batch.TotalAmount),
			Totals:      fromCounts(batch.Totals),
		},
		Drops: toCashDropDTOs(drops),
	})
}

// =============================================================================
// SETTINGS AND CATALOG
// =============================================================================

// GetSettings returns the effective settings.
// GET /api/admin-settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Lifecycle.Settings(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(settings))
}

// UpdateSettings replaces the settings.
// PUT /api/admin-settings
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsDTO
	if !h.decode(w, r, &req) {
		return
	}
	settings, err := h.Lifecycle.UpdateSettings(r.Context(), ActorFrom(r.Context()), cashdrop.Settings{
		MaxCashDropsPerDay: req.MaxCashDropsPerDay,
		StartingAmount:     req.StartingAmount,
		Shifts:             req.Shifts,
		Workstations:       req.Workstations,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(settings))
}

// ListDenominations returns the catalog in allocation order.
// GET /api/denominations
func (h *Handler) ListDenominations(w http.ResponseWriter, r *http.Request) {
	dtos := make([]DenominationDTO, len(cashdrop.Denominations))
	for i, d := range cashdrop.Denominations {
		dtos[i] = DenominationDTO{Key: string(d), Label: d.Label(), Value: money(d.Value())}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Health reports liveness and, when a Pinger is set, store reachability.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.Pinger != nil {
		if err := h.Pinger.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "Store unavailable", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

// decode reads and shape-validates a JSON body, writing a 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid request",
				Code:    "validation",
				Details: fieldErrors(verrs),
			})
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request", err)
		return false
	}
	return true
}

// fieldErrors maps each failing field to the tag it failed.
func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func (h *Handler) dateRange(w http.ResponseWriter, r *http.Request) (from, to cashdrop.Date, ok bool) {
	q := r.URL.Query()
	var err error
	if s := q.Get("datefrom"); s != "" {
		if from, err = cashdrop.ParseDate(s); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid datefrom", err)
			return from, to, false
		}
	}
	if s := q.Get("dateto"); s != "" {
		if to, err = cashdrop.ParseDate(s); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid dateto", err)
			return from, to, false
		}
	}
	return from, to, true
}

func parseStatuses(raw string) ([]cashdrop.Status, error) {
	if raw == "" {
		return nil, nil
	}
	var out []cashdrop.Status
	for _, part := range strings.Split(raw, ",") {
		s := cashdrop.Status(strings.TrimSpace(part))
		if !s.Valid() {
			return nil, &cashdrop.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", s)}
		}
		out = append(out, s)
	}
	return out, nil
}

// writeDomainError maps cashdrop error kinds onto HTTP status codes.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case cashdrop.IsValidation(err):
		status = http.StatusBadRequest
	case cashdrop.IsForbidden(err):
		status = http.StatusForbidden
	case cashdrop.IsNotFound(err):
		status = http.StatusNotFound
	case cashdrop.IsConflict(err):
		status = http.StatusConflict
	}

	resp := ErrorResponse{Error: err.Error(), Code: errorCode(err)}
	var cerr *cashdrop.ConflictError
	if errors.As(err, &cerr) && cerr.ExistingID != "" {
		resp.Details = map[string]string{"existing_id": cerr.ExistingID}
	}

	if status == http.StatusInternalServerError {
		RequestLogger(r.Context(), h.Logger).WithError(err).Error("request failed")
		resp.Error = "Internal server error"
	}
	writeJSON(w, status, resp)
}

func errorCode(err error) string {
	var cerr *cashdrop.ConflictError
	if errors.As(err, &cerr) {
		return string(cerr.Reason)
	}
	switch {
	case cashdrop.IsValidation(err):
		return "validation"
	case cashdrop.IsForbidden(err):
		return "forbidden"
	case cashdrop.IsNotFound(err):
		return "not_found"
	}
	return "internal"
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
