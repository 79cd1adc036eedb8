/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the cashdrop records from the wire contract the register terminal and
  back-office screens use.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

MONEY:
  Amounts are decimal strings with two places ("50.00") on the way out.
  Requests accept either JSON numbers or strings.

VALIDATION:
  Request types carry go-playground/validator tags for shape checks
  (required fields, enums, non-negative counts). Business rules stay in the
  cashdrop package.

SEE ALSO:
  - handlers.go: Uses these types
  - cashdrop/types.go: Domain records
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/cash-office/cashdrop"
)

// =============================================================================
// CASH DROPS
// =============================================================================

// SaveDropRequest saves a draft or submits a drop. ID names a draft being
// edited.
type SaveDropRequest struct {
	Action        string              `json:"action" validate:"required,oneof=draft submit"`
	ID            string              `json:"id,omitempty"`
	Workstation   string              `json:"workstation" validate:"required"`
	Shift         string              `json:"shift" validate:"required"`
	Date          cashdrop.Date       `json:"date"`
	StartingCash  decimal.NullDecimal `json:"starting_cash"`
	Counts        map[string]int      `json:"counts" validate:"dive,keys,required,endkeys,min=0,max=1000000"`
	ReceiptAmount decimal.Decimal     `json:"receipt_amount"`
	Notes         string              `json:"notes" validate:"max=2000"`
}

func (r SaveDropRequest) input() cashdrop.DropInput {
	return cashdrop.DropInput{
		ID:            r.ID,
		Workstation:   r.Workstation,
		Shift:         r.Shift,
		Date:          r.Date,
		StartingCash:  r.StartingCash,
		Counts:        toCounts(r.Counts),
		ReceiptAmount: r.ReceiptAmount,
		Notes:         r.Notes,
	}
}

// PreviewRequest computes a drop without storing it.
type PreviewRequest struct {
	StartingCash  decimal.NullDecimal `json:"starting_cash"`
	Counts        map[string]int      `json:"counts" validate:"dive,keys,required,endkeys,min=0,max=1000000"`
	ReceiptAmount decimal.Decimal     `json:"receipt_amount"`
}

type PreviewDTO struct {
	StartingCash string         `json:"starting_cash"`
	TotalCash    string         `json:"total_cash"`
	DropAmount   string         `json:"drop_amount"`
	Variance     string         `json:"variance"`
	Breakdown    map[string]int `json:"breakdown"`
	Remainder    map[string]int `json:"remainder"`
	Shortfall    string         `json:"shortfall"`
}

// ValidateDropRequest asks whether a submission would be admitted.
type ValidateDropRequest struct {
	Workstation string        `json:"workstation" validate:"required"`
	Shift       string        `json:"shift" validate:"required"`
	Date        cashdrop.Date `json:"date"`
	ExcludeID   string        `json:"exclude_id,omitempty"`
}

type ValidateDropResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// PatchStatusRequest changes a drop's status: ignored, reconciled, or
// submitted (unreconcile).
type PatchStatusRequest struct {
	Status              string              `json:"status" validate:"required,oneof=ignored reconciled submitted"`
	Reason              string              `json:"reason,omitempty"`
	AdminCountAmount    decimal.NullDecimal `json:"admin_count_amount"`
	ReconciliationNotes string              `json:"reconciliation_notes,omitempty"`
	Mode                string              `json:"mode,omitempty" validate:"omitempty,oneof=exact delta"`
}

type CashDropDTO struct {
	ID                  string         `json:"id"`
	DrawerID            string         `json:"drawer_id,omitempty"`
	UserID              string         `json:"user_id"`
	Workstation         string         `json:"workstation"`
	Shift               string         `json:"shift"`
	Date                cashdrop.Date  `json:"date"`
	DropAmount          string         `json:"drop_amount"`
	ReceiptAmount       string         `json:"receipt_amount"`
	Variance            string         `json:"variance"`
	Breakdown           map[string]int `json:"breakdown"`
	Notes               string         `json:"notes,omitempty"`
	Status              string         `json:"status"`
	AdminCountAmount    *string        `json:"admin_count_amount"`
	ReconcileDelta      *string        `json:"reconcile_delta"`
	ReconciliationNotes string         `json:"reconciliation_notes,omitempty"`
	ReconciledBy        string         `json:"reconciled_by,omitempty"`
	ReconciledAt        *string        `json:"reconciled_at,omitempty"`
	IgnoreReason        string         `json:"ignore_reason,omitempty"`
	BankDropBatchNumber string         `json:"bank_drop_batch_number,omitempty"`
	SubmittedAt         *string        `json:"submitted_at,omitempty"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
}

type DrawerDTO struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Workstation  string         `json:"workstation"`
	Shift        string         `json:"shift"`
	Date         cashdrop.Date  `json:"date"`
	StartingCash string         `json:"starting_cash"`
	TotalCash    string         `json:"total_cash"`
	Counts       map[string]int `json:"counts"`
	Status       string         `json:"status"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

// =============================================================================
// BANK DROP
// =============================================================================

// SummaryRequest selects drops by id or by batch number, not both.
type SummaryRequest struct {
	CashDropIDs  []string `json:"cash_drop_ids"`
	BatchNumbers []string `json:"batch_numbers"`
}

type SummaryDTO struct {
	Count       int            `json:"count"`
	TotalAmount string         `json:"total_amount"`
	Totals      map[string]int `json:"totals"`
}

type CommitRequest struct {
	CashDropIDs []string `json:"cash_drop_ids" validate:"required,min=1"`
	BatchNumber string   `json:"batch_number,omitempty" validate:"max=64"`
}

type ItemErrorDTO struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type CommitResponse struct {
	UpdatedCount int            `json:"updated_count"`
	UpdatedIDs   []string       `json:"updated_ids"`
	BatchNumber  string         `json:"batch_number,omitempty"`
	Errors       []ItemErrorDTO `json:"errors"`
}

type HistoryEntryDTO struct {
	BatchNumber     string `json:"batch_number"`
	DropCount       int    `json:"drop_count"`
	CreatedAt       string `json:"created_at"`
	BatchDropAmount string `json:"batch_drop_amount"`
}

type BatchDTO struct {
	BatchNumber string        `json:"batch_number"`
	CreatedBy   string        `json:"created_by"`
	CreatedAt   string        `json:"created_at"`
	Summary     SummaryDTO    `json:"summary"`
	Drops       []CashDropDTO `json:"drops"`
}

// =============================================================================
// SETTINGS AND CATALOG
// =============================================================================

type SettingsDTO struct {
	MaxCashDropsPerDay int             `json:"max_cash_drops_per_day" validate:"min=1"`
	StartingAmount     decimal.Decimal `json:"starting_amount"`
	Shifts             []string        `json:"shifts" validate:"dive,required"`
	Workstations       []string        `json:"workstations" validate:"dive,required"`
	UpdatedAt          string          `json:"updated_at,omitempty"`
}

type DenominationDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func nullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := money(d.Decimal)
	return &s
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func nullTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := timestamp(*t)
	return &s
}

func toCounts(m map[string]int) cashdrop.Counts {
	c := make(cashdrop.Counts, len(m))
	for k, v := range m {
		c[cashdrop.Denomination(k)] = v
	}
	return c
}

func fromCounts(c cashdrop.Counts) map[string]int {
	out := make(map[string]int, len(cashdrop.Denominations))
	for _, d := range cashdrop.Denominations {
		out[string(d)] = c[d]
	}
	return out
}

func toCashDropDTO(d cashdrop.CashDrop) CashDropDTO {
	return CashDropDTO{
		ID:                  d.ID,
		DrawerID:            d.DrawerID,
		UserID:              d.UserID,
		Workstation:         d.Workstation,
		Shift:               d.Shift,
		Date:                d.Date,
		DropAmount:          money(d.DropAmount),
		ReceiptAmount:       money(d.ReceiptAmount),
		Variance:            money(d.Variance),
		Breakdown:           fromCounts(d.Breakdown),
		Notes:               d.Notes,
		Status:              string(d.Status),
		AdminCountAmount:    nullMoney(d.AdminCountAmount),
		ReconcileDelta:      nullMoney(d.ReconcileDelta),
		ReconciliationNotes: d.ReconciliationNotes,
		ReconciledBy:        d.ReconciledBy,
		ReconciledAt:        nullTimestamp(d.ReconciledAt),
		IgnoreReason:        d.IgnoreReason,
		BankDropBatchNumber: d.BankDropBatchNumber,
		SubmittedAt:         nullTimestamp(d.SubmittedAt),
		CreatedAt:           timestamp(d.CreatedAt),
		UpdatedAt:           timestamp(d.UpdatedAt),
	}
}

func toCashDropDTOs(drops []cashdrop.CashDrop) []CashDropDTO {
	out := make([]CashDropDTO, len(drops))
	for i, d := range drops {
		out[i] = toCashDropDTO(d)
	}
	return out
}

func toDrawerDTO(d cashdrop.Drawer) DrawerDTO {
	return DrawerDTO{
		ID:           d.ID,
		UserID:       d.UserID,
		Workstation:  d.Workstation,
		Shift:        d.Shift,
		Date:         d.Date,
		StartingCash: money(d.StartingCash),
		TotalCash:    money(d.TotalCash),
		Counts:       fromCounts(d.Counts),
		Status:       string(d.Status),
		CreatedAt:    timestamp(d.CreatedAt),
		UpdatedAt:    timestamp(d.UpdatedAt),
	}
}

func toSummaryDTO(s cashdrop.Summary) SummaryDTO {
	return SummaryDTO{
		Count:       s.Count,
		TotalAmount: money(s.TotalAmount),
		Totals:      fromCounts(s.Totals),
	}
}

func toCommitResponse(r *cashdrop.CommitResult) CommitResponse {
	resp := CommitResponse{
		UpdatedCount: r.UpdatedCount,
		UpdatedIDs:   r.UpdatedIDs,
		BatchNumber:  r.BatchNumber,
		Errors:       make([]ItemErrorDTO, len(r.Errors)),
	}
	if resp.UpdatedIDs == nil {
		resp.UpdatedIDs = []string{}
	}
	for i, e := range r.Errors {
		resp.Errors[i] = ItemErrorDTO{ID: e.ID, Error: e.Message}
	}
	return resp
}

func toSettingsDTO(s cashdrop.Settings) SettingsDTO {
	dto := SettingsDTO{
		MaxCashDropsPerDay: s.MaxCashDropsPerDay,
		StartingAmount:     s.StartingAmount,
		Shifts:             s.Shifts,
		Workstations:       s.Workstations,
		UpdatedAt:          timestamp(s.UpdatedAt),
	}
	if dto.Shifts == nil {
		dto.Shifts = []string{}
	}
	if dto.Workstations == nil {
		dto.Workstations = []string{}
	}
	return dto
}
