package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/pkg/helpers"
)

// DateLayout is the calendar-day form accepted alongside RFC 3339.
const DateLayout = "2006-01-02"

// Amount accepts a JSON number or a numeric string; form posts send strings.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errs.NewValidationError(fmt.Sprintf("amount %q is not a number", s))
		}
		*a = Amount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return errs.NewValidationError("amount must be a number")
	}
	*a = Amount(v)
	return nil
}

// Date accepts RFC 3339 timestamps or YYYY-MM-DD calendar days.
type Date struct {
	time.Time
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errs.NewValidationError(fmt.Sprintf("date %q must be RFC 3339 or YYYY-MM-DD", s))
	}
	return t, nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errs.NewValidationError("date must be a string")
	}
	if strings.TrimSpace(s) == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

type CreateExpenseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Amount      Amount  `json:"amount"`
	Category    string  `json:"category"`
	Date        *Date   `json:"date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateExpenseRequest is a partial update. Empty strings and a zero amount
// leave the stored value untouched; Notes is applied whenever present.
type UpdateExpenseRequest struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Amount      Amount  `json:"amount,omitempty"`
	Category    string  `json:"category,omitempty"`
	Date        *Date   `json:"date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

const MissingExpenseFields = "Please provide title, amount, and category"

// Expense checks presence of title, a non-zero amount and category, then
// builds the record. The date defaults to now; the id is left to the caller.
func (r CreateExpenseRequest) Expense(now time.Time) (*models.Expense, error) {
	title := strings.TrimSpace(r.Title)
	category := strings.TrimSpace(r.Category)
	if title == "" || r.Amount == 0 || category == "" {
		return nil, errs.NewValidationError(MissingExpenseFields)
	}

	e := &models.Expense{
		Title:       title,
		Description: r.Description,
		Amount:      float64(r.Amount),
		Category:    category,
		Date:        helpers.ValueOr(r.Date, Date{Time: now}).Time,
		Notes:       helpers.Value(r.Notes),
	}
	if e.Date.IsZero() {
		e.Date = now
	}
	return e, nil
}

// Apply copies only the fields that were actually sent.
func (r UpdateExpenseRequest) Apply(e *models.Expense) {
	if t := strings.TrimSpace(r.Title); t != "" {
		e.Title = t
	}
	if r.Description != "" {
		e.Description = r.Description
	}
	if r.Amount != 0 {
		e.Amount = float64(r.Amount)
	}
	if c := strings.TrimSpace(r.Category); c != "" {
		e.Category = c
	}
	if r.Date != nil && !r.Date.IsZero() {
		e.Date = r.Date.Time
	}
	if r.Notes != nil {
		e.Notes = *r.Notes
	}
}
