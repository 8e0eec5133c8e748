// Package backendclient talks to the expense REST API. Transport failures
// and 5xx answers come back as errs.UnavailableError; every other non-2xx
// answer is rebuilt into its typed error so callers can tell an unreachable
// backend from a rejected request.
package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

const backendUnreachable = "backend unreachable"

type Adapter struct {
	baseURL string
	client  *http.Client
}

func NewAdapter(baseURL string, timeout time.Duration) *Adapter {
	return &Adapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (a *Adapter) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	if err := a.do(ctx, http.MethodGet, "/expenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Adapter) GetExpense(ctx context.Context, id int) (*models.Expense, error) {
	var out models.Expense
	if err := a.do(ctx, http.MethodGet, "/expenses/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Adapter) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*models.Expense, error) {
	var out models.Expense
	if err := a.do(ctx, http.MethodPost, "/expenses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Adapter) UpdateExpense(ctx context.Context, id int, req dto.UpdateExpenseRequest) (*models.Expense, error) {
	var out models.Expense
	if err := a.do(ctx, http.MethodPut, "/expenses/"+strconv.Itoa(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Adapter) DeleteExpense(ctx context.Context, id int) (*models.Expense, error) {
	var out models.Expense
	if err := a.do(ctx, http.MethodDelete, "/expenses/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Adapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := a.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Adapter) ListBudgets(ctx context.Context, month string) ([]models.Budget, error) {
	path := "/budgets"
	if month != "" {
		path += "?month=" + url.QueryEscape(month)
	}
	var out []models.Budget
	if err := a.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Adapter) Statistics(ctx context.Context) (dto.Statistics, error) {
	var out dto.Statistics
	if err := a.do(ctx, http.MethodGet, "/statistics", nil, &out); err != nil {
		return dto.Statistics{}, err
	}
	return out, nil
}

func (a *Adapter) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		return errs.NewUnavailableError(backendUnreachable, err)
	}
	defer resp.Body.Close()

	if logger.IsDebugEnabled(ctx) {
		logger.FromContext(ctx).Debug("backend call", "method", method, "path", path, "status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.FromStatus(resp.StatusCode, errorMessage(resp))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewUnavailableError("backend sent an unreadable response", err)
	}
	return nil
}

// errorMessage reads {message} from an error body, falling back to the
// status text when the body has none.
func errorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(resp.StatusCode)
}
