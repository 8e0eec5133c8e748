package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatPDF:
		return f, nil
	case "":
		return FormatCSV, nil
	}
	return "", errs.NewValidationError("format must be one of: csv, json, pdf")
}

// Document is a rendered export ready to be written or served.
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

type Exporter struct {
	Now      func() time.Time
	Currency string
}

func NewExporter(now func() time.Time, currency string) *Exporter {
	if now == nil {
		now = time.Now
	}
	if currency == "" {
		currency = "$"
	}
	return &Exporter{Now: now, Currency: currency}
}

func (e *Exporter) Export(format Format, rows []models.Expense, view dto.ReportView) (Document, error) {
	base := "expense-report-" + e.Now().Format("20060102-150405")
	switch format {
	case FormatCSV:
		body, err := e.csv(rows)
		return Document{ContentType: "text/csv", Filename: base + ".csv", Body: body}, err
	case FormatJSON:
		body, err := e.json(rows, view)
		return Document{ContentType: "application/json", Filename: base + ".json", Body: body}, err
	case FormatPDF:
		body, err := e.pdf(rows, view)
		return Document{ContentType: "application/pdf", Filename: base + ".pdf", Body: body}, err
	}
	return Document{}, errs.NewValidationError("format must be one of: csv, json, pdf")
}

func (e *Exporter) csv(rows []models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Date", "Title", "Category", "Amount", "Notes"}); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.ID),
			r.Date.Format(dto.DateLayout),
			r.Label(),
			r.Category,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Notes,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

type jsonExport struct {
	GeneratedAt  time.Time               `json:"generatedAt"`
	Filter       dto.ReportFilter        `json:"filter"`
	PeriodLabel  string                  `json:"periodLabel"`
	Summary      dto.Summary             `json:"summary"`
	Categories   []dto.CategoryBreakdown `json:"categories"`
	MonthlyTrend []dto.MonthlyPoint      `json:"monthlyTrend"`
	Expenses     []models.Expense        `json:"expenses"`
}

func (e *Exporter) json(rows []models.Expense, view dto.ReportView) ([]byte, error) {
	out := jsonExport{
		GeneratedAt:  e.Now(),
		Filter:       view.Filter,
		PeriodLabel:  view.PeriodLabel,
		Summary:      view.Summary,
		Categories:   view.Categories,
		MonthlyTrend: view.MonthlyTrend,
		Expenses:     rows,
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding JSON export: %w", err)
	}
	return b, nil
}

func (e *Exporter) pdf(rows []models.Expense, view dto.ReportView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFillColor(114, 124, 245)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Expense Report: "+view.PeriodLabel), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	pdf.SetTextColor(50, 50, 50)
	section := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(3)
		pdf.SetFont("Arial", "", 10)
	}

	section("Summary")
	s := view.Summary
	pdf.CellFormat(95, 6, tr(fmt.Sprintf("Total spent: %s", e.money(s.TotalAmount))), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr(fmt.Sprintf("Transactions: %d", s.TotalCount)), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr(fmt.Sprintf("Average per day: %s", e.money(s.AvgDailySpend))), "", 0, "L", false, 0, "")
	top := "-"
	if s.TopCategory != nil {
		top = fmt.Sprintf("%s (%.1f%%)", s.TopCategory.Name, s.TopCategory.Percentage)
	}
	pdf.CellFormat(95, 6, tr("Top category: "+top), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	if len(view.Categories) > 0 {
		section("By Category")
		for _, c := range view.Categories {
			pdf.CellFormat(100, 6, tr(c.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(45, 6, e.money(c.Amount), "", 0, "R", false, 0, "")
			pdf.CellFormat(45, 6, fmt.Sprintf("%.1f%%", c.Percentage), "", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	section("Expenses")
	pdf.SetFont("Arial", "B", 10)
	widths := []float64{28, 82, 45, 35}
	for i, h := range []string{"Date", "Description", "Category", "Amount"} {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, r.Date.Format(dto.DateLayout), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(truncate(r.Label(), 45)), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(truncate(r.Category, 22)), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, e.money(r.Amount), "", 1, "R", false, 0, "")
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 10, "Generated "+e.Now().Format(dto.DateLayout), "", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) money(v float64) string {
	return fmt.Sprintf("%s%.2f", e.Currency, v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// WriteFile stores the document under dir, creating it when missing, and
// returns the absolute path.
func WriteFile(dir string, doc Document) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}
	return filepath.Abs(path)
}
