package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

var (
	boldCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	boldGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	boldYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	boldRed    = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Console prints report views as terminal tables.
type Console struct {
	Out        io.Writer
	Currency   string
	DateLayout string
}

func NewConsole(currency, dateLayout string) *Console {
	if currency == "" {
		currency = "$"
	}
	if dateLayout == "" {
		dateLayout = "01/02/2006"
	}
	return &Console{Out: os.Stdout, Currency: currency, DateLayout: dateLayout}
}

func (c *Console) Notice(n dto.Notice) {
	switch n.Level {
	case dto.NoticeWarning:
		fmt.Fprint(c.Out, pterm.Warning.Sprintln(n.Message))
	case dto.NoticeError:
		fmt.Fprint(c.Out, pterm.Error.Sprintln(n.Message))
	case dto.NoticeSuccess:
		fmt.Fprint(c.Out, pterm.Success.Sprintln(n.Message))
	default:
		fmt.Fprint(c.Out, pterm.Info.Sprintln(n.Message))
	}
}

func (c *Console) Report(view dto.ReportView) {
	for _, n := range view.Notices {
		c.Notice(n)
	}
	c.summary(view)
	c.categories(view.Categories)
	c.trend(view.MonthlyTrend)
	c.Table(view.Table)
}

func (c *Console) summary(view dto.ReportView) {
	s := view.Summary
	top := "-"
	if s.TopCategory != nil {
		top = fmt.Sprintf("%s %s (%.1f%%)", s.TopCategory.Name, c.money(s.TopCategory.Amount), s.TopCategory.Percentage)
	}
	data := pterm.TableData{
		{"Period", "Total Spent", "Transactions", "Avg / Day", "Top Category"},
		{view.PeriodLabel, boldGreen(c.money(s.TotalAmount)), fmt.Sprint(s.TotalCount), c.money(s.AvgDailySpend), top},
	}
	c.render("Summary", data)
}

func (c *Console) categories(items []dto.CategoryBreakdown) {
	if len(items) == 0 {
		return
	}
	data := pterm.TableData{{"Category", "Amount", "Count", "Share"}}
	for _, item := range items {
		data = append(data, []string{item.Name, c.money(item.Amount), fmt.Sprint(item.Count), fmt.Sprintf("%.1f%%", item.Percentage)})
	}
	c.render("By Category", data)
}

// trend draws proportional bars, scaled to the busiest month.
func (c *Console) trend(points []dto.MonthlyPoint) {
	if len(points) == 0 {
		return
	}
	maxAmount := 0.0
	for _, p := range points {
		maxAmount = max(maxAmount, p.Amount)
	}

	data := pterm.TableData{{"Month", "Amount", ""}}
	for _, p := range points {
		bar := ""
		if maxAmount > 0 && p.Amount > 0 {
			bar = strings.Repeat("█", max(1, int(p.Amount/maxAmount*40)))
		}
		data = append(data, []string{p.Label, c.money(p.Amount), pterm.FgBlue.Sprint(bar)})
	}
	c.render("Monthly Trend", data)
}

func (c *Console) Table(page dto.TablePage) {
	data := pterm.TableData{{"ID", "Date", "Description", "Category", "Amount"}}
	for _, r := range page.Rows {
		data = append(data, c.row(r))
	}
	c.render("Expenses", data)
	fmt.Fprintf(c.Out, "Showing %d-%d of %d entries (page %d of %d)\n",
		page.Start, page.End, page.TotalItems, page.Page, max(1, page.TotalPages))
}

func (c *Console) Expenses(expenses []models.Expense) {
	data := pterm.TableData{{"ID", "Date", "Description", "Category", "Amount"}}
	for _, e := range expenses {
		data = append(data, c.row(e))
	}
	c.render("Recent Expenses", data)
}

func (c *Console) Budgets(budgets []models.Budget) {
	data := pterm.TableData{{"Category", "Budget", "Spent", "Remaining", "Used"}}
	for _, b := range budgets {
		used := 0.0
		if b.Amount > 0 {
			used = b.Spent / b.Amount * 100
		}
		remaining := c.money(b.Remaining())
		switch {
		case used >= 100:
			remaining = boldRed(remaining)
		case used >= 80:
			remaining = boldYellow(remaining)
		}
		data = append(data, []string{b.Category, c.money(b.Amount), c.money(b.Spent), remaining, fmt.Sprintf("%.0f%%", used)})
	}
	c.render("Budgets", data)
}

func (c *Console) Statistics(stats dto.Statistics) {
	data := pterm.TableData{
		{"Total", "Count", "Last 30 Days", "Avg / Day (7d)"},
		{c.money(stats.Total.Amount), fmt.Sprint(stats.Total.Count), c.money(stats.Recent.Amount), c.money(stats.AvgDailySpend)},
	}
	c.render("Statistics", data)
}

func (c *Console) row(e models.Expense) []string {
	return []string{fmt.Sprint(e.ID), e.Date.Format(c.DateLayout), e.Label(), e.Category, c.money(e.Amount)}
}

func (c *Console) render(title string, data pterm.TableData) {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(data).
		Srender()
	if err != nil {
		fmt.Fprintf(c.Out, "%s: %v\n", title, err)
		return
	}
	fmt.Fprintln(c.Out, boldCyan(title))
	fmt.Fprintln(c.Out, table)
}

func (c *Console) money(v float64) string {
	return fmt.Sprintf("%s%.2f", c.Currency, v)
}
