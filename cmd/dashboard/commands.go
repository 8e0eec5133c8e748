package main

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/GregMSThompson/expense-dashboard/internal/dashboard"
	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/render"
	"github.com/GregMSThompson/expense-dashboard/internal/settings"
)

type filterFlags struct {
	search   string
	category string
	sort     string
	period   string
	page     int
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "Match title, description, or category")
	cmd.Flags().StringVar(&f.category, "category", dto.CategoryAll, "Category slug, or 'all'")
	cmd.Flags().StringVar(&f.sort, "sort", string(dto.SortDateDesc), "date-desc, date-asc, amount-desc, amount-asc")
	cmd.Flags().StringVar(&f.period, "period", string(dto.PeriodAll), "all, week, month, quarter, year, custom")
	cmd.Flags().IntVar(&f.page, "page", 1, "Table page")
}

func (f *filterFlags) actions() []dashboard.Action {
	return []dashboard.Action{
		dashboard.SetSearch(f.search),
		dashboard.SetCategory(f.category),
		dashboard.SetSort(dto.SortKey(f.sort)),
		dashboard.SetPeriod(dto.Period(f.period)),
		dashboard.GotoPage(f.page),
	}
}

// load refreshes the cache and applies the filter flags, keeping the
// refresh notices on the final view.
func (a *app) load(f *filterFlags) (dto.ReportView, error) {
	view, err := a.controller.Load(a.ctx)
	if err != nil {
		return dto.ReportView{}, err
	}
	return applyFilters(a.controller, view.Notices, f.actions())
}

// applyFilters dispatches each action and prefixes the final view's notices
// with the ones already shown.
func applyFilters(c *dashboard.Controller, notices []dto.Notice, actions []dashboard.Action) (dto.ReportView, error) {
	view, err := c.View()
	if err != nil {
		return dto.ReportView{}, err
	}
	for _, action := range actions {
		next, err := c.Dispatch(action)
		if err != nil {
			return dto.ReportView{}, err
		}
		view = next
	}
	view.Notices = slices.Concat(notices, view.Notices)
	return view, nil
}

func (a *app) reportCmd() *cobra.Command {
	f := &filterFlags{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the summary, category breakdown, monthly trend and expense table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := a.load(f)
			if err != nil {
				return err
			}
			a.console.Report(view)
			if a.prefs.ShowRecentTransactions {
				a.console.Expenses(a.controller.Cache().Recent())
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

type expenseFlags struct {
	title       string
	description string
	amount      string
	category    string
	date        string
	notes       string
}

func (e *expenseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&e.title, "title", "", "Expense title")
	cmd.Flags().StringVar(&e.description, "description", "", "Longer description")
	cmd.Flags().StringVar(&e.amount, "amount", "", "Amount, e.g. 12.50")
	cmd.Flags().StringVar(&e.category, "category", "", "Category slug, e.g. food")
	cmd.Flags().StringVar(&e.date, "date", "", "Date as YYYY-MM-DD or RFC 3339 (default now)")
	cmd.Flags().StringVar(&e.notes, "notes", "", "Free-form notes")
}

func (e *expenseFlags) parse(cmd *cobra.Command) (amount dto.Amount, date *dto.Date, notes *string, err error) {
	if e.amount != "" {
		v, perr := strconv.ParseFloat(e.amount, 64)
		if perr != nil {
			return 0, nil, nil, errs.NewValidationError(fmt.Sprintf("amount %q is not a number", e.amount))
		}
		amount = dto.Amount(v)
	}
	if e.date != "" {
		t, perr := dto.ParseDate(e.date)
		if perr != nil {
			return 0, nil, nil, perr
		}
		date = &dto.Date{Time: t}
	}
	if cmd.Flags().Changed("notes") {
		notes = &e.notes
	}
	return amount, date, notes, nil
}

func (a *app) addCmd() *cobra.Command {
	e := &expenseFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense",
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, date, notes, err := e.parse(cmd)
			if err != nil {
				return err
			}
			if _, err := a.controller.Load(a.ctx); err != nil {
				return err
			}
			view, err := a.controller.AddExpense(a.ctx, dto.CreateExpenseRequest{
				Title:       e.title,
				Description: e.description,
				Amount:      amount,
				Category:    e.category,
				Date:        date,
				Notes:       notes,
			})
			if err != nil {
				return err
			}
			a.console.Report(view)
			return nil
		},
	}
	e.register(cmd)
	return cmd
}

func (a *app) updateCmd() *cobra.Command {
	e := &expenseFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			amount, date, notes, err := e.parse(cmd)
			if err != nil {
				return err
			}
			if _, err := a.controller.Load(a.ctx); err != nil {
				return err
			}
			view, err := a.controller.UpdateExpense(a.ctx, id, dto.UpdateExpenseRequest{
				Title:       e.title,
				Description: e.description,
				Amount:      amount,
				Category:    e.category,
				Date:        date,
				Notes:       notes,
			})
			if err != nil {
				return err
			}
			a.console.Report(view)
			return nil
		},
	}
	e.register(cmd)
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.controller.Load(a.ctx); err != nil {
				return err
			}
			view, err := a.controller.DeleteExpense(a.ctx, id)
			if err != nil {
				return err
			}
			a.console.Report(view)
			return nil
		},
	}
}

func (a *app) budgetsCmd() *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Show budgets and how much of each is spent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			budgets, err := a.client.ListBudgets(a.ctx, month)
			if errs.IsUnavailable(err) {
				view, lerr := a.controller.Load(a.ctx)
				if lerr != nil {
					return lerr
				}
				for _, n := range view.Notices {
					a.console.Notice(n)
				}
				budgets, err = a.controller.Cache().Budgets(), nil
			}
			if err != nil {
				return err
			}
			a.console.Budgets(budgets)
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", time.Now().Format("2006-01"), "Month as YYYY-MM; empty for all")
	return cmd
}

func (a *app) chartsCmd() *cobra.Command {
	f := &filterFlags{}
	var dir string
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Write the category and monthly trend charts as PNG files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := a.load(f)
			if err != nil {
				return err
			}
			for _, n := range view.Notices {
				a.console.Notice(n)
			}

			charts := render.NewChartGenerator(a.prefs.CurrencySymbol())
			donut, err := charts.CategoryDonut(view.Categories)
			if err != nil {
				return err
			}
			trend, err := charts.MonthlyTrend(view.MonthlyTrend)
			if err != nil {
				return err
			}
			for _, doc := range []render.Document{
				{ContentType: "image/png", Filename: "category.png", Body: donut},
				{ContentType: "image/png", Filename: "trend.png", Body: trend},
			} {
				path, err := render.WriteFile(dir, doc)
				if err != nil {
					return err
				}
				pterm.Success.Printfln("Saved %s", path)
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default: current directory)")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	f := &filterFlags{}
	var dir, format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered expenses as CSV, JSON, or PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ft, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			view, err := a.load(f)
			if err != nil {
				return err
			}
			for _, n := range view.Notices {
				a.console.Notice(n)
			}
			rows, err := a.engine.Rows(a.controller.Cache().Expenses(), a.controller.State())
			if err != nil {
				return err
			}

			doc, err := render.NewExporter(time.Now, a.prefs.CurrencySymbol()).Export(ft, rows, view)
			if err != nil {
				return err
			}
			path, err := render.WriteFile(dir, doc)
			if err != nil {
				return err
			}
			pterm.Success.Printfln("Report exported successfully! %s", path)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&format, "format", string(render.FormatCSV), "csv, json, or pdf")
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default: current directory)")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the server's spending statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := a.client.Statistics(a.ctx)
			if err != nil {
				return err
			}
			a.console.Statistics(stats)
			return nil
		},
	}
}

func (a *app) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data := pterm.TableData{{"Setting", "Value"}}
			for _, key := range settings.Keys() {
				v, _ := a.prefs.Get(key)
				data = append(data, []string{key, v})
			}
			return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.prefs.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting and save it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := a.prefs.Set(args[0], args[1])
			if err != nil {
				return err
			}
			if err := a.store.Save(next); err != nil {
				return err
			}
			a.prefs = next
			pterm.Success.Printfln("Settings saved successfully! (%s)", a.store.Path())
			return nil
		},
	})
	return cmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, errs.NewValidationError("id must be a positive integer")
	}
	return id, nil
}
