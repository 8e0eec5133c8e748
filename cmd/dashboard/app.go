package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	backendclient "github.com/GregMSThompson/expense-dashboard/internal/client/backend"
	"github.com/GregMSThompson/expense-dashboard/internal/dashboard"
	"github.com/GregMSThompson/expense-dashboard/internal/render"
	"github.com/GregMSThompson/expense-dashboard/internal/reports"
	"github.com/GregMSThompson/expense-dashboard/internal/settings"
	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

const defaultAPIURL = "http://localhost:3000/api"

// app wires the dashboard for one command invocation.
type app struct {
	rootCmd *cobra.Command

	apiURL       string
	settingsPath string
	logLevel     string
	timeout      time.Duration

	ctx        context.Context
	prefs      settings.UserSettings
	store      *settings.Store
	client     *backendclient.Adapter
	engine     *reports.Engine
	controller *dashboard.Controller
	console    *render.Console
}

func newApp() *app {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "expense-dashboard",
		Short:         "Expense dashboard client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}

	apiURL := os.Getenv("EXPENSE_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", apiURL, "Base URL of the expense API")
	rootCmd.PersistentFlags().StringVar(&a.settingsPath, "settings", defaultSettingsPath(), "Path to a YAML, TOML, or JSON settings file")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 5*time.Second, "Timeout for each backend request")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "error", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		a.reportCmd(),
		a.addCmd(),
		a.updateCmd(),
		a.deleteCmd(),
		a.budgetsCmd(),
		a.chartsCmd(),
		a.exportCmd(),
		a.statsCmd(),
		a.settingsCmd(),
	)

	a.rootCmd = rootCmd
	return a
}

func (a *app) Execute() error {
	return a.rootCmd.ExecuteContext(context.Background())
}

func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.New(a.logLevel, logger.NewConsoleHandler)
	a.ctx = logger.ToContext(ctx, log)

	a.store = settings.NewStore(a.settingsPath)
	prefs, err := a.store.Load()
	if err != nil {
		return err
	}
	a.prefs = prefs

	a.client = backendclient.NewAdapter(a.apiURL, a.timeout)
	a.engine = reports.NewEngine(time.Now)
	a.controller = dashboard.NewController(dashboard.NewCache(a.client, time.Now), a.engine)
	a.console = render.NewConsole(prefs.CurrencySymbol(), prefs.DateLayout())
	return nil
}

func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "settings.yaml"
	}
	return filepath.Join(home, ".expense-dashboard", "settings.yaml")
}
