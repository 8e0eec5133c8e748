package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/bootstrap"
	"github.com/GregMSThompson/expense-dashboard/internal/config"
	"github.com/GregMSThompson/expense-dashboard/internal/handlers"
	"github.com/GregMSThompson/expense-dashboard/internal/render"
	"github.com/GregMSThompson/expense-dashboard/internal/reports"
	"github.com/GregMSThompson/expense-dashboard/internal/response"
	"github.com/GregMSThompson/expense-dashboard/internal/router"
	"github.com/GregMSThompson/expense-dashboard/internal/services"
	"github.com/GregMSThompson/expense-dashboard/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// helpers
	meta := reports.DefaultCategoryMeta()
	engine := reports.NewEngine(time.Now)

	// stores
	estore := store.NewExpenseStore(bs.Seeds.Expenses)
	cstore := store.NewCategoryStore(bs.Seeds.Categories)
	bstore := store.NewBudgetStore(bs.Seeds.Budgets)

	// services
	exserv := services.NewExpenseService(estore, time.Now)
	caserv := services.NewCategoryService(cstore, meta)
	buserv := services.NewBudgetService(bstore, estore, meta)
	reserv := services.NewReportService(estore, engine)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.ExpenseSvc = exserv
	deps.CategorySvc = caserv
	deps.BudgetSvc = buserv
	deps.ReportSvc = reserv
	deps.Charts = render.NewChartGenerator("$")
	deps.Exporter = render.NewExporter(time.Now, "$")
	deps.StatisticsMaxAge = cfg.StatisticsMaxAge

	// router
	r := router.NewRouter(deps, cfg.CORSOrigins)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		bs.Log.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			bs.Log.Error("server shutdown error", "error", err)
		}
	}()

	bs.Log.Info("server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		exitOnError("server start failed", err, bs.Log)
	}
	<-idle
	bs.Log.Info("server stopped")
}
