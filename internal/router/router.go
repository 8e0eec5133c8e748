package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GregMSThompson/expense-dashboard/internal/handlers"
	"github.com/GregMSThompson/expense-dashboard/internal/middleware"
)

func NewRouter(deps *handlers.Deps, corsOrigins []string) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(lm.RequestTiming)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	exh := handlers.NewExpenseHandlers(deps)
	cah := handlers.NewCategoryHandlers(deps)
	buh := handlers.NewBudgetHandlers(deps)
	reh := handlers.NewReportHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/expenses", exh.ExpenseRoutes())
		r.Get("/statistics", exh.GetStatistics)
		r.Mount("/categories", cah.CategoryRoutes())
		r.Mount("/budgets", buh.BudgetRoutes())
		r.Mount("/reports", reh.ReportRoutes())
	})
	return r
}
