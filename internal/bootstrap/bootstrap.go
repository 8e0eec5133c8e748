package bootstrap

import (
	"log/slog"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/config"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/store"
	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

type Bootstrap struct {
	Log   *slog.Logger
	Seeds Seeds
}

// Seeds are the initial collections handed to the in-memory stores.
type Seeds struct {
	Expenses   []models.Expense
	Categories []models.Category
	Budgets    []models.Budget
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)
	bs.Log = logger.New(cfg.LogLevel, logger.NewStructuredHandler)

	if err := cfg.Validate(); err != nil {
		return bs, err
	}
	if cfg.SeedSamples {
		bs.Seeds = sampleSeeds(time.Now())
		bs.Log.Info("seeded sample data",
			"expenses", len(bs.Seeds.Expenses),
			"categories", len(bs.Seeds.Categories),
			"budgets", len(bs.Seeds.Budgets))
	}
	return bs, nil
}

func sampleSeeds(now time.Time) Seeds {
	return Seeds{
		Expenses:   store.SampleExpenses(now),
		Categories: store.SampleCategories(),
		Budgets:    store.SampleBudgets(),
	}
}
