package store

import (
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

// SampleExpenses are dated relative to now: today, then one, two and three
// days back.
func SampleExpenses(now time.Time) []models.Expense {
	return []models.Expense{
		{ID: 1, Title: "Dinner at Restaurant", Amount: 85.00, Category: "food", Date: now, Notes: "Dinner with friends"},
		{ID: 2, Title: "Grocery Shopping", Amount: 120.50, Category: "groceries", Date: now.Add(-24 * time.Hour), Notes: "Weekly groceries"},
		{ID: 3, Title: "Gas Station", Amount: 45.00, Category: "transportation", Date: now.Add(-48 * time.Hour), Notes: "Filled up the tank"},
		{ID: 4, Title: "Movie Tickets", Amount: 32.00, Category: "entertainment", Date: now.Add(-72 * time.Hour), Notes: "Weekend movie"},
	}
}

func SampleCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Food & Dining", Icon: "fa-utensils", Color: "#727cf5", Budget: 500, Spent: 350, Transactions: 15},
		{ID: 2, Name: "Transportation", Icon: "fa-car", Color: "#0acf97", Budget: 300, Spent: 120, Transactions: 8},
		{ID: 3, Name: "Entertainment", Icon: "fa-film", Color: "#ff9f43", Budget: 200, Spent: 85, Transactions: 4},
		{ID: 4, Name: "Groceries", Icon: "fa-shopping-basket", Color: "#fa5c7c", Budget: 400, Spent: 210, Transactions: 6},
		{ID: 5, Name: "Utilities", Icon: "fa-bolt", Color: "#323a46", Budget: 250, Spent: 150, Transactions: 3},
	}
}

func SampleBudgets() []models.Budget {
	return []models.Budget{
		{ID: 1, Category: "Food & Dining", Amount: 500, Spent: 350, Icon: "fa-utensils", Color: "#727cf5"},
		{ID: 2, Category: "Transportation", Amount: 300, Spent: 120, Icon: "fa-car", Color: "#0acf97"},
		{ID: 3, Category: "Entertainment", Amount: 200, Spent: 85, Icon: "fa-film", Color: "#ff9f43"},
		{ID: 4, Category: "Groceries", Amount: 400, Spent: 210, Icon: "fa-shopping-basket", Color: "#fa5c7c"},
		{ID: 5, Category: "Utilities", Amount: 250, Spent: 150, Icon: "fa-bolt", Color: "#323a46"},
	}
}
