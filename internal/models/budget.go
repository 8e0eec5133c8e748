package models

type Budget struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Spent    float64 `json:"spent"`
	Icon     string  `json:"icon"`
	Color    string  `json:"color"`
	// Month is "YYYY-MM"; empty means the budget applies to every month.
	Month string `json:"month,omitempty"`
}

// Remaining can go negative when the budget is overspent.
func (b Budget) Remaining() float64 {
	return b.Amount - b.Spent
}

func NextBudgetID(budgets []Budget) int {
	next := 1
	for _, b := range budgets {
		if b.ID >= next {
			next = b.ID + 1
		}
	}
	return next
}
