package dto

type CreateCategoryRequest struct {
	Name   string  `json:"name"`
	Icon   string  `json:"icon,omitempty"`
	Color  string  `json:"color,omitempty"`
	Budget float64 `json:"budget,omitempty"`
}

type UpdateCategoryRequest struct {
	Name   *string  `json:"name,omitempty"`
	Icon   *string  `json:"icon,omitempty"`
	Color  *string  `json:"color,omitempty"`
	Budget *float64 `json:"budget,omitempty"`
}

// BudgetRequest creates or replaces the budget for one category name.
type BudgetRequest struct {
	Category string  `json:"category"`
	Amount   Amount  `json:"amount"`
	Month    string  `json:"month,omitempty"`
	Icon     string  `json:"icon,omitempty"`
	Color    string  `json:"color,omitempty"`
	Spent    float64 `json:"spent,omitempty"`
}
