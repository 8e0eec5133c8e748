package models

import "time"

type Expense struct {
	ID          int       `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Amount      float64   `json:"amount" yaml:"amount"`
	Category    string    `json:"category" yaml:"category"`
	Date        time.Time `json:"date" yaml:"date"`
	Notes       string    `json:"notes" yaml:"notes"`
}

// Label is the free-text name shown for the expense; older records only
// carry a description.
func (e Expense) Label() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Description
}

// NextExpenseID returns max(id)+1, or 1 for an empty collection.
func NextExpenseID(expenses []Expense) int {
	next := 1
	for _, e := range expenses {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return next
}
