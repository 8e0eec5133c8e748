package models

import "testing"

func TestNextExpenseID(t *testing.T) {
	cases := []struct {
		name string
		in   []Expense
		want int
	}{
		{name: "empty", in: nil, want: 1},
		{name: "gap", in: []Expense{{ID: 1}, {ID: 3}}, want: 4},
		{name: "unordered", in: []Expense{{ID: 7}, {ID: 2}}, want: 8},
	}
	for _, tc := range cases {
		if got := NextExpenseID(tc.in); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestExpenseLabel_FallsBackToDescription(t *testing.T) {
	e := Expense{Description: "Uber Ride"}
	if e.Label() != "Uber Ride" {
		t.Fatalf("expected description fallback, got %q", e.Label())
	}
	e.Title = "Taxi"
	if e.Label() != "Taxi" {
		t.Fatalf("expected title, got %q", e.Label())
	}
}

func TestBudgetRemaining(t *testing.T) {
	b := Budget{Amount: 200, Spent: 250}
	if b.Remaining() != -50 {
		t.Fatalf("expected -50, got %v", b.Remaining())
	}
}
