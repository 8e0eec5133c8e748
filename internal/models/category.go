package models

type Category struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Icon         string  `json:"icon"`
	Color        string  `json:"color"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
	Transactions int     `json:"transactions"`
}

func NextCategoryID(categories []Category) int {
	next := 1
	for _, c := range categories {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}
