package dto

type CountAmount struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type Statistics struct {
	Total          CountAmount            `json:"total"`
	Categories     map[string]CountAmount `json:"categories"`
	CategoryTotals map[string]float64     `json:"categoryTotals"`
	Recent         CountAmount            `json:"recent"`
	AvgDailySpend  float64                `json:"avgDailySpend"`
}
