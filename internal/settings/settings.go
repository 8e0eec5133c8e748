// Package settings persists the dashboard's user preferences in a local
// file. The file extension picks the format: .yaml/.yml, .toml or .json.
package settings

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
)

type Notifications struct {
	Email           bool `json:"email" yaml:"email" toml:"email"`
	Push            bool `json:"push" yaml:"push" toml:"push"`
	SMS             bool `json:"sms" yaml:"sms" toml:"sms"`
	BudgetAlerts    bool `json:"budgetAlerts" yaml:"budgetAlerts" toml:"budgetAlerts"`
	UnusualActivity bool `json:"unusualActivity" yaml:"unusualActivity" toml:"unusualActivity"`
	WeeklySummary   bool `json:"weeklySummary" yaml:"weeklySummary" toml:"weeklySummary"`
}

type UserSettings struct {
	Theme                  string        `json:"theme" yaml:"theme" toml:"theme"`
	Currency               string        `json:"currency" yaml:"currency" toml:"currency"`
	DateFormat             string        `json:"dateFormat" yaml:"dateFormat" toml:"dateFormat"`
	DashboardView          string        `json:"dashboardView" yaml:"dashboardView" toml:"dashboardView"`
	ShowRecentTransactions bool          `json:"showRecentTransactions" yaml:"showRecentTransactions" toml:"showRecentTransactions"`
	Notifications          Notifications `json:"notifications" yaml:"notifications" toml:"notifications"`
}

var (
	themes         = []string{"light", "dark", "system"}
	currencies     = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "INR"}
	dateFormats    = []string{"MM/DD/YYYY", "DD/MM/YYYY", "YYYY-MM-DD"}
	dashboardViews = []string{"summary", "detailed"}
)

func Defaults() UserSettings {
	return UserSettings{
		Theme:                  "light",
		Currency:               "USD",
		DateFormat:             "MM/DD/YYYY",
		DashboardView:          "summary",
		ShowRecentTransactions: true,
		Notifications: Notifications{
			Email:           true,
			Push:            true,
			SMS:             false,
			BudgetAlerts:    true,
			UnusualActivity: true,
			WeeklySummary:   true,
		},
	}
}

// withDefaults fills blank string fields, the way a partially written file
// falls back field by field.
func (s UserSettings) withDefaults() UserSettings {
	d := Defaults()
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	if s.Currency == "" {
		s.Currency = d.Currency
	}
	if s.DateFormat == "" {
		s.DateFormat = d.DateFormat
	}
	if s.DashboardView == "" {
		s.DashboardView = d.DashboardView
	}
	return s
}

// CurrencySymbol is used for display only; amounts are never converted.
func (s UserSettings) CurrencySymbol() string {
	switch strings.ToUpper(s.Currency) {
	case "USD", "CAD", "AUD", "":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	case "INR":
		return "₹"
	}
	return s.Currency + " "
}

// DateLayout maps the display format onto a Go time layout.
func (s UserSettings) DateLayout() string {
	switch s.DateFormat {
	case "DD/MM/YYYY":
		return "02/01/2006"
	case "YYYY-MM-DD":
		return "2006-01-02"
	}
	return "01/02/2006"
}

// Keys lists the names accepted by Get and Set.
func Keys() []string {
	return []string{
		"theme", "currency", "dateFormat", "dashboardView", "showRecentTransactions",
		"notifications.email", "notifications.push", "notifications.sms",
		"notifications.budgetAlerts", "notifications.unusualActivity", "notifications.weeklySummary",
	}
}

func (s UserSettings) Get(key string) (string, error) {
	if b := flagOf(&s, key); b != nil {
		return strconv.FormatBool(*b), nil
	}
	switch key {
	case "theme":
		return s.Theme, nil
	case "currency":
		return s.Currency, nil
	case "dateFormat":
		return s.DateFormat, nil
	case "dashboardView":
		return s.DashboardView, nil
	}
	return "", unknownKey(key)
}

// Set returns a copy with key changed, rejecting values outside the known
// options.
func (s UserSettings) Set(key, value string) (UserSettings, error) {
	value = strings.TrimSpace(value)
	if b := flagOf(&s, key); b != nil {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return s, errs.NewValidationError(fmt.Sprintf("%s must be true or false", key))
		}
		*b = v
		return s, nil
	}

	var err error
	switch key {
	case "theme":
		err = oneOf(key, strings.ToLower(value), themes, &s.Theme)
	case "currency":
		err = oneOf(key, strings.ToUpper(value), currencies, &s.Currency)
	case "dateFormat":
		err = oneOf(key, strings.ToUpper(value), dateFormats, &s.DateFormat)
	case "dashboardView":
		err = oneOf(key, strings.ToLower(value), dashboardViews, &s.DashboardView)
	default:
		err = unknownKey(key)
	}
	return s, err
}

func flagOf(s *UserSettings, key string) *bool {
	switch key {
	case "showRecentTransactions":
		return &s.ShowRecentTransactions
	case "notifications.email":
		return &s.Notifications.Email
	case "notifications.push":
		return &s.Notifications.Push
	case "notifications.sms":
		return &s.Notifications.SMS
	case "notifications.budgetAlerts":
		return &s.Notifications.BudgetAlerts
	case "notifications.unusualActivity":
		return &s.Notifications.UnusualActivity
	case "notifications.weeklySummary":
		return &s.Notifications.WeeklySummary
	}
	return nil
}

func oneOf(key, value string, allowed []string, dst *string) error {
	if !slices.Contains(allowed, value) {
		return errs.NewValidationError(fmt.Sprintf("%s must be one of: %s", key, strings.Join(allowed, ", ")))
	}
	*dst = value
	return nil
}

func unknownKey(key string) error {
	return errs.NewValidationError(fmt.Sprintf("unknown setting %q; known settings: %s", key, strings.Join(Keys(), ", ")))
}
