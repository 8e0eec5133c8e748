package reports

import "strings"

type MetaEntry struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryMeta holds display attributes keyed by lower-case category slug.
type CategoryMeta map[string]MetaEntry

const otherCategory = "other"

func DefaultCategoryMeta() CategoryMeta {
	return CategoryMeta{
		"food":           {Name: "Food & Dining", Icon: "fa-utensils", Color: "#727cf5"},
		"groceries":      {Name: "Groceries", Icon: "fa-shopping-basket", Color: "#fa5c7c"},
		"transportation": {Name: "Transportation", Icon: "fa-car", Color: "#0acf97"},
		"entertainment":  {Name: "Entertainment", Icon: "fa-film", Color: "#ff9f43"},
		"utilities":      {Name: "Utilities", Icon: "fa-bolt", Color: "#323a46"},
		"shopping":       {Name: "Shopping", Icon: "fa-shopping-bag", Color: "#6c757d"},
		"health":         {Name: "Health", Icon: "fa-heartbeat", Color: "#39afd1"},
		otherCategory:    {Name: "Other", Icon: "fa-tag", Color: "#6c757d"},
	}
}

// Lookup matches either the slug ("food") or the display name
// ("Food & Dining"). Unknown categories keep their own name with the
// "other" icon and color.
func (m CategoryMeta) Lookup(category string) MetaEntry {
	key := strings.ToLower(strings.TrimSpace(category))
	if e, ok := m[key]; ok {
		return e
	}
	for _, e := range m {
		if strings.EqualFold(e.Name, category) {
			return e
		}
	}
	fallback := m[otherCategory]
	if category != "" {
		fallback.Name = category
	}
	return fallback
}
