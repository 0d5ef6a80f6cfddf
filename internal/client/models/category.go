package models

import "strings"

// CategoryAll is the library filter sentinel that matches every record.
const CategoryAll = "all"

// Category is an entry of the fixed category list offered by the UI.
// Records may still carry any free-form category string.
type Category struct {
	ID   string
	Name string
	Icon string
}

// Categories lists the library filter choices, sentinel first.
var Categories = []Category{
	{ID: CategoryAll, Name: "All Documents", Icon: "folder"},
	{ID: "invoices", Name: "Invoices", Icon: "receipt"},
	{ID: "receipts", Name: "Receipts", Icon: "receipt-long"},
	{ID: "contracts", Name: "Contracts", Icon: "description"},
	{ID: "ids", Name: "IDs", Icon: "badge"},
	{ID: "notes", Name: "Notes", Icon: "note"},
}

// CategoryNames returns the display names of all categories except the
// "all" sentinel.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories)-1)
	for _, c := range Categories {
		if c.ID == CategoryAll {
			continue
		}
		names = append(names, c.Name)
	}
	return names
}

// LookupCategory finds a category by id or display name, ignoring case.
func LookupCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(c.ID, s) || strings.EqualFold(c.Name, s) {
			return c, true
		}
	}
	return Category{}, false
}
