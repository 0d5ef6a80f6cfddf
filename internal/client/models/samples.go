package models

// SampleDocuments returns the demo library used when the client starts
// with seeding enabled. Each call returns fresh copies.
func SampleDocuments() []Document {
	return []Document{
		{ID: "1", Title: "Invoice #1234", Date: "2023-05-15", Category: "Invoices", Tags: []string{"business", "tax"}, LastViewed: "2023-06-01"},
		{ID: "2", Title: "Receipt - Office Supplies", Date: "2023-05-10", Category: "Receipts", Tags: []string{"business", "expense"}, LastViewed: "2023-05-20"},
		{ID: "3", Title: "Rental Agreement", Date: "2023-04-01", Category: "Contracts", Tags: []string{"personal", "important"}, LastViewed: "2023-05-15"},
		{ID: "4", Title: "Driver License", Date: "2023-03-15", Category: "IDs", Tags: []string{"personal", "important"}, LastViewed: "2023-04-10"},
		{ID: "5", Title: "Meeting Notes", Date: "2023-05-05", Category: "Notes", Tags: []string{"business"}, LastViewed: "2023-05-06"},
		{ID: "6", Title: "Internet Bill", Date: "2023-05-20", Category: "Invoices", Tags: []string{"personal", "bill"}, LastViewed: "2023-05-21"},
		{ID: "7", Title: "Health Insurance", Date: "2023-02-10", Category: "Contracts", Tags: []string{"personal", "health", "important"}, LastViewed: "2023-03-15"},
		{ID: "8", Title: "Project Proposal", Date: "2023-05-18", Category: "Notes", Tags: []string{"business", "project"}, LastViewed: "2023-05-19"},
	}
}
