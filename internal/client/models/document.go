// Package models defines the client-side data model of SmartScan: scanned
// document records, the partial records used to update them, categories and
// app settings.
package models

import (
	"slices"
	"time"
)

// DateLayout is the ISO calendar-date layout used for Date and LastViewed.
const DateLayout = time.DateOnly

// Defaults applied to a record on first insert.
const (
	DefaultTitle    = "New Document"
	DefaultCategory = "Uncategorized"
)

// Document is a scanned or manually entered document record.
type Document struct {
	// ID is assigned on first save and never changes afterwards.
	ID string `json:"id"`

	Title string `json:"title"`

	// Date is the authoring date, YYYY-MM-DD.
	Date string `json:"date"`

	Category string `json:"category"`

	// Tags is an ordered list; duplicates are allowed.
	Tags []string `json:"tags"`

	// Preview references the thumbnail image. Empty means "show a placeholder".
	Preview string `json:"preview,omitempty"`

	OCRText string `json:"ocrText,omitempty"`
	Notes   string `json:"notes,omitempty"`

	// LastViewed is only written on save, YYYY-MM-DD.
	LastViewed string `json:"lastViewed"`
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	d.Tags = slices.Clone(d.Tags)
	return d
}

// Patch converts d into a DocumentPatch with every field present.
func (d Document) Patch() DocumentPatch {
	tags := slices.Clone(d.Tags)
	if tags == nil {
		tags = []string{}
	}
	return DocumentPatch{
		ID:         d.ID,
		Title:      Ptr(d.Title),
		Date:       Ptr(d.Date),
		Category:   Ptr(d.Category),
		Tags:       tags,
		Preview:    Ptr(d.Preview),
		OCRText:    Ptr(d.OCRText),
		Notes:      Ptr(d.Notes),
		LastViewed: Ptr(d.LastViewed),
	}
}

// DocumentPatch is a partial Document. A nil field is absent and leaves
// the stored value untouched on merge; a non-nil field overwrites it.
// For Tags a nil slice is absent and an empty non-nil slice clears the list.
type DocumentPatch struct {
	ID         string
	Title      *string
	Date       *string
	Category   *string
	Tags       []string
	Preview    *string
	OCRText    *string
	Notes      *string
	LastViewed *string
}

// ApplyTo merges the present fields of p onto base and returns the result.
// base is not modified.
func (p DocumentPatch) ApplyTo(base Document) Document {
	out := base.Clone()
	if p.ID != "" {
		out.ID = p.ID
	}
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Tags != nil {
		out.Tags = slices.Clone(p.Tags)
	}
	if p.Preview != nil {
		out.Preview = *p.Preview
	}
	if p.OCRText != nil {
		out.OCRText = *p.OCRText
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.LastViewed != nil {
		out.LastViewed = *p.LastViewed
	}
	return out
}

// NewDocument materializes p as a fresh record, filling every absent
// display field with its default. today is used for Date and LastViewed.
func (p DocumentPatch) NewDocument(today time.Time) Document {
	day := today.Format(DateLayout)
	base := Document{
		Title:      DefaultTitle,
		Date:       day,
		Category:   DefaultCategory,
		Tags:       []string{},
		LastViewed: day,
	}
	return p.ApplyTo(base)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
