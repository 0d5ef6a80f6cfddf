package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"github.com/fatih/color"
	"go.uber.org/multierr"
)

func (a *App) titleColor() *color.Color {
	if a.settings.Get().DarkMode {
		return color.New(color.FgHiWhite, color.Bold)
	}
	return color.New(color.FgBlue, color.Bold)
}

// Show prints one document.
func (a *App) Show(ctx context.Context, id string) error {
	d, err := a.documents.Get(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	printDocument(a.out, *d, a.titleColor())
	return nil
}

// New creates a document from a title and category typed by the user.
// Empty answers keep the defaults.
func (a *App) New(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, fmt.Sprintf("Title (default %q)", models.DefaultTitle), a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	category, err := a.promptCategory()
	if err != nil {
		return a.report(ctx, err)
	}

	var patch models.DocumentPatch
	if title != "" {
		patch.Title = models.Ptr(title)
	}
	if category != "" {
		patch.Category = models.Ptr(category)
	}

	d, err := a.documents.Save(ctx, patch)
	if err != nil {
		return a.report(ctx, err)
	}
	okColor.Fprintf(a.out, "Created %s\n", d.ID)
	return nil
}

// Scan captures the image at path and stores it as a new document.
func (a *App) Scan(ctx context.Context, path string) error {
	ref, err := a.capturer.Capture(ctx, path)
	if err != nil {
		return a.report(ctx, err)
	}
	d, err := a.documents.NewScan(ctx, ref)
	if err != nil {
		return a.report(ctx, err)
	}
	okColor.Fprintf(a.out, "Scanned %s\n", d.ID)
	printDocument(a.out, d, a.titleColor())
	return nil
}

// Import scans every image below dir. Files that fail are listed and the
// rest are still imported.
func (a *App) Import(ctx context.Context, dir string) error {
	refs, err := a.capturer.Walk(ctx, dir, a.config.ImportExclude)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(refs) == 0 {
		fmt.Fprintln(a.out, "No images found")
		return nil
	}

	docs, err := a.documents.ImportScans(ctx, refs)
	for _, d := range docs {
		okColor.Fprintf(a.out, "Scanned %s  %s\n", d.ID, d.Preview)
	}
	for _, e := range multierr.Errors(err) {
		errColor.Fprintf(a.out, "Failed: %v\n", e)
	}
	fmt.Fprintf(a.out, "Imported %d of %d image(s)\n", len(docs), len(refs))
	return err
}

func (a *App) Rename(ctx context.Context, id string) error {
	d, err := a.documents.Get(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	title, err := GetSimpleText(a.reader, fmt.Sprintf("New title (current %q, empty keeps it)", d.Title), a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	if title == "" {
		fmt.Fprintln(a.out, "Title unchanged")
		return nil
	}
	if _, err := a.documents.Rename(ctx, id, title); err != nil {
		return a.report(ctx, err)
	}
	okColor.Fprintln(a.out, "Renamed")
	return nil
}

func (a *App) SetCategory(ctx context.Context, id string) error {
	if _, err := a.documents.Get(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	category, err := a.promptCategory()
	if err != nil {
		return a.report(ctx, err)
	}
	if category == "" {
		fmt.Fprintln(a.out, "Category unchanged")
		return nil
	}
	if _, err := a.documents.SetCategory(ctx, id, category); err != nil {
		return a.report(ctx, err)
	}
	okColor.Fprintf(a.out, "Category set to %s\n", category)
	return nil
}

// promptCategory offers the fixed category list. The answer may be a list
// number, a known name or id, or any other text used as-is.
func (a *App) promptCategory() (string, error) {
	names := models.CategoryNames()
	for i, n := range names {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, n)
	}
	answer, err := GetSimpleText(a.reader, "Category (number or name, empty for default)", a.out)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(names) {
		return names[n-1], nil
	}
	if c, ok := models.LookupCategory(answer); ok && c.ID != models.CategoryAll {
		return c.Name, nil
	}
	return answer, nil
}

// Tag toggles tag on the document.
func (a *App) Tag(ctx context.Context, id, tag string) error {
	d, err := a.documents.ToggleTag(ctx, id, tag)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Tags: %s\n", tagColor.Sprint(strings.Join(d.Tags, ", ")))
	return nil
}

// AddTag appends tag to the document.
func (a *App) AddTag(ctx context.Context, id, tag string) error {
	d, err := a.documents.AddTag(ctx, id, tag)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Tags: %s\n", tagColor.Sprint(strings.Join(d.Tags, ", ")))
	return nil
}

// Notes replaces the document notes with multi-line input.
func (a *App) Notes(ctx context.Context, id string) error {
	d, err := a.documents.Get(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	if d.Notes != "" {
		dimColor.Fprintln(a.out, d.Notes)
	}
	notes, err := GetMultiline(a.reader, "Enter notes", a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	if _, err := a.documents.SetNotes(ctx, id, notes); err != nil {
		return a.report(ctx, err)
	}
	okColor.Fprintln(a.out, "Notes saved")
	return nil
}

// OCR replaces the extracted text with multi-line input. Empty input keeps
// the current text.
func (a *App) OCR(ctx context.Context, id string) error {
	d, err := a.documents.Get(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	if d.OCRText != "" {
		dimColor.Fprintln(a.out, d.OCRText)
	}
	text, err := GetMultiline(a.reader, "Enter corrected text", a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	if text == "" {
		fmt.Fprintln(a.out, "Text unchanged")
		return nil
	}
	if _, err := a.documents.SetOCRText(ctx, id, text); err != nil {
		return a.report(ctx, err)
	}
	okColor.Fprintln(a.out, "Text saved")
	return nil
}
