package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	errColor    = color.New(color.FgHiRed)
	tagColor    = color.New(color.FgYellow)
	dimColor    = color.New(color.Faint)
)

// setupColor turns highlighting off unless f is a terminal.
func setupColor(f *os.File) {
	if !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}
}

// Column widths of the library table, in terminal cells.
const (
	colID       = 22
	colDate     = 10
	colCategory = 14
	colTitle    = 34
)

func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func printDocumentTable(w io.Writer, docs []models.Document) {
	headerColor.Fprintln(w, strings.Join([]string{
		cell("ID", colID), cell("DATE", colDate), cell("CATEGORY", colCategory), cell("TITLE", colTitle), "TAGS",
	}, " "))
	for _, d := range docs {
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			cell(d.ID, colID),
			cell(d.Date, colDate),
			cell(d.Category, colCategory),
			cell(d.Title, colTitle),
			tagColor.Sprint(strings.Join(d.Tags, ", ")),
		)
	}
	dimColor.Fprintf(w, "%d document(s)\n", len(docs))
}

func printDocument(w io.Writer, d models.Document, title *color.Color) {
	title.Fprintln(w, d.Title)
	fmt.Fprintf(w, "ID:          %s\n", d.ID)
	fmt.Fprintf(w, "Date:        %s\n", d.Date)
	fmt.Fprintf(w, "Category:    %s\n", d.Category)
	fmt.Fprintf(w, "Tags:        %s\n", tagColor.Sprint(strings.Join(d.Tags, ", ")))
	fmt.Fprintf(w, "Last viewed: %s\n", d.LastViewed)
	if d.Preview != "" {
		fmt.Fprintf(w, "Image:       %s\n", d.Preview)
	}
	if d.Notes != "" {
		headerColor.Fprintln(w, "Notes")
		fmt.Fprintln(w, d.Notes)
	}
	if d.OCRText != "" {
		headerColor.Fprintln(w, "Extracted text")
		fmt.Fprintln(w, d.OCRText)
	}
}
