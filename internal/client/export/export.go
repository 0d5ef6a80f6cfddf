// Package export renders documents in the user's export format.
//
// TXT is a plain text report. JPG is the same report drawn onto a single
// page image, and PDF embeds that page image into a one-page PDF.
package export

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"io"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"github.com/dmitrijs2005/smartscan/internal/common"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const jpegQuality = 90

// Write renders doc to w in the given format.
func Write(w io.Writer, doc models.Document, format models.ExportFormat) error {
	switch format {
	case models.ExportTXT:
		_, err := io.WriteString(w, strings.Join(reportLines(doc), "\n")+"\n")
		return err
	case models.ExportJPG:
		return writeJPEG(w, doc)
	case models.ExportPDF:
		return writePDF(w, doc)
	default:
		return fmt.Errorf("%w: %s", common.ErrorUnsupportedFormat, format)
	}
}

// reportLines is the export content shared by all formats. Empty sections
// are left out.
func reportLines(doc models.Document) []string {
	lines := []string{
		doc.Title,
		"Date: " + doc.Date,
		"Category: " + doc.Category,
	}
	if len(doc.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(doc.Tags, ", "))
	}
	if doc.Notes != "" {
		lines = append(lines, "", "Notes:")
		lines = append(lines, strings.Split(doc.Notes, "\n")...)
	}
	if doc.OCRText != "" {
		lines = append(lines, "", "Text:")
		lines = append(lines, strings.Split(doc.OCRText, "\n")...)
	}
	return lines
}

func writeJPEG(w io.Writer, doc models.Document) error {
	img := renderPage(reportLines(doc))
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}

func writePDF(w io.Writer, doc models.Document) error {
	var page bytes.Buffer
	if err := writeJPEG(&page, doc); err != nil {
		return err
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ImportImages(nil, w, []io.Reader{&page}, nil, conf); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName builds a filesystem-safe name such as "Invoice_1234-doc-1.txt".
func FileName(doc models.Document, format models.ExportFormat) string {
	base := strings.Trim(unsafeChars.ReplaceAllString(doc.Title, "_"), "_")
	if base == "" {
		base = "document"
	}
	id := strings.Trim(unsafeChars.ReplaceAllString(doc.ID, "_"), "_")
	return fmt.Sprintf("%s-%s.%s", base, id, strings.ToLower(string(format)))
}
