package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/smartscan/internal/client/export"
	"github.com/dmitrijs2005/smartscan/internal/filex"
	"go.uber.org/multierr"
)

// Export writes the document into the export directory using the export
// format from settings.
func (a *App) Export(ctx context.Context, id string) error {
	d, err := a.documents.Get(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}

	dir, err := filex.EnsureDir(a.config.ExportDir)
	if err != nil {
		return a.report(ctx, err)
	}

	format := a.settings.Get().ExportFormat
	path := filepath.Join(dir, export.FileName(*d, format))

	f, err := os.Create(path)
	if err != nil {
		return a.report(ctx, err)
	}
	werr := export.Write(f, *d, format)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return a.report(ctx, multierr.Append(werr, os.Remove(path)))
	}

	a.log.Debug(ctx, "document exported", "document_id", id, "path", path, "format", string(format))
	okColor.Fprintf(a.out, "Exported to %s\n", path)
	return nil
}
