package cli

import (
	"context"
	"fmt"
)

// Delete removes a document after the user confirms.
func (a *App) Delete(ctx context.Context, id string) error {
	d, err := a.documents.Get(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %q? This cannot be undone.", d.Title), a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.documents.Delete(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	okColor.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}
