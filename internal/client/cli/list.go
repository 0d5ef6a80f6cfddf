package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/smartscan/internal/client/library"
	"github.com/dmitrijs2005/smartscan/internal/client/models"
)

// List prints the library filtered and ordered by the current view state.
func (a *App) List(ctx context.Context) error {
	docs, err := a.documents.List(ctx, a.query)
	if err != nil {
		return a.report(ctx, err)
	}
	printDocumentTable(a.out, docs)
	return nil
}

// Search sets the title filter and lists the result. Empty text clears it.
func (a *App) Search(ctx context.Context, text string) error {
	a.query.Search = text
	return a.List(ctx)
}

// Category sets the category filter and lists the result. Known categories
// match by id or name; any other text filters on that category as written.
func (a *App) Category(ctx context.Context, category string) error {
	if c, ok := models.LookupCategory(category); ok {
		a.query.Category = c.ID
	} else {
		a.query.Category = strings.TrimSpace(category)
	}
	return a.List(ctx)
}

func (a *App) Categories(ctx context.Context) error {
	current := a.query.Category
	if current == "" {
		current = models.CategoryAll
	}
	for _, c := range models.Categories {
		marker := " "
		if c.ID == current {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-10s %s\n", marker, c.ID, c.Name)
	}
	return nil
}

// Sort sets the library order and lists the result.
func (a *App) Sort(ctx context.Context, order string) error {
	o, err := library.ParseSortOrder(order)
	if err != nil {
		return a.report(ctx, err)
	}
	a.query.Sort = o
	return a.List(ctx)
}
