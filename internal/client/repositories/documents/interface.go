package documents

import (
	"context"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
)

// Repository describes CRUD operations for document records.
type Repository interface {
	// CreateOrUpdate inserts a new record or merges the patch onto the
	// record with the same ID, and returns the stored form.
	CreateOrUpdate(ctx context.Context, patch models.DocumentPatch) (models.Document, error)

	// Create inserts a new record and fails with common.ErrorAlreadyExists
	// when the patch names an id that is already stored.
	Create(ctx context.Context, patch models.DocumentPatch) (models.Document, error)

	// GetAll returns copies of all records in insertion order.
	GetAll(ctx context.Context) ([]models.Document, error)

	// DeleteByID removes a record. Unknown ids are not an error.
	DeleteByID(ctx context.Context, id string) error

	// GetByID returns a copy of the record, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Document, error)
}
