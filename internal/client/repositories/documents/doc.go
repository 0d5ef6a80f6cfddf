// Package documents provides the document record store of the SmartScan
// client.
//
// # Overview
//
// Repository describes the four store operations: upsert, delete, get-one
// and get-all. MemoryRepository is the in-process implementation; it keeps
// records in insertion order for the lifetime of the process and is the
// single authoritative copy of the library.
//
// # Identity and merge
//
// CreateOrUpdate assigns an id when the incoming patch has none. When the id
// matches a stored record, present patch fields overwrite the stored ones
// and absent fields keep their value. An id that matches nothing is inserted
// as-is, so callers may pre-assign ids (new scans do).
//
// # Copies
//
// Every read returns independent copies; mutating a returned Document never
// changes the store. Commit edits with CreateOrUpdate.
//
// # Concurrency
//
// MemoryRepository is safe for concurrent use: writers are serialized by a
// single RWMutex and readers see a consistent snapshot.
//
// Typical Usage
//
//	repo := documents.NewMemoryRepository()
//	doc, _ := repo.CreateOrUpdate(ctx, models.DocumentPatch{Title: models.Ptr("Invoice")})
//	list, _ := repo.GetAll(ctx)
//	one, err := repo.GetByID(ctx, doc.ID)
//	if errors.Is(err, common.ErrorNotFound) { ... }
//	_ = repo.DeleteByID(ctx, doc.ID)
package documents
