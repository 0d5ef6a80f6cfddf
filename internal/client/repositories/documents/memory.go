package documents

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"github.com/dmitrijs2005/smartscan/internal/common"
	"github.com/google/uuid"
)

// idSuffixLen is the number of random characters appended to generated ids.
const idSuffixLen = 9

// MemoryRepository implements Repository over an in-process, ordered
// collection.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]models.Document

	now   func() time.Time
	newID func(time.Time) string
}

// Option configures a MemoryRepository.
type Option func(*MemoryRepository)

// WithClock overrides the clock used for date defaults and id generation.
func WithClock(now func() time.Time) Option {
	return func(r *MemoryRepository) { r.now = now }
}

// WithIDGenerator overrides how ids are generated for records saved without one.
func WithIDGenerator(gen func(time.Time) string) Option {
	return func(r *MemoryRepository) { r.newID = gen }
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository(opts ...Option) *MemoryRepository {
	r := &MemoryRepository{
		docs:  make(map[string]models.Document),
		now:   time.Now,
		newID: GenerateID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenerateID returns "doc-<unix millis>-<9 random chars>".
func GenerateID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
	return fmt.Sprintf("doc-%d-%s", now.UnixMilli(), suffix)
}

// CreateOrUpdate upserts a record by id. Absent patch fields keep the stored
// value on update and take their defaults on insert.
func (r *MemoryRepository) CreateOrUpdate(ctx context.Context, patch models.DocumentPatch) (models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	if patch.ID == "" {
		patch.ID = r.uniqueID(now)
	}

	if existing, ok := r.docs[patch.ID]; ok {
		merged := patch.ApplyTo(existing)
		r.docs[patch.ID] = merged
		return merged.Clone(), nil
	}

	doc := patch.NewDocument(now)
	r.docs[doc.ID] = doc
	r.order = append(r.order, doc.ID)
	return doc.Clone(), nil
}

// Create inserts the patch as a new record. The id check and the insert
// happen under one lock.
func (r *MemoryRepository) Create(ctx context.Context, patch models.DocumentPatch) (models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	if patch.ID == "" {
		patch.ID = r.uniqueID(now)
	}
	if _, taken := r.docs[patch.ID]; taken {
		return models.Document{}, fmt.Errorf("document %s: %w", patch.ID, common.ErrorAlreadyExists)
	}

	doc := patch.NewDocument(now)
	r.docs[doc.ID] = doc
	r.order = append(r.order, doc.ID)
	return doc.Clone(), nil
}

// uniqueID retries the generator until it yields an unused id.
// Callers must hold the write lock.
func (r *MemoryRepository) uniqueID(now time.Time) string {
	for {
		id := r.newID(now)
		if _, taken := r.docs[id]; !taken && id != "" {
			return id
		}
	}
}

// GetAll returns copies of every record in insertion order.
func (r *MemoryRepository) GetAll(ctx context.Context) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Document, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.docs[id].Clone())
	}
	return result, nil
}

// DeleteByID removes the record if present.
func (r *MemoryRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return nil
	}
	delete(r.docs, id)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == id })
	return nil
}

// GetByID returns a copy of the record with the given id.
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := doc.Clone()
	return &c, nil
}
