package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/smartscan/internal/client/assistant"
	"github.com/dmitrijs2005/smartscan/internal/client/library"
	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"github.com/dmitrijs2005/smartscan/internal/client/repositories/documents"
	"github.com/dmitrijs2005/smartscan/internal/common"
	"github.com/dmitrijs2005/smartscan/internal/logging"
	"go.uber.org/multierr"
)

// NewScanTitle is the title given to freshly captured documents.
const NewScanTitle = "New Scan"

// DocumentService backs the library and detail views.
type DocumentService interface {
	List(ctx context.Context, q library.Query) ([]models.Document, error)
	Get(ctx context.Context, id string) (*models.Document, error)
	Save(ctx context.Context, patch models.DocumentPatch) (models.Document, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context, docs []models.Document) error

	NewScan(ctx context.Context, imageRef string) (models.Document, error)
	ImportScans(ctx context.Context, imageRefs []string) ([]models.Document, error)
	Rename(ctx context.Context, id, title string) (models.Document, error)
	SetCategory(ctx context.Context, id, category string) (models.Document, error)
	SetNotes(ctx context.Context, id, notes string) (models.Document, error)
	SetOCRText(ctx context.Context, id, text string) (models.Document, error)
	ToggleTag(ctx context.Context, id, tag string) (models.Document, error)
	AddTag(ctx context.Context, id, tag string) (models.Document, error)

	Summarize(ctx context.Context, id string) (string, error)
	SuggestTags(ctx context.Context, id string) ([]string, error)
	Analyze(ctx context.Context, id string) (assistant.Analysis, error)
}

type documentService struct {
	repo      documents.Repository
	assistant assistant.Assistant
	locale    string
	now       func() time.Time
	log       logging.Logger
}

func NewDocumentService(repo documents.Repository, a assistant.Assistant, locale string, log logging.Logger) DocumentService {
	return &documentService{repo: repo, assistant: a, locale: locale, now: time.Now, log: log}
}

func (s *documentService) List(ctx context.Context, q library.Query) ([]models.Document, error) {
	docs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	return library.NewSorter(s.locale).Apply(docs, q), nil
}

// Get loads a record for viewing. Viewing does not touch LastViewed.
func (s *documentService) Get(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving document %s: %w", id, err)
	}
	return doc, nil
}

func (s *documentService) Save(ctx context.Context, patch models.DocumentPatch) (models.Document, error) {
	doc, err := s.repo.CreateOrUpdate(ctx, patch)
	if err != nil {
		return models.Document{}, fmt.Errorf("error saving document: %w", err)
	}
	s.log.Debug(ctx, "document saved", "document_id", doc.ID, "preview", doc.Preview)
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting document %s: %w", id, err)
	}
	s.log.Debug(ctx, "document deleted", "document_id", id)
	return nil
}

// Seed saves full records as-is, keeping their ids.
func (s *documentService) Seed(ctx context.Context, docs []models.Document) error {
	for _, d := range docs {
		if _, err := s.Save(ctx, d.Patch()); err != nil {
			return err
		}
	}
	s.log.Info(ctx, "library seeded", "count", len(docs))
	return nil
}

// NewScan stores a freshly captured image as a new document with a
// pre-assigned id and extracted text. The id is reserved before text
// extraction starts and released if extraction fails.
func (s *documentService) NewScan(ctx context.Context, imageRef string) (models.Document, error) {
	now := s.now()
	day := now.Format(models.DateLayout)

	doc, err := s.reserveScan(ctx, now, models.Document{
		Title:      NewScanTitle,
		Date:       day,
		Category:   models.DefaultCategory,
		Tags:       []string{},
		Preview:    imageRef,
		LastViewed: day,
	})
	if err != nil {
		return models.Document{}, err
	}

	text, err := s.assistant.ExtractText(ctx, doc)
	if err != nil {
		err = fmt.Errorf("error extracting text: %w", err)
		if derr := s.repo.DeleteByID(ctx, doc.ID); derr != nil {
			err = multierr.Append(err, derr)
		}
		return models.Document{}, err
	}

	return s.Save(ctx, models.DocumentPatch{ID: doc.ID, OCRText: &text})
}

// ImportScans runs NewScan for each reference. A failed image does not stop
// the batch; every failure is reported in the combined error. Cancellation
// stops the batch.
func (s *documentService) ImportScans(ctx context.Context, imageRefs []string) ([]models.Document, error) {
	var (
		docs []models.Document
		errs error
	)
	for _, ref := range imageRefs {
		if err := ctx.Err(); err != nil {
			return docs, multierr.Append(errs, err)
		}
		d, err := s.NewScan(ctx, ref)
		if err != nil {
			s.log.Warn(ctx, "import failed", "image", ref, "error", err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", ref, err))
			continue
		}
		docs = append(docs, d)
	}
	s.log.Info(ctx, "import finished", "imported", len(docs), "failed", len(multierr.Errors(errs)))
	return docs, errs
}

// reserveScan inserts doc under "new-<unix millis>", moving on to
// "new-<unix millis>-2", "-3" and so on while the id is taken.
func (s *documentService) reserveScan(ctx context.Context, now time.Time, doc models.Document) (models.Document, error) {
	doc.ID = fmt.Sprintf("new-%d", now.UnixMilli())
	for n := 2; ; n++ {
		stored, err := s.repo.Create(ctx, doc.Patch())
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, common.ErrorAlreadyExists) {
			return models.Document{}, fmt.Errorf("error saving document: %w", err)
		}
		doc.ID = fmt.Sprintf("new-%d-%d", now.UnixMilli(), n)
	}
}

func (s *documentService) Rename(ctx context.Context, id, title string) (models.Document, error) {
	return s.update(ctx, id, func(d *models.Document) models.DocumentPatch {
		return models.DocumentPatch{ID: d.ID, Title: models.Ptr(title)}
	})
}

func (s *documentService) SetCategory(ctx context.Context, id, category string) (models.Document, error) {
	return s.update(ctx, id, func(d *models.Document) models.DocumentPatch {
		return models.DocumentPatch{ID: d.ID, Category: models.Ptr(category)}
	})
}

func (s *documentService) SetNotes(ctx context.Context, id, notes string) (models.Document, error) {
	return s.update(ctx, id, func(d *models.Document) models.DocumentPatch {
		return models.DocumentPatch{ID: d.ID, Notes: models.Ptr(notes)}
	})
}

func (s *documentService) SetOCRText(ctx context.Context, id, text string) (models.Document, error) {
	return s.update(ctx, id, func(d *models.Document) models.DocumentPatch {
		return models.DocumentPatch{ID: d.ID, OCRText: models.Ptr(text)}
	})
}

// ToggleTag removes every occurrence of tag when present, otherwise appends it.
func (s *documentService) ToggleTag(ctx context.Context, id, tag string) (models.Document, error) {
	return s.update(ctx, id, func(d *models.Document) models.DocumentPatch {
		tags := slices.Clone(d.Tags)
		if slices.Contains(tags, tag) {
			tags = slices.DeleteFunc(tags, func(t string) bool { return t == tag })
		} else {
			tags = append(tags, tag)
		}
		if tags == nil {
			tags = []string{}
		}
		return models.DocumentPatch{ID: d.ID, Tags: tags}
	})
}

// AddTag appends tag even if it is already present.
func (s *documentService) AddTag(ctx context.Context, id, tag string) (models.Document, error) {
	if strings.TrimSpace(tag) == "" {
		return models.Document{}, fmt.Errorf("%w: tag is empty", common.ErrorInvalidInput)
	}
	return s.update(ctx, id, func(d *models.Document) models.DocumentPatch {
		return models.DocumentPatch{ID: d.ID, Tags: append(slices.Clone(d.Tags), tag)}
	})
}

func (s *documentService) Summarize(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	summary, err := s.assistant.Summarize(ctx, *doc)
	if err != nil {
		return "", fmt.Errorf("error generating summary: %w", err)
	}
	return summary, nil
}

func (s *documentService) SuggestTags(ctx context.Context, id string) ([]string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tags, err := s.assistant.SuggestTags(ctx, *doc)
	if err != nil {
		return nil, fmt.Errorf("error suggesting tags: %w", err)
	}
	return tags, nil
}

// Analyze runs summary and tag suggestion for one record concurrently.
func (s *documentService) Analyze(ctx context.Context, id string) (assistant.Analysis, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return assistant.Analysis{}, err
	}
	res, err := assistant.Analyze(ctx, s.assistant, *doc)
	if err != nil {
		return assistant.Analysis{}, fmt.Errorf("error analyzing document %s: %w", id, err)
	}
	return res, nil
}

// update loads id, builds a patch from the current record and saves it.
// Editing an unknown id reports common.ErrorNotFound rather than creating it.
func (s *documentService) update(ctx context.Context, id string, change func(*models.Document) models.DocumentPatch) (models.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "edit of unknown document", "document_id", id)
		}
		return models.Document{}, err
	}
	return s.Save(ctx, change(doc))
}
