// Package assistant provides the document assistant capability used by the
// detail view: text extraction, summaries and tag suggestions.
//
// Only a mock implementation exists. It returns fixed sample results after a
// simulated delay and honours context cancellation while waiting.
package assistant

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// Assistant accepts a document and eventually produces a text result or fails.
type Assistant interface {
	ExtractText(ctx context.Context, doc models.Document) (string, error)
	Summarize(ctx context.Context, doc models.Document) (string, error)
	SuggestTags(ctx context.Context, doc models.Document) ([]string, error)
}

// Analysis bundles the summary and tag suggestions for one document.
type Analysis struct {
	Summary string
	Tags    []string
}

// Analyze runs Summarize and SuggestTags concurrently. The first failure
// cancels the other call.
func Analyze(ctx context.Context, a Assistant, doc models.Document) (Analysis, error) {
	var res Analysis
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := a.Summarize(gctx, doc)
		res.Summary = s
		return err
	})
	g.Go(func() error {
		tags, err := a.SuggestTags(gctx, doc)
		res.Tags = tags
		return err
	})

	if err := g.Wait(); err != nil {
		return Analysis{}, err
	}
	return res, nil
}

// Delays controls how long each mock call pretends to work.
type Delays struct {
	OCR     time.Duration
	Summary time.Duration
	Tags    time.Duration
}

// DefaultDelays returns the stock demo timings.
func DefaultDelays() Delays {
	return Delays{
		OCR:     500 * time.Millisecond,
		Summary: 1500 * time.Millisecond,
		Tags:    time.Second,
	}
}

// Mock is a stand-in Assistant returning fixed sample results.
type Mock struct {
	delays Delays
}

func NewMock(d Delays) *Mock {
	return &Mock{delays: d}
}

func (m *Mock) ExtractText(ctx context.Context, _ models.Document) (string, error) {
	if err := wait(ctx, m.delays.OCR); err != nil {
		return "", err
	}
	return SampleOCRText, nil
}

func (m *Mock) Summarize(ctx context.Context, _ models.Document) (string, error) {
	if err := wait(ctx, m.delays.Summary); err != nil {
		return "", err
	}
	return SampleSummary, nil
}

func (m *Mock) SuggestTags(ctx context.Context, _ models.Document) ([]string, error) {
	if err := wait(ctx, m.delays.Tags); err != nil {
		return nil, err
	}
	return slices.Clone(SampleTags), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
