package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/smartscan/internal/client/assistant"
	"github.com/dmitrijs2005/smartscan/internal/client/config"
	"github.com/dmitrijs2005/smartscan/internal/client/library"
	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"github.com/dmitrijs2005/smartscan/internal/client/repositories/documents"
	"github.com/dmitrijs2005/smartscan/internal/client/scanner"
	"github.com/dmitrijs2005/smartscan/internal/client/services"
	"github.com/dmitrijs2005/smartscan/internal/logging"
)

// capturer is the part of scanner.FileCapturer the App uses.
type capturer interface {
	scanner.Capturer
	Walk(ctx context.Context, dir string, exclude []string) ([]string, error)
}

type App struct {
	config    *config.Config
	documents services.DocumentService
	settings  services.SettingsService
	capturer  capturer
	log       logging.Logger
	query     library.Query
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp builds the store, assistant and services for one session.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	settings := services.NewSettingsService(models.DefaultSettings())

	var a assistant.Assistant = assistant.NewMock(assistant.Delays{
		OCR:     c.OCRDelay,
		Summary: c.SummaryDelay,
		Tags:    c.TagsDelay,
	})

	repo := documents.NewMemoryRepository()
	docs := services.NewDocumentService(repo, a, c.Locale, log)

	if c.Seed {
		if err := docs.Seed(ctx, models.SampleDocuments()); err != nil {
			return nil, err
		}
	}

	return &App{
		config:    c,
		documents: docs,
		settings:  settings,
		capturer:  scanner.NewFileCapturer(),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	setupColor(os.Stdout)
	headerColor.Fprintln(a.out, "Welcome to SmartScan CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// getStatus describes the active library view for the prompt.
func (a *App) getStatus() string {
	var parts []string
	if c := a.query.Category; c != "" && c != models.CategoryAll {
		parts = append(parts, "category:"+c)
	}
	if a.query.Sort != "" && a.query.Sort != library.SortByDate {
		parts = append(parts, "sort:"+string(a.query.Sort))
	}
	if a.query.Search != "" {
		parts = append(parts, fmt.Sprintf("search:%q", a.query.Search))
	}
	if a.settings != nil && a.settings.Get().Premium {
		parts = append(parts, "premium")
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// report shows err to the user and returns it unchanged.
func (a *App) report(ctx context.Context, err error) error {
	errColor.Fprintf(a.out, "Error: %v\n", err)
	a.log.Debug(ctx, "command failed", "error", err)
	return err
}
