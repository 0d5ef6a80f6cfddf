package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Category(ctx context.Context, category string) error
	Categories(ctx context.Context) error
	Sort(ctx context.Context, order string) error

	New(ctx context.Context) error
	Scan(ctx context.Context, path string) error
	Import(ctx context.Context, dir string) error
	Show(ctx context.Context, id string) error
	Rename(ctx context.Context, id string) error
	SetCategory(ctx context.Context, id string) error
	Tag(ctx context.Context, id, tag string) error
	AddTag(ctx context.Context, id, tag string) error
	Notes(ctx context.Context, id string) error
	OCR(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, id string) error

	Suggest(ctx context.Context, id string) error
	Summary(ctx context.Context, id string) error
	Analyze(ctx context.Context, id string) error

	Settings(ctx context.Context) error
	Theme(ctx context.Context) error
	Language(ctx context.Context, name string) error
	Format(ctx context.Context, format string) error
	Subscribe(ctx context.Context) error
	Unsubscribe(ctx context.Context) error
}

const helpText = `Library:   (l)ist, search [text], category <id|all>, categories, sort <date|name|recent>
Capture:   new, scan <image>, import <dir>
Document:  show <id>, rename <id>, setcategory <id>, tag <id> <tag>, addtag <id> <tag>,
           notes <id>, ocr <id>, delete <id>, export <id>
Assistant: summary <id>, suggest <id>, analyze <id>
Settings:  settings, theme, language <name>, format <PDF|JPG|TXT>, subscribe, unsubscribe
           exit | quit`

// runREPL starts a simple read–eval–print loop for the SmartScan CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. Commands that need an argument print their
// usage when it is missing. Unknown commands are reported back to the user.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// The same reader is shared with the prompts commands show, so buffered
// input is never lost between the loop and a command.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("smartscan %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)
		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))
		case "category":
			if arg, ok := needArgs(args, 1, "category <id|all>"); ok {
				_ = a.Category(ctx, arg[0])
			}
		case "categories":
			_ = a.Categories(ctx)
		case "sort":
			if arg, ok := needArgs(args, 1, "sort <date|name|recent>"); ok {
				_ = a.Sort(ctx, arg[0])
			}

		case "new":
			_ = a.New(ctx)
		case "scan":
			if _, ok := needArgs(args, 1, "scan <image path>"); ok {
				_ = a.Scan(ctx, strings.Join(args, " "))
			}
		case "import":
			if _, ok := needArgs(args, 1, "import <directory>"); ok {
				_ = a.Import(ctx, strings.Join(args, " "))
			}
		case "show":
			if arg, ok := needArgs(args, 1, "show <id>"); ok {
				_ = a.Show(ctx, arg[0])
			}
		case "rename":
			if arg, ok := needArgs(args, 1, "rename <id>"); ok {
				_ = a.Rename(ctx, arg[0])
			}
		case "setcategory":
			if arg, ok := needArgs(args, 1, "setcategory <id>"); ok {
				_ = a.SetCategory(ctx, arg[0])
			}
		case "tag":
			if arg, ok := needArgs(args, 2, "tag <id> <tag>"); ok {
				_ = a.Tag(ctx, arg[0], strings.Join(arg[1:], " "))
			}
		case "addtag":
			if arg, ok := needArgs(args, 2, "addtag <id> <tag>"); ok {
				_ = a.AddTag(ctx, arg[0], strings.Join(arg[1:], " "))
			}
		case "notes":
			if arg, ok := needArgs(args, 1, "notes <id>"); ok {
				_ = a.Notes(ctx, arg[0])
			}
		case "ocr":
			if arg, ok := needArgs(args, 1, "ocr <id>"); ok {
				_ = a.OCR(ctx, arg[0])
			}
		case "delete":
			if arg, ok := needArgs(args, 1, "delete <id>"); ok {
				_ = a.Delete(ctx, arg[0])
			}
		case "export":
			if arg, ok := needArgs(args, 1, "export <id>"); ok {
				_ = a.Export(ctx, arg[0])
			}

		case "summary":
			if arg, ok := needArgs(args, 1, "summary <id>"); ok {
				_ = a.Summary(ctx, arg[0])
			}
		case "suggest":
			if arg, ok := needArgs(args, 1, "suggest <id>"); ok {
				_ = a.Suggest(ctx, arg[0])
			}
		case "analyze":
			if arg, ok := needArgs(args, 1, "analyze <id>"); ok {
				_ = a.Analyze(ctx, arg[0])
			}

		case "settings":
			_ = a.Settings(ctx)
		case "theme":
			_ = a.Theme(ctx)
		case "language":
			if _, ok := needArgs(args, 1, "language <name>"); ok {
				_ = a.Language(ctx, strings.Join(args, " "))
			}
		case "format":
			if arg, ok := needArgs(args, 1, "format <PDF|JPG|TXT>"); ok {
				_ = a.Format(ctx, arg[0])
			}
		case "subscribe":
			_ = a.Subscribe(ctx)
		case "unsubscribe":
			_ = a.Unsubscribe(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// needArgs prints usage and reports false when fewer than n args were given.
func needArgs(args []string, n int, usage string) ([]string, bool) {
	if len(args) < n {
		printlnFn("Usage: " + usage)
		return nil, false
	}
	return args, true
}
