// Package cli provides the interactive SmartScan command-line client.
//
// It wires configuration, the in-memory document store, the document
// assistant and an interactive REPL. The library view state (search text,
// category filter, sort order) lives on the App for the session only.
//
// Key features:
//   - List / search / filter / sort the document library
//   - Scan a single image or import a folder of images
//   - Show and edit documents: title, category, tags, notes, extracted text
//   - Assistant summaries and tag suggestions
//   - Export as TXT, JPG or PDF
//   - Settings: theme, language, export format, subscription
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
