package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (a *App) Summary(ctx context.Context, id string) error {
	dimColor.Fprintln(a.out, "Generating summary...")
	s, err := a.documents.Summarize(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	headerColor.Fprintln(a.out, "Summary")
	fmt.Fprintln(a.out, s)
	return nil
}

// Suggest shows suggested tags and toggles the ones the user picks.
func (a *App) Suggest(ctx context.Context, id string) error {
	dimColor.Fprintln(a.out, "Suggesting tags...")
	tags, err := a.documents.SuggestTags(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	return a.pickTags(ctx, id, tags)
}

// Analyze fetches summary and tag suggestions together.
func (a *App) Analyze(ctx context.Context, id string) error {
	dimColor.Fprintln(a.out, "Analyzing...")
	res, err := a.documents.Analyze(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	headerColor.Fprintln(a.out, "Summary")
	fmt.Fprintln(a.out, res.Summary)
	return a.pickTags(ctx, id, res.Tags)
}

func (a *App) pickTags(ctx context.Context, id string, tags []string) error {
	if len(tags) == 0 {
		fmt.Fprintln(a.out, "No suggestions")
		return nil
	}

	headerColor.Fprintln(a.out, "Suggested tags")
	for i, t := range tags {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, tagColor.Sprint(t))
	}
	answer, err := GetSimpleText(a.reader, "Toggle which? (e.g. 1,3; empty to skip)", a.out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return a.report(ctx, err)
	}
	if answer == "" {
		return nil
	}

	for _, f := range strings.FieldsFunc(answer, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(tags) {
			errColor.Fprintf(a.out, "Skipping %q\n", f)
			continue
		}
		if err := a.Tag(ctx, id, tags[n-1]); err != nil {
			return err
		}
	}
	return nil
}
