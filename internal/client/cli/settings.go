package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
)

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) Settings(ctx context.Context) error {
	s := a.settings.Get()
	headerColor.Fprintln(a.out, "Settings")
	fmt.Fprintf(a.out, "Dark mode:     %s\n", onOff(s.DarkMode))
	fmt.Fprintf(a.out, "Language:      %s\n", s.Language)
	fmt.Fprintf(a.out, "Export format: %s\n", s.ExportFormat)
	fmt.Fprintf(a.out, "Premium:       %s\n", onOff(s.Premium))
	dimColor.Fprintf(a.out, "Languages: %s\n", strings.Join(models.Languages, ", "))
	return nil
}

func (a *App) Theme(ctx context.Context) error {
	fmt.Fprintf(a.out, "Dark mode %s\n", onOff(a.settings.ToggleDarkMode()))
	return nil
}

func (a *App) Language(ctx context.Context, name string) error {
	l, err := a.settings.SetLanguage(name)
	if err != nil {
		return a.report(ctx, err)
	}
	okColor.Fprintf(a.out, "Language set to %s\n", l)
	return nil
}

func (a *App) Format(ctx context.Context, format string) error {
	f, err := a.settings.SetExportFormat(format)
	if err != nil {
		return a.report(ctx, err)
	}
	okColor.Fprintf(a.out, "Export format set to %s\n", f)
	return nil
}

func (a *App) Subscribe(ctx context.Context) error {
	if a.settings.Get().Premium {
		fmt.Fprintln(a.out, "Already subscribed")
		return nil
	}
	a.settings.Subscribe()
	okColor.Fprintln(a.out, "Premium activated")
	return nil
}

func (a *App) Unsubscribe(ctx context.Context) error {
	if !a.settings.Get().Premium {
		fmt.Fprintln(a.out, "No active subscription")
		return nil
	}
	ok, err := Confirm(a.reader, "Cancel premium subscription?", a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Subscription kept")
		return nil
	}
	a.settings.CancelSubscription()
	okColor.Fprintln(a.out, "Subscription cancelled")
	return nil
}
