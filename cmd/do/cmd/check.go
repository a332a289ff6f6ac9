package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/templui/folio/internal/app"
	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/content"
	"github.com/templui/folio/internal/service"
)

// ErrInvalidContent is returned by check when any entry fails validation.
var ErrInvalidContent = errors.New("content has problems")

const watchDebounce = 200 * time.Millisecond

func CheckCmd(cfg *config.Config) *cobra.Command {
	var strict, watch bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate every content entry against its collection schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			if cmd.Flags().Changed("strict") {
				c.ContentStrict = strict
			}

			a, err := app.New(&c)
			if err != nil {
				return err
			}

			if watch {
				return watchContent(cmd.Context(), cmd.OutOrStdout(), a)
			}
			return runCheck(cmd.OutOrStdout(), a.Registry, a.ContentService)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", cfg.ContentStrict, "reject fields no schema declares")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-check whenever content changes")
	return cmd
}

// runCheck prints a per-collection summary, or every problem when the
// content does not validate.
func runCheck(w io.Writer, registry *content.Registry, svc *service.ContentService) error {
	site, err := svc.Load()

	var loadErr *service.LoadError
	if errors.As(err, &loadErr) {
		for _, problem := range loadErr.Problems {
			fmt.Fprintf(w, "  ✗ %v\n", problem)
		}
		return fmt.Errorf("%w: %d problem(s)", ErrInvalidContent, len(loadErr.Problems))
	}
	if err != nil {
		return err
	}

	caser := cases.Title(language.English)
	for _, collection := range registry.Collections() {
		fmt.Fprintf(w, "  ✓ %s: %d entries\n", caser.String(collection), site.Count(collection))
	}
	return nil
}

func watchContent(ctx context.Context, w io.Writer, a *app.App) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	root := a.ContentService.ContentPath()
	err = watcher.Add(root)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	for _, collection := range a.Registry.Collections() {
		dir := filepath.Join(root, collection)
		// Collection directories may not exist yet.
		if err := watcher.Add(dir); err != nil {
			slog.Debug("collection not watched", "dir", dir, "error", err)
		}
	}

	check := func() {
		err := runCheck(w, a.Registry, a.ContentService)
		if err != nil {
			fmt.Fprintln(w, "check failed:", err)
		}
	}
	check()

	timer := time.NewTimer(watchDebounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			slog.Debug("content changed", "path", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) {
				// Pick up collection directories created after start.
				_ = watcher.Add(event.Name)
			}
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		case <-timer.C:
			fmt.Fprintln(w, "content changed, checking again")
			check()
		}
	}
}
