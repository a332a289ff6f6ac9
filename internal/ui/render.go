package ui

//go:generate go tool templ generate -path components

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/a-h/templ"
)

// Render writes c to w. Failures are logged and returned.
func Render(ctx context.Context, w io.Writer, c templ.Component) error {
	err := c.Render(ctx, w)
	if err != nil {
		slog.Error("render failed", "error", err)
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// RenderString renders c into a string, for previews and tests.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	err := Render(ctx, &sb, c)
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
