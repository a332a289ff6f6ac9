package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/config"
)

func TestPreviewNavbar(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := PreviewCmd(&config.Config{GitHubURL: "https://github.com/someone"})
	c.SetOut(&out)
	c.SetArgs([]string{"navbar", "--class", "sticky top-0"})
	require.NoError(t, c.ExecuteContext(context.Background()))

	html := out.String()
	assert.True(t, strings.HasPrefix(html, `<nav class="sticky top-0" aria-label="Main">`))
	assert.Contains(t, html, `href="https://github.com/someone"`)
	assert.True(t, strings.HasSuffix(html, "</nav>\n"))
}
