package themetoggle

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeToggle(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, ThemeToggle().Render(context.Background(), &sb))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, `<button type="button" data-theme-toggle`))
	assert.True(t, strings.HasSuffix(out, `</button>`))
	assert.Equal(t, 2, strings.Count(out, "<svg"))
	assert.Contains(t, out, `class="`+sunClass+`"`)
	assert.Contains(t, out, `class="`+moonClass+`"`)
}
