package icon

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcons(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, Github().Render(context.Background(), &sb))
	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `width="16"`)
	assert.Contains(t, out, `aria-hidden="true"`)
	assert.NotContains(t, out, "class=")

	sb.Reset()
	require.NoError(t, Sun(Props{Size: 20, Class: `size-5 "x"`}).Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), `width="20"`)
	assert.Contains(t, sb.String(), `class="size-5 &#34;x&#34;"`)

	sb.Reset()
	require.NoError(t, Moon(Props{}).Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), `height="16"`)
}
