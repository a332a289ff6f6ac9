package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontmatter(t *testing.T) {
	t.Parallel()

	t.Run("yaml block", func(t *testing.T) {
		t.Parallel()
		src := []byte("---\ntitle: My Post\ndate: \"2024-01-01\"\nstack:\n  - React\n  - Astro\n---\n\n# Hello\n")

		meta, err := NewParser().Frontmatter(src)
		require.NoError(t, err)
		assert.Equal(t, "My Post", meta["title"])
		assert.Equal(t, "2024-01-01", meta["date"])
		assert.Equal(t, []any{"React", "Astro"}, meta["stack"])
	})

	t.Run("toml block", func(t *testing.T) {
		t.Parallel()
		src := []byte("+++\ntitle = \"My Post\"\n+++\n\nBody\n")

		meta, err := NewParser().Frontmatter(src)
		require.NoError(t, err)
		assert.Equal(t, "My Post", meta["title"])
	})

	t.Run("missing block", func(t *testing.T) {
		t.Parallel()
		_, err := NewParser().Frontmatter([]byte("# Just a heading\n"))
		require.ErrorIs(t, err, ErrNoFrontmatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := NewParser().Frontmatter([]byte("---\ntitle: [unclosed\n---\n"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoFrontmatter)
	})
}
