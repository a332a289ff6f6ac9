package button

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClasses(t *testing.T) {
	t.Parallel()

	t.Run("ghost icon", func(t *testing.T) {
		t.Parallel()
		classes := strings.Fields(Classes(VariantGhost, SizeIcon))
		assert.Contains(t, classes, "hover:bg-accent")
		assert.Contains(t, classes, "w-10")
		assert.NotContains(t, classes, "bg-primary")
	})

	t.Run("extra overrides conflicting size", func(t *testing.T) {
		t.Parallel()
		classes := strings.Fields(Classes(VariantGhost, SizeIcon, "h-8 w-8"))
		assert.Contains(t, classes, "w-8")
		assert.NotContains(t, classes, "w-10")
	})

	t.Run("unknown variant falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Classes(VariantDefault, SizeDefault), Classes(Variant("neon"), Size("huge")))
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	attrs := Attrs(VariantGhost, SizeIcon)
	assert.Equal(t, Classes(VariantGhost, SizeIcon), attrs["class"])
	assert.Len(t, attrs, 1)
}
