package button

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantGhost   Variant = "ghost"
	VariantOutline Variant = "outline"
)

type Size string

const (
	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeIcon    Size = "icon"
)

const baseClasses = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50"

var variantClasses = map[Variant]string{
	VariantDefault: "bg-primary text-primary-foreground hover:bg-primary/90",
	VariantGhost:   "hover:bg-accent hover:text-accent-foreground",
	VariantOutline: "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
}

var sizeClasses = map[Size]string{
	SizeDefault: "h-10 px-4 py-2",
	SizeSm:      "h-9 rounded-md px-3",
	SizeIcon:    "h-10 w-10",
}

// Classes returns the merged class list for a button. Later classes win over
// conflicting earlier ones, so extra can override the variant.
func Classes(variant Variant, size Size, extra ...string) string {
	v, ok := variantClasses[variant]
	if !ok {
		v = variantClasses[VariantDefault]
	}
	s, ok := sizeClasses[size]
	if !ok {
		s = sizeClasses[SizeDefault]
	}
	return twmerge.Merge(baseClasses, v, s, strings.Join(extra, " "))
}

// Attrs wraps Classes for spreading onto an element in a template.
func Attrs(variant Variant, size Size, extra ...string) templ.Attributes {
	return templ.Attributes{"class": Classes(variant, size, extra...)}
}
