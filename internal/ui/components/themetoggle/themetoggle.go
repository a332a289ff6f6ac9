// Package themetoggle renders the light/dark switch. The current theme is
// owned by the page script listening on data-theme-toggle.
package themetoggle

const (
	sunClass  = "rotate-0 scale-100 transition-all dark:-rotate-90 dark:scale-0"
	moonClass = "absolute rotate-90 scale-0 transition-all dark:rotate-0 dark:scale-100"
)
