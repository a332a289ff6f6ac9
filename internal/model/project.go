package model

type ProjectEntry struct {
	Slug  string
	Title string
	URL   string
	Image string
	// Stack is shown in the order it was authored.
	Stack []string
}
