// Package navbar renders the site's top navigation: three page links, an
// icon-only link to GitHub and the theme toggle.
//
// The item set is fixed. Props.Class only styles the outer element and is
// written as given.
package navbar

import (
	"github.com/a-h/templ"

	"github.com/templui/folio/internal/ui/components/icon"
	"github.com/templui/folio/internal/ui/components/themetoggle"
)

const DefaultGitHubURL = "https://github.com"

type ItemKind int

const (
	ItemLink ItemKind = iota + 1
	ItemIconLink
	ItemThemeToggle
)

// Item is one entry of the navigation list. Content is set for the
// icon link and the theme toggle, whose markup comes from collaborators.
type Item struct {
	Kind     ItemKind
	Label    string
	Href     string
	External bool
	Content  templ.Component
}

type Props struct {
	Class     string
	GitHubURL string
	// Icon and ThemeToggle default to the shared components when nil.
	Icon        templ.Component
	ThemeToggle templ.Component
}

// Items lists the navigation entries in display order.
func Items(props Props) []Item {
	githubURL := props.GitHubURL
	if githubURL == "" {
		githubURL = DefaultGitHubURL
	}
	githubIcon := props.Icon
	if githubIcon == nil {
		githubIcon = icon.Github()
	}
	toggle := props.ThemeToggle
	if toggle == nil {
		toggle = themetoggle.ThemeToggle()
	}

	return []Item{
		{Kind: ItemLink, Label: "Home", Href: "/"},
		{Kind: ItemLink, Label: "Projects", Href: "/projects"},
		{Kind: ItemLink, Label: "Blog", Href: "/blogs"},
		{Kind: ItemIconLink, Label: "GitHub", Href: githubURL, External: true, Content: githubIcon},
		{Kind: ItemThemeToggle, Label: "Theme", Content: toggle},
	}
}

func rootAttrs(props Props) templ.Attributes {
	if props.Class == "" {
		return templ.Attributes{}
	}
	return templ.Attributes{"class": props.Class}
}

func linkAttrs(item Item) templ.Attributes {
	if !item.External {
		return templ.Attributes{}
	}
	return templ.Attributes{"target": "_blank", "rel": "noopener noreferrer"}
}
