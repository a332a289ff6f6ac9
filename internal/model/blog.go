package model

import (
	"time"
)

// dateLayouts are tried in order when a blog date needs to be compared.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type BlogEntry struct {
	Slug  string
	Title string
	Date  string
	Image string
}

// PublishedAt parses Date with the common layouts. The raw Date text is
// never rewritten; ok is false when no layout matches.
func (b BlogEntry) PublishedAt() (t time.Time, ok bool) {
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, b.Date)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
