package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlogEntryPublishedAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date string
		want time.Time
		ok   bool
	}{
		{date: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{date: "2024-01-01T10:30:00Z", want: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), ok: true},
		{date: "2024-01-01 10:30:00", want: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), ok: true},
		{date: "January 2024"},
		{date: ""},
	}

	for _, tt := range tests {
		got, ok := BlogEntry{Date: tt.date}.PublishedAt()
		assert.Equal(t, tt.ok, ok, tt.date)
		if tt.ok {
			assert.True(t, tt.want.Equal(got), tt.date)
		}
	}
}
