package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "https URL", url: "https://example.com"},
		{name: "URL with path and query", url: "https://example.com/path?x=1"},
		{name: "http URL with port", url: "http://localhost:8080"},
		{name: "ftp scheme is accepted", url: "ftp://bad"},
		{name: "mailto scheme is accepted", url: "mailto:me@example.com"},
		{name: "plain words", url: "not a url", wantErr: ErrNotAbsoluteURL},
		{name: "relative path", url: "/projects/site", wantErr: ErrNotAbsoluteURL},
		{name: "host without scheme", url: "example.com", wantErr: ErrNotAbsoluteURL},
		{name: "empty", url: "", wantErr: ErrEmpty},
		{name: "whitespace", url: "   ", wantErr: ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateURL(tt.url)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateNonEmpty(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateNonEmpty("My Post"))
	require.NoError(t, ValidateNonEmpty(" padded "))
	require.ErrorIs(t, ValidateNonEmpty(""), ErrEmpty)
	require.ErrorIs(t, ValidateNonEmpty(" \t\n"), ErrEmpty)
}
