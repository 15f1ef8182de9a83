package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FindPage(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expected    string
		expectError bool
	}{
		{
			name:     "first result url is returned",
			status:   http.StatusOK,
			body:     `["Battery Park",["Battery Park"],[""],["https://en.wikipedia.org/wiki/Battery_Park"]]`,
			expected: "https://en.wikipedia.org/wiki/Battery_Park",
		},
		{
			name:        "empty result set",
			status:      http.StatusOK,
			body:        `["nonexistent venue",[],[],[]]`,
			expectError: true,
		},
		{
			name:        "non-200 status",
			status:      http.StatusServiceUnavailable,
			body:        ``,
			expectError: true,
		},
		{
			name:        "malformed response",
			status:      http.StatusOK,
			body:        `{"not":"opensearch"}`,
			expectError: true,
		},
		{
			name:        "truncated positional array",
			status:      http.StatusOK,
			body:        `["query",["title"]]`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "opensearch", r.URL.Query().Get("action"))
				assert.Equal(t, "1", r.URL.Query().Get("limit"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.Client(), srv.URL)
			got, err := client.FindPage(context.Background(), "Battery Park")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestClient_FindPage_QueryIsEscaped(t *testing.T) {
	var gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		w.Write([]byte(`["q",["t"],[""],["https://en.wikipedia.org/wiki/T"]]`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	_, err := client.FindPage(context.Background(), "Café & Bar")
	require.NoError(t, err)
	assert.Equal(t, "Café & Bar", gotSearch)
}
