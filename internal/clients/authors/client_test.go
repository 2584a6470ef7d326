package authors

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publications-backend/internal/config"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(config.AuthorsConfig{
		BaseURL: baseURL,
		Timeout: timeout,
	})
}

// TestClient_AuthorExists covers the fail-closed contract: any failure mode
// must read as "author does not exist".
func TestClient_AuthorExists(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
	}{
		{
			name: "author exists",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"id": 7, "exists": true}`)
			},
			want: true,
		},
		{
			name: "author does not exist",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"id": 7, "exists": false}`)
			},
			want: false,
		},
		{
			name: "non-200 reads as false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: false,
		},
		{
			name: "404 reads as false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			want: false,
		},
		{
			name: "malformed body reads as false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"exists": "yes`)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := newTestClient(srv.URL, 2*time.Second)
			assert.Equal(t, tt.want, client.AuthorExists(context.Background(), 7))
		})
	}
}

func TestClient_AuthorExists_RequestPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"id": 42, "exists": true}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 2*time.Second)
	client.AuthorExists(context.Background(), 42)

	assert.Equal(t, "/api/v1/authors/42/exists", gotPath)
}

func TestClient_AuthorExists_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		fmt.Fprint(w, `{"id": 7, "exists": true}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 50*time.Millisecond)
	assert.False(t, client.AuthorExists(context.Background(), 7),
		"a timed-out existence check must read as false")
}

func TestClient_AuthorExists_ServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newTestClient(srv.URL, time.Second)
	assert.False(t, client.AuthorExists(context.Background(), 7))
}

// TestClient_FetchProfile covers the fail-open contract: failures report the
// profile as absent, never as an error.
func TestClient_FetchProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/authors/9", r.URL.Path)
			fmt.Fprint(w, `{"id": 9, "name": "Ada", "email": "ada@example.com", "authorType": "STAFF"}`)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, 2*time.Second)
		profile, ok := client.FetchProfile(context.Background(), 9)

		require.True(t, ok)
		require.NotNil(t, profile)
		assert.Equal(t, int64(9), profile.ID)
		assert.Equal(t, "Ada", profile.Name)
		assert.Equal(t, "ada@example.com", profile.Email)
		assert.Equal(t, "STAFF", profile.AuthorType)
	})

	t.Run("non-200 reads as absent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, 2*time.Second)
		profile, ok := client.FetchProfile(context.Background(), 9)

		assert.False(t, ok)
		assert.Nil(t, profile)
	})

	t.Run("malformed body reads as absent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id": `)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, 2*time.Second)
		profile, ok := client.FetchProfile(context.Background(), 9)

		assert.False(t, ok)
		assert.Nil(t, profile)
	})

	t.Run("timeout reads as absent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, 50*time.Millisecond)
		profile, ok := client.FetchProfile(context.Background(), 9)

		assert.False(t, ok)
		assert.Nil(t, profile)
	})
}
