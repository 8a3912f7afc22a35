package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T) (*httptest.Server, *http.ServeMux) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, mux
}

func TestSignIn_StoresToken(t *testing.T) {
	srv, mux := newStubServer(t)
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@x.com", body["email"])
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	})
	mux.HandleFunc("GET /bookmarks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]Bookmark{})
	})

	c := New(srv.URL, "")
	token, err := c.SignIn(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)

	// subsequent calls carry the token
	_, err = c.ListBookmarks(context.Background())
	require.NoError(t, err)
}

func TestListBookmarks_Decode(t *testing.T) {
	srv, mux := newStubServer(t)
	mux.HandleFunc("GET /bookmarks", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Bookmark{{ID: 1, Title: "T", Link: "https://x"}})
	})

	c := New(srv.URL, "tok")
	list, err := c.ListBookmarks(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "T", list[0].Title)
}

func TestDo_ServerErrorMessage(t *testing.T) {
	srv, mux := newStubServer(t)
	mux.HandleFunc("POST /auth/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "credentials taken"})
	})

	c := New(srv.URL, "")
	_, err := c.SignUp(context.Background(), "a@x.com", "pw")
	require.ErrorContains(t, err, "403")
	require.ErrorContains(t, err, "credentials taken")
}

func TestDeleteBookmark_NoContent(t *testing.T) {
	srv, mux := newStubServer(t)
	mux.HandleFunc("DELETE /bookmarks/5", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	c := New(srv.URL, "tok")
	require.NoError(t, c.DeleteBookmark(context.Background(), 5))
}
