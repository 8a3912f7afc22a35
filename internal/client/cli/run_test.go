package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = old })
}

func TestRun_MissingCommand(t *testing.T) {
	var out bytes.Buffer
	code := Run(context.Background(), nil, &out)
	require.Equal(t, 2, code)
	require.Contains(t, out.String(), "missing command")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	code := Run(context.Background(), []string{"frobnicate"}, &out)
	require.Equal(t, 2, code)
	require.Contains(t, out.String(), "unknown command")
}

func TestRun_SigninPrintsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@x.com", body["email"])
		require.Equal(t, "pw1", body["password"])
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-abc"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	stubPassword(t, "pw1")

	var out bytes.Buffer
	code := Run(context.Background(), []string{"-server", srv.URL, "signin", "-email", "a@x.com"}, &out)
	require.Equal(t, 0, code, "output: %s", out.String())
	require.Contains(t, out.String(), "export BOOKMARKD_TOKEN=tok-abc")
}

func TestRun_SignupRequiresEmail(t *testing.T) {
	var out bytes.Buffer
	code := Run(context.Background(), []string{"signup"}, &out)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "-email is required")
}

func TestRun_List(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /bookmarks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"title":"T","link":"https://x"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var out bytes.Buffer
	code := Run(context.Background(), []string{"-server", srv.URL, "list"}, &out)
	require.Equal(t, 0, code, "output: %s", out.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "#1")
	require.Contains(t, lines[0], "T")
}

func TestRun_AddValidatesFlags(t *testing.T) {
	var out bytes.Buffer
	code := Run(context.Background(), []string{"add", "-title", "T"}, &out)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "-title and -link are required")
}

func TestRun_Delete(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /bookmarks/7", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var out bytes.Buffer
	code := Run(context.Background(), []string{"-server", srv.URL, "delete", "-id", "7"}, &out)
	require.Equal(t, 0, code, "output: %s", out.String())
	require.True(t, deleted)
}
