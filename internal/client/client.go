// Package client is a small HTTP client for the bookmarkd API, used by the
// bookmarkctl command.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// User mirrors the server's external user representation.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Bookmark mirrors the server's bookmark representation.
type Bookmark struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SignUp registers a new account and returns the access token.
func (c *Client) SignUp(ctx context.Context, email, password string) (string, error) {
	return c.requestToken(ctx, "/auth/signup", email, password)
}

// SignIn exchanges credentials for an access token.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	return c.requestToken(ctx, "/auth/signin", email, password)
}

func (c *Client) requestToken(ctx context.Context, path, email, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := c.do(ctx, http.MethodPost, path,
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return "", err
	}
	c.token = out.AccessToken
	return out.AccessToken, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	u := &User{}
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *Client) ListBookmarks(ctx context.Context) ([]Bookmark, error) {
	var out []Bookmark
	if err := c.do(ctx, http.MethodGet, "/bookmarks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddBookmark(ctx context.Context, title, link, description string) (*Bookmark, error) {
	b := &Bookmark{}
	err := c.do(ctx, http.MethodPost, "/bookmarks",
		map[string]string{"title": title, "link": link, "description": description}, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Client) DeleteBookmark(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/bookmarks/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
