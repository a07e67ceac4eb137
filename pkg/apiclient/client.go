// pkg/apiclient/client.go
//
// Client HTTP bertipe untuk backend madrasahku. Dipakai tooling/CLI dan test
// integrasi; semua response dibongkar dari amplop {success,message,data}.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// ErrUnauthorized: sesi tidak valid (401). Token lokal sudah dibuang; pemanggil
// harus Init ulang.
var ErrUnauthorized = errors.New("apiclient: sesi tidak valid")

// APIError: response non-2xx dari server.
type APIError struct {
	StatusCode int
	Message    string
	ErrorCode  string
	Errors     map[string][]string
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("apiclient: %s (%d %s)", e.Message, e.StatusCode, e.ErrorCode)
	}
	return fmt.Sprintf("apiclient: %s (%d)", e.Message, e.StatusCode)
}

type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Data      json.RawMessage     `json:"data"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
}

// Client menyimpan base URL + bearer token sesi berjalan. Aman dipakai dari
// banyak goroutine.
type Client struct {
	baseURL string
	hc      *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient mengganti http.Client bawaan (untuk test / custom transport).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.hc = hc
	return c
}

func (c *Client) setToken(t string) {
	c.mu.Lock()
	c.token = t
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// LoggedIn melaporkan apakah sesi sedang memegang token.
func (c *Client) LoggedIn() bool { return c.Token() != "" }

// do mengirim satu request JSON; out boleh nil. 401 membuang token lokal dan
// mengembalikan ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("apiclient: baca response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.setToken("")
		return ErrUnauthorized
	}

	var env envelope
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("apiclient: decode response (%d): %w", resp.StatusCode, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (len(raw) > 0 && !env.Success) {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			ErrorCode:  env.ErrorCode,
			Errors:     env.Errors,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := sonic.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("apiclient: decode data: %w", err)
		}
	}
	return nil
}
