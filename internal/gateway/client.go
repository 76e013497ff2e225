// Package gateway is the HTTP client for the hotel backend. It attaches the
// session's bearer token, encodes queries and multipart uploads the way the
// backend expects, and classifies failures into transport errors (no usable
// response) and application errors (structured rejections).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/lakeside/hotel-client/internal/domain"
	"github.com/lakeside/hotel-client/pkg/config"
	"github.com/lakeside/hotel-client/pkg/logger"
)

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	debug   bool
}

func New(cfg config.APIConfig, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		debug:   cfg.Debug,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do runs the request and classifies the outcome. Callers own the returned
// body on success.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.debug {
		logger.DebugContext(req.Context(), "api request", "method", req.Method, "url", req.URL.String())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{
			Op:  fmt.Sprintf("%s %s", req.Method, req.URL.Path),
			Err: err,
		}
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	return resp, nil
}

// doJSON sends payload (when non-nil) as JSON and decodes the response into
// out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// doMultipart sends a multipart form, attaching photo under the "photo" field
// when present.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, photo []byte, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to encode form: %w", err)
		}
	}
	if photo != nil {
		fw, err := mw.CreateFormFile("photo", "photo")
		if err != nil {
			return fmt.Errorf("failed to encode form: %w", err)
		}
		if _, err := fw.Write(photo); err != nil {
			return fmt.Errorf("failed to encode form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// decodeAPIError turns a non-2xx response into an ApplicationError, keeping
// the server's message when one can be extracted from the body.
func decodeAPIError(resp *http.Response) error {
	appErr := &domain.ApplicationError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return appErr
	}

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		appErr.Code = eb.Code
		appErr.Message = eb.Error
		if appErr.Message == "" {
			appErr.Message = eb.Message
		}
	}
	if appErr.Message == "" {
		// Some endpoints reject with a bare text body.
		if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") && len(text) < 300 {
			appErr.Message = strings.Trim(text, `"`)
		}
	}
	return appErr
}
