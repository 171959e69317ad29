// Package gateway sends authenticated requests and normalizes results into
// the client error taxonomy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/session"

	"go.uber.org/zap"
)

// Doer abstracts the HTTP client the gateway sends through.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Gateway attaches the bearer credential to every outgoing request and maps
// transport results into ErrNetwork, RequestError and ErrDecode. A 401
// response clears the session before the error is returned: any unauthorized
// response signs the user out.
type Gateway struct {
	baseURL string
	client  Doer
	session *session.Session
	log     *zap.SugaredLogger
}

// New constructs a gateway against baseURL. A nil client falls back to a
// default http.Client.
func New(baseURL string, client Doer, sess *session.Session, log *zap.SugaredLogger) *Gateway {
	if client == nil {
		client = &http.Client{}
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		session: sess,
		log:     log.Named("gateway"),
	}
}

// Send issues one request and returns the raw JSON body. A nil body sends no
// payload; a nil result means the server answered with an empty body. No
// retries are performed at any layer.
func (g *Gateway) Send(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The credential is read at request time, so a logout mid-flight affects
	// only subsequent requests.
	if token := g.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Errorw("transport failure", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", entities.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrNetwork, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusUnauthorized {
			g.session.Clear()
		}
		msg := extractMessage(resp.Status, raw)
		g.log.Infow("request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"message", msg,
		)
		return nil, &entities.RequestError{Status: resp.StatusCode, Message: msg}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: response is not valid json", entities.ErrDecode)
	}
	return json.RawMessage(raw), nil
}

// extractMessage pulls a human-readable error from a rejection body:
// JSON detail, then JSON message, then raw body text, then the status line.
func extractMessage(statusLine string, raw []byte) string {
	var parsed struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Detail != "" {
			return parsed.Detail
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return statusLine
}
