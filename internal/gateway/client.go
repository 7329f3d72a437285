package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
)

// CredentialSource supplies and stores the upstream credentials bound to one
// panel session. Implementations must tolerate concurrent calls.
type CredentialSource interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	StoreAccessToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Observer receives upstream request timings for instrumentation.
type Observer interface {
	ObserveUpstreamRequest(method, path string, status int, duration time.Duration)
}

// Client is the low-level HTTP boundary to the university REST backend.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	observer Observer
}

// New constructs a gateway client. The timeout is the transport-level ceiling
// for every upstream call; there is no per-call cancellation contract beyond
// it.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, observer Observer) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
		observer: observer,
	}
}

// Session binds the client to one session's credentials. A nil source yields
// unauthenticated calls.
func (c *Client) Session(creds CredentialSource) *Session {
	return &Session{c: c, creds: creds}
}

// Session issues upstream requests on behalf of one authenticated panel
// session, attaching the access credential and transparently refreshing it
// once on an authorization failure.
type Session struct {
	c     *Client
	creds CredentialSource
}

func (s *Session) do(ctx context.Context, method, path string, body, out interface{}) error {
	_, raw, err := s.exchange(ctx, method, path, body, "")
	if err != nil {
		return err
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "malformed upstream response")
		}
	}
	return nil
}

// doRaw is the blob variant used by export endpoints.
func (s *Session) doRaw(ctx context.Context, method, path string) ([]byte, string, error) {
	contentType, raw, err := s.exchange(ctx, method, path, nil, "")
	return raw, contentType, err
}

// exchange performs the request with the current access credential. On a 401
// it refreshes exactly once and replays the original call unmodified; a
// second 401 clears the stored credentials and reports an expired session.
func (s *Session) exchange(ctx context.Context, method, path string, body interface{}, _ string) (string, []byte, error) {
	token := ""
	if s.creds != nil {
		t, err := s.creds.AccessToken(ctx)
		if err != nil {
			s.c.logger.Warn("failed to read access credential", zap.Error(err))
		} else {
			token = t
		}
	}

	status, contentType, raw, err := s.c.roundTrip(ctx, method, path, token, body)
	if err != nil {
		return "", nil, err
	}

	if status == http.StatusUnauthorized && s.creds != nil {
		newToken, refreshErr := s.refreshCredential(ctx)
		if refreshErr != nil {
			_ = s.creds.Clear(ctx)
			return "", nil, appErrors.Wrap(refreshErr, appErrors.ErrSessionExpired.Code, appErrors.ErrSessionExpired.Status, appErrors.ErrSessionExpired.Message)
		}

		status, contentType, raw, err = s.c.roundTrip(ctx, method, path, newToken, body)
		if err != nil {
			return "", nil, err
		}
		if status == http.StatusUnauthorized {
			_ = s.creds.Clear(ctx)
			return "", nil, appErrors.Clone(appErrors.ErrSessionExpired, "")
		}
	}

	if status >= http.StatusBadRequest {
		return "", nil, upstreamError(status, raw)
	}
	return contentType, raw, nil
}

func (s *Session) refreshCredential(ctx context.Context) (string, error) {
	refresh, err := s.creds.RefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refresh == "" {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "no refresh credential")
	}

	pair, err := s.c.Refresh(ctx, refresh)
	if err != nil {
		return "", err
	}
	if err := s.creds.StoreAccessToken(ctx, pair.Access); err != nil {
		s.c.logger.Warn("failed to store refreshed access credential", zap.Error(err))
	}
	return pair.Access, nil
}

// public performs an unauthenticated call (login, register, refresh).
func (c *Client) public(ctx context.Context, method, path string, body, out interface{}) error {
	status, _, raw, err := c.roundTrip(ctx, method, path, "", body)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return upstreamError(status, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "malformed upstream response")
		}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, body interface{}) (int, string, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "marshal upstream payload")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, path, 0, time.Since(start))
		return 0, "", nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "upstream request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.observe(method, path, resp.StatusCode, time.Since(start))
	if err != nil {
		return 0, "", nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "read upstream response")
	}

	return resp.StatusCode, resp.Header.Get("Content-Type"), raw, nil
}

func (c *Client) observe(method, path string, status int, duration time.Duration) {
	if c.observer != nil {
		c.observer.ObserveUpstreamRequest(method, path, status, duration)
	}
}
