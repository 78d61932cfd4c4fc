package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

// Client calls the remote DestiMatch API. It is safe for concurrent use; the
// visitor session travels on the context of each call.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the instrumented default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sessionContextKey struct{}

// WithSession attaches the visitor session used for authorization headers
// and for persisting login results.
func WithSession(ctx context.Context, session ports.SessionSource) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionContextKey{}, session)
}

func sessionFrom(ctx context.Context) (ports.SessionSource, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(ports.SessionSource)
	return session, ok && session != nil
}

type call struct {
	op         string
	method     string
	path       string
	query      url.Values
	body       any
	authorized bool
}

func (c *Client) do(ctx context.Context, in call, out any) error {
	endpoint := c.baseURL + in.path
	if len(in.query) > 0 {
		endpoint += "?" + in.query.Encode()
	}

	var body io.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("gateway %s: encode request: %w", in.op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("gateway %s: build request: %w", in.op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if in.authorized {
		if session, ok := sessionFrom(ctx); ok {
			if token, ok := session.Token(ctx); ok {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: in.op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Kind:    KindHTTPStatus,
			Op:      in.op,
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp.Body),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDecode, Op: in.op, Status: resp.StatusCode, Err: err}
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return GenericMessage
	}
	var payload struct {
		ErrorMessage string `json:"error_message"`
		Message      string `json:"message"`
		Error        string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return GenericMessage
	}
	for _, candidate := range []string{payload.ErrorMessage, payload.Message, payload.Error} {
		if msg := strings.TrimSpace(candidate); msg != "" {
			return msg
		}
	}
	return GenericMessage
}
