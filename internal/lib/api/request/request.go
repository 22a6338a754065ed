// Package request performs JSON calls against the upstream services and
// normalizes their responses: empty bodies, JSON bodies, plain text and the
// bare true/false some endpoints answer with.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"eventPortal/internal/lib/logger/sl"
)

const (
	contentTypeJSON = "application/json"

	unreadableBody = "Failed to read error response"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindJSON
	KindBool
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindJSON:
		return "json"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Result is a successful response, already classified by Kind.
type Result struct {
	kind Kind
	raw  []byte
	flag bool
}

func (r *Result) Kind() Kind {
	return r.kind
}

// Decode unmarshals a JSON result into v. Any other kind leaves v untouched.
func (r *Result) Decode(v any) error {
	if r.kind != KindJSON {
		return nil
	}
	return json.Unmarshal(r.raw, v)
}

func (r *Result) Bool() (bool, bool) {
	return r.flag, r.kind == KindBool
}

func (r *Result) Text() string {
	return string(r.raw)
}

type Options struct {
	Header http.Header
	// Body is JSON-encoded when non-nil.
	Body any
}

type Client struct {
	http *http.Client
	log  *slog.Logger
}

func New(log *slog.Logger, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http: httpClient,
		log:  log,
	}
}

func (c *Client) Do(ctx context.Context, method, url string, opts *Options) (*Result, error) {
	const op = "request.Do"

	log := c.log.With(
		slog.String("op", op),
		slog.String("method", method),
		slog.String("url", url),
	)

	res, err := c.do(ctx, method, url, opts)
	if err != nil {
		log.Error("fetch call failed", sl.Err(err))
		return nil, err
	}

	return res, nil
}

func (c *Client) do(ctx context.Context, method, url string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	req.Header.Set("Accept", contentTypeJSON)
	if opts.Body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	} else {
		req.Header.Del("Content-Type")
	}
	// The upstream services reject credentialed requests; the session token
	// is never forwarded.
	req.Header.Del("Authorization")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}

	if resp.StatusCode == http.StatusNoContent || resp.Header.Get("Content-Length") == "0" {
		return &Result{kind: KindEmpty}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if strings.Contains(resp.Header.Get("Content-Type"), contentTypeJSON) {
		return &Result{kind: KindJSON, raw: raw}, nil
	}

	switch text := string(raw); text {
	case "true", "false":
		return &Result{kind: KindBool, raw: raw, flag: text == "true"}, nil
	default:
		return &Result{kind: KindText, raw: raw}, nil
	}
}

func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil {
		return unreadableBody
	}

	var payload struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != nil {
		return *payload.Message
	}

	return string(raw)
}
