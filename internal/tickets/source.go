package tickets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"tickboard/internal/debug"
)

// maxPayloadBytes bounds how much of a response body is read.
const maxPayloadBytes = 32 << 20

// Source loads the current ticket collection.
type Source interface {
	Fetch(ctx context.Context) ([]Ticket, error)
}

// HTTPSource fetches tickets with a single GET against a fixed endpoint.
// No retries, no auth headers, no query parameters.
type HTTPSource struct {
	endpoint   string
	httpClient *http.Client
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient sets a custom HTTP client for the source.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.httpClient = client
	}
}

// NewHTTPSource creates a source for the given endpoint.
func NewHTTPSource(endpoint string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.httpClient == nil {
		s.httpClient = http.DefaultClient
	}
	return s
}

// Fetch performs the GET and decodes the payload. The caller's context is the
// only deadline applied.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Ticket, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: s.endpoint, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: s.endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Endpoint: s.endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, &FetchError{Endpoint: s.endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	tickets, err := DecodePayload(body)
	if err != nil {
		return nil, &FetchError{Endpoint: s.endpoint, Err: err}
	}
	debug.WithFields(debug.Fields{"endpoint": s.endpoint, "tickets": len(tickets)}, "fetched ticket feed")
	return tickets, nil
}

// DecodePayload parses a `{ "tickets": [...] }` document.
//
// Only invalid JSON is an error. A document that is not an object, or a
// missing or non-array "tickets" member, yields a nil collection. Entries
// that are not objects are skipped, and fields that are absent or of the
// wrong type fall back to their zero value (PriorityUnset for priority).
func DecodePayload(body []byte) ([]Ticket, error) {
	if !isJSONObject(body) {
		var doc any
		if err := sonic.Unmarshal(body, &doc); err != nil {
			return nil, parseError("decode ticket payload", err)
		}
		debug.Log("ticket payload is not an object; treating as empty")
		return nil, nil
	}

	var envelope map[string]json.RawMessage
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return nil, parseError("decode ticket payload", err)
	}

	raw, ok := envelope["tickets"]
	if !ok || !isJSONArray(raw) {
		debug.Log("ticket payload has no tickets array; treating as empty")
		return nil, nil
	}

	var entries []json.RawMessage
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		return nil, parseError("decode tickets array", err)
	}

	out := make([]Ticket, 0, len(entries))
	for i, entry := range entries {
		var fields map[string]json.RawMessage
		if !isJSONObject(entry) || sonic.Unmarshal(entry, &fields) != nil {
			debug.Logf("skipping ticket entry %d: not an object", i)
			continue
		}
		out = append(out, Ticket{
			ID:       scalarString(fields["id"]),
			Title:    scalarString(fields["title"]),
			User:     scalarString(fields["user"]),
			Status:   Status(scalarString(fields["status"])),
			Priority: priorityValue(fields["priority"]),
		})
	}
	return out, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// scalarString accepts JSON strings and numbers; anything else is "".
func scalarString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(trimmed)
	default:
		return ""
	}
}

// priorityValue accepts integral JSON numbers (or numeric strings) and maps
// everything else to PriorityUnset.
func priorityValue(raw json.RawMessage) Priority {
	text := scalarString(raw)
	if text == "" {
		return PriorityUnset
	}
	if n, err := strconv.Atoi(text); err == nil {
		return Priority(n)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && f == float64(int(f)) {
		return Priority(int(f))
	}
	return PriorityUnset
}
