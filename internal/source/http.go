package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/atomicstack/record-picker/internal/logging"
	"github.com/atomicstack/record-picker/internal/logging/events"
	"github.com/atomicstack/record-picker/internal/record"
	"github.com/hashicorp/go-retryablehttp"
)

const maxBodyBytes = 32 << 20

// Options configures the HTTP record source.
type Options struct {
	URL          string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// HTTPClient overrides the pooled transport, mostly for tests.
	HTTPClient *nethttp.Client
}

// HTTP fetches records from a JSON endpoint returning an array of objects.
type HTTP struct {
	url    string
	client *retryablehttp.Client
}

// transportLogger implements retryablehttp.LeveledLogger on top of the shared log.
type transportLogger struct{}

func (transportLogger) Error(msg string, keysAndValues ...interface{}) {
	logging.Warnf("transport error: %s %v", msg, keysAndValues)
	events.Source.Transport("error", msg, keysAndValues)
}

func (transportLogger) Warn(msg string, keysAndValues ...interface{}) {
	logging.Warnf("transport: %s %v", msg, keysAndValues)
	events.Source.Transport("warn", msg, keysAndValues)
}

func (transportLogger) Info(msg string, keysAndValues ...interface{}) {}

func (transportLogger) Debug(msg string, keysAndValues ...interface{}) {
	events.Source.Transport("debug", msg, keysAndValues)
}

// NewHTTP validates opts and builds a retrying client.
func NewHTTP(opts Options) (*HTTP, error) {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		return nil, fmt.Errorf("record source url is required")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("record source url %q must use http or https", url)
	}

	client := retryablehttp.NewClient()
	if opts.HTTPClient != nil {
		client.HTTPClient = opts.HTTPClient
	}
	if opts.Timeout > 0 {
		client.HTTPClient.Timeout = opts.Timeout
	}
	if opts.RetryMax >= 0 {
		client.RetryMax = opts.RetryMax
	}
	if opts.RetryWaitMin > 0 {
		client.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		client.RetryWaitMax = opts.RetryWaitMax
	}
	client.Logger = transportLogger{}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.RequestLogHook = func(_ retryablehttp.Logger, req *nethttp.Request, attempt int) {
		events.Source.Fetch(req.URL.String(), attempt+1)
	}

	return &HTTP{url: url, client: client}, nil
}

// URL returns the endpoint the source reads from.
func (h *HTTP) URL() string { return h.url }

// FetchAll issues one GET and decodes the record array.
func (h *HTTP) FetchAll(ctx context.Context) ([]record.Record, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, nethttp.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		events.Source.Error(h.url, err)
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{URL: h.url, StatusCode: resp.StatusCode, Status: resp.Status}
		events.Source.Error(h.url, statusErr)
		return nil, statusErr
	}

	records, err := Decode(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		events.Source.Error(h.url, err)
		return nil, err
	}
	events.Source.Loaded(h.url, len(records))
	return records, nil
}

type wireRecord struct {
	ID   json.RawMessage `json:"id"`
	Name *string         `json:"name"`
}

// Decode parses a JSON array of record objects. Objects without an id use
// their name as the identifier.
func Decode(r io.Reader) ([]record.Record, error) {
	var wire []wireRecord
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	records := make([]record.Record, 0, len(wire))
	for i, w := range wire {
		if w.Name == nil || strings.TrimSpace(*w.Name) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingName)
		}
		id, err := decodeID(w.ID)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if id == "" {
			id = *w.Name
		}
		records = append(records, record.Record{ID: id, Name: *w.Name})
	}
	return records, nil
}

func decodeID(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidID, err)
		}
		return s, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidID, err)
		}
		return n.String(), nil
	default:
		return "", ErrInvalidID
	}
}
