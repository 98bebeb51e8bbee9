package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/record-picker/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, url string, retries int) *HTTP {
	t.Helper()
	src, err := NewHTTP(Options{
		URL:          url,
		Timeout:      2 * time.Second,
		RetryMax:     retries,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
	})
	require.NoError(t, err)
	return src
}

func TestFetchAllDecodesRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Ana"},{"id":"b-2","name":"Bruno","age":31},{"name":"Carla"}]`))
	}))
	defer srv.Close()

	src := newTestSource(t, srv.URL+"/pessoas", 0)
	got, err := src.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []record.Record{
		{ID: "1", Name: "Ana"},
		{ID: "b-2", Name: "Bruno"},
		{ID: "Carla", Name: "Carla"},
	}, got)
}

func TestFetchAllRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"id":7,"name":"Gil"}]`))
	}))
	defer srv.Close()

	src := newTestSource(t, srv.URL, 2)
	got, err := src.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []record.Record{{ID: "7", Name: "Gil"}}, got)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchAllReportsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src := newTestSource(t, srv.URL, 3)
	_, err := src.FetchAll(context.Background())
	require.Error(t, err)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.False(t, statusErr.Temporary())
}

func TestFetchAllGivesUpAfterRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src := newTestSource(t, srv.URL, 1)
	_, err := src.FetchAll(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.True(t, statusErr.Temporary())
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchAllHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := newTestSource(t, srv.URL, 0)
	_, err := src.FetchAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewHTTPRejectsBadURL(t *testing.T) {
	_, err := NewHTTP(Options{})
	require.Error(t, err)
	_, err = NewHTTP(Options{URL: "ftp://example.com/people"})
	require.Error(t, err)
	src, err := NewHTTP(Options{URL: " https://example.com/people "})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/people", src.URL())
}

func TestDecodeRejectsMalformedRecords(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"id":1}]`))
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = Decode(strings.NewReader(`[{"id":{"x":1},"name":"a"}]`))
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = Decode(strings.NewReader(`{"name":"not an array"}`))
	assert.Error(t, err)

	got, err := Decode(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStaticReturnsCopy(t *testing.T) {
	src := Static{{ID: "1", Name: "one"}}
	got, err := src.FetchAll(context.Background())
	require.NoError(t, err)
	got[0].Name = "changed"
	assert.Equal(t, "one", src[0].Name)
}
