package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID_Generated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	newTestServer(t, &fakeGenerator{}).Handler().ServeHTTP(rec, req)

	id := rec.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36, "expected a uuid, got %q", id)
}

func TestRequestID_Propagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	newTestServer(t, &fakeGenerator{}).Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRequestIDFrom_Empty(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	gen := &fakeGenerator{err: io.ErrUnexpectedEOF}
	s, err := NewServer(":0", gen, zap.New(core))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/code-comment",
		strings.NewReader(`{"code": "SECRET_TOKEN = 1", "language": "python"}`))
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	failures := logs.FilterMessage("Comment generation failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "req-1", failures[0].ContextMap()["request_id"])
	assert.Equal(t, "python", failures[0].ContextMap()["language"])

	served := logs.FilterMessage("Request served").All()
	require.Len(t, served, 1)
	fields := served[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, int64(http.StatusInternalServerError), fields["status"])
	assert.Equal(t, "/api/code-comment", fields["path"])

	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			if str, ok := v.(string); ok {
				assert.NotContains(t, str, "SECRET_TOKEN", "submitted code must not be logged")
			}
		}
	}
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: "done"})
	s.SetShutdownTimeout(5 * time.Second)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ctx, ln)
	}()

	client := &http.Client{Transport: &http.Transport{}}
	defer client.CloseIdleConnections()

	resp, err := client.Post("http://"+ln.Addr().String()+"/api/code-comment", "application/json",
		strings.NewReader(`{"code": "x", "language": "go"}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"commentedCode": "done"}`, string(body))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_ClosedListener(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ln.Close()

	err = s.Serve(context.Background(), ln)
	assert.Error(t, err)
}

func TestRun_InvalidAddr(t *testing.T) {
	s, err := NewServer("not-an-addr", &fakeGenerator{}, nil)
	require.NoError(t, err)

	assert.Error(t, s.Run(context.Background()))
}
