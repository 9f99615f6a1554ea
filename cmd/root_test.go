package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"text":"buy milk"},{"id":2,"text":"walk dog"}]`))
	}))
	defer srv.Close()

	out, err := execute(t, "list", "--api-url", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "1\tbuy milk\n2\twalk dog\n", out)
}

func TestAddCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"text":"buy milk"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"text":"buy milk"}`))
	}))
	defer srv.Close()

	out, err := execute(t, "add", "--api-url", srv.URL, "  buy", "milk  ")
	require.NoError(t, err)
	assert.Equal(t, "9\tbuy milk\n", out)
}

func TestAddCommandValidatesBeforeCalling(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := execute(t, "add", "--api-url", srv.URL, "   ")
	assert.ErrorContains(t, err, "text is required")
	assert.Equal(t, int32(0), calls.Load())
}

func TestAddCommandReportsFinalFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := execute(t, "add", "--api-url", srv.URL, "--max-retries", "1", "--base-delay", "1ms", "--max-delay", "1ms", "x")
	assert.ErrorContains(t, err, "failed to add item: failed to create item: 500 Internal Server Error")
	assert.Equal(t, int32(2), calls.Load())
}
