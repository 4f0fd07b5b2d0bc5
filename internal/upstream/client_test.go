package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSuccess(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"targetId":1}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	body, err := client.Fetch(context.Background(), "/targets", Params{"type": "GPCR", "name": "adrenergic"})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"targetId":1}]`, string(body))
	assert.Equal(t, "/targets?name=adrenergic&type=GPCR", gotURL)
}

func TestFetchOmitsEmptyQueryString(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), "/diseases", nil)

	require.NoError(t, err)
	assert.Equal(t, "/diseases", gotURL, "no trailing '?' for parameterless calls")
}

func TestFetchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such target", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), "/targets/999999", nil)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr), "non-2xx must be a StatusError, got %v", err)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, statusErr.Body, "no such target")
}

func TestFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), "/targets", nil)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestFetchDoesNotParseBody(t *testing.T) {
	// A 200 with a broken body is the relay's problem, not the client's.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("definitely not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	body, err := client.Fetch(context.Background(), "/targets", nil)

	require.NoError(t, err)
	assert.Equal(t, "definitely not json", string(body))
}

func TestFetchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), "/targets", nil)

	assert.ErrorIs(t, err, ErrConnectivity)
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	client := NewClient(server.URL, 50*time.Millisecond)
	_, err := client.Fetch(context.Background(), "/targets", nil)

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestFetchContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Fetch(ctx, "/targets", nil)

	require.Error(t, err, "a cancelled inbound call must abort the outbound request")
}

func TestNewClientDefaultTimeout(t *testing.T) {
	client := NewClient(DefaultBaseURL, 0)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
