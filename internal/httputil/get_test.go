// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotUA, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("hello"))
	}))
	defer ts.Close()

	body, err := Get(context.Background(), ts.Client(), ts.URL, Options{UserAgent: "test/0.1", Accept: "text/html"})
	require.NoError(t, err)

	assert.Equal(t, "hello", string(body))
	assert.Equal(t, "test/0.1", gotUA)
	assert.Equal(t, "text/html", gotAccept)
}

func TestGet_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, Options{})
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestGet_BodyTooLarge(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, Options{MaxBodyBytes: 10})
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestGet_ContextDeadline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, Options{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
