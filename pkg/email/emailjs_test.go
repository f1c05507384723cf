package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleanpro-web/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPostsTemplateRequest(t *testing.T) {
	var got map[string]any
	var origin string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		origin = r.Header.Get("Origin")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := email.NewClient(email.Config{Endpoint: srv.URL, PrivateKey: "secret", Origin: "https://example.test"})
	err := c.Send(context.Background(), "service_1", "template_1", map[string]string{"name": "Jane"}, "public_1")
	require.NoError(t, err)

	assert.Equal(t, "https://example.test", origin)
	assert.Equal(t, "service_1", got["service_id"])
	assert.Equal(t, "template_1", got["template_id"])
	assert.Equal(t, "public_1", got["user_id"])
	assert.Equal(t, "secret", got["accessToken"])
	assert.Equal(t, map[string]any{"name": "Jane"}, got["template_params"])
}

func TestSendOmitsEmptyAccessToken(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	require.NoError(t, email.NewClient(email.Config{Endpoint: srv.URL}).Send(context.Background(), "s", "t", nil, "k"))
	assert.NotContains(t, got, "accessToken")
}

func TestSendReportsRelayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The Public Key is invalid\n"))
	}))
	defer srv.Close()

	err := email.NewClient(email.Config{Endpoint: srv.URL}).Send(context.Background(), "s", "t", nil, "bad")
	require.Error(t, err)
	assert.Equal(t, "emailjs: status 400: The Public Key is invalid", err.Error())
}

func TestSendTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := email.NewClient(email.Config{Endpoint: srv.URL, Timeout: 20 * time.Millisecond})
	assert.Error(t, c.Send(context.Background(), "s", "t", nil, "k"))
}
