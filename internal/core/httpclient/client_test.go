package httpclient

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quote-engine/internal/core/logger"
	"quote-engine/internal/core/proxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests are logged.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := NewClient(1*time.Second, proxy.Settings{})
	resp, err := client.Get(ts.URL + "/distance?key=secret")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are logged.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := NewClient(1*time.Second, proxy.Settings{})
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestNewClient_Proxy verifies that requests are sent through the configured proxy.
func TestNewClient_Proxy(t *testing.T) {
	var proxied bool
	proxySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = r.URL.Host == "distance.example"
		w.WriteHeader(http.StatusNoContent)
	}))
	defer proxySrv.Close()

	addr := proxySrv.Listener.Addr().(*net.TCPAddr)
	client := NewClient(1*time.Second, proxy.Settings{
		Enabled:  true,
		Hostname: addr.IP.String(),
		Port:     addr.Port,
	})

	resp, err := client.Get("http://distance.example/matrix")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.True(t, proxied)
}
