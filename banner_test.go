package lanstatic

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func bannerServer() *Server {
	return &Server{
		config: &Config{RootDir: "/srv/site"},
		ln:     &BoundListener{Port: 8123},
		lanIP:  "192.168.1.20",
	}
}

func TestReport_URLs(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	bannerServer().report(&buf, "linux")
	out := buf.String()

	assert.Contains(t, out, "Serving directory: /srv/site")
	assert.Contains(t, out, "Port: 8123")
	assert.Contains(t, out, "Local:    http://localhost:8123")
	assert.Contains(t, out, "Network:  http://192.168.1.20:8123")
	assert.Contains(t, out, "CORS enabled for API calls")
	assert.Contains(t, out, "Press Ctrl+C to stop")
}

func TestReport_FirewallHint(t *testing.T) {
	color.NoColor = true
	cases := map[string]string{
		"windows": "localport=8123",
		"linux":   "ufw allow 8123/tcp",
		"darwin":  "System Settings",
	}
	for goos, want := range cases {
		var buf bytes.Buffer
		bannerServer().report(&buf, goos)
		assert.Contains(t, buf.String(), want, goos)
	}
}

func TestNetworkURL_IPv6(t *testing.T) {
	s := bannerServer()
	s.lanIP = "fe80::1"
	assert.Equal(t, "http://[fe80::1]:8123", s.NetworkURL())
	assert.Equal(t, "http://localhost:8123", s.LocalURL())
}
