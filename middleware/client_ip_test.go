package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "forwardedForFirstHop",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			remoteAddr: "10.0.0.1:4312",
			want:       "203.0.113.7",
		},
		{
			name:       "realIPFallback",
			headers:    map[string]string{"X-Real-IP": "203.0.113.9"},
			remoteAddr: "10.0.0.1:4312",
			want:       "203.0.113.9",
		},
		{
			name:       "remoteAddrPortStripped",
			remoteAddr: "198.51.100.4:55001",
			want:       "198.51.100.4",
		},
		{
			name:       "remoteAddrWithoutPort",
			remoteAddr: "198.51.100.4",
			want:       "198.51.100.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			if got := clientIP(c); got != tt.want {
				t.Errorf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
