package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientIP_HeaderPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded-for single", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"forwarded-for list takes first", map[string]string{"X-Forwarded-For": "203.0.113.7, 70.41.3.18, 150.172.238.178"}, "203.0.113.7"},
		{"forwarded-for wins over real-ip", map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.2"}, "203.0.113.7"},
		{"real-ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "198.51.100.2"},
		{"cloudflare", map[string]string{"CF-Connecting-IP": "198.51.100.9"}, "198.51.100.9"},
		{"real-ip wins over cloudflare", map[string]string{"X-Real-IP": "198.51.100.2", "CF-Connecting-IP": "198.51.100.9"}, "198.51.100.2"},
		{"no headers", nil, "unknown"},
		{"blank forwarded-for falls through", map[string]string{"X-Forwarded-For": "  ", "X-Real-IP": "198.51.100.2"}, "198.51.100.2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			if got := ClientIP(c); got != tc.want {
				t.Fatalf("ClientIP=%q want %q", got, tc.want)
			}
		})
	}
}
