package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPut, "http://gateway.example/api/upload", nil)
	assert.Equal(t, "http://gateway.example", requestOrigin(c))

	c.Request.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://gateway.example", requestOrigin(c))
}

func TestValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"1700000000000-abc-a.png", true},
		{"nested/key", true},
		{"", false},
		{"../etc/passwd", false},
		{"a/../b", false},
		{"trailing/..", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validKey(tt.key), "key %q", tt.key)
	}
}

func TestKeyFromMediaURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://gateway.example/media/123-abc-a.png", "123-abc-a.png"},
		{"https://gateway.example/media/k", "k"},
		{"bare-key", "bare-key"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, keyFromMediaURL(tt.url), "url %q", tt.url)
	}
}
