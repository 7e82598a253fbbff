package tools

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateObjectKeyFormat(t *testing.T) {
	key, err := GenerateObjectKey("a.png")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(key, "-a.png"), "key %q should end with the original filename", key)

	millis, _, found := strings.Cut(key, "-")
	require.True(t, found)
	_, err = strconv.ParseInt(millis, 10, 64)
	assert.NoError(t, err, "key should start with a unix-millis timestamp")
}

func TestGenerateObjectKeyUniqueUnderConcurrency(t *testing.T) {
	const n = 1000

	keys := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, err := GenerateObjectKey("photo.jpg")
			assert.NoError(t, err)
			keys <- key
		}()
	}
	wg.Wait()
	close(keys)

	seen := make(map[string]bool, n)
	for key := range keys {
		assert.False(t, seen[key], "duplicate key generated: %s", key)
		seen[key] = true
	}
	assert.Len(t, seen, n)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.png", "a.png"},
		{"dir/a.png", "a.png"},
		{`dir\a.png`, "a.png"},
		{"../../etc/passwd", "passwd"},
		{"..", "file"},
		{"", "file"},
		{"weird..name.png", "weirdname.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "input %q", tt.in)
	}
}
