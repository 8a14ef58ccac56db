package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"longer than max", "hello world", 5, "hello"},
		{"zero max", "hello", 0, ""},
		{"negative max", "hello", -1, ""},
		{"multibyte runes kept whole", "héllo wörld", 7, "héllo w"},
		{"empty input", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "abc", CleanText("  abc  ", 10))
	assert.Equal(t, "ab", CleanText("  abcd ", 2))
	assert.Equal(t, "", CleanText("   ", 10))
}

func TestDefaultIfBlank(t *testing.T) {
	assert.Equal(t, "fallback", DefaultIfBlank("", "fallback"))
	assert.Equal(t, "fallback", DefaultIfBlank("   ", "fallback"))
	assert.Equal(t, "value", DefaultIfBlank("value", "fallback"))
}
