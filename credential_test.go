package tokenv2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCredential(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bearer", "Bearer abc", "abc"},
		{"plain", "abc", "abc"},
		{"spaces", "  Bearer   abc  ", "abc"},
		{"moreParts", "Bearer abc def", "abc"},
		{"tabsAndNewLines", "\tBearer\n\nabc\r\n", "abc"},
		{"nbsp", "Bearer\u00a0abc", "abc"},
		{"bom", "\uFEFFabc", "abc"},
		{"otherScheme", "Token xyz", "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractCredential(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("SameResult", func(t *testing.T) {
		a, _ := ExtractCredential("Bearer abc")
		b, _ := ExtractCredential("abc")
		assert.Equal(t, a, b)
	})

	t.Run("Missing", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n", "\u00a0\u3000"} {
			got, err := ExtractCredential(raw)
			assert.Equal(t, "", got)
			require.Error(t, err)
			assert.Equal(t, ErrorKind_MissingCredential, KindOf(err))
			assert.Equal(t, "Invalid bearer token", err.Error())
		}
	})
}
