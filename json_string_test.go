package tokenv2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnquoteJsonString(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"plain", `abc`, "abc"},
		{"escapes", `\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{"bmp", `中`, "中"},
		{"pair", `😀`, "😀"},
		{"loneHigh", `a\ud800b`, "a\xed\xa0\x80b"},
		{"loneLow", `\udfff`, "\xed\xbf\xbf"},
		{"highThenText", `\ud800A`, "\xed\xa0\x80A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unquoteJsonString(tt.s))
		})
	}
}

func TestSurrogateAt(t *testing.T) {
	r, ok := surrogateAt("x\xed\xa0\x80", 1)
	assert.True(t, ok)
	assert.Equal(t, rune(0xD800), r)

	r, ok = surrogateAt("\xed\xbf\xbf", 0)
	assert.True(t, ok)
	assert.Equal(t, rune(0xDFFF), r)

	// U+D7FF 是普通字符。
	_, ok = surrogateAt("\ud7ff", 0)
	assert.False(t, ok)

	_, ok = surrogateAt("\xed\xa0", 0)
	assert.False(t, ok)
}

func TestReplaceSurrogates(t *testing.T) {
	assert.Equal(t, "abc中", replaceSurrogates("abc中"))
	assert.Equal(t, "a\uFFFDb\uFFFD", replaceSurrogates("a\xed\xa0\x80b\xed\xbf\xbf"))
	assert.Equal(t, "\xed\xa0", replaceSurrogates("\xed\xa0"))
}
