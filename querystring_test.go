package tokenv2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormUrlencoded(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []FormPair
	}{
		{"none", "", nil},
		{"onlyQuestionMark", "?", nil},
		{"p1", "?a=1", []FormPair{{"a", "1"}}},
		{"p2", "a=1&b=2", []FormPair{{"a", "1"}, {"b", "2"}}},
		{"repeated", "a=1&a=2", []FormPair{{"a", "1"}, {"a", "2"}}},
		{"emptyPieces", "&&a=1&&b&", []FormPair{{"a", "1"}, {"b", ""}}},
		{"firstEqualSign", "a=1=2", []FormPair{{"a", "1=2"}}},
		{"emptyName", "=1", []FormPair{{"", "1"}}},
		{"plus", "x=a+b%20c", []FormPair{{"x", "a b c"}}},
		{"utf8", "x=%E4%B8%AD%E6%96%87", []FormPair{{"x", "中文"}}},
		{"lowerHex", "x=%e4%b8%ad", []FormPair{{"x", "中"}}},
		{"badPercent", "x=%zz%4", []FormPair{{"x", "%zz%4"}}},
		{"doubleQuestionMark", "??a=1", []FormPair{{"?a", "1"}}},
		{"invalidByte", "x=%FF", []FormPair{{"x", "\uFFFD"}}},
		{"truncatedSequence", "x=%E4%B8", []FormPair{{"x", "\uFFFD"}}},
		{"surrogate", "x=%ED%A0%80", []FormPair{{"x", "\uFFFD\uFFFD\uFFFD"}}},
		{"encodedName", "%61%2B=1", []FormPair{{"a+", "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFormUrlencoded(tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeFormUrlencoded(t *testing.T) {
	tests := []struct {
		name  string
		pairs []FormPair
		want  string
	}{
		{"none", nil, ""},
		{"p1", []FormPair{{"a", "1"}}, "a=1"},
		{"p2", []FormPair{{"a", "1"}, {"b", "2"}}, "a=1&b=2"},
		{"emptyValue", []FormPair{{"a", ""}, {"", "b"}}, "a=&=b"},
		{"space", []FormPair{{"a b", "c d"}}, "a+b=c+d"},
		{"reserved", []FormPair{{"k", "&=+?#/%"}}, "k=%26%3D%2B%3F%23%2F%25"},
		{"unreserved", []FormPair{{"k", "*-._~!'()"}}, "k=*-._%7E%21%27%28%29"},
		{"utf8", []FormPair{{"中", "文"}}, "%E4%B8%AD=%E6%96%87"},
		{"invalidUtf8", []FormPair{{"k", "\xff"}}, "k=%EF%BF%BD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeFormUrlencoded(tt.pairs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormUrlencoded_roundTrip(t *testing.T) {
	raw := "name=%E4%B8%AD%E6%96%87+x&e=a*b%7E%21"
	assert.Equal(t, raw, EncodeFormUrlencoded(ParseFormUrlencoded(raw)))
}
