package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	assert.Equal(t, "", s.Read("k"))
	assert.Equal(t, 0, s.Len())

	s.Write("k", "v")
	assert.Equal(t, "v", s.Read("k"))
	assert.Equal(t, 1, s.Len())

	s.Write("k", "v2")
	assert.Equal(t, "v2", s.Read("k"))
	assert.Equal(t, 1, s.Len())

	s.Write("k", "")
	assert.Equal(t, "", s.Read("k"))
	assert.Equal(t, 0, s.Len())
}

func TestField(t *testing.T) {
	tests := []struct {
		field Field
		name  string
		key   string
	}{
		{Field_QueryParams, "queryParams", "token-v2-generator.queryParams"},
		{Field_BodyData, "bodyData", "token-v2-generator.bodyData"},
		{Field_Token, "token", "token-v2-generator.token"},
		{Field_ApiShareKey, "apiShareKey", "token-v2-generator.apiShareKey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.field.String())
			assert.Equal(t, tt.key, tt.field.Key())
		})
	}

	assert.Equal(t, "Field(9)", Field(9).String())
	assert.Len(t, Fields(), 4)
}
