package tokenv2

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTokenError(t *testing.T) {
	var e TokenError

	e = CreateTokenError(ErrorKind_InvalidFormat, nil, "msg")
	assert.Equal(t, "msg", e.Error())
	assert.Equal(t, ErrorKind_InvalidFormat, e.Kind)

	e = CreateTokenError(ErrorKind_MissingField, nil, "msg %v %v", 1, 2)
	assert.Equal(t, "msg 1 2", e.Error())

	inner := errors.New("inner")
	e = CreateTokenError(ErrorKind_MissingCredential, inner, "msg")
	assert.Equal(t, "msg", e.Error())
	assert.Equal(t, inner, e.Cause())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKind_None, KindOf(nil))
	assert.Equal(t, ErrorKind_None, KindOf(errors.New("x")))

	e := CreateTokenError(ErrorKind_MissingField, nil, "m")
	assert.Equal(t, ErrorKind_MissingField, KindOf(e))

	wrapped := fmt.Errorf("wrapped: %w", e)
	assert.Equal(t, ErrorKind_MissingField, KindOf(wrapped))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "None", ErrorKind_None.String())
	assert.Equal(t, "InvalidFormat", ErrorKind_InvalidFormat.String())
	assert.Equal(t, "MissingField", ErrorKind_MissingField.String())
	assert.Equal(t, "MissingCredential", ErrorKind_MissingCredential.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}
