package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestWrap_PreservesSentinel(t *testing.T) {
	err := Wrap(errFirst, "loading user")

	assert.True(t, Is(err, errFirst))
	assert.Equal(t, "loading user: first", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestIsAny(t *testing.T) {
	err := Wrapf(errSecond, "attempt %d", 2)

	assert.True(t, IsAny(err, errFirst, errSecond))
	assert.False(t, IsAny(err, errFirst))
	assert.False(t, IsAny(err))
}
