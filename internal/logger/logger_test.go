package logger

import (
	"testing"

	"github.com/cenkalti/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	assert.NoError(t, err)
	assert.Equal(t, log.DEBUG, l)

	l, err = ParseLevel(" WARNING ")
	assert.NoError(t, err)
	assert.Equal(t, log.WARNING, l)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
