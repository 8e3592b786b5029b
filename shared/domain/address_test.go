package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageAddress(t *testing.T) {
	a := MessageAddress(0, "alice")

	assert.Len(t, a, 64)
	assert.Equal(t, a, MessageAddress(0, "alice"), "address must be deterministic")
	assert.NotEqual(t, a, MessageAddress(1, "alice"))
	assert.NotEqual(t, a, MessageAddress(0, "bob"))
}
