package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long st...", truncate("long string here", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
