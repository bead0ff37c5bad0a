package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	got := New("playlist")
	assert.True(t, strings.HasPrefix(got, "playlist-"))
	// prefix + "-" + 36-char UUID
	assert.Len(t, got, len("playlist-")+36)
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New("song")
		assert.False(t, seen[id])
		seen[id] = true
	}
}
