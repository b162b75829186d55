package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	picked := Pick(3)
	assert.Equal(t, 3, len(picked))

	seen := make(map[string]bool)
	for _, tip := range picked {
		assert.False(t, seen[tip], "tip picked twice: %q", tip)
		seen[tip] = true
	}
}

func TestPickCapsAtPoolSize(t *testing.T) {
	picked := Pick(Count() + 10)
	assert.Equal(t, Count(), len(picked))
}

func TestPickNonPositive(t *testing.T) {
	assert.Empty(t, Pick(0))
	assert.Empty(t, Pick(-5))
}
