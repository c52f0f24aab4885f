package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestNames(t *testing.T) {
	known := []string{"even-distribution", "far-reach", "bottleneck"}

	suggestions := SuggestNames("farreach", known, 5)
	assert.Equal(t, []string{"far-reach"}, suggestions)

	assert.Empty(t, SuggestNames("xyzzy", known, 5))
	assert.Empty(t, SuggestNames("far-reach", nil, 5))
}

func TestSuggestNamesLimit(t *testing.T) {
	known := []string{"mod-a", "mod-b", "mod-c", "mod-d"}
	assert.Len(t, SuggestNames("mod", known, 2), 2)
}
