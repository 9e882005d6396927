package notice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishAndRecent(t *testing.T) {
	h := NewHub()

	var seen []Notice
	h.Subscribe(func(n Notice) { seen = append(seen, n) })

	h.Warn("Latte is out of stock")
	h.Success("payment received")

	require.Len(t, seen, 2)
	assert.Equal(t, LevelWarning, seen[0].Level)

	recent := h.Recent(10)
	require.Len(t, recent, 2)
	assert.Equal(t, "payment received", recent[0].Message, "newest first")
	assert.Equal(t, LevelSuccess, recent[0].Level)
}

func TestHubKeepsBoundedHistory(t *testing.T) {
	h := NewHub()
	for i := 0; i < keep+20; i++ {
		h.Info(fmt.Sprintf("n%d", i))
	}

	all := h.Recent(0)
	require.Len(t, all, keep)
	assert.Equal(t, fmt.Sprintf("n%d", keep+19), all[0].Message)
	assert.Equal(t, "n20", all[keep-1].Message)
}
