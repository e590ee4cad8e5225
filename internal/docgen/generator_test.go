package docgen

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilityLinesPlaceholderOnNoKeyPoints(t *testing.T) {
	lines := capabilityLines(nil)
	require.Len(t, lines, 1)
	assert.Equal(t, "No specific technical capabilities identified in this analysis.", lines[0])

	assert.Equal(t, lines, capabilityLines([]string{}))
}

func TestCapabilityLinesBounds(t *testing.T) {
	points := make([]string, 10)
	for i := range points {
		points[i] = strings.Repeat("p", 30)
	}
	points[0] = strings.Repeat("q", 250)

	lines := capabilityLines(points)
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "1. "))
	assert.True(t, strings.HasPrefix(lines[7], "8. "))

	// Overlong bullets are capped at 200 characters including the ellipsis.
	assert.Len(t, lines[0], len("1. ")+200)
	assert.True(t, strings.HasSuffix(lines[0], "..."))
	assert.Equal(t, "2. "+strings.Repeat("p", 30), lines[1])
}

func TestTruncateTextRuneBoundaries(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))

	truncated := truncateText(strings.Repeat("ü", 50), 20)
	assert.True(t, utf8.ValidString(truncated))
	assert.Equal(t, strings.Repeat("ü", 17)+"...", truncated)
}
