package icon_test

import (
	"strings"
	"testing"

	"cleanpro-web/internal/domain"
	"cleanpro-web/internal/ui/icon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol(t *testing.T) {
	id, err := icon.Symbol("GraduationCap")
	require.NoError(t, err)
	assert.Equal(t, "graduation-cap", id)

	_, err = icon.Symbol("Rocket")
	assert.Error(t, err)
	assert.False(t, icon.Valid("Rocket"))
}

func TestRender(t *testing.T) {
	html := string(icon.Render("Sparkles", "h-4 w-4"))
	assert.Contains(t, html, `class="icon h-4 w-4"`)
	assert.Contains(t, html, icon.SpritePath+"#sparkles")

	assert.Empty(t, icon.Render(domain.IconName("nope"), ""))
}

func TestNamesSortedAndUnique(t *testing.T) {
	names := icon.Names()
	seen := map[string]bool{}
	for i, n := range names {
		if i > 0 {
			assert.True(t, strings.Compare(string(names[i-1]), string(n)) < 0)
		}
		id, err := icon.Symbol(n)
		require.NoError(t, err)
		assert.False(t, seen[id], "symbol %s mapped twice", id)
		seen[id] = true
	}
}
