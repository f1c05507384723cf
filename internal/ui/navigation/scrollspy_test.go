package navigation_test

import (
	"testing"

	"cleanpro-web/internal/ui/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three stacked sections, 600px each, starting below a 400px hero.
func stackedSpy(t *testing.T) (*navigation.ScrollSpy, map[string][]navigation.Entry) {
	t.Helper()
	spy := navigation.NewScrollSpy(navigation.DefaultBand)
	seen := map[string][]navigation.Entry{}
	for i, id := range []string{"mama-fua", "fumigation", "laundromat"} {
		id := id
		top := 400 + float64(i)*600
		spy.Observe(id, navigation.Bounds{Top: top, Bottom: top + 600}, func(e navigation.Entry) {
			seen[id] = append(seen[id], e)
		})
	}
	return spy, seen
}

func TestBandRange(t *testing.T) {
	top, bottom := navigation.DefaultBand.Range(navigation.Viewport{ScrollY: 100, Height: 1000})
	assert.InDelta(t, 300, top, 0.001)
	assert.InDelta(t, 400, bottom, 0.001)
}

func TestUpdateTracksSectionInBand(t *testing.T) {
	spy, seen := stackedSpy(t)

	// band 200..300: above every section
	assert.Equal(t, "", spy.Update(navigation.Viewport{ScrollY: 0, Height: 1000}))

	// band 500..600: inside mama-fua
	assert.Equal(t, "mama-fua", spy.Update(navigation.Viewport{ScrollY: 300, Height: 1000}))

	// band 1100..1200: inside fumigation
	assert.Equal(t, "fumigation", spy.Update(navigation.Viewport{ScrollY: 900, Height: 1000}))
	assert.Equal(t, "fumigation", spy.Active())

	require.Len(t, seen["mama-fua"], 2)
	assert.True(t, seen["mama-fua"][0].Intersecting)
	assert.False(t, seen["mama-fua"][1].Intersecting)
	require.Len(t, seen["fumigation"], 1)
	assert.Empty(t, seen["laundromat"])
}

func TestTopmostSectionWinsOnOverlap(t *testing.T) {
	spy, _ := stackedSpy(t)
	// band 950..1050 straddles the mama-fua/fumigation boundary at 1000
	assert.Equal(t, "mama-fua", spy.Update(navigation.Viewport{ScrollY: 750, Height: 1000}))
}

func TestEqualTopsPreferEarlierObservation(t *testing.T) {
	spy := navigation.NewScrollSpy(navigation.DefaultBand)
	spy.Observe("b", navigation.Bounds{Top: 0, Bottom: 500}, nil)
	spy.Observe("a", navigation.Bounds{Top: 0, Bottom: 500}, nil)
	assert.Equal(t, "b", spy.Update(navigation.Viewport{ScrollY: 0, Height: 1000}))
}

func TestActiveKeptWhenBandIsEmpty(t *testing.T) {
	spy := navigation.NewScrollSpy(navigation.DefaultBand)
	spy.Observe("nanny", navigation.Bounds{Top: 0, Bottom: 250}, nil)
	assert.Equal(t, "nanny", spy.Update(navigation.Viewport{ScrollY: 0, Height: 1000}))
	// band 2200..2300 is past the section
	assert.Equal(t, "nanny", spy.Update(navigation.Viewport{ScrollY: 2000, Height: 1000}))
}

func TestUnsubscribe(t *testing.T) {
	spy := navigation.NewScrollSpy(navigation.DefaultBand)
	calls := 0
	stop := spy.Observe("nanny", navigation.Bounds{Top: 0, Bottom: 1000}, func(navigation.Entry) { calls++ })

	assert.Equal(t, "nanny", spy.Update(navigation.Viewport{Height: 1000}))
	stop()
	stop()

	assert.Equal(t, "", spy.Active())
	assert.Equal(t, "", spy.Update(navigation.Viewport{Height: 1000}))
	assert.Equal(t, 1, calls)
	assert.False(t, spy.SetBounds("nanny", navigation.Bounds{}))
}

func TestStaleUnsubscribeKeepsReplacement(t *testing.T) {
	spy := navigation.NewScrollSpy(navigation.DefaultBand)
	stopOld := spy.Observe("nanny", navigation.Bounds{Top: 0, Bottom: 1000}, nil)
	spy.Observe("nanny", navigation.Bounds{Top: 0, Bottom: 1000}, nil)

	stopOld()
	assert.Equal(t, "nanny", spy.Update(navigation.Viewport{Height: 1000}))
}

func TestSetBounds(t *testing.T) {
	spy := navigation.NewScrollSpy(navigation.DefaultBand)
	spy.Observe("nanny", navigation.Bounds{Top: 5000, Bottom: 5500}, nil)
	assert.Equal(t, "", spy.Update(navigation.Viewport{Height: 1000}))

	require.True(t, spy.SetBounds("nanny", navigation.Bounds{Top: 100, Bottom: 600}))
	assert.Equal(t, "nanny", spy.Update(navigation.Viewport{Height: 1000}))
}

func TestScrollTarget(t *testing.T) {
	assert.Equal(t, 920.0, navigation.ScrollTarget(navigation.Bounds{Top: 1000}, navigation.HeaderOffset))
	assert.Equal(t, 0.0, navigation.ScrollTarget(navigation.Bounds{Top: 30}, navigation.HeaderOffset))
}
