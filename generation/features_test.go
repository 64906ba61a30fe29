package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stonehollow/level"
)

// carveStartPocket opens a floor pocket and commits the player start in
// its middle, the state the post-passes run against.
func carveStartPocket(g *Generator) {
	g.fillRect(45, 25, 55, 35, level.FeatFloor)
	g.m.PlayerX, g.m.PlayerY = 50, 30
}

func TestRandomSpotAvoidsPlayerStart(t *testing.T) {
	g := newTestGenerator(20, 3)
	carveStartPocket(g)

	for i := 0; i < 500; i++ {
		x, y, ok := g.randomSpot(AllocBoth)
		require.True(t, ok)
		require.False(t, x == g.m.PlayerX && y == g.m.PlayerY,
			"spot landed on the player start")
	}
}

func TestRubbleAllocationLeavesStartOpen(t *testing.T) {
	g := newTestGenerator(20, 4)
	carveStartPocket(g)

	g.allocFeatures(AllocBoth, AllocRubble, 50)
	assert.Equal(t, level.FeatFloor, g.m.Feat(g.m.PlayerX, g.m.PlayerY))
}

func TestRuinFragmentsLeaveStartOpen(t *testing.T) {
	g := newTestGenerator(20, 5)
	carveStartPocket(g)

	g.allocFeatures(AllocBoth, AllocRuin, 20)
	assert.Equal(t, level.FeatFloor, g.m.Feat(g.m.PlayerX, g.m.PlayerY))
	assert.True(t, g.m.Passable(g.m.PlayerX, g.m.PlayerY))
}

func TestCoverLeavesStartOpen(t *testing.T) {
	g := newTestGenerator(20, 6)
	carveStartPocket(g)

	g.populateCover()
	assert.Equal(t, level.FeatFloor, g.m.Feat(g.m.PlayerX, g.m.PlayerY))
}
