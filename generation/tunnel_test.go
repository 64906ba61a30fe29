package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stonehollow/level"
)

func snapshotFeatures(m *level.Map) [][]level.Feature {
	out := make([][]level.Feature, m.Height)
	for y := 0; y < m.Height; y++ {
		out[y] = make([]level.Feature, m.Width)
		for x := 0; x < m.Width; x++ {
			out[y][x] = m.Cells[y][x].Feat
		}
	}
	return out
}

func TestTunnelNeverBreachesPermanentWall(t *testing.T) {
	g := newTestGenerator(5, 1)
	for y := 0; y < g.m.Height; y++ {
		for x := 0; x < g.m.Width; x++ {
			g.m.SetFeat(x, y, level.FeatPermSolid)
		}
	}
	before := snapshotFeatures(g.m)

	g.buildTunnel(10, 10, 60, 40)

	// Every step was refused, so the walk recorded nothing and the
	// commit changed nothing
	assert.Equal(t, before, snapshotFeatures(g.m))
	assert.Empty(t, g.dun.tunn)
	assert.Empty(t, g.dun.walls)
}

func TestTunnelCarvesThroughGranite(t *testing.T) {
	g := newTestGenerator(5, 1)
	g.buildTunnel(30, 30, 60, 30)

	assert.Equal(t, level.FeatFloor, g.m.Feat(60, 30))
	assert.NotEmpty(t, g.dun.tunn)
	for _, p := range g.dun.tunn {
		assert.Equal(t, level.FeatFloor, g.m.Feat(p.X, p.Y))
	}
}

func TestWindingTunnelArrives(t *testing.T) {
	g := newTestGenerator(5, 3)
	g.buildTunnelWinding(20, 20, 80, 40)
	assert.Equal(t, level.FeatFloor, g.m.Feat(80, 40))
}

func TestTunnelHardensPiercedWallNeighborhood(t *testing.T) {
	g := newTestGenerator(5, 9)
	require.True(t, g.attemptRoom(2, 8, RoomPlain))
	c := g.dun.centers[0]

	// Run tunnels at the room from several directions; after each, no
	// outer wall may remain beside a piercing, so a later corridor can
	// never enter adjacent to an existing entrance
	starts := []point{{5, 5}, {c.X, 5}, {190, 60}}
	for _, s := range starts {
		g.buildTunnel(s.X, s.Y, c.X, c.Y)
		for _, p := range g.dun.walls {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					assert.NotEqual(t, level.FeatWallOuter, g.m.Feat(p.X+dx, p.Y+dy),
						"outer wall left beside piercing (%d,%d)", p.X, p.Y)
				}
			}
		}
	}
}

func TestPossibleDoorway(t *testing.T) {
	g := newTestGenerator(5, 1)
	// Horizontal corridor through rock: walls above and below, floor on
	// both sides
	for x := 10; x <= 20; x++ {
		g.m.SetFeat(x, 10, level.FeatFloor)
	}
	assert.True(t, g.possibleDoorway(15, 10))

	// Open area: no pinch
	g.fillRect(30, 30, 36, 36, level.FeatFloor)
	assert.False(t, g.possibleDoorway(33, 33))
}

func TestPlaceRandomDoorKinds(t *testing.T) {
	g := newTestGenerator(5, 1)
	for i := 0; i < 50; i++ {
		g.placeRandomDoor(10, 10)
		assert.True(t, g.m.Feat(10, 10).IsDoor())
	}
}

func TestCorrectDirNeverDiagonal(t *testing.T) {
	g := newTestGenerator(5, 1)
	for i := 0; i < 100; i++ {
		dx, dy := g.correctDir(10, 10, 50, 40)
		assert.False(t, dx != 0 && dy != 0)
		assert.True(t, dx == 1 || dy == 1)
	}
	dx, dy := g.correctDir(10, 10, 10, 10)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
