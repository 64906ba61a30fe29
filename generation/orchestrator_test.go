package generation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stonehollow/config"
	"stonehollow/level"
)

func newOrchestratedGenerator(seed int64) *Generator {
	g := NewGenerator()
	g.SetSeed(seed)
	p := config.DefaultParams()
	p.AutoScum = false
	g.SetParams(p)
	return g
}

// reachableFrom flood-fills passable, unprotected cells from a start.
func reachableFrom(m *level.Map, sx, sy int) map[point]bool {
	seen := map[point]bool{{sx, sy}: true}
	queue := []point{{sx, sy}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := point{p.X + d.X, p.Y + d.Y}
			if seen[n] || !m.Passable(n.X, n.Y) || m.HasFlag(n.X, n.Y, level.FlagVault) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func TestGenerateDungeonLevel(t *testing.T) {
	g := newOrchestratedGenerator(12345)
	res, err := g.Generate(Request{Depth: 1, Mode: ModeDungeon})
	require.NoError(t, err)
	require.NotNil(t, res.Map)
	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.GreaterOrEqual(t, res.Feeling, 1)
	assert.LessOrEqual(t, res.Feeling, 10)
	assert.GreaterOrEqual(t, res.Attempts, 1)

	m := res.Map
	assert.Equal(t, config.LevelWidth, m.Width)
	assert.Equal(t, config.LevelHeight, m.Height)

	// The boundary is sealed
	for x := 0; x < m.Width; x++ {
		assert.Equal(t, level.FeatPermSolid, m.Feat(x, 0))
		assert.Equal(t, level.FeatPermSolid, m.Feat(x, m.Height-1))
	}
	for y := 0; y < m.Height; y++ {
		assert.Equal(t, level.FeatPermSolid, m.Feat(0, y))
		assert.Equal(t, level.FeatPermSolid, m.Feat(m.Width-1, y))
	}

	// Both stair directions exist
	downs, ups := 0, 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			switch m.Feat(x, y) {
			case level.FeatStairsDown:
				downs++
			case level.FeatStairsUp:
				ups++
			}
		}
	}
	assert.Greater(t, downs, 0)
	assert.Greater(t, ups, 0)

	// The player starts on open ground and can walk to a staircase
	require.True(t, m.Clear(m.PlayerX, m.PlayerY))
	reach := reachableFrom(m, m.PlayerX, m.PlayerY)
	foundStairs := false
	for p := range reach {
		if m.Feat(p.X, p.Y).IsStairs() {
			foundStairs = true
			break
		}
	}
	assert.True(t, foundStairs, "no staircase reachable from the player start")
}

func TestDungeonReachabilityAcrossDepths(t *testing.T) {
	depths := []int{1, 5, 15, 30, 55, 99}
	for seed := int64(1); seed <= 12; seed++ {
		for _, depth := range depths {
			g := newOrchestratedGenerator(seed)
			res, err := g.Generate(Request{Depth: depth, Mode: ModeDungeon})
			require.NoError(t, err, "seed %d depth %d", seed, depth)

			m := res.Map
			require.True(t, m.Passable(m.PlayerX, m.PlayerY),
				"seed %d depth %d: start (%d,%d) holds feature %d",
				seed, depth, m.PlayerX, m.PlayerY, m.Feat(m.PlayerX, m.PlayerY))

			reach := reachableFrom(m, m.PlayerX, m.PlayerY)
			found := false
			for p := range reach {
				if m.Feat(p.X, p.Y).IsStairs() {
					found = true
					break
				}
			}
			assert.True(t, found,
				"seed %d depth %d: no staircase reachable from the start", seed, depth)
		}
	}
}

func TestGenerateRejectsBadDepth(t *testing.T) {
	g := newOrchestratedGenerator(1)
	_, err := g.Generate(Request{Depth: -1})
	assert.Error(t, err)
	_, err = g.Generate(Request{Depth: config.MaxDepth + 1})
	assert.Error(t, err)
}

func TestGenerateTown(t *testing.T) {
	g := newOrchestratedGenerator(777)
	res, err := g.Generate(Request{Depth: 0, Mode: ModeTown, Daytime: true})
	require.NoError(t, err)
	m := res.Map

	// A way down exists and daylight covers the town
	down := false
	for y := 0; y < m.Height && !down; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Feat(x, y) == level.FeatStairsDown {
				down = true
				break
			}
		}
	}
	assert.True(t, down)
	assert.True(t, m.HasFlag(m.Width/2, m.Height/2, level.FlagLit))

	// The market row brings shop entrances
	shops := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Feat(x, y).IsShopEntrance() {
				shops++
			}
		}
	}
	assert.Greater(t, shops, 0)
}

func TestWildernessTerrainIsReplayable(t *testing.T) {
	a := newOrchestratedGenerator(1)
	b := newOrchestratedGenerator(2)

	ra, err := a.Generate(Request{Depth: 0, Mode: ModeWilderness, WildX: 3, WildY: 7, WildSeed: 55})
	require.NoError(t, err)
	rb, err := b.Generate(Request{Depth: 0, Mode: ModeWilderness, WildX: 3, WildY: 7, WildSeed: 55})
	require.NoError(t, err)

	// Same region and seed replays the same terrain even under
	// different continuous streams
	for y := 0; y < ra.Map.Height; y++ {
		for x := 0; x < ra.Map.Width; x++ {
			require.Equal(t, ra.Map.Feat(x, y), rb.Map.Feat(x, y),
				"terrain differs at (%d,%d)", x, y)
		}
	}
}

func TestWildernessRegionsDiffer(t *testing.T) {
	g := newOrchestratedGenerator(1)
	ra, err := g.Generate(Request{Depth: 0, Mode: ModeWilderness, WildX: 0, WildY: 0, WildSeed: 55})
	require.NoError(t, err)
	rb, err := g.Generate(Request{Depth: 0, Mode: ModeWilderness, WildX: 4, WildY: 9, WildSeed: 55})
	require.NoError(t, err)

	diff := 0
	for y := 0; y < ra.Map.Height; y++ {
		for x := 0; x < ra.Map.Width; x++ {
			if ra.Map.Feat(x, y) != rb.Map.Feat(x, y) {
				diff++
			}
		}
	}
	assert.Greater(t, diff, 100)
}

func TestGenerateSpecialLevelsHaveWayBack(t *testing.T) {
	for _, mode := range []Mode{ModeQuest, ModeArena, ModeStore, ModeDream} {
		g := newOrchestratedGenerator(int64(900 + int(mode)))
		res, err := g.Generate(Request{Depth: 10, Mode: mode})
		require.NoError(t, err, "mode %s", mode)

		up := false
		for y := 0; y < res.Map.Height && !up; y++ {
			for x := 0; x < res.Map.Width; x++ {
				if res.Map.Feat(x, y) == level.FeatStairsUp {
					up = true
					break
				}
			}
		}
		assert.True(t, up, "mode %s has no staircase up", mode)
	}
}

func TestEvaluateBands(t *testing.T) {
	g := newOrchestratedGenerator(1)

	cases := []struct {
		rating  int
		feeling int
	}{
		{0, 10}, {5, 9}, {15, 8}, {25, 7}, {35, 6},
		{50, 5}, {70, 4}, {90, 3}, {150, 2},
	}
	for _, c := range cases {
		g.rating = c.rating
		g.goodItem = false
		assert.Equal(t, c.feeling, g.evaluate(), "rating %d", c.rating)
	}

	g.rating = 0
	g.goodItem = true
	assert.Equal(t, 1, g.evaluate())
}

func TestRejectDullUsesDepthBands(t *testing.T) {
	g := newOrchestratedGenerator(1)
	p := config.DefaultParams()
	p.AutoScum = true
	g.SetParams(p)

	g.depth = 45
	assert.True(t, g.rejectDull(6)) // cap at depth 45 is 5
	assert.False(t, g.rejectDull(5))

	g.depth = 1
	assert.True(t, g.rejectDull(10))
	assert.False(t, g.rejectDull(9))

	p.AutoScum = false
	g.SetParams(p)
	assert.False(t, g.rejectDull(10))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "dungeon", ModeDungeon.String())
	assert.Equal(t, "wilderness", ModeWilderness.String())
	assert.Equal(t, "dream", ModeDream.String())
	assert.Equal(t, "unknown", Mode(99).String())
}
