package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stonehollow/config"
	"stonehollow/level"
)

func TestEnsureConnectivityJoinsPockets(t *testing.T) {
	g := newTestGenerator(5, 1)

	// Two floor pockets separated by rock
	g.fillRect(10, 10, 14, 14, level.FeatFloor)
	g.fillRect(30, 30, 34, 34, level.FeatFloor)

	comp := g.labelComponents(1, 1, g.m.Width-2, g.m.Height-2)
	require.Equal(t, 2, comp.count)

	g.ensureConnectivity(1, 1, g.m.Width-2, g.m.Height-2)

	comp = g.labelComponents(1, 1, g.m.Width-2, g.m.Height-2)
	assert.Equal(t, 1, comp.count)
}

func TestEnsureConnectivitySkipsVaultCells(t *testing.T) {
	g := newTestGenerator(5, 1)

	g.fillRect(10, 10, 14, 14, level.FeatFloor)

	// A protected pocket is not a component and must not be breached
	g.fillRect(40, 30, 44, 34, level.FeatFloor)
	for y := 29; y <= 35; y++ {
		for x := 39; x <= 45; x++ {
			g.m.SetFlag(x, y, level.FlagVault)
		}
	}

	comp := g.labelComponents(1, 1, g.m.Width-2, g.m.Height-2)
	assert.Equal(t, 1, comp.count)

	g.ensureConnectivity(1, 1, g.m.Width-2, g.m.Height-2)
	for y := 29; y <= 35; y++ {
		assert.NotEqual(t, level.FeatFloor, g.m.Feat(39, y))
		assert.NotEqual(t, level.FeatFloor, g.m.Feat(45, y))
	}
}

func TestDarkMazeStepFixedPoints(t *testing.T) {
	// All-wall grid is stable
	walls := make([][]bool, 10)
	for y := range walls {
		walls[y] = make([]bool, 10)
		for x := range walls[y] {
			walls[y][x] = true
		}
	}
	next := darkMazeStep(walls)
	assert.Equal(t, walls, next)

	// The interior of an open grid stays open; only the rim closes in
	open := make([][]bool, 10)
	for y := range open {
		open[y] = make([]bool, 10)
	}
	next = darkMazeStep(open)
	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			assert.False(t, next[y][x])
		}
	}
}

func TestDarkMazeStepBirthAndSurvival(t *testing.T) {
	// A lone wall cell with no wall neighbors dies
	grid := make([][]bool, 9)
	for y := range grid {
		grid[y] = make([]bool, 9)
	}
	grid[4][4] = true
	next := darkMazeStep(grid)
	assert.False(t, next[4][4])
}

func TestSectorBuildersLeaveSingleComponent(t *testing.T) {
	builders := []func(g *Generator, x1, y1, x2, y2 int){
		func(g *Generator, x1, y1, x2, y2 int) { g.buildCavernSector(x1, y1, x2, y2) },
		func(g *Generator, x1, y1, x2, y2 int) { g.buildHillSector(x1, y1, x2, y2, false) },
		func(g *Generator, x1, y1, x2, y2 int) { g.buildHillSector(x1, y1, x2, y2, true) },
		func(g *Generator, x1, y1, x2, y2 int) { g.buildCliffSector(x1, y1, x2, y2) },
		func(g *Generator, x1, y1, x2, y2 int) { g.buildDarkMazeSector(x1, y1, x2, y2) },
		func(g *Generator, x1, y1, x2, y2 int) { g.buildPlazaSector(x1, y1, x2, y2) },
	}

	for i, build := range builders {
		g := newTestGenerator(25, int64(100+i))
		x1, y1 := 22, 22
		x2, y2 := x1+sectorSpan-1, y1+sectorSpan-1
		build(g, x1, y1, x2, y2)

		comp := g.labelComponents(x1+1, y1+1, x2-1, y2-1)
		assert.LessOrEqual(t, comp.count, 1, "builder %d left %d components", i, comp.count)
	}
}

type patrolSpy struct {
	guards, patrols, ambushes int
}

func (p *patrolSpy) SetupGuardPost(monsterID, x, y int, highGround bool) { p.guards++ }
func (p *patrolSpy) SetupPatrol(monsterID int)                          { p.patrols++ }
func (p *patrolSpy) SetupAmbush(monsterID int)                          { p.ambushes++ }

func TestPitSectorCollectsHazard(t *testing.T) {
	g := newTestGenerator(10, 9)
	x1, y1 := 22, 22
	x2, y2 := x1+sectorSpan-1, y1+sectorSpan-1
	g.buildHillSector(x1, y1, x2, y2, true)

	hazards := 0
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			f := g.m.Feat(x, y)
			if f == level.FeatShallowWater || f == level.FeatShallowLava {
				hazards++
			}
		}
	}
	assert.Greater(t, hazards, 0)
}

func TestHillSectorPostsSummitDefenders(t *testing.T) {
	g := newTestGenerator(10, 11)
	spy := NewNullSpawner()
	patrol := &patrolSpy{}
	g.SetSpawner(spy)
	g.SetPatrolDirector(patrol)

	x1, y1 := 22, 22
	g.buildHillSector(x1, y1, x1+sectorSpan-1, y1+sectorSpan-1, false)

	assert.Greater(t, spy.MonsterCount(), 0)
	assert.Greater(t, patrol.guards, 0)
}

func TestRollSectorCoversKnownKinds(t *testing.T) {
	g := newTestGenerator(50, 5)
	seen := make(map[level.SectorKind]bool)
	for i := 0; i < 2000; i++ {
		seen[g.rollSector()] = true
	}
	assert.True(t, seen[level.SectorRuins])
	assert.True(t, seen[level.SectorCavern])
	assert.True(t, seen[level.SectorHill])
}

func TestPlasmaStaysInRange(t *testing.T) {
	g := newTestGenerator(10, 77)
	f := newHeightField(33, 33)
	g.seedCorners(f, config.MaxDepth)
	g.plasma(f, 0, 0, 32, 32, config.MaxDepth/4, config.MaxDepth)

	for y := range f {
		for x := range f[y] {
			assert.GreaterOrEqual(t, f[y][x], 0)
			assert.LessOrEqual(t, f[y][x], config.MaxDepth)
		}
	}
}

func TestTierFeatureCoversWholeRange(t *testing.T) {
	for table := 0; table < 2; table++ {
		for h := 0; h <= config.MaxDepth; h++ {
			f := tierFeature(table, h, config.MaxDepth)
			assert.NotEqual(t, level.Feature(-1), f)
		}
	}
}

func TestCornerHashIsSharedAcrossRegions(t *testing.T) {
	// The corner at (wx+1, wy) seen from region (wx, wy) is the corner
	// at (wx+1, wy) seen from region (wx+1, wy)
	assert.Equal(t, cornerHash(5, 3, 99), cornerHash(5, 3, 99))
	assert.NotEqual(t, cornerHash(5, 3, 99), cornerHash(6, 3, 99))
	assert.NotEqual(t, cornerHash(5, 3, 99), cornerHash(5, 3, 100))
}
