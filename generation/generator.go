package generation

import (
	"stonehollow/config"
	"stonehollow/data"
	"stonehollow/level"
	"stonehollow/rng"
)

// Generator builds complete levels. Create one with NewGenerator, wire
// collaborators with the setters, then call Generate.
type Generator struct {
	rng    *rng.Stream
	params config.Params
	vaults *data.VaultManager

	spawner Spawner
	cover   CoverBuilder
	patrol  PatrolDirector
	hooks   Hooks
	msg     MessageSink

	// Per-attempt state, reset by Generate
	m        *level.Map
	depth    int
	rating   int
	goodItem bool
	litLevel bool
	levelBG  level.Feature // background rock of the attempt; floor-like on open levels
	dun      *scratch
}

// NewGenerator creates a generator with default tuning, a time-seeded
// random stream, the built-in vault set, and null collaborators.
func NewGenerator() *Generator {
	return &Generator{
		rng:     rng.NewTimeSeeded(),
		params:  config.DefaultParams(),
		vaults:  data.NewVaultManager(),
		spawner: NewNullSpawner(),
		cover:   nullCover{},
		patrol:  nullPatrol{},
		hooks:   nullHooks{},
		msg:     printfSink{},
	}
}

// SetSeed allows setting a specific seed for reproducible generation.
func (g *Generator) SetSeed(seed int64) {
	g.rng.SetSeed(seed)
}

// SetParams replaces the tuning knobs.
func (g *Generator) SetParams(p config.Params) { g.params = p }

// SetVaults replaces the vault template set.
func (g *Generator) SetVaults(v *data.VaultManager) { g.vaults = v }

// SetSpawner wires the monster/object placement collaborator.
func (g *Generator) SetSpawner(s Spawner) { g.spawner = s }

// SetCoverBuilder wires the destructible scenery collaborator.
func (g *Generator) SetCoverBuilder(c CoverBuilder) { g.cover = c }

// SetPatrolDirector wires the guard/patrol collaborator.
func (g *Generator) SetPatrolDirector(p PatrolDirector) { g.patrol = p }

// SetHooks wires the post-acceptance hooks.
func (g *Generator) SetHooks(h Hooks) { g.hooks = h }

// SetMessageSink redirects informational messages.
func (g *Generator) SetMessageSink(s MessageSink) { g.msg = s }

// point is a cell coordinate.
type point struct {
	X, Y int
}

// scratch is the per-attempt bookkeeping: room centers, door
// candidates, wall piercings, tunnel cells, and the block-occupancy
// grid. Created fresh for every attempt, discarded on commit or retry.
type scratch struct {
	centers []point
	doors   []point
	walls   []point
	tunn    []point

	rowBlocks int
	colBlocks int
	used      [][]bool

	// crowded limits the level to one nest or pit
	crowded bool
}

func newScratch(rowBlocks, colBlocks int) *scratch {
	s := &scratch{
		rowBlocks: rowBlocks,
		colBlocks: colBlocks,
		used:      make([][]bool, rowBlocks),
	}
	for i := range s.used {
		s.used[i] = make([]bool, colBlocks)
	}
	return s
}

// RoomKind tags a room shape builder.
type RoomKind int

const (
	RoomPlain RoomKind = iota
	RoomOverlap
	RoomCross
	RoomLarge
	RoomNest
	RoomPit
	RoomLesserVault
	RoomGreaterVault
	RoomThemedVault
	RoomCircular
	RoomComposite
	RoomCavernBlob
	RoomSanctum
	RoomFolly
	RoomGuardPost
	RoomAmbush
)

// roomSpec gives a kind's required block extent as offsets from the
// anchor block, its depth gate, and its builder. The builder receives
// the exact block-grid midpoint of the reserved extent.
type roomSpec struct {
	dy1, dy2 int
	dx1, dx2 int
	minDepth int
	crowding bool
	build    func(*Generator, int, int) bool
}

// roomTable is the registry mapping room kinds to builder strategies.
var roomTable = map[RoomKind]roomSpec{
	RoomPlain:        {0, 0, -1, 1, 1, false, (*Generator).buildPlainRoom},
	RoomOverlap:      {0, 0, -1, 1, 1, false, (*Generator).buildOverlapRoom},
	RoomCross:        {0, 0, -1, 1, 3, false, (*Generator).buildCrossRoom},
	RoomLarge:        {0, 1, -1, 1, 3, false, (*Generator).buildLargeRoom},
	RoomNest:         {0, 1, -1, 1, 5, true, (*Generator).buildNest},
	RoomPit:          {0, 1, -1, 1, 5, true, (*Generator).buildPit},
	RoomLesserVault:  {0, 1, -1, 1, 5, false, (*Generator).buildLesserVault},
	RoomGreaterVault: {-1, 2, -2, 3, 10, false, (*Generator).buildGreaterVault},
	RoomThemedVault:  {-1, 2, -2, 3, 10, false, (*Generator).buildThemedVault},
	RoomCircular:     {0, 1, -1, 1, 3, false, (*Generator).buildCircularRoom},
	RoomComposite:    {0, 1, -1, 1, 3, false, (*Generator).buildCompositeRoom},
	RoomCavernBlob:   {0, 1, -1, 1, 15, false, (*Generator).buildCavernBlob},
	RoomSanctum:      {-1, 2, -2, 3, 40, false, (*Generator).buildSanctumVault},
	RoomFolly:        {0, 1, -1, 1, 30, false, (*Generator).buildFollyVault},
	RoomGuardPost:    {0, 0, -1, 1, 10, false, (*Generator).buildGuardPost},
	RoomAmbush:       {0, 0, -1, 1, 15, false, (*Generator).buildAmbushCorridor},
}

// attemptRoom validates a placement and, only if every check passes,
// invokes the builder, records the room center, and reserves the
// blocks. A failed check leaves the grid and scratch untouched.
func (g *Generator) attemptRoom(by, bx int, kind RoomKind) bool {
	spec, ok := roomTable[kind]
	if !ok {
		return false
	}
	if g.depth < spec.minDepth {
		return false
	}
	if spec.crowding && g.dun.crowded {
		return false
	}

	by1, by2 := by+spec.dy1, by+spec.dy2
	bx1, bx2 := bx+spec.dx1, bx+spec.dx2
	if by1 < 0 || by2 >= g.dun.rowBlocks || bx1 < 0 || bx2 >= g.dun.colBlocks {
		return false
	}
	for y := by1; y <= by2; y++ {
		for x := bx1; x <= bx2; x++ {
			if g.dun.used[y][x] {
				return false
			}
		}
	}

	// Exact block-grid midpoint of the reserved extent; any drift here
	// corrupts neighboring reservations.
	cy := ((by1 + by2 + 1) * config.BlockHeight) / 2
	cx := ((bx1 + bx2 + 1) * config.BlockWidth) / 2

	if !spec.build(g, cx, cy) {
		return false
	}

	if len(g.dun.centers) < config.MaxRoomCenters {
		g.dun.centers = append(g.dun.centers, point{cx, cy})
	}
	for y := by1; y <= by2; y++ {
		for x := bx1; x <= bx2; x++ {
			g.dun.used[y][x] = true
		}
	}
	if spec.crowding {
		g.dun.crowded = true
	}
	return true
}

// markRoom sets the room flag (and lit flag on lit levels) over a
// rectangle inclusive of its walls.
func (g *Generator) markRoom(x1, y1, x2, y2 int, light bool) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.m.SetFlag(x, y, level.FlagRoom)
			if light {
				g.m.SetFlag(x, y, level.FlagLit)
			}
		}
	}
}

// fillRect paints a feature over a rectangle inclusive.
func (g *Generator) fillRect(x1, y1, x2, y2 int, f level.Feature) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.m.SetFeat(x, y, f)
		}
	}
}

// outlineRect paints a feature along a rectangle's boundary only.
func (g *Generator) outlineRect(x1, y1, x2, y2 int, f level.Feature) {
	for x := x1; x <= x2; x++ {
		g.m.SetFeat(x, y1, f)
		g.m.SetFeat(x, y2, f)
	}
	for y := y1; y <= y2; y++ {
		g.m.SetFeat(x1, y, f)
		g.m.SetFeat(x2, y, f)
	}
}

// openSide punches a hole in the midpoint of one random side of a
// rectangle.
func (g *Generator) openSide(x1, y1, x2, y2 int, f level.Feature) {
	cx, cy := (x1+x2)/2, (y1+y2)/2
	switch g.rng.Intn(4) {
	case 0:
		g.m.SetFeat(cx, y1, f)
	case 1:
		g.m.SetFeat(cx, y2, f)
	case 2:
		g.m.SetFeat(x1, cy, f)
	case 3:
		g.m.SetFeat(x2, cy, f)
	}
}

