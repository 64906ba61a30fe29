package generation

import (
	"stonehollow/level"
)

// nestTheme picks a monster theme for a nest or pit, deeper themes at
// deeper depths.
func (g *Generator) nestTheme() string {
	themes := []struct {
		tag      string
		minDepth int
	}{
		{"vermin", 0},
		{"spider", 5},
		{"goblinoid", 10},
		{"undead", 25},
		{"demon", 40},
		{"dragon", 60},
	}
	eligible := themes[:1]
	for i, t := range themes {
		if g.depth >= t.minDepth {
			eligible = themes[:i+1]
		}
	}
	return eligible[g.rng.Intn(len(eligible))].tag
}

// nestGoodItem rolls the good-item flag for a nest or pit at shallow
// depth; deep nests are ordinary.
func (g *Generator) nestGoodItem() {
	if g.depth <= 40 && g.rng.Roll(g.depth*g.depth+1) < 300 {
		g.goodItem = true
	}
}

// buildNest fills an inner chamber with a crowd of one monster theme.
func (g *Generator) buildNest(cx, cy int) bool {
	light := g.roomLight()
	y1, y2 := cy-4, cy+4
	x1, x2 := cx-11, cx+11

	g.markRoom(x1-1, y1-1, x2+1, y2+1, light)
	g.fillRect(x1, y1, x2, y2, level.FeatFloor)
	g.outlineRect(x1-1, y1-1, x2+1, y2+1, level.FeatWallOuter)

	iy1, iy2 := y1+2, y2-2
	ix1, ix2 := x1+2, x2-2
	g.outlineRect(ix1-1, iy1-1, ix2+1, iy2+1, level.FeatWallInner)
	g.openSide(ix1-1, iy1-1, ix2+1, iy2+1, level.FeatFloor)

	theme := g.nestTheme()
	placed := 0
	for y := iy1; y <= iy2 && placed < 16; y++ {
		for x := ix1; x <= ix2 && placed < 16; x++ {
			if g.rng.Percent(60) {
				continue
			}
			if _, ok := g.spawner.PlaceMonster(g.m, x, y, g.depth+2,
				MonsterOptions{Sleeping: true, Theme: theme}); ok {
				placed++
			}
		}
	}

	g.rating += 10
	g.nestGoodItem()
	return true
}

// buildPit fills an inner chamber with ordered ranks of one theme,
// tougher toward the center.
func (g *Generator) buildPit(cx, cy int) bool {
	light := g.roomLight()
	y1, y2 := cy-4, cy+4
	x1, x2 := cx-11, cx+11

	g.markRoom(x1-1, y1-1, x2+1, y2+1, light)
	g.fillRect(x1, y1, x2, y2, level.FeatFloor)
	g.outlineRect(x1-1, y1-1, x2+1, y2+1, level.FeatWallOuter)

	iy1, iy2 := y1+2, y2-2
	ix1, ix2 := x1+2, x2-2
	g.outlineRect(ix1-1, iy1-1, ix2+1, iy2+1, level.FeatWallInner)
	g.openSide(ix1-1, iy1-1, ix2+1, iy2+1, level.FeatFloor)

	theme := g.nestTheme()
	for y := iy1; y <= iy2; y++ {
		for x := ix1; x <= ix2; x++ {
			// Rank by distance from the center column: outer ranks are
			// shallow picks, the middle is the toughest.
			dx := x - cx
			if dx < 0 {
				dx = -dx
			}
			boost := 4 - dx/3
			if boost < 0 {
				boost = 0
			}
			g.spawner.PlaceMonster(g.m, x, y, g.depth+boost,
				MonsterOptions{Sleeping: true, Theme: theme})
		}
	}

	g.rating += 10
	g.nestGoodItem()
	return true
}

// buildGuardPost raises a fortified post: elevated corner watch
// positions, a central patroller, and boulder cover scattered inside.
func (g *Generator) buildGuardPost(cx, cy int) bool {
	light := g.roomLight()
	y1, y2 := cy-3, cy+3
	x1, x2 := cx-6, cx+6

	g.markRoom(x1-1, y1-1, x2+1, y2+1, light)
	g.fillRect(x1, y1, x2, y2, level.FeatFloor)
	g.outlineRect(x1-1, y1-1, x2+1, y2+1, level.FeatWallOuter)

	// Raised watch corners
	corners := []point{{x1 + 1, y1 + 1}, {x2 - 1, y1 + 1}, {x1 + 1, y2 - 1}, {x2 - 1, y2 - 1}}
	for _, c := range corners {
		g.m.SetElev(c.X, c.Y, level.ElevHill)
		if id, ok := g.spawner.PlaceMonster(g.m, c.X, c.Y, g.depth+1, MonsterOptions{}); ok {
			g.patrol.SetupGuardPost(id, c.X, c.Y, true)
		}
	}

	// Central patroller
	if id, ok := g.spawner.PlaceMonster(g.m, cx, cy, g.depth+3, MonsterOptions{}); ok {
		g.patrol.SetupPatrol(id)
	}

	// Boulder and pillar cover
	for i := 0; i < 4+g.rng.Intn(4); i++ {
		x := g.rng.Between(x1+1, x2-1)
		y := g.rng.Between(y1+1, y2-1)
		if !g.m.Clear(x, y) {
			continue
		}
		if g.rng.OneIn(3) {
			g.m.SetFeat(x, y, level.FeatWallInner)
		} else {
			g.cover.CreateCover(g.m, x, y, CoverHeavy, 40+g.rng.Intn(20), level.FeatRubble)
		}
	}

	g.rating += 5
	return true
}

// buildAmbushCorridor paints a wide passage with tall-grass verges
// hiding stationary ambushers.
func (g *Generator) buildAmbushCorridor(cx, cy int) bool {
	y1, y2 := cy-2, cy+2
	x1, x2 := cx-10, cx+10

	g.markRoom(x1-1, y1-1, x2+1, y2+1, false)
	g.fillRect(x1, y1, x2, y2, level.FeatTallGrass)
	g.outlineRect(x1-1, y1-1, x2+1, y2+1, level.FeatWallOuter)

	// Clear walking lane down the middle
	for x := x1; x <= x2; x++ {
		g.m.SetFeat(x, cy, level.FeatFloor)
	}

	ambushers := 2 + g.rng.Intn(3)
	for i := 0; i < ambushers; i++ {
		x := g.rng.Between(x1+1, x2-1)
		y := y1
		if g.rng.OneIn(2) {
			y = y2
		}
		if id, ok := g.spawner.PlaceMonster(g.m, x, y, g.depth+2, MonsterOptions{}); ok {
			g.patrol.SetupAmbush(id)
		}
	}

	g.rating += 5
	return true
}
