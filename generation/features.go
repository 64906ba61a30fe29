package generation

import (
	"stonehollow/config"
	"stonehollow/level"
)

// AllocSet restricts random placement to corridors, rooms, or both.
type AllocSet int

const (
	AllocCorridor AllocSet = iota
	AllocRoom
	AllocBoth
)

// AllocKind names what a placement pass drops.
type AllocKind int

const (
	AllocRubble AllocKind = iota
	AllocTrap
	AllocGold
	AllocObject
	AllocAltar
	AllocFountain
	AllocRuin
)

// randomSpot finds a clear, unprotected cell matching the allocation
// set, bounded by a search cap. The player start is never offered; the
// post-passes run after it is committed and must not bury it.
func (g *Generator) randomSpot(set AllocSet) (int, int, bool) {
	for try := 0; try < 10000; try++ {
		x := g.rng.Intn(g.m.Width)
		y := g.rng.Intn(g.m.Height)
		if !g.m.Clear(x, y) {
			continue
		}
		if x == g.m.PlayerX && y == g.m.PlayerY {
			continue
		}
		inRoom := g.m.HasFlag(x, y, level.FlagRoom)
		if set == AllocRoom && !inRoom {
			continue
		}
		if set == AllocCorridor && inRoom {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

// allocFeatures drops num things of one kind at random eligible spots.
// A spot that cannot be found is silently skipped.
func (g *Generator) allocFeatures(set AllocSet, kind AllocKind, num int) {
	for k := 0; k < num; k++ {
		x, y, ok := g.randomSpot(set)
		if !ok {
			continue
		}
		switch kind {
		case AllocRubble:
			g.m.SetFeat(x, y, level.FeatRubble)
		case AllocTrap:
			g.spawner.PlaceTrap(g.m, x, y, g.depth)
		case AllocGold:
			g.spawner.PlaceGold(g.m, x, y, g.depth)
		case AllocObject:
			g.spawner.PlaceObject(g.m, x, y, g.depth, false, false)
		case AllocAltar:
			g.m.SetFeat(x, y, level.FeatAltar)
			g.m.Altars = append(g.m.Altars, level.Altar{X: x, Y: y, Deity: g.pickDeity()})
		case AllocFountain:
			g.m.SetFeat(x, y, level.FeatFountain)
		case AllocRuin:
			// A broken fragment of older masonry
			for i := 0; i < 3+g.rng.Intn(4); i++ {
				rx := g.rng.Spread(x, 2)
				ry := g.rng.Spread(y, 1)
				if rx == g.m.PlayerX && ry == g.m.PlayerY {
					continue
				}
				if g.m.Clear(rx, ry) {
					if g.rng.OneIn(3) {
						g.m.SetFeat(rx, ry, level.FeatWallInner)
					} else {
						g.m.SetFeat(rx, ry, level.FeatRubble)
					}
				}
			}
		}
	}
}

// countWallsAround counts wall-like orthogonal neighbors, for siting
// staircases against walls.
func (g *Generator) countWallsAround(x, y int) int {
	count := 0
	for _, d := range [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if g.m.Feat(x+d.X, y+d.Y).IsWall() {
			count++
		}
	}
	return count
}

// placeStairs drops num staircases, preferring wall-adjacent spots and
// relaxing that preference as attempts run out. At least one staircase
// of each direction always lands if any clear cell exists.
func (g *Generator) placeStairs(feat level.Feature, num, walls int) {
	for k := 0; k < num; k++ {
		placed := false
		need := walls
		for try := 0; try < 30000 && !placed; try++ {
			if try%10000 == 9999 && need > 0 {
				need--
			}
			x := g.rng.Intn(g.m.Width)
			y := g.rng.Intn(g.m.Height)
			if !g.m.Clear(x, y) {
				continue
			}
			if g.countWallsAround(x, y) < need {
				continue
			}
			g.m.SetFeat(x, y, feat)
			placed = true
		}
	}
}

// newPlayerSpot picks the player start: a clear unprotected cell, a few
// walls nearby preferred.
func (g *Generator) newPlayerSpot() {
	for try := 0; try < 20000; try++ {
		x := g.rng.Intn(g.m.Width)
		y := g.rng.Intn(g.m.Height)
		if !g.m.Clear(x, y) {
			continue
		}
		if try < 10000 && g.countWallsAround(x, y) < 1 {
			continue
		}
		g.m.PlayerX, g.m.PlayerY = x, y
		return
	}
}

// populateFeatures runs the ambient post-pass: rubble, traps, gold and
// objects through corridors and rooms, the odd altar or fountain, and
// ruin fragments inside ruins sectors.
func (g *Generator) populateFeatures() {
	g.allocFeatures(AllocBoth, AllocRubble, g.rng.Roll(4))
	g.allocFeatures(AllocBoth, AllocTrap, g.rng.Roll(g.depth/4+2))
	g.allocFeatures(AllocCorridor, AllocGold, g.rng.Roll(4))
	g.allocFeatures(AllocRoom, AllocObject, 3+g.rng.Roll(6))
	if g.rng.OneIn(4) {
		g.allocFeatures(AllocRoom, AllocAltar, 1)
	}
	if g.rng.OneIn(3) {
		g.allocFeatures(AllocRoom, AllocFountain, 1)
	}

	// Ruin fragments only where the sector roll left ruins
	rows := len(g.m.Sectors)
	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < len(g.m.Sectors[sy]); sx++ {
			if g.m.Sectors[sy][sx] != level.SectorRuins {
				continue
			}
			if g.rng.OneIn(6) {
				g.allocFeatures(AllocCorridor, AllocRuin, 1)
			}
		}
	}
}

// populateCover scatters destructible scenery, heavier with depth.
func (g *Generator) populateCover() {
	count := 4 + g.depth/5
	for i := 0; i < count; i++ {
		x, y, ok := g.randomSpot(AllocBoth)
		if !ok {
			return
		}
		tier := CoverLight
		feat := level.FeatShrub
		switch g.rng.Intn(3) {
		case 1:
			tier, feat = CoverMedium, level.FeatTallGrass
		case 2:
			tier, feat = CoverHeavy, level.FeatRubble
		}
		g.cover.CreateCover(g.m, x, y, tier, 10+g.depth/2+g.rng.Intn(10), feat)
	}
}

// populateMonsters drops the wandering population, asleep, away from
// the player start.
func (g *Generator) populateMonsters() {
	count := 14 + g.rng.Roll(8) + g.depth/3
	for i := 0; i < count; i++ {
		for try := 0; try < 50; try++ {
			x := g.rng.Intn(g.m.Width)
			y := g.rng.Intn(g.m.Height)
			if !g.m.Clear(x, y) {
				continue
			}
			if level.Distance(x, y, g.m.PlayerX, g.m.PlayerY) < 10 {
				continue
			}
			g.spawner.PlaceMonster(g.m, x, y, g.depth,
				MonsterOptions{Sleeping: true, Group: true})
			break
		}
	}
}

// streamerCount scales streamer passes by level area against a 64x64
// reference.
func (g *Generator) streamerCount(base int) int {
	n := base * g.m.Width * g.m.Height / (64 * 64)
	if n < 1 {
		n = 1
	}
	return n
}

// addStreamers lays the mineral veins for an ordinary level.
func (g *Generator) addStreamers() {
	for i := 0; i < g.streamerCount(config.MagmaStreams); i++ {
		g.buildStreamer(level.FeatMagma, level.FeatMagmaTreasure, config.MagmaTreasureInv)
	}
	for i := 0; i < g.streamerCount(config.QuartzStreams); i++ {
		g.buildStreamer(level.FeatQuartz, level.FeatQuartzTreasure, config.QuartzTreasureInv)
	}
	if g.rng.OneIn(4) {
		feat := level.FeatShallowWater
		if g.depth > 15 && g.rng.OneIn(2) {
			feat = level.FeatShallowLava
		}
		g.buildHazardStreamer(feat)
	}
}
