package generation

import (
	"stonehollow/config"
	"stonehollow/level"
)

// The eight compass steps.
var compass = [8]point{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// buildStreamer lays a mineral vein: from a random start it converts a
// scatter of granite cells around the head each step, occasionally
// treasure-bearing, then advances one cell along a fixed compass
// direction until it runs off the map.
func (g *Generator) buildStreamer(feat, treasure level.Feature, treasureInv int) {
	x := g.rng.Spread(g.m.Width/2, 15)
	y := g.rng.Spread(g.m.Height/2, 10)
	dir := compass[g.rng.Intn(8)]
	maxLen := 32 + g.rng.Roll(32)

	for steps := 0; steps < maxLen; steps++ {
		for i := 0; i < config.StreamerDensity; i++ {
			tx := g.rng.Spread(x, config.StreamerSpread)
			ty := g.rng.Spread(y, config.StreamerSpread)
			if !g.m.InBounds(tx, ty) {
				continue
			}
			// Only plain granite turns to vein; rooms keep their shells
			if g.m.Feat(tx, ty) != level.FeatWallExtra {
				continue
			}
			if g.rng.OneIn(treasureInv) {
				g.m.SetFeat(tx, ty, treasure)
			} else {
				g.m.SetFeat(tx, ty, feat)
			}
		}
		x += dir.X
		y += dir.Y
		if !g.m.InBounds(x, y) {
			break
		}
	}
}

// buildHazardStreamer carves a liquid or gas hazard: usually a
// wandering line across the level, occasionally a filled pool bounded
// by a diamond inclusion test. Protected cells and stairs are left
// alone.
func (g *Generator) buildHazardStreamer(feat level.Feature) {
	if g.rng.Roll(10) > 2 {
		// Wandering line
		x := g.rng.Intn(g.m.Width)
		y := g.rng.Intn(g.m.Height)
		dir := compass[g.rng.Intn(8)]
		for {
			g.hazardCell(x, y, feat)
			if g.rng.OneIn(20) {
				dir = compass[g.rng.Intn(8)]
			}
			x += dir.X
			y += dir.Y
			if !g.m.InBounds(x, y) {
				return
			}
		}
	}

	// Pool
	cx := g.rng.Between(5, g.m.Width-6)
	cy := g.rng.Between(5, g.m.Height-6)
	size := 5 + g.rng.Roll(10)
	for dy := -size; dy <= size; dy++ {
		for dx := -size; dx <= size; dx++ {
			if abs(dx)+2*abs(dy) > size {
				continue
			}
			g.hazardCell(cx+dx, cy+dy, feat)
		}
	}
}

// hazardCell overwrites one cell with a hazard unless it is protected,
// a staircase, or permanent.
func (g *Generator) hazardCell(x, y int, feat level.Feature) {
	if !g.m.InBoundsFully(x, y) {
		return
	}
	if g.m.HasFlag(x, y, level.FlagVault) {
		return
	}
	f := g.m.Feat(x, y)
	if f.IsStairs() || f.IsPerm() {
		return
	}
	g.m.SetFeat(x, y, feat)
}

// destroyLevel wrecks an already-built level: one to five epicenters,
// each replacing nearby cells with granite, quartz, magma, or bare
// floor by fixed probability bands, and stripping their flags.
func (g *Generator) destroyLevel() {
	epicenters := g.rng.Roll(5)
	for n := 0; n < epicenters; n++ {
		cx := g.rng.Between(10, g.m.Width-11)
		cy := g.rng.Between(5, g.m.Height-6)

		for y := cy - config.DestroyRadius; y <= cy+config.DestroyRadius; y++ {
			for x := cx - config.DestroyRadius; x <= cx+config.DestroyRadius; x++ {
				if !g.m.InBoundsFully(x, y) {
					continue
				}
				if level.Distance(x, y, cx, cy) >= config.DestroyRadius {
					continue
				}
				if g.m.Feat(x, y).IsPerm() {
					continue
				}

				t := g.rng.Intn(200)
				switch {
				case t < 20:
					g.m.SetFeat(x, y, level.FeatWallExtra)
				case t < 70:
					g.m.SetFeat(x, y, level.FeatQuartz)
				case t < 100:
					g.m.SetFeat(x, y, level.FeatMagma)
				default:
					g.m.SetFeat(x, y, level.FeatFloor)
				}
				g.m.ClearFlag(x, y, level.FlagRoom|level.FlagVault|level.FlagLit|level.FlagMarked)
			}
		}
	}
	g.msg.Message("The dungeon trembles as you descend...")
}
