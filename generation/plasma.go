package generation

import (
	"stonehollow/level"
)

// Height fields for plasma-fractal terrain. Values always stay in
// [0, max]; the recursion subdivides until quadrants are single cells.

func newHeightField(w, h int) [][]int {
	f := make([][]int, h)
	for i := range f {
		f[i] = make([]int, w)
	}
	return f
}

// seedCorners gives the four corners random heights.
func (g *Generator) seedCorners(f [][]int, max int) {
	h, w := len(f), len(f[0])
	f[0][0] = g.rng.Intn(max + 1)
	f[0][w-1] = g.rng.Intn(max + 1)
	f[h-1][0] = g.rng.Intn(max + 1)
	f[h-1][w-1] = g.rng.Intn(max + 1)
}

// perturbMid averages four corners (rounding up when the remainder is
// large), adds a bounded perturbation, and clamps.
func (g *Generator) perturbMid(c1, c2, c3, c4, rough, max int) int {
	tmp := g.rng.Roll(rough*2+1) - (rough + 1)
	sum := c1 + c2 + c3 + c4
	avg := sum / 4
	if sum%4 > 1 {
		avg++
	}
	v := avg + tmp
	if v < 0 {
		v = 0
	}
	if v > max {
		v = max
	}
	return v
}

// perturbEnd averages an edge's two corners with the fresh center
// value, rounding up on any remainder, plus perturbation and clamp.
func (g *Generator) perturbEnd(c1, c2, c3, rough, max int) int {
	tmp := g.rng.Roll(rough*2+1) - (rough + 1)
	sum := c1 + c2 + c3
	avg := sum / 3
	if sum%3 != 0 {
		avg++
	}
	v := avg + tmp
	if v < 0 {
		v = 0
	}
	if v > max {
		v = max
	}
	return v
}

// plasma fills the interior of a corner-seeded rectangle by recursive
// midpoint displacement: the center from the four corners, each edge
// midpoint from its corners and the center, then four quadrants.
func (g *Generator) plasma(f [][]int, x1, y1, x2, y2, rough, max int) {
	if x2-x1 <= 1 && y2-y1 <= 1 {
		return
	}
	xm := (x1 + x2) / 2
	ym := (y1 + y2) / 2

	f[ym][xm] = g.perturbMid(f[y1][x1], f[y1][x2], f[y2][x1], f[y2][x2], rough, max)
	f[y1][xm] = g.perturbEnd(f[y1][x1], f[y1][x2], f[ym][xm], rough, max)
	f[y2][xm] = g.perturbEnd(f[y2][x1], f[y2][x2], f[ym][xm], rough, max)
	f[ym][x1] = g.perturbEnd(f[y1][x1], f[y2][x1], f[ym][xm], rough, max)
	f[ym][x2] = g.perturbEnd(f[y1][x2], f[y2][x2], f[ym][xm], rough, max)

	g.plasma(f, x1, y1, xm, ym, rough, max)
	g.plasma(f, xm, y1, x2, ym, rough, max)
	g.plasma(f, x1, ym, xm, y2, rough, max)
	g.plasma(f, xm, ym, x2, y2, rough, max)
}

// Ordered terrain tiers, low heights first. Two tables: lush regions
// and barren wastes.
var terrainTiers = [2][]level.Feature{
	{
		level.FeatDeepWater, level.FeatDeepWater,
		level.FeatShallowWater, level.FeatShallowWater,
		level.FeatSwamp, level.FeatSwamp,
		level.FeatDirt,
		level.FeatGrass, level.FeatGrass, level.FeatGrass,
		level.FeatShrub, level.FeatTallGrass,
		level.FeatTree, level.FeatTree,
		level.FeatDirt,
		level.FeatHillTerrain, level.FeatHillTerrain,
		level.FeatMountain, level.FeatMountain,
	},
	{
		level.FeatDeepWater,
		level.FeatShallowWater,
		level.FeatSwamp,
		level.FeatDirt, level.FeatDirt, level.FeatDirt,
		level.FeatRubble,
		level.FeatDirt, level.FeatDirt,
		level.FeatShrub,
		level.FeatDirt, level.FeatDirt,
		level.FeatHillTerrain, level.FeatHillTerrain, level.FeatHillTerrain,
		level.FeatMountain, level.FeatMountain, level.FeatMountain, level.FeatMountain,
	},
}

// tierFeature maps a clamped height through an ordered tier table.
func tierFeature(table int, v, max int) level.Feature {
	tiers := terrainTiers[table]
	idx := v * len(tiers) / (max + 1)
	if idx >= len(tiers) {
		idx = len(tiers) - 1
	}
	return tiers[idx]
}

// cornerHash keys the hashed random stream for a wilderness corner, so
// regions sharing a corner agree on its height.
func cornerHash(wx, wy int, seed uint32) uint32 {
	a := uint32(wx*3947) ^ uint32(wy*2117)
	return (a + seed) ^ uint32(wx*wy*7211)
}

// regionHash keys the hashed stream for a whole wilderness region.
func regionHash(wx, wy int, seed uint32) uint32 {
	return uint32(wx*131071) ^ uint32(wy*8191) ^ seed
}
