package generation

import (
	"github.com/aquilax/go-perlin"

	"stonehollow/config"
	"stonehollow/data"
	"stonehollow/level"
)

// townGen lays out the town: open grass, the stamped market row, a
// staircase down, and townsfolk. Daylight lights the whole town; at
// night only the buildings stay marked.
func (g *Generator) townGen(daytime bool) {
	g.fillRect(1, 1, g.m.Width-2, g.m.Height-2, level.FeatGrass)
	g.outlineRect(0, 0, g.m.Width-1, g.m.Height-1, level.FeatPermSolid)

	if v := g.pickVault(data.KindTown); v != nil {
		g.stampVault(v, g.m.Width/2, g.m.Height/2)
	}

	// The way down sits just outside the market
	for try := 0; try < 10000; try++ {
		x := g.rng.Spread(g.m.Width/2, 20)
		y := g.rng.Spread(g.m.Height/2, 10)
		if g.m.Feat(x, y) == level.FeatGrass {
			g.m.SetFeat(x, y, level.FeatStairsDown)
			break
		}
	}

	if g.m.PlayerX == 0 && g.m.PlayerY == 0 {
		g.newPlayerSpot()
	}

	for i := 0; i < 4+g.rng.Intn(4); i++ {
		x, y, ok := g.randomSpot(AllocBoth)
		if !ok {
			break
		}
		g.spawner.PlaceMonster(g.m, x, y, 0, MonsterOptions{Theme: "townsfolk"})
	}

	if daytime {
		for y := 0; y < g.m.Height; y++ {
			for x := 0; x < g.m.Width; x++ {
				g.m.SetFlag(x, y, level.FlagLit)
			}
		}
	}
}

// wildernessGen builds a tileable outdoor region. All terrain draws
// come from the hashed stream keyed on the region coordinates, so
// walking back into the same region replays the same landscape; shared
// corners hash identically from both sides of a region edge.
func (g *Generator) wildernessGen(wildX, wildY int, wildSeed uint32, daytime bool) {
	w, h := g.m.Width, g.m.Height
	field := newHeightField(w, h)
	table := 0
	if regionHash(wildX, wildY, wildSeed)%3 == 0 {
		table = 1
	}

	g.rng.WithHashed(regionHash(wildX, wildY, wildSeed), func() {
		// Corner heights are shared with the neighboring regions
		corners := [4]struct{ wx, wy, fx, fy int }{
			{wildX, wildY, 0, 0},
			{wildX + 1, wildY, w - 1, 0},
			{wildX, wildY + 1, 0, h - 1},
			{wildX + 1, wildY + 1, w - 1, h - 1},
		}
		for _, c := range corners {
			g.rng.Reseed(cornerHash(c.wx, c.wy, wildSeed))
			field[c.fy][c.fx] = g.rng.Intn(config.MaxDepth + 1)
		}

		g.rng.Reseed(regionHash(wildX, wildY, wildSeed))
		g.plasma(field, 0, 0, w-1, h-1, config.MaxDepth/6, config.MaxDepth)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.m.SetFeat(x, y, tierFeature(table, field[y][x], config.MaxDepth))
			}
		}

		// The odd landmark; drawn from the hashed stream so it reappears
		// in place when the region is revisited
		if g.rng.OneIn(4) {
			if v := g.pickVault(data.KindWilderness); v != nil {
				g.stampVault(v, g.rng.Between(w/4, 3*w/4), g.rng.Between(h/4, 3*h/4))
			}
		}
	})

	// Vegetation texture rides on top of the terrain tiers
	noise := perlin.NewPerlin(2, 2, 3, int64(regionHash(wildX, wildY, wildSeed)))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.m.Feat(x, y) != level.FeatGrass {
				continue
			}
			n := noise.Noise2D(float64(x)/12.0, float64(y)/12.0)
			switch {
			case n > 0.35:
				g.m.SetFeat(x, y, level.FeatTree)
			case n > 0.2:
				g.m.SetFeat(x, y, level.FeatTallGrass)
			}
		}
	}

	g.outlineRect(0, 0, w-1, h-1, level.FeatPermSolid)
	g.newPlayerSpot()

	for i := 0; i < 6+g.rng.Intn(6); i++ {
		x, y, ok := g.randomSpot(AllocBoth)
		if !ok {
			break
		}
		g.spawner.PlaceMonster(g.m, x, y, g.depth, MonsterOptions{Sleeping: true, Group: true})
	}

	if daytime {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.m.SetFlag(x, y, level.FlagLit)
			}
		}
	}
}

// vaultLevelGen builds a whole special level from one template: arena,
// quest antechamber, store interior, or dreamscape. Falls back to an
// ordinary level when no template of the kind qualifies.
func (g *Generator) vaultLevelGen(kind data.VaultKind) {
	v := g.pickVault(kind)
	if v == nil {
		g.caveGen()
		return
	}

	g.stampVault(v, g.m.Width/2, g.m.Height/2)
	g.outlineRect(0, 0, g.m.Width-1, g.m.Height-1, level.FeatPermSolid)

	if kind == data.KindDream {
		// Dreams leak
		g.buildHazardStreamer(level.FeatChaosFog)
	}

	if g.m.PlayerX == 0 && g.m.PlayerY == 0 {
		g.newPlayerSpot()
	}

	// Always leave a way back
	if !g.hasFeature(level.FeatStairsUp) {
		for try := 0; try < 10000; try++ {
			x := g.rng.Spread(g.m.PlayerX, 3)
			y := g.rng.Spread(g.m.PlayerY, 3)
			if g.m.Clear(x, y) {
				g.m.SetFeat(x, y, level.FeatStairsUp)
				break
			}
		}
	}
}

// hasFeature scans for at least one cell of a feature.
func (g *Generator) hasFeature(f level.Feature) bool {
	for y := 0; y < g.m.Height; y++ {
		for x := 0; x < g.m.Width; x++ {
			if g.m.Cells[y][x].Feat == f {
				return true
			}
		}
	}
	return false
}
