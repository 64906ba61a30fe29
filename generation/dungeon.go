package generation

import (
	"stonehollow/config"
	"stonehollow/level"
)

// caveGen builds an ordinary dungeon level: sectors first, then rooms
// in the remaining ruins blocks, a connecting corridor chain, veins,
// stairs, and population.
func (g *Generator) caveGen() {
	g.litLevel = g.depth < 10 && g.rng.OneIn(8)
	g.levelBG = level.FeatWallExtra

	// Occasionally the level opens onto something other than rock
	if g.depth >= 5 {
		switch g.rng.Intn(10) {
		case 0:
			g.levelBG = level.FeatFloor
			g.fillRect(1, 1, g.m.Width-2, g.m.Height-2, g.levelBG)
		case 1:
			g.levelBG = level.FeatShallowWater
			g.fillRect(1, 1, g.m.Width-2, g.m.Height-2, g.levelBG)
		case 2:
			g.levelBG = level.FeatChaosFog
			g.fillRect(1, 1, g.m.Width-2, g.m.Height-2, g.levelBG)
		case 3:
			g.levelBG = level.FeatFog
			g.fillRect(1, 1, g.m.Width-2, g.m.Height-2, g.levelBG)
		case 4:
			g.paintMazeBackground()
		}
	}

	destroyed := g.depth > config.DestroyDepthMin && g.rng.OneIn(config.DestroyChanceInv)

	g.assignSectors()

	for i := 0; i < config.RoomAttempts; i++ {
		by := g.rng.Intn(g.dun.rowBlocks)
		bx := g.rng.Intn(g.dun.colBlocks)

		// Slide off every third column to rough-align room anchors
		if bx%config.AlignSlideMod == 0 {
			bx++
		}
		if bx >= g.dun.colBlocks {
			continue
		}

		// Ordinary rooms only claim ruins sectors
		if g.m.Sectors[by/config.SectorBlocks][bx/config.SectorBlocks] != level.SectorRuins {
			continue
		}

		// Unusual rooms, never on a level about to be destroyed
		if !destroyed && g.rng.Intn(config.UnusualRoll) < g.depth {
			if g.rng.Percent(config.ThemedVaultRolls) && g.attemptRoom(by, bx, RoomThemedVault) {
				continue
			}
			k := g.rng.Intn(100)
			switch {
			case k < 5 && g.depth >= 10:
				if g.attemptRoom(by, bx, RoomGuardPost) {
					continue
				}
			case k < 10 && g.depth >= 15:
				if g.attemptRoom(by, bx, RoomAmbush) {
					continue
				}
			case k < 20:
				if g.depth >= 40 && g.attemptRoom(by, bx, RoomSanctum) {
					continue
				}
				if g.depth >= 30 && g.attemptRoom(by, bx, RoomFolly) {
					continue
				}
				if g.attemptRoom(by, bx, RoomGreaterVault) {
					continue
				}
			case k < 25:
				if g.attemptRoom(by, bx, RoomLesserVault) {
					continue
				}
			case k < 50:
				if g.attemptRoom(by, bx, RoomPit) {
					continue
				}
			case k < 80:
				if g.attemptRoom(by, bx, RoomNest) {
					continue
				}
			}
		}

		k := g.rng.Intn(100)
		switch {
		case k < 15:
			if g.attemptRoom(by, bx, RoomLarge) {
				continue
			}
		case k < 25:
			if g.attemptRoom(by, bx, RoomCircular) {
				continue
			}
		case k < 40:
			if g.attemptRoom(by, bx, RoomCross) {
				continue
			}
		case k < 50:
			if g.attemptRoom(by, bx, RoomComposite) {
				continue
			}
		case k < 60:
			if g.attemptRoom(by, bx, RoomCavernBlob) {
				continue
			}
		case k < 85:
			if g.attemptRoom(by, bx, RoomOverlap) {
				continue
			}
		}
		g.attemptRoom(by, bx, RoomPlain)
	}

	// Nothing breaches the level boundary
	g.outlineRect(0, 0, g.m.Width-1, g.m.Height-1, level.FeatPermSolid)

	// Connect the rooms in a shuffled chain, mostly winding
	g.rng.Shuffle(len(g.dun.centers), func(i, j int) {
		g.dun.centers[i], g.dun.centers[j] = g.dun.centers[j], g.dun.centers[i]
	})
	for i := 1; i < len(g.dun.centers); i++ {
		a, b := g.dun.centers[i-1], g.dun.centers[i]
		if g.rng.Percent(75) {
			g.buildTunnelWinding(b.X, b.Y, a.X, a.Y)
		} else {
			g.buildTunnel(b.X, b.Y, a.X, a.Y)
		}
	}

	// Extra cross-links so the chain is not a single thread
	if len(g.dun.centers) > 2 && g.rng.Percent(40) {
		for i := 0; i < len(g.dun.centers)/3; i++ {
			a := g.dun.centers[g.rng.Intn(len(g.dun.centers))]
			b := g.dun.centers[g.rng.Intn(len(g.dun.centers))]
			if a != b {
				g.buildTunnel(a.X, a.Y, b.X, b.Y)
			}
		}
	}

	// Junction doors only make sense against rock
	if g.levelBG == level.FeatWallExtra {
		for _, d := range g.dun.doors {
			g.tryDoor(d.X-1, d.Y)
			g.tryDoor(d.X+1, d.Y)
			g.tryDoor(d.X, d.Y-1)
			g.tryDoor(d.X, d.Y+1)
		}
	}

	g.addStreamers()

	if destroyed {
		g.destroyLevel()
	}

	// Join whatever the rooms, tunnels, and streams left separated
	g.ensureConnectivity(1, 1, g.m.Width-2, g.m.Height-2)

	g.placeStairs(level.FeatStairsDown,
		g.streamerCount(g.rng.Between(config.DownStairsMin, config.DownStairsMax)),
		config.StairWallPref)
	g.placeStairs(level.FeatStairsUp,
		g.streamerCount(g.rng.Between(config.UpStairsMin, config.UpStairsMax)),
		config.StairWallPref)

	g.newPlayerSpot()

	g.populateMonsters()
	g.populateFeatures()
	g.populateCover()

	if g.litLevel {
		for y := 0; y < g.m.Height; y++ {
			for x := 0; x < g.m.Width; x++ {
				g.m.SetFlag(x, y, level.FlagLit)
			}
		}
	}
}

// paintMazeBackground replaces the rock background with a pillar grid,
// leaving the background feature as floor so later passes treat the
// level as open.
func (g *Generator) paintMazeBackground() {
	for y := 1; y < g.m.Height-1; y++ {
		for x := 1; x < g.m.Width-1; x++ {
			if x%2 == 0 && y%2 == 0 {
				g.m.SetFeat(x, y, level.FeatWallInner)
			} else {
				g.m.SetFeat(x, y, level.FeatFloor)
			}
		}
	}
	g.levelBG = level.FeatFloor
}
