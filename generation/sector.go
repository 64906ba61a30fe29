package generation

import (
	"stonehollow/config"
	"stonehollow/level"
)

const sectorSpan = config.SectorBlocks * config.BlockWidth // sectors are square in cells

// assignSectors partitions the block grid into 2x2-block sectors, rolls
// a biome for each by depth, and builds every non-ruins sector eagerly,
// reserving its blocks. Ruins sectors stay open for ordinary room
// placement.
func (g *Generator) assignSectors() {
	rows := g.dun.rowBlocks / config.SectorBlocks
	cols := g.dun.colBlocks / config.SectorBlocks

	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < cols; sx++ {
			kind := g.rollSector()
			g.m.Sectors[sy][sx] = kind
			if kind == level.SectorRuins {
				continue
			}

			x1 := sx * sectorSpan
			y1 := sy * config.SectorBlocks * config.BlockHeight
			x2 := x1 + sectorSpan - 1
			y2 := y1 + config.SectorBlocks*config.BlockHeight - 1

			switch kind {
			case level.SectorCavern:
				g.buildCavernSector(x1, y1, x2, y2)
			case level.SectorHill:
				g.buildHillSector(x1, y1, x2, y2, false)
			case level.SectorPit:
				g.buildHillSector(x1, y1, x2, y2, true)
			case level.SectorCliff:
				g.buildCliffSector(x1, y1, x2, y2)
			case level.SectorDarkMaze:
				g.buildDarkMazeSector(x1, y1, x2, y2)
			case level.SectorPlaza:
				g.buildPlazaSector(x1, y1, x2, y2)
			}

			for by := sy * config.SectorBlocks; by < (sy+1)*config.SectorBlocks; by++ {
				for bx := sx * config.SectorBlocks; bx < (sx+1)*config.SectorBlocks; bx++ {
					g.dun.used[by][bx] = true
				}
			}
		}
	}
}

// rollSector picks a biome, weighted by depth: caverns grow common with
// depth, plazas and dark mazes hold steady, hills/pits/cliffs fill the
// middle bands, and everything else stays ruins.
func (g *Generator) rollSector() level.SectorKind {
	roll := g.rng.Intn(100)
	switch {
	case roll < g.depth/2:
		return level.SectorCavern
	case roll < 10:
		return level.SectorPlaza
	case roll < 20:
		return level.SectorDarkMaze
	case roll < 40+g.depth/4:
		return level.SectorHill
	case roll < 45+g.depth/5:
		return level.SectorPit
	case roll < 50+g.depth/6:
		return level.SectorCliff
	default:
		return level.SectorRuins
	}
}

// buildCavernSector thresholds a plasma height field at its midpoint:
// high cells open into floor, the rest stays rock.
func (g *Generator) buildCavernSector(x1, y1, x2, y2 int) {
	w, h := x2-x1+1, y2-y1+1
	field := newHeightField(w, h)
	g.seedCorners(field, config.MaxDepth)
	g.plasma(field, 0, 0, w-1, h-1, config.MaxDepth/8, config.MaxDepth)

	mid := config.MaxDepth / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if field[y][x] > mid {
				g.m.SetFeat(x1+x, y1+y, level.FeatFloor)
			} else {
				g.m.SetFeat(x1+x, y1+y, level.FeatWallExtra)
			}
		}
	}
	g.ensureConnectivity(x1+1, y1+1, x2-1, y2-1)
}

// buildHillSector raises a tiered hill from a radial gradient; with pit
// set it sinks a depression instead. An edge pass walls off rock beside
// the elevated ground. Pits collect standing hazard at the bottom;
// hills get defenders posted on the summit.
func (g *Generator) buildHillSector(x1, y1, x2, y2 int, pit bool) {
	cx, cy := (x1+x2)/2, (y1+y2)/2

	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			d := level.Distance(x, y, cx, cy)
			switch {
			case d <= 3:
				g.m.SetFeat(x, y, level.FeatFloor)
				if pit {
					g.m.SetElev(x, y, level.ElevLow)
				} else {
					g.m.SetElev(x, y, level.ElevHigh)
				}
			case d <= 7:
				g.m.SetFeat(x, y, level.FeatFloor)
				if !pit {
					g.m.SetElev(x, y, level.ElevHill)
				}
			case d <= 10:
				g.m.SetFeat(x, y, level.FeatFloor)
			}
		}
	}

	// Wall off remaining rock that touches the graded ground
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if g.m.Feat(x, y) != level.FeatWallExtra {
				continue
			}
			touches := false
			for dy := -1; dy <= 1 && !touches; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if g.m.Feat(x+dx, y+dy) == level.FeatFloor && g.m.Elev(x+dx, y+dy) != level.ElevGround {
						touches = true
						break
					}
				}
			}
			if touches {
				g.m.SetFeat(x, y, level.FeatWallOuter)
			}
		}
	}

	if pit {
		// Runoff pools in the depression
		hazard := level.FeatShallowWater
		if g.depth > 20 && g.rng.OneIn(2) {
			hazard = level.FeatShallowLava
		}
		for i := 0; i < 3+g.rng.Intn(4); i++ {
			hx := g.rng.Spread(cx, 2)
			hy := g.rng.Spread(cy, 2)
			if g.m.Feat(hx, hy) == level.FeatFloor {
				g.m.SetFeat(hx, hy, hazard)
			}
		}
	} else {
		for i := 0; i < 1+g.rng.Intn(2); i++ {
			sx := g.rng.Spread(cx, 1)
			sy := g.rng.Spread(cy, 1)
			if !g.m.Clear(sx, sy) {
				continue
			}
			if id, ok := g.spawner.PlaceMonster(g.m, sx, sy, g.depth+1, MonsterOptions{}); ok {
				g.patrol.SetupGuardPost(id, sx, sy, true)
			}
		}
	}

	g.ensureConnectivity(x1+1, y1+1, x2-1, y2-1)
}

// buildCliffSector splits the sector with a random bisecting line into
// a high and a low side separated by a two-cell face, then punches
// ledges through the face so it can be crossed.
func (g *Generator) buildCliffSector(x1, y1, x2, y2 int) {
	vertical := g.rng.OneIn(2)

	if vertical {
		split := g.rng.Between(x1+6, x2-7)
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				switch {
				case x < split:
					g.m.SetFeat(x, y, level.FeatFloor)
					g.m.SetElev(x, y, level.ElevHigh)
				case x <= split+1:
					g.m.SetFeat(x, y, level.FeatWallOuter)
				default:
					g.m.SetFeat(x, y, level.FeatFloor)
				}
			}
		}
		for i := 0; i < 1+g.rng.Intn(2); i++ {
			ly := g.rng.Between(y1+1, y2-1)
			g.m.SetFeat(split, ly, level.FeatFloor)
			g.m.SetFeat(split+1, ly, level.FeatFloor)
			g.m.SetElev(split, ly, level.ElevHill)
			g.m.SetElev(split+1, ly, level.ElevHill)
		}
	} else {
		split := g.rng.Between(y1+4, y2-5)
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				switch {
				case y < split:
					g.m.SetFeat(x, y, level.FeatFloor)
					g.m.SetElev(x, y, level.ElevHigh)
				case y <= split+1:
					g.m.SetFeat(x, y, level.FeatWallOuter)
				default:
					g.m.SetFeat(x, y, level.FeatFloor)
				}
			}
		}
		for i := 0; i < 1+g.rng.Intn(2); i++ {
			lx := g.rng.Between(x1+1, x2-1)
			g.m.SetFeat(lx, split, level.FeatFloor)
			g.m.SetFeat(lx, split+1, level.FeatFloor)
			g.m.SetElev(lx, split, level.ElevHill)
			g.m.SetElev(lx, split+1, level.ElevHill)
		}
	}
	g.ensureConnectivity(x1+1, y1+1, x2-1, y2-1)
}

// darkMazeStep applies one majority-rule round over a boolean wall
// grid: a wall survives with 4 of 8 wall neighbors, a floor turns with
// 5; out of bounds counts as wall. Exposed for the generator's own use
// on any local grid.
func darkMazeStep(cells [][]bool) [][]bool {
	h, w := len(cells), len(cells[0])
	next := make([][]bool, h)
	for y := range next {
		next[y] = make([]bool, w)
		for x := range next[y] {
			walls := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					ny, nx := y+dy, x+dx
					if ny < 0 || ny >= h || nx < 0 || nx >= w || cells[ny][nx] {
						walls++
					}
				}
			}
			if cells[y][x] {
				next[y][x] = walls >= 4
			} else {
				next[y][x] = walls >= 5
			}
		}
	}
	return next
}

// buildDarkMazeSector grows an unlit warren with a cellular automaton,
// repairs its connectivity, and leaves one rewarded beacon inside.
func (g *Generator) buildDarkMazeSector(x1, y1, x2, y2 int) {
	w, h := x2-x1+1, y2-y1+1
	cells := make([][]bool, h)
	for y := range cells {
		cells[y] = make([]bool, w)
		for x := range cells[y] {
			cells[y][x] = g.rng.Percent(40)
		}
	}
	for i := 0; i < 4; i++ {
		cells = darkMazeStep(cells)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y][x] || x == 0 || y == 0 || x == w-1 || y == h-1 {
				g.m.SetFeat(x1+x, y1+y, level.FeatWallExtra)
			} else {
				g.m.SetFeat(x1+x, y1+y, level.FeatFloor)
			}
		}
	}
	g.ensureConnectivity(x1+1, y1+1, x2-1, y2-1)

	// One beacon on a reachable floor cell, with something worth the
	// walk beside it
	for try := 0; try < 100; try++ {
		x := g.rng.Between(x1+1, x2-1)
		y := g.rng.Between(y1+1, y2-1)
		if g.m.Feat(x, y) != level.FeatFloor {
			continue
		}
		g.m.SetFeat(x, y, level.FeatBeacon)
		g.spawner.PlaceObject(g.m, x, y, g.depth+2, false, false)
		break
	}
}

// buildPlazaSector opens the whole sector to floor, carves one to
// three hazard streams across it, and forces two bridges so the halves
// stay joined.
func (g *Generator) buildPlazaSector(x1, y1, x2, y2 int) {
	g.fillRect(x1+1, y1+1, x2-1, y2-1, level.FeatFloor)

	hazard := level.FeatDeepWater
	if g.depth > 30 && g.rng.OneIn(2) {
		hazard = level.FeatDeepLava
	}

	streams := 1 + g.rng.Intn(3)
	for i := 0; i < streams; i++ {
		// Biased walk from the top edge to the bottom
		x := g.rng.Between(x1+2, x2-2)
		for y := y1 + 1; y <= y2-1; {
			g.m.SetFeat(x, y, hazard)
			if g.rng.Percent(30) {
				x += g.rng.Intn(3) - 1
				if x < x1+1 {
					x = x1 + 1
				}
				if x > x2-1 {
					x = x2 - 1
				}
			} else {
				y++
			}
		}
	}

	// Two bridges across whatever the streams cut
	for i := 0; i < 2; i++ {
		bx := g.rng.Between(x1+2, x2-2)
		by := g.rng.Between(y1+2, y2-2)
		g.fillRect(bx-1, by-1, bx+1, by+1, level.FeatFloor)
	}

	g.ensureConnectivity(x1+1, y1+1, x2-1, y2-1)
}

// ensureConnectivity flood-fills the passable cells of a region into
// components; while more than one remains, it carves a straight stepped
// bridge from each stray component to the first at their closest cell
// pair. Bounded by a pass cap.
func (g *Generator) ensureConnectivity(x1, y1, x2, y2 int) {
	prev := -1
	for pass := 0; pass < 100; pass++ {
		comp := g.labelComponents(x1, y1, x2, y2)
		if comp.count <= 1 {
			return
		}
		if comp.count == prev {
			// A protected shell is blocking the closest pair
			return
		}
		prev = comp.count

		// Bridge each stray component toward the first at its closest
		// pair; carving all of them per pass keeps one blocked pair from
		// stranding the rest
		for id := 2; id <= comp.count; id++ {
			best := -1
			var ax, ay, bx, by int
			for _, a := range comp.cells[1] {
				for _, b := range comp.cells[id] {
					dx, dy := a.X-b.X, a.Y-b.Y
					dd := dx*dx + dy*dy
					if best < 0 || dd < best {
						best = dd
						ax, ay, bx, by = a.X, a.Y, b.X, b.Y
					}
				}
			}
			if best < 0 {
				continue
			}

			// Stepped bridge: close the wider gap first, cell by cell
			for ax != bx || ay != by {
				if abs(bx-ax) >= abs(by-ay) {
					if bx > ax {
						ax++
					} else {
						ax--
					}
				} else {
					if by > ay {
						ay++
					} else {
						ay--
					}
				}
				if !g.m.Feat(ax, ay).Passable() && !g.m.HasFlag(ax, ay, level.FlagVault) {
					g.m.SetFeat(ax, ay, level.FeatFloor)
				}
			}
		}
	}
}

type componentSet struct {
	count int
	cells map[int][]point
}

// labelComponents labels the passable, unprotected cells of a region
// with component ids starting at 1. Vault interiors are excluded; their
// shells must not be breached to join them up.
func (g *Generator) labelComponents(x1, y1, x2, y2 int) componentSet {
	w, h := x2-x1+1, y2-y1+1
	if w <= 0 || h <= 0 {
		return componentSet{}
	}
	label := make([][]int, h)
	for i := range label {
		label[i] = make([]int, w)
	}

	out := componentSet{cells: make(map[int][]point)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if label[y][x] != 0 || !g.m.Passable(x1+x, y1+y) ||
				g.m.HasFlag(x1+x, y1+y, level.FlagVault) {
				continue
			}
			out.count++
			id := out.count
			queue := []point{{x, y}}
			label[y][x] = id
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				out.cells[id] = append(out.cells[id], point{x1 + p.X, y1 + p.Y})
				for _, d := range [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := p.X+d.X, p.Y+d.Y
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if label[ny][nx] == 0 && g.m.Passable(x1+nx, y1+ny) &&
						!g.m.HasFlag(x1+nx, y1+ny, level.FlagVault) {
						label[ny][nx] = id
						queue = append(queue, point{nx, ny})
					}
				}
			}
		}
	}
	return out
}
