package generation

import (
	"stonehollow/config"
	"stonehollow/level"
)

// correctDir yields the single step that closes the gap to the target,
// one axis at a time when both differ. Never diagonal.
func (g *Generator) correctDir(x1, y1, x2, y2 int) (dx, dy int) {
	if y1 < y2 {
		dy = 1
	} else if y1 > y2 {
		dy = -1
	}
	if x1 < x2 {
		dx = 1
	} else if x1 > x2 {
		dx = -1
	}
	if dx != 0 && dy != 0 {
		if g.rng.OneIn(2) {
			dx = 0
		} else {
			dy = 0
		}
	}
	return dx, dy
}

// randDir yields a random cardinal step.
func (g *Generator) randDir() (dx, dy int) {
	switch g.rng.Intn(4) {
	case 0:
		return 0, -1
	case 1:
		return 0, 1
	case 2:
		return -1, 0
	default:
		return 1, 0
	}
}

// buildTunnel carves a corridor from (x1, y1) to (x2, y2) with the
// directed-correction walk. The walk only records tunnel and piercing
// cells; floor is committed after it finishes, so an aborted walk
// leaves no partial corridor. Piercing an outer room wall immediately
// hardens the eight neighboring outer-wall cells to solid so no second
// corridor can enter adjacent to this one.
func (g *Generator) buildTunnel(x1, y1, x2, y2 int) {
	g.dun.tunn = g.dun.tunn[:0]
	g.dun.walls = g.dun.walls[:0]

	startX, startY := x1, y1
	doorFlag := false
	dx, dy := g.correctDir(x1, y1, x2, y2)

	for loops := 0; x1 != x2 || y1 != y2; {
		if loops++; loops > config.TunnelStepCap {
			break
		}

		// Occasionally bend back toward the target, rarely wander
		if g.rng.Percent(config.TunnelBendPercent) {
			dx, dy = g.correctDir(x1, y1, x2, y2)
		}
		if g.rng.Percent(config.TunnelRandomPercent) {
			dx, dy = g.randDir()
		}

		tx, ty := x1+dx, y1+dy
		for !g.m.InBoundsFully(tx, ty) {
			dx, dy = g.randDir()
			tx, ty = x1+dx, y1+dy
		}

		feat := g.m.Feat(tx, ty)
		switch {
		case feat.IsPerm():
			// The dungeon edge and vault shells are never breached
			continue

		case feat == level.FeatWallSolid:
			// Hardened by an earlier piercing
			continue

		case feat == level.FeatWallOuter:
			// Pierce only through a clean face, never at a corner
			beyond := g.m.Feat(tx+dx, ty+dy)
			if beyond.IsPerm() || beyond == level.FeatWallOuter || beyond == level.FeatWallSolid {
				continue
			}
			x1, y1 = tx, ty
			if len(g.dun.walls) < config.MaxWallPiercings {
				g.dun.walls = append(g.dun.walls, point{x1, y1})
			}
			for ny := y1 - 1; ny <= y1+1; ny++ {
				for nx := x1 - 1; nx <= x1+1; nx++ {
					if g.m.Feat(nx, ny) == level.FeatWallOuter {
						g.m.SetFeat(nx, ny, level.FeatWallSolid)
					}
				}
			}
			doorFlag = false

		case g.m.HasFlag(tx, ty, level.FlagRoom):
			// Pass through room interiors untouched
			x1, y1 = tx, ty
			doorFlag = false

		case feat.IsRock():
			x1, y1 = tx, ty
			if len(g.dun.tunn) < config.MaxTunnelCells {
				g.dun.tunn = append(g.dun.tunn, point{x1, y1})
			}
			doorFlag = false

		default:
			// Existing floor or corridor: at most one door candidate
			// per contiguous run, and a chance to stop early once far
			// enough from the start
			x1, y1 = tx, ty
			if !doorFlag {
				if len(g.dun.doors) < config.MaxDoorCells {
					g.dun.doors = append(g.dun.doors, point{x1, y1})
				}
				doorFlag = true
			}
			if !g.rng.Percent(config.TunnelEarlyEndPercent) {
				continue
			}
			if abs(x1-startX) > config.TunnelEarlyEndDistance ||
				abs(y1-startY) > config.TunnelEarlyEndDistance {
				loops = config.TunnelStepCap + 1
			}
		}
		if loops > config.TunnelStepCap {
			break
		}
	}

	g.commitTunnel()
}

// commitTunnel turns the recorded cells into corridor floor and rolls
// doors at the wall piercings.
func (g *Generator) commitTunnel() {
	for _, p := range g.dun.tunn {
		g.m.SetFeat(p.X, p.Y, level.FeatFloor)
	}
	for _, p := range g.dun.walls {
		g.m.SetFeat(p.X, p.Y, level.FeatFloor)
		if g.rng.Percent(config.TunnelPiercePercent) {
			g.placeRandomDoor(p.X, p.Y)
		}
	}
}

// buildTunnelWinding carves a meandering corridor: most steps drift
// toward the target, the rest are random. If the step cap runs out
// before arrival it discards its recording and falls back to the
// directed walk, which guarantees the connection.
func (g *Generator) buildTunnelWinding(x1, y1, x2, y2 int) {
	g.dun.tunn = g.dun.tunn[:0]
	g.dun.walls = g.dun.walls[:0]

	cx, cy := x1, y1
	doorFlag := false
	arrived := false

	for loops := 0; loops < config.WindingStepCap; loops++ {
		if cx == x2 && cy == y2 {
			arrived = true
			break
		}

		var dx, dy int
		if g.rng.Percent(config.WindingBiasPercent) {
			// Step along an axis that still differs from the target
			needX := cx != x2
			needY := cy != y2
			switch {
			case needX && needY:
				if g.rng.OneIn(2) {
					dx, _ = g.correctDir(cx, cy, x2, cy)
				} else {
					_, dy = g.correctDir(cx, cy, cx, y2)
				}
			case needX:
				dx, _ = g.correctDir(cx, cy, x2, cy)
			default:
				_, dy = g.correctDir(cx, cy, cx, y2)
			}
		} else {
			dx, dy = g.randDir()
		}

		tx, ty := cx+dx, cy+dy
		if !g.m.InBoundsFully(tx, ty) {
			continue
		}

		feat := g.m.Feat(tx, ty)
		switch {
		case feat.IsPerm() || feat == level.FeatWallSolid:
			continue
		case feat == level.FeatWallOuter:
			beyond := g.m.Feat(tx+dx, ty+dy)
			if beyond.IsPerm() || beyond == level.FeatWallOuter {
				continue
			}
			cx, cy = tx, ty
			if len(g.dun.walls) < config.MaxWallPiercings {
				g.dun.walls = append(g.dun.walls, point{cx, cy})
			}
			doorFlag = false
		case g.m.HasFlag(tx, ty, level.FlagRoom):
			cx, cy = tx, ty
			doorFlag = false
		case feat.IsRock():
			cx, cy = tx, ty
			if len(g.dun.tunn) < config.MaxTunnelCells {
				g.dun.tunn = append(g.dun.tunn, point{cx, cy})
			}
			doorFlag = false
		default:
			cx, cy = tx, ty
			if !doorFlag {
				if len(g.dun.doors) < config.MaxDoorCells {
					g.dun.doors = append(g.dun.doors, point{cx, cy})
				}
				doorFlag = true
			}
		}
	}

	if !arrived {
		g.buildTunnel(x1, y1, x2, y2)
		return
	}
	g.commitTunnel()
}

// placeRandomDoor sets a door of a random kind.
func (g *Generator) placeRandomDoor(x, y int) {
	roll := g.rng.Intn(100)
	switch {
	case roll < 30:
		g.m.SetFeat(x, y, level.FeatOpenDoor)
	case roll < 60:
		g.m.SetFeat(x, y, level.FeatDoor)
	case roll < 80:
		g.m.SetFeat(x, y, level.FeatSecretDoor)
	default:
		g.m.SetFeat(x, y, level.FeatLockedDoor)
	}
}

// nextToCorridor counts orthogonal neighbors that are bare corridor
// floor outside any room.
func (g *Generator) nextToCorridor(x, y int) int {
	count := 0
	for _, d := range [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := x+d.X, y+d.Y
		if g.m.Feat(nx, ny) != level.FeatFloor {
			continue
		}
		if g.m.HasFlag(nx, ny, level.FlagRoom) {
			continue
		}
		count++
	}
	return count
}

// possibleDoorway reports whether (x, y) sits in a corridor pinch with
// walls on opposite sides.
func (g *Generator) possibleDoorway(x, y int) bool {
	if g.nextToCorridor(x, y) < 2 {
		return false
	}
	if g.m.Feat(x-1, y).IsWall() && g.m.Feat(x+1, y).IsWall() {
		return true
	}
	if g.m.Feat(x, y-1).IsWall() && g.m.Feat(x, y+1).IsWall() {
		return true
	}
	return false
}

// tryDoor rolls a junction door at a candidate cell.
func (g *Generator) tryDoor(x, y int) {
	if !g.m.InBoundsFully(x, y) {
		return
	}
	feat := g.m.Feat(x, y)
	if feat.IsWall() || feat.IsDoor() || g.m.HasFlag(x, y, level.FlagRoom) {
		return
	}
	if g.rng.Percent(config.TunnelJunctionPercent) && g.possibleDoorway(x, y) {
		g.placeRandomDoor(x, y)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
