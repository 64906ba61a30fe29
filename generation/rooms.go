package generation

import (
	"stonehollow/level"
)

// roomLight decides whether a room at the current depth is lit.
func (g *Generator) roomLight() bool {
	return g.litLevel || g.depth <= g.rng.Roll(25)
}

// buildPlainRoom paints a single rectangle, occasionally with pillars
// or ragged edges, and at depth sometimes posts a small guard squad.
func (g *Generator) buildPlainRoom(cx, cy int) bool {
	light := g.roomLight()

	y1 := cy - g.rng.Roll(4)
	y2 := cy + g.rng.Roll(3)
	x1 := cx - g.rng.Roll(11)
	x2 := cx + g.rng.Roll(11)

	g.markRoom(x1-1, y1-1, x2+1, y2+1, light)
	g.fillRect(x1, y1, x2, y2, level.FeatFloor)
	g.outlineRect(x1-1, y1-1, x2+1, y2+1, level.FeatWallOuter)

	if g.rng.OneIn(20) {
		// Pillared hall
		for y := y1 + 1; y <= y2-1; y += 2 {
			for x := x1 + 1; x <= x2-1; x += 2 {
				g.m.SetFeat(x, y, level.FeatWallInner)
			}
		}
	} else if g.rng.OneIn(50) {
		// Ragged edges
		for y := y1 + 2; y <= y2-2; y += 2 {
			g.m.SetFeat(x1, y, level.FeatWallInner)
			g.m.SetFeat(x2, y, level.FeatWallInner)
		}
		for x := x1 + 2; x <= x2-2; x += 2 {
			g.m.SetFeat(x, y1, level.FeatWallInner)
			g.m.SetFeat(x, y2, level.FeatWallInner)
		}
	}

	if g.depth > 5 && g.rng.Percent(15) {
		g.postGuards(cx, cy, 1+g.rng.Intn(2))
	}
	return true
}

// postGuards drops a few wakeful monsters near a point and starts them
// on a room circuit.
func (g *Generator) postGuards(cx, cy, count int) {
	for i := 0; i < count; i++ {
		x := g.rng.Spread(cx, 2)
		y := g.rng.Spread(cy, 2)
		if !g.m.Clear(x, y) {
			continue
		}
		if id, ok := g.spawner.PlaceMonster(g.m, x, y, g.depth, MonsterOptions{}); ok {
			g.patrol.SetupPatrol(id)
		}
	}
}

// buildOverlapRoom paints two overlapping rectangles: both outlines
// first, then both interiors, so the shared area stays open.
func (g *Generator) buildOverlapRoom(cx, cy int) bool {
	light := g.roomLight()

	ay1 := cy - g.rng.Roll(4)
	ay2 := cy + g.rng.Roll(3)
	ax1 := cx - g.rng.Roll(11)
	ax2 := cx + g.rng.Roll(10)

	by1 := cy - g.rng.Roll(3)
	by2 := cy + g.rng.Roll(4)
	bx1 := cx - g.rng.Roll(10)
	bx2 := cx + g.rng.Roll(11)

	g.markRoom(ax1-1, ay1-1, ax2+1, ay2+1, light)
	g.markRoom(bx1-1, by1-1, bx2+1, by2+1, light)

	g.outlineRect(ax1-1, ay1-1, ax2+1, ay2+1, level.FeatWallOuter)
	g.outlineRect(bx1-1, by1-1, bx2+1, by2+1, level.FeatWallOuter)

	g.fillRect(ax1, ay1, ax2, ay2, level.FeatFloor)
	g.fillRect(bx1, by1, bx2, by2, level.FeatFloor)
	return true
}

// buildCrossRoom paints a plus of two crossing rectangles, then one of
// four inner variants: plain, inner treasure vault, pinched waist, or a
// solid central pillar.
func (g *Generator) buildCrossRoom(cx, cy int) bool {
	light := g.roomLight()

	// Arm half-widths
	wx := 1
	if g.rng.OneIn(4) {
		wx = 2
	}
	wy := 1

	// Vertical arm
	vy1, vy2 := cy-4, cy+4
	vx1, vx2 := cx-wx, cx+wx
	// Horizontal arm
	hy1, hy2 := cy-wy, cy+wy
	hx1, hx2 := cx-10, cx+10

	g.markRoom(vx1-1, vy1-1, vx2+1, vy2+1, light)
	g.markRoom(hx1-1, hy1-1, hx2+1, hy2+1, light)

	g.outlineRect(vx1-1, vy1-1, vx2+1, vy2+1, level.FeatWallOuter)
	g.outlineRect(hx1-1, hy1-1, hx2+1, hy2+1, level.FeatWallOuter)

	g.fillRect(vx1, vy1, vx2, vy2, level.FeatFloor)
	g.fillRect(hx1, hy1, hx2, hy2, level.FeatFloor)

	switch g.rng.Intn(4) {
	case 1:
		// Inner vault with a secret way in, loot, and trapped floor
		g.outlineRect(cx-1, cy-1, cx+1, cy+1, level.FeatWallInner)
		g.openSide(cx-1, cy-1, cx+1, cy+1, level.FeatSecretDoor)
		g.spawner.PlaceObject(g.m, cx, cy, g.depth+2, false, false)
		g.placeTrapsNear(cx, cy, 2, 2+g.rng.Intn(2))
		g.rating += 5
	case 2:
		// Pinched waist
		for y := vy1; y <= vy2; y++ {
			if y == cy {
				continue
			}
			g.m.SetFeat(vx1-1, y, level.FeatWallInner)
			g.m.SetFeat(vx2+1, y, level.FeatWallInner)
		}
		for x := hx1; x <= hx2; x++ {
			if x == cx {
				continue
			}
			g.m.SetFeat(x, hy1-1, level.FeatWallInner)
			g.m.SetFeat(x, hy2+1, level.FeatWallInner)
		}
	case 3:
		g.m.SetFeat(cx, cy, level.FeatWallInner)
	}
	return true
}

// placeTrapsNear scatters traps around a point.
func (g *Generator) placeTrapsNear(cx, cy, spread, count int) {
	for i := 0; i < count; i++ {
		for try := 0; try < 20; try++ {
			x := g.rng.Spread(cx, spread)
			y := g.rng.Spread(cy, spread)
			if !g.m.Clear(x, y) {
				continue
			}
			g.spawner.PlaceTrap(g.m, x, y, g.depth)
			break
		}
	}
}

// buildLargeRoom paints a big rectangle with an inner wall ring, then
// one of five inner arrangements.
func (g *Generator) buildLargeRoom(cx, cy int) bool {
	light := g.roomLight()

	y1, y2 := cy-4, cy+4
	x1, x2 := cx-11, cx+11

	g.markRoom(x1-1, y1-1, x2+1, y2+1, light)
	g.fillRect(x1, y1, x2, y2, level.FeatFloor)
	g.outlineRect(x1-1, y1-1, x2+1, y2+1, level.FeatWallOuter)

	// Inner ring with one opening
	iy1, iy2 := y1+2, y2-2
	ix1, ix2 := x1+2, x2-2
	g.outlineRect(ix1-1, iy1-1, ix2+1, iy2+1, level.FeatWallInner)
	g.openSide(ix1-1, iy1-1, ix2+1, iy2+1, level.FeatFloor)

	switch g.rng.Roll(5) {
	case 1:
		// A sleeping guardian
		g.spawner.PlaceMonster(g.m, cx, cy, g.depth+2, MonsterOptions{Sleeping: true})

	case 2:
		// Locked treasure chamber: loot or a shortcut down, guarded
		g.outlineRect(cx-1, cy-1, cx+1, cy+1, level.FeatWallInner)
		g.openSideLocked(cx-1, cy-1, cx+1, cy+1)
		if g.rng.Percent(80) {
			g.spawner.PlaceObject(g.m, cx, cy, g.depth+4, true, false)
		} else {
			g.m.SetFeat(cx, cy, level.FeatStairsDown)
		}
		for i := 0; i < 2+g.rng.Intn(3); i++ {
			g.spawner.PlaceMonster(g.m, g.rng.Spread(cx, 4), g.rng.Spread(cy, 2),
				g.depth+2, MonsterOptions{Sleeping: true})
		}
		g.placeTrapsNear(cx, cy, 4, 3)

	case 3:
		// Inner pillars, sometimes with a treasure ring
		for y := iy1 + 1; y <= iy2-1; y += 2 {
			for x := ix1 + 1; x <= ix2-1; x += 2 {
				g.m.SetFeat(x, y, level.FeatWallInner)
			}
		}
		if g.rng.OneIn(3) {
			g.outlineRect(cx-5, cy-1, cx+5, cy+1, level.FeatWallInner)
			g.spawner.PlaceObject(g.m, cx-3, cy, g.depth, false, false)
			g.spawner.PlaceObject(g.m, cx+3, cy, g.depth, false, false)
		}

	case 4:
		// Checkerboard maze
		for y := iy1; y <= iy2; y++ {
			for x := ix1; x <= ix2; x++ {
				if (x+y)&1 != 0 {
					g.m.SetFeat(x, y, level.FeatWallInner)
				}
			}
		}
		g.spawner.PlaceMonster(g.m, cx-5, cy, g.depth+1, MonsterOptions{Sleeping: true})
		g.spawner.PlaceMonster(g.m, cx+5, cy, g.depth+1, MonsterOptions{Sleeping: true})
		g.spawner.PlaceObject(g.m, cx-3, cy, g.depth, false, false)
		g.spawner.PlaceObject(g.m, cx+3, cy, g.depth, false, false)
		g.placeTrapsNear(cx, cy, 5, 3)

	case 5:
		// Four quadrants joined at a doored crossing
		for y := iy1 - 1; y <= iy2+1; y++ {
			g.m.SetFeat(cx, y, level.FeatWallInner)
		}
		for x := ix1 - 1; x <= ix2+1; x++ {
			g.m.SetFeat(x, cy, level.FeatWallInner)
		}
		g.m.SetFeat(cx-2, cy, level.FeatDoor)
		g.m.SetFeat(cx+2, cy, level.FeatDoor)
		g.m.SetFeat(cx, cy-2, level.FeatDoor)
		g.m.SetFeat(cx, cy+2, level.FeatDoor)
	}
	return true
}

// openSideLocked punches a locked door in one random inner-box side.
func (g *Generator) openSideLocked(x1, y1, x2, y2 int) {
	g.openSide(x1, y1, x2, y2, level.FeatLockedDoor)
}

// buildCircularRoom paints a disc of floor inside a wall ring, radius
// 3-7, sometimes with a central fountain or pillar.
func (g *Generator) buildCircularRoom(cx, cy int) bool {
	light := g.roomLight()
	r := 3 + g.rng.Intn(5)

	g.markRoom(cx-r-1, cy-r-1, cx+r+1, cy+r+1, light)
	for dy := -r - 1; dy <= r+1; dy++ {
		for dx := -r - 1; dx <= r+1; dx++ {
			dd := dx*dx + dy*dy
			switch {
			case dd <= r*r:
				g.m.SetFeat(cx+dx, cy+dy, level.FeatFloor)
			case dd <= (r+1)*(r+1)+r:
				g.m.SetFeat(cx+dx, cy+dy, level.FeatWallOuter)
			}
		}
	}

	if g.rng.OneIn(4) {
		g.m.SetFeat(cx, cy, level.FeatFountain)
	} else if g.rng.OneIn(6) {
		g.m.SetFeat(cx, cy, level.FeatWallInner)
	}
	return true
}

// buildCompositeRoom merges two or three offset rectangles into one
// irregular chamber: outlines first, floors second.
func (g *Generator) buildCompositeRoom(cx, cy int) bool {
	light := g.roomLight()
	count := 2 + g.rng.Intn(2)

	type rect struct{ x1, y1, x2, y2 int }
	rects := make([]rect, 0, count)
	for i := 0; i < count; i++ {
		ox := g.rng.Spread(cx, 5)
		oy := g.rng.Spread(cy, 3)
		rects = append(rects, rect{
			x1: ox - 2 - g.rng.Intn(4),
			y1: oy - 1 - g.rng.Intn(3),
			x2: ox + 2 + g.rng.Intn(4),
			y2: oy + 1 + g.rng.Intn(3),
		})
	}
	for _, r := range rects {
		g.markRoom(r.x1-1, r.y1-1, r.x2+1, r.y2+1, light)
		g.outlineRect(r.x1-1, r.y1-1, r.x2+1, r.y2+1, level.FeatWallOuter)
	}
	for _, r := range rects {
		g.fillRect(r.x1, r.y1, r.x2, r.y2, level.FeatFloor)
	}
	return true
}

const blobSize = 20

// buildCavernBlob grows an organic chamber with a small cellular
// automaton: 45% wall seed, four rounds, forced wall border, then a
// connectivity pass so the open space is one piece.
func (g *Generator) buildCavernBlob(cx, cy int) bool {
	light := g.roomLight()
	x1, y1 := cx-blobSize/2, cy-blobSize/2

	var cells, next [blobSize][blobSize]bool
	for y := 0; y < blobSize; y++ {
		for x := 0; x < blobSize; x++ {
			cells[y][x] = g.rng.Percent(45)
		}
	}
	for i := 0; i < 4; i++ {
		for y := 0; y < blobSize; y++ {
			for x := 0; x < blobSize; x++ {
				walls := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := x+dx, y+dy
						if nx < 0 || nx >= blobSize || ny < 0 || ny >= blobSize || cells[ny][nx] {
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
		cells = next
	}

	g.markRoom(x1, y1, x1+blobSize-1, y1+blobSize-1, light)
	for y := 0; y < blobSize; y++ {
		for x := 0; x < blobSize; x++ {
			border := x == 0 || y == 0 || x == blobSize-1 || y == blobSize-1
			if border || cells[y][x] {
				g.m.SetFeat(x1+x, y1+y, level.FeatWallOuter)
			} else {
				g.m.SetFeat(x1+x, y1+y, level.FeatFloor)
			}
		}
	}
	g.ensureConnectivity(x1+1, y1+1, x1+blobSize-2, y1+blobSize-2)
	return true
}
