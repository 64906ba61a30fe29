package generation

import (
	"stonehollow/data"
	"stonehollow/level"
)

// pickVault chooses a random template of one kind passing the depth
// gate, or nil when none qualifies.
func (g *Generator) pickVault(kind data.VaultKind) *data.Vault {
	cands := g.vaults.ByKind(kind, g.depth)
	if len(cands) == 0 {
		return nil
	}
	return cands[g.rng.Intn(len(cands))]
}

// vaultGoodItem rolls the good-item flag for a stamped vault.
func (g *Generator) vaultGoodItem() {
	if g.depth <= 50 || g.rng.Roll((g.depth-40)*(g.depth-40)+1) < 400 {
		g.goodItem = true
	}
}

func (g *Generator) buildVaultKind(kind data.VaultKind, cx, cy int) bool {
	v := g.pickVault(kind)
	if v == nil {
		return false
	}
	g.stampVault(v, cx, cy)
	g.rating += v.Rating
	return true
}

func (g *Generator) buildLesserVault(cx, cy int) bool {
	return g.buildVaultKind(data.KindLesser, cx, cy)
}

func (g *Generator) buildGreaterVault(cx, cy int) bool {
	if !g.buildVaultKind(data.KindGreater, cx, cy) {
		return false
	}
	g.vaultGoodItem()
	return true
}

func (g *Generator) buildThemedVault(cx, cy int) bool {
	if !g.buildVaultKind(data.KindThemed, cx, cy) {
		return false
	}
	g.vaultGoodItem()
	return true
}

func (g *Generator) buildSanctumVault(cx, cy int) bool {
	if !g.buildVaultKind(data.KindSanctum, cx, cy) {
		return false
	}
	g.vaultGoodItem()
	return true
}

func (g *Generator) buildFollyVault(cx, cy int) bool {
	return g.buildVaultKind(data.KindFolly, cx, cy)
}

// deity weights for altar placement; heavier entries are the common
// shrine dedications.
var deityWeights = []int{30, 25, 20, 15, 10}

func (g *Generator) pickDeity() int {
	total := 0
	for _, w := range deityWeights {
		total += w
	}
	roll := g.rng.Intn(total)
	for i, w := range deityWeights {
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return 0
}

// stampVault decodes a template's two layers over the map, centered on
// (cx, cy). Terrain first, then the monster/object layer. Cells gain
// room and marked flags; every kind except town and wilderness also
// gains vault protection.
func (g *Generator) stampVault(v *data.Vault, cx, cy int) {
	x1 := cx - v.Width/2
	y1 := cy - v.Height/2
	protect := v.Kind.Protected()

	terrain := data.NewRLEWalker(v.Terrain)
	for row := 0; row < v.Height; row++ {
		for col := 0; col < v.Width; col++ {
			sym := terrain.Next()
			x, y := x1+col, y1+row
			if sym == ' ' || !g.m.InBounds(x, y) {
				continue
			}

			g.m.SetFlag(x, y, level.FlagRoom|level.FlagMarked)
			if protect {
				g.m.SetFlag(x, y, level.FlagVault)
			}

			g.m.SetFeat(x, y, level.FeatFloor)
			switch {
			case sym == '%':
				g.m.SetFeat(x, y, level.FeatWallOuter)
			case sym == '#':
				g.m.SetFeat(x, y, level.FeatWallInner)
			case sym == 'X':
				g.m.SetFeat(x, y, level.FeatPermInner)
			case sym == '.':
				// floor already set
			case sym == ':':
				g.m.SetFeat(x, y, level.FeatRubble)
			case sym == 'Y':
				g.m.SetFeat(x, y, level.FeatRubble)
				g.spawner.PlaceGold(g.m, x, y, g.depth)
			case sym == '&':
				g.m.SetFeat(x, y, level.FeatMagmaTreasure)
			case sym == '$':
				g.m.SetFeat(x, y, level.FeatGoldSeam)
			case sym == '*':
				g.m.SetFeat(x, y, level.FeatQuartzTreasure)
			case sym == 'Q':
				g.m.SetFeat(x, y, level.FeatQuestMarker)
			case sym == 'E':
				g.m.SetFeat(x, y, level.FeatAltar)
				g.m.Altars = append(g.m.Altars, level.Altar{X: x, Y: y, Deity: g.pickDeity()})
			case sym == '<':
				g.m.SetFeat(x, y, level.FeatStairsUp)
			case sym == '>':
				g.m.SetFeat(x, y, level.FeatStairsDown)
			case sym == 'O':
				g.m.SetFeat(x, y, level.FeatDeepWater)
			case sym == 'A':
				g.m.SetFeat(x, y, level.FeatShallowWater)
			case sym == 'B':
				g.m.SetFeat(x, y, level.FeatDeepLava)
			case sym == 'C':
				g.m.SetFeat(x, y, level.FeatShallowLava)
			case sym == 'H':
				g.m.SetFeat(x, y, level.FeatTree)
			case sym == 'I':
				g.m.SetFeat(x, y, level.FeatGrass)
			case sym == 'V':
				g.m.SetFeat(x, y, level.FeatTallGrass)
			case sym == 'W':
				g.m.SetFeat(x, y, level.FeatShrub)
			case sym == 'J':
				g.m.SetFeat(x, y, level.FeatMist)
			case sym == 'K':
				g.m.SetFeat(x, y, level.FeatPoisonCloud)
			case sym == 'L':
				g.m.SetFeat(x, y, level.FeatSmoke)
			case sym == 'F':
				g.m.SetFeat(x, y, level.FeatFog)
			case sym == 'U':
				g.m.SetFeat(x, y, level.FeatChaosFog)
			case sym == ';':
				g.m.SetFeat(x, y, level.FeatGlyphWard)
			case sym == '+':
				g.m.SetFeat(x, y, level.FeatDoor)
			case sym == 'D':
				g.m.SetFeat(x, y, level.FeatLockedDoor)
			case sym == 'G':
				g.m.SetFeat(x, y, level.FeatSecretDoor)
			case sym == '^':
				g.spawner.PlaceTrap(g.m, x, y, g.depth)
			case sym == 'M':
				g.spawner.PlaceMonster(g.m, x, y, g.depth+3, MonsterOptions{Sleeping: true})
				g.spawner.PlaceObject(g.m, x, y, g.depth+3, false, false)
			case sym == 'S':
				g.spawner.PlaceMonster(g.m, x, y, g.depth+3, MonsterOptions{Sleeping: true})
				g.spawner.PlaceGold(g.m, x, y, g.depth+3)
			case sym == '@':
				g.m.PlayerX, g.m.PlayerY = x, y
			case sym >= '0' && sym <= '7':
				g.m.SetFeat(x, y, level.FeatShopHead+level.Feature(sym-'0'))
			case sym >= 'a' && sym <= 'z':
				g.m.SetFeat(x, y, level.FeatBuildingHead+level.Feature(sym-'a'))
			}
		}
	}

	if v.Spawns == nil {
		return
	}
	spawns := data.NewRLEWalker(v.Spawns)
	for row := 0; row < v.Height; row++ {
		for col := 0; col < v.Width; col++ {
			sym := spawns.Next()
			x, y := x1+col, y1+row
			if !g.m.InBounds(x, y) {
				continue
			}
			g.stampSpawn(sym, x, y, v)
		}
	}
}

// stampSpawn resolves one monster/object layer symbol.
func (g *Generator) stampSpawn(sym byte, x, y int, v *data.Vault) {
	switch {
	case sym == ' ' || sym == '.':
		// empty

	case sym >= '0' && sym <= '9':
		// Vault monster-slot table
		slot := int(sym - '0')
		if id := v.Monsters[slot]; id != "" {
			g.spawner.PlaceMonsterByID(g.m, x, y, id)
		} else {
			g.spawner.PlaceMonster(g.m, x, y, g.depth+2, MonsterOptions{Sleeping: true})
		}

	case sym == '*':
		// Escalating treasure or trap
		if g.rng.OneIn(2) {
			g.spawner.PlaceObject(g.m, x, y, g.depth+7, false, false)
		} else {
			g.spawner.PlaceGold(g.m, x, y, g.depth+5)
		}
		if g.rng.OneIn(4) {
			g.spawner.PlaceTrap(g.m, x, y, g.depth)
		}

	case sym == '&':
		// Monster guarding loot
		g.spawner.PlaceMonster(g.m, x, y, g.depth+4, MonsterOptions{Sleeping: true})
		if g.rng.OneIn(2) {
			g.spawner.PlaceObject(g.m, x, y, g.depth+4, false, false)
		}

	case sym == ',':
		g.spawner.PlaceObject(g.m, x, y, g.depth+2, true, false)

	case sym == '^':
		g.spawner.PlaceTrap(g.m, x, y, g.depth)

	case sym == '@':
		g.m.PlayerX, g.m.PlayerY = x, y

	case sym >= 'A' && sym <= 'Z' || sym >= 'a' && sym <= 'z':
		// Race restricted to a single display glyph
		g.spawner.PlaceMonsterByGlyph(g.m, x, y, g.depth+2, sym)

	default:
		if isObjectGlyph(sym) {
			g.spawner.PlaceObjectByGlyph(g.m, x, y, g.depth+2, sym)
		}
	}
}

// isObjectGlyph reports whether a spawn symbol is one of the punctuation
// glyphs that select an object class by its display character.
func isObjectGlyph(sym byte) bool {
	switch sym {
	case '!', '"', '$', '(', ')', '~', '\'', '/', '=', '?', '[', '\\', ']', '_', '{', '|':
		return true
	}
	return false
}
