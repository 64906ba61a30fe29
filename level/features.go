package level

// Feature is the terrain-type code of a single grid cell.
type Feature int

// Terrain features
const (
	FeatFloor Feature = iota
	FeatRubble
	FeatOpenDoor
	FeatDoor
	FeatLockedDoor
	FeatSecretDoor
	FeatStairsDown
	FeatStairsUp
	FeatQuestMarker
	FeatAltar
	FeatGlyphWard
	FeatFountain
	FeatBeacon

	// Mineral veins and seams
	FeatMagma
	FeatQuartz
	FeatMagmaTreasure
	FeatQuartzTreasure
	FeatGoldSeam

	// Granite wall classes. Outer walls bound rooms and may be pierced
	// by tunnels; solid walls may not.
	FeatWallExtra
	FeatWallInner
	FeatWallOuter
	FeatWallSolid

	// Permanent walls: never pierced, never streamed through
	FeatPermExtra
	FeatPermInner
	FeatPermOuter
	FeatPermSolid

	// Liquids
	FeatShallowWater
	FeatDeepWater
	FeatShallowLava
	FeatDeepLava

	// Vegetation
	FeatTree
	FeatGrass
	FeatTallGrass
	FeatShrub

	// Fog and gas
	FeatMist
	FeatPoisonCloud
	FeatSmoke
	FeatFog
	FeatChaosFog

	// Wilderness terrain tiers
	FeatMountain
	FeatHillTerrain
	FeatDirt
	FeatSwamp
)

// Shop and building entrances occupy contiguous ranges so vault symbols
// can index them by offset.
const (
	FeatShopHead     Feature = 100 // shops 0-7
	FeatShopTail     Feature = FeatShopHead + 7
	FeatBuildingHead Feature = 110 // buildings a-z
	FeatBuildingTail Feature = FeatBuildingHead + 25
)

// IsShopEntrance reports whether f is a shop or building entrance.
func (f Feature) IsShopEntrance() bool {
	return (f >= FeatShopHead && f <= FeatShopTail) ||
		(f >= FeatBuildingHead && f <= FeatBuildingTail)
}

// IsGranite reports whether f is one of the four granite wall classes.
func (f Feature) IsGranite() bool {
	return f >= FeatWallExtra && f <= FeatWallSolid
}

// IsPerm reports whether f is a permanent wall.
func (f Feature) IsPerm() bool {
	return f >= FeatPermExtra && f <= FeatPermSolid
}

// IsVein reports whether f is a mineral vein or seam.
func (f Feature) IsVein() bool {
	return f >= FeatMagma && f <= FeatGoldSeam
}

// IsRock reports whether f blocks tunneling: veins, granite, or
// permanent wall.
func (f Feature) IsRock() bool {
	return f >= FeatMagma && f <= FeatPermSolid
}

// IsWall reports whether f is wall-like for cellular-automaton
// neighborhood counts.
func (f Feature) IsWall() bool {
	return f.IsRock() || f == FeatRubble
}

// IsDoor reports whether f is any door, secret doors included.
func (f Feature) IsDoor() bool {
	return f >= FeatOpenDoor && f <= FeatSecretDoor
}

// IsStairs reports whether f is a staircase.
func (f Feature) IsStairs() bool {
	return f == FeatStairsDown || f == FeatStairsUp
}

// Passable reports whether a walking creature can occupy a cell of this
// feature, doors included (they open). Deep liquids and rock are not
// passable.
func (f Feature) Passable() bool {
	switch f {
	case FeatFloor, FeatOpenDoor, FeatDoor, FeatLockedDoor, FeatSecretDoor,
		FeatStairsDown, FeatStairsUp, FeatQuestMarker, FeatAltar,
		FeatGlyphWard, FeatFountain, FeatBeacon,
		FeatShallowWater, FeatShallowLava,
		FeatGrass, FeatTallGrass, FeatShrub,
		FeatMist, FeatPoisonCloud, FeatSmoke, FeatFog, FeatChaosFog,
		FeatDirt, FeatSwamp:
		return true
	}
	return f.IsShopEntrance()
}

// Clear reports whether a cell is plain open ground suitable for
// dropping an object or monster on.
func (f Feature) Clear() bool {
	return f == FeatFloor || f == FeatGrass || f == FeatDirt
}
