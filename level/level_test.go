package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturePredicates(t *testing.T) {
	assert.True(t, FeatWallExtra.IsGranite())
	assert.True(t, FeatWallSolid.IsGranite())
	assert.False(t, FeatPermSolid.IsGranite())
	assert.False(t, FeatMagma.IsGranite())

	assert.True(t, FeatPermExtra.IsPerm())
	assert.True(t, FeatPermSolid.IsPerm())
	assert.False(t, FeatWallSolid.IsPerm())

	assert.True(t, FeatMagma.IsVein())
	assert.True(t, FeatGoldSeam.IsVein())
	assert.False(t, FeatWallExtra.IsVein())

	// Rock spans veins, granite, and permanent walls contiguously
	assert.True(t, FeatMagma.IsRock())
	assert.True(t, FeatQuartzTreasure.IsRock())
	assert.True(t, FeatWallInner.IsRock())
	assert.True(t, FeatPermSolid.IsRock())
	assert.False(t, FeatFloor.IsRock())
	assert.False(t, FeatRubble.IsRock())

	assert.True(t, FeatRubble.IsWall())
	assert.False(t, FeatFloor.IsWall())

	assert.True(t, FeatOpenDoor.IsDoor())
	assert.True(t, FeatSecretDoor.IsDoor())
	assert.False(t, FeatStairsDown.IsDoor())

	assert.True(t, FeatStairsUp.IsStairs())
	assert.True(t, FeatStairsDown.IsStairs())
}

func TestPassable(t *testing.T) {
	assert.True(t, FeatFloor.Passable())
	assert.True(t, FeatDoor.Passable())
	assert.True(t, FeatShallowWater.Passable())
	assert.True(t, FeatShopHead.Passable())
	assert.True(t, (FeatBuildingHead + 25).Passable())
	assert.False(t, FeatDeepWater.Passable())
	assert.False(t, FeatDeepLava.Passable())
	assert.False(t, FeatWallExtra.Passable())
	assert.False(t, FeatTree.Passable())
}

func TestClear(t *testing.T) {
	assert.True(t, FeatFloor.Clear())
	assert.True(t, FeatGrass.Clear())
	assert.False(t, FeatDoor.Clear())
	assert.False(t, FeatShallowWater.Clear())
}

func TestShopEntranceRanges(t *testing.T) {
	assert.True(t, FeatShopHead.IsShopEntrance())
	assert.True(t, FeatShopTail.IsShopEntrance())
	assert.True(t, FeatBuildingHead.IsShopEntrance())
	assert.True(t, FeatBuildingTail.IsShopEntrance())
	assert.False(t, (FeatShopTail + 1).IsShopEntrance())
	assert.False(t, FeatFloor.IsShopEntrance())
}

func TestNewMapFilledWithGranite(t *testing.T) {
	m := NewMap(20, 10, 2, 4)
	assert.Equal(t, 20, m.Width)
	assert.Equal(t, 10, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			assert.Equal(t, FeatWallExtra, m.Cells[y][x].Feat)
			assert.Equal(t, ElevGround, m.Cells[y][x].Elev)
		}
	}
	assert.Len(t, m.Sectors, 2)
	assert.Len(t, m.Sectors[0], 4)
	assert.Equal(t, SectorRuins, m.Sectors[0][0])
}

func TestOutOfBoundsReads(t *testing.T) {
	m := NewMap(5, 5, 1, 1)
	assert.Equal(t, FeatPermSolid, m.Feat(-1, 0))
	assert.Equal(t, FeatPermSolid, m.Feat(5, 2))
	assert.False(t, m.Passable(-1, -1))

	// Out-of-bounds writes are dropped, not panics
	m.SetFeat(-1, -1, FeatFloor)
	m.SetFlag(99, 99, FlagLit)
}

func TestFlags(t *testing.T) {
	m := NewMap(5, 5, 1, 1)
	m.SetFlag(2, 2, FlagRoom|FlagLit)
	assert.True(t, m.HasFlag(2, 2, FlagRoom))
	assert.True(t, m.HasFlag(2, 2, FlagLit))
	assert.False(t, m.HasFlag(2, 2, FlagVault))

	m.ClearFlag(2, 2, FlagLit)
	assert.False(t, m.HasFlag(2, 2, FlagLit))
	assert.True(t, m.HasFlag(2, 2, FlagRoom))
}

func TestClearRespectsVaultFlag(t *testing.T) {
	m := NewMap(5, 5, 1, 1)
	m.SetFeat(1, 1, FeatFloor)
	assert.True(t, m.Clear(1, 1))
	m.SetFlag(1, 1, FlagVault)
	assert.False(t, m.Clear(1, 1))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance(3, 3, 3, 3))
	assert.Equal(t, 5, Distance(0, 0, 5, 0))
	assert.Equal(t, 5, Distance(0, 0, 0, 5))
	// Longer axis plus half the shorter
	assert.Equal(t, 7, Distance(0, 0, 5, 4))
	assert.Equal(t, 7, Distance(5, 4, 0, 0))
	assert.Equal(t, 4, Distance(0, 0, -3, 3))
}
