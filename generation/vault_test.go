package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stonehollow/data"
	"stonehollow/level"
)

func TestStampVaultTerrainAndProtection(t *testing.T) {
	g := newTestGenerator(10, 3)
	v, err := data.NewVault("cell", data.KindLesser, 10, 0, []string{
		"%%%%%",
		"%.E.%",
		"%%+%%",
	}, nil, [10]string{})
	require.NoError(t, err)

	g.stampVault(v, 50, 30)

	x1, y1 := 50-v.Width/2, 30-v.Height/2
	assert.Equal(t, level.FeatWallOuter, g.m.Feat(x1, y1))
	assert.Equal(t, level.FeatFloor, g.m.Feat(x1+1, y1+1))
	assert.Equal(t, level.FeatAltar, g.m.Feat(x1+2, y1+1))
	assert.Equal(t, level.FeatDoor, g.m.Feat(x1+2, y1+2))

	// Every stamped cell is protected and marked
	for row := 0; row < v.Height; row++ {
		for col := 0; col < v.Width; col++ {
			assert.True(t, g.m.HasFlag(x1+col, y1+row, level.FlagVault))
			assert.True(t, g.m.HasFlag(x1+col, y1+row, level.FlagRoom|level.FlagMarked))
		}
	}

	// The altar recorded its deity pick
	require.Len(t, g.m.Altars, 1)
	assert.Equal(t, x1+2, g.m.Altars[0].X)
	assert.Equal(t, y1+1, g.m.Altars[0].Y)
}

func TestStampVaultUnprotectedKinds(t *testing.T) {
	g := newTestGenerator(0, 3)
	v, err := data.NewVault("patch", data.KindTown, 0, 0, []string{
		"III",
		"I.I",
		"III",
	}, nil, [10]string{})
	require.NoError(t, err)

	g.stampVault(v, 50, 30)
	assert.False(t, g.m.HasFlag(50, 30, level.FlagVault))
	assert.True(t, g.m.HasFlag(50, 30, level.FlagRoom))
}

func TestStampVaultBlankLeavesTerrain(t *testing.T) {
	g := newTestGenerator(10, 3)
	v, err := data.NewVault("corner", data.KindLesser, 5, 0, []string{
		"%% ",
		"%. ",
		"   ",
	}, nil, [10]string{})
	require.NoError(t, err)

	g.stampVault(v, 50, 30)

	// Blank symbols neither paint nor flag
	x1, y1 := 50-v.Width/2, 30-v.Height/2
	assert.Equal(t, level.FeatWallExtra, g.m.Feat(x1+2, y1))
	assert.False(t, g.m.HasFlag(x1+2, y1, level.FlagRoom))
	assert.Equal(t, level.FeatWallExtra, g.m.Feat(x1, y1+2))
}

func TestStampSpawnSlotTable(t *testing.T) {
	g := newTestGenerator(10, 3)
	spy := NewNullSpawner()
	g.SetSpawner(spy)

	v, err := data.NewVault("den", data.KindLesser, 10, 0, []string{
		"%%%%%",
		"%...%",
		"%%%%%",
	}, []string{
		"     ",
		" 0*, ",
		"     ",
	}, [10]string{"orc"})
	require.NoError(t, err)

	g.stampVault(v, 50, 30)
	assert.Greater(t, spy.MonsterCount(), 0)
	assert.Greater(t, spy.ObjectCount(), 0)
}

func TestPickVaultRespectsDepth(t *testing.T) {
	g := newTestGenerator(1, 3)
	// Sanctum templates gate at depth 40
	assert.Nil(t, g.pickVault(data.KindSanctum))

	g.depth = 60
	assert.NotNil(t, g.pickVault(data.KindSanctum))
}

func TestPickDeityInRange(t *testing.T) {
	g := newTestGenerator(10, 3)
	for i := 0; i < 200; i++ {
		d := g.pickDeity()
		assert.GreaterOrEqual(t, d, 0)
		assert.Less(t, d, len(deityWeights))
	}
}
