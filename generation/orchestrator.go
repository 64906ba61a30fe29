package generation

import (
	"fmt"

	"github.com/google/uuid"

	"stonehollow/config"
	"stonehollow/data"
	"stonehollow/level"
)

// Mode selects which pipeline builds the level.
type Mode int

const (
	ModeDungeon Mode = iota
	ModeWilderness
	ModeTown
	ModeQuest
	ModeArena
	ModeStore
	ModeDream
)

func (m Mode) String() string {
	switch m {
	case ModeDungeon:
		return "dungeon"
	case ModeWilderness:
		return "wilderness"
	case ModeTown:
		return "town"
	case ModeQuest:
		return "quest"
	case ModeArena:
		return "arena"
	case ModeStore:
		return "store"
	case ModeDream:
		return "dream"
	}
	return "unknown"
}

// Request describes the level to build.
type Request struct {
	Depth int
	Mode  Mode

	// Wilderness region coordinates and seed, ModeWilderness only
	WildX    int
	WildY    int
	WildSeed uint32

	// Daytime lights outdoor levels
	Daytime bool

	// Loaded marks regeneration of a level the player has already
	// visited; after enough rejected attempts the next one is accepted
	// regardless of feeling, so reloads cannot loop forever.
	Loaded bool
}

// Result is an accepted level.
type Result struct {
	ID       uuid.UUID
	Map      *level.Map
	Feeling  int // 1 best, 10 dullest
	Rating   int
	Attempts int
}

// Generate builds levels until one passes evaluation, then runs the
// post-acceptance hooks and returns it.
func (g *Generator) Generate(req Request) (Result, error) {
	if req.Depth < 0 || req.Depth > config.MaxDepth {
		return Result{}, fmt.Errorf("generate: depth %d out of range", req.Depth)
	}

	for attempt := 1; ; attempt++ {
		g.spawner.Reset()
		g.m = level.NewMap(config.LevelWidth, config.LevelHeight,
			config.BlockRows/config.SectorBlocks, config.BlockCols/config.SectorBlocks)
		g.depth = req.Depth
		g.rating = 0
		g.goodItem = false
		g.litLevel = false
		g.levelBG = level.FeatWallExtra
		g.dun = newScratch(config.BlockRows, config.BlockCols)

		switch req.Mode {
		case ModeWilderness:
			g.wildernessGen(req.WildX, req.WildY, req.WildSeed, req.Daytime)
		case ModeTown:
			g.townGen(req.Daytime)
		case ModeQuest:
			g.vaultLevelGen(data.KindQuest)
		case ModeArena:
			g.vaultLevelGen(data.KindArena)
		case ModeStore:
			g.vaultLevelGen(data.KindStore)
		case ModeDream:
			g.vaultLevelGen(data.KindDream)
		default:
			g.caveGen()
		}

		feeling := g.evaluate()
		forced := req.Loaded && attempt >= g.params.ForcedAccepts

		if g.spawner.Overflowed() && !forced {
			g.msg.Message(fmt.Sprintf("generation attempt %d: entity overflow, retrying", attempt))
			continue
		}
		if req.Mode == ModeDungeon && g.rejectDull(feeling) && !forced {
			g.msg.Message(fmt.Sprintf("generation attempt %d: feeling %d too dull for depth %d, retrying",
				attempt, feeling, req.Depth))
			continue
		}

		g.hooks.StaircasePursuit(g.m, req.Depth)
		g.hooks.RecallAmbush(g.m, req.Depth)
		g.hooks.PlaceNPCs(g.m, req.Depth)

		return Result{
			ID:       uuid.New(),
			Map:      g.m,
			Feeling:  feeling,
			Rating:   g.rating,
			Attempts: attempt,
		}, nil
	}
}

// evaluate converts the accumulated rating into a feeling. Feelings run
// 1 (superb) to 10 (nothing of interest); a good item anywhere forces 1.
func (g *Generator) evaluate() int {
	if g.goodItem {
		return 1
	}
	switch {
	case g.rating > 100:
		return 2
	case g.rating > 80:
		return 3
	case g.rating > 60:
		return 4
	case g.rating > 40:
		return 5
	case g.rating > 30:
		return 6
	case g.rating > 20:
		return 7
	case g.rating > 10:
		return 8
	case g.rating > 0:
		return 9
	}
	return 10
}

// rejectDull applies the auto-scum policy: deeper levels demand more
// interesting feelings. Only ordinary dungeon levels are ever rejected;
// special modes carry fixed content.
func (g *Generator) rejectDull(feeling int) bool {
	if !g.params.AutoScum {
		return false
	}
	return feeling > g.params.MaxFeelingAt(g.depth)
}
