package generation

import (
	"fmt"

	"stonehollow/level"
)

// The pipeline mutates terrain itself but delegates every entity
// decision to these collaborators. Selection tables, AI state machines,
// and cover destruction live behind them; generation only calls
// placement primitives and reads counts back.

// MonsterOptions tunes a single monster placement.
type MonsterOptions struct {
	Sleeping bool   // placed asleep
	Group    bool   // may bring a group of its kind
	Theme    string // restrict selection to a theme tag, empty for any
}

// Spawner places monsters, objects, gold, and traps chosen from
// external allocation tables. Implementations enforce hard entity caps;
// Overflowed reports a cap was hit, which rejects the level.
type Spawner interface {
	// PlaceMonster drops a depth-appropriate monster, returning its id.
	PlaceMonster(m *level.Map, x, y, depth int, opts MonsterOptions) (int, bool)
	// PlaceMonsterByID drops a specific template, for vault slot tables.
	PlaceMonsterByID(m *level.Map, x, y int, templateID string) (int, bool)
	// PlaceMonsterByGlyph drops a monster restricted to one display glyph.
	PlaceMonsterByGlyph(m *level.Map, x, y, depth int, glyph byte) (int, bool)
	PlaceObject(m *level.Map, x, y, depth int, good, great bool) bool
	// PlaceObjectByGlyph drops an object restricted to one display glyph.
	PlaceObjectByGlyph(m *level.Map, x, y, depth int, glyph byte) bool
	PlaceGold(m *level.Map, x, y, depth int) bool
	PlaceTrap(m *level.Map, x, y, depth int) bool

	MonsterCount() int
	ObjectCount() int
	Overflowed() bool
	// Reset clears all placed entities before a fresh attempt.
	Reset()
}

// CoverTier grades destructible scenery.
type CoverTier int

const (
	CoverLight CoverTier = iota
	CoverMedium
	CoverHeavy
)

// CoverBuilder seeds destructible scenery at a cell. Damage and
// destruction resolution are out of scope.
type CoverBuilder interface {
	CreateCover(m *level.Map, x, y int, tier CoverTier, durability int, feat level.Feature)
}

// PatrolDirector registers guard or patrol behavior for a monster that
// generation just placed. State-machine transitions are out of scope.
type PatrolDirector interface {
	// SetupGuardPost pins a monster to a post; highGround marks an
	// elevated corner position.
	SetupGuardPost(monsterID, x, y int, highGround bool)
	// SetupPatrol starts a monster on a circuit around its room.
	SetupPatrol(monsterID int)
	// SetupAmbush hides a monster in place until disturbed.
	SetupAmbush(monsterID int)
}

// Hooks run once after a level is accepted.
type Hooks interface {
	// StaircasePursuit lets monsters that saw the player leave follow
	// onto the new level.
	StaircasePursuit(m *level.Map, depth int)
	// RecallAmbush may stage an ambush where the player arrives by recall.
	RecallAmbush(m *level.Map, depth int)
	// PlaceNPCs drops scripted characters (wandering merchants and the
	// like) after ordinary population.
	PlaceNPCs(m *level.Map, depth int)
}

// MessageSink receives informational generation messages (rejection
// reasons, attempt counts).
type MessageSink interface {
	Message(text string)
}

// printfSink is the default sink.
type printfSink struct{}

func (printfSink) Message(text string) {
	fmt.Printf("%s\n", text)
}

// Null collaborators let the pipeline run stand-alone, e.g. under the
// map viewer or in tests.

type nullCover struct{}

func (nullCover) CreateCover(m *level.Map, x, y int, tier CoverTier, durability int, feat level.Feature) {
	m.SetFeat(x, y, feat)
}

type nullPatrol struct{}

func (nullPatrol) SetupGuardPost(monsterID, x, y int, highGround bool) {}
func (nullPatrol) SetupPatrol(monsterID int)                          {}
func (nullPatrol) SetupAmbush(monsterID int)                          {}

type nullHooks struct{}

func (nullHooks) StaircasePursuit(m *level.Map, depth int) {}
func (nullHooks) RecallAmbush(m *level.Map, depth int)     {}
func (nullHooks) PlaceNPCs(m *level.Map, depth int)        {}
