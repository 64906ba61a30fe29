package spawners

import (
	"stonehollow/generation"
	"stonehollow/level"
	"stonehollow/rng"
)

// CoverPiece records one destructible scenery placement.
type CoverPiece struct {
	X, Y       int
	Tier       generation.CoverTier
	Durability int
}

// CoverSpawner paints cover terrain and keeps the durability records
// combat resolution reads later. It implements generation.CoverBuilder.
type CoverSpawner struct {
	Pieces []CoverPiece
}

func NewCoverSpawner() *CoverSpawner {
	return &CoverSpawner{}
}

func (c *CoverSpawner) CreateCover(m *level.Map, x, y int, tier generation.CoverTier, durability int, feat level.Feature) {
	if !m.InBounds(x, y) {
		return
	}
	m.SetFeat(x, y, feat)
	c.Pieces = append(c.Pieces, CoverPiece{X: x, Y: y, Tier: tier, Durability: durability})
}

// Reset clears the records for a fresh level.
func (c *CoverSpawner) Reset() {
	c.Pieces = c.Pieces[:0]
}

// Assignment kinds for the patrol book.
const (
	DutyGuard = iota
	DutyPatrol
	DutyAmbush
)

// Duty records one behavior assignment generation handed out.
type Duty struct {
	MonsterID  int
	Kind       int
	X, Y       int
	HighGround bool
}

// PatrolBook collects guard, patrol, and ambush assignments for the AI
// layer to act on. It implements generation.PatrolDirector.
type PatrolBook struct {
	Duties []Duty
}

func NewPatrolBook() *PatrolBook {
	return &PatrolBook{}
}

func (p *PatrolBook) SetupGuardPost(monsterID, x, y int, highGround bool) {
	p.Duties = append(p.Duties, Duty{MonsterID: monsterID, Kind: DutyGuard, X: x, Y: y, HighGround: highGround})
}

func (p *PatrolBook) SetupPatrol(monsterID int) {
	p.Duties = append(p.Duties, Duty{MonsterID: monsterID, Kind: DutyPatrol})
}

func (p *PatrolBook) SetupAmbush(monsterID int) {
	p.Duties = append(p.Duties, Duty{MonsterID: monsterID, Kind: DutyAmbush})
}

// Reset clears the book for a fresh level.
func (p *PatrolBook) Reset() {
	p.Duties = p.Duties[:0]
}

// ArrivalHooks runs the post-acceptance passes: pursuers following the
// player downstairs, ambushes on recall arrival, and scripted NPCs.
type ArrivalHooks struct {
	spawner *TemplateSpawner
	rng     *rng.Stream

	// Pursuers carries over between levels: ids of monsters that saw
	// the player take the stairs.
	Pursuers []string
}

func NewArrivalHooks(spawner *TemplateSpawner, r *rng.Stream) *ArrivalHooks {
	return &ArrivalHooks{spawner: spawner, rng: r}
}

func (h *ArrivalHooks) StaircasePursuit(m *level.Map, depth int) {
	for _, id := range h.Pursuers {
		for try := 0; try < 50; try++ {
			x := h.rng.Spread(m.PlayerX, 4)
			y := h.rng.Spread(m.PlayerY, 4)
			if m.InBounds(x, y) && m.Clear(x, y) {
				h.spawner.PlaceMonsterByID(m, x, y, id)
				break
			}
		}
	}
	h.Pursuers = h.Pursuers[:0]
}

func (h *ArrivalHooks) RecallAmbush(m *level.Map, depth int) {
	if depth < 5 || !h.rng.OneIn(8) {
		return
	}
	for i := 0; i < 2+h.rng.Intn(3); i++ {
		x := h.rng.Spread(m.PlayerX, 5)
		y := h.rng.Spread(m.PlayerY, 5)
		if m.InBounds(x, y) && m.Clear(x, y) {
			h.spawner.PlaceMonster(m, x, y, depth, generation.MonsterOptions{})
		}
	}
}

func (h *ArrivalHooks) PlaceNPCs(m *level.Map, depth int) {
	if depth == 0 || !h.rng.OneIn(12) {
		return
	}
	for try := 0; try < 200; try++ {
		x := h.rng.Intn(m.Width)
		y := h.rng.Intn(m.Height)
		if m.Clear(x, y) {
			h.spawner.PlaceMonsterByID(m, x, y, "merchant")
			return
		}
	}
}
