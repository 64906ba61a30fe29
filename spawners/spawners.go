package spawners

import (
	"stonehollow/data"
	"stonehollow/generation"
	"stonehollow/level"
	"stonehollow/rng"
)

// Default entity caps. A level that fills either cap is overflowed and
// gets rejected by the orchestrator.
const (
	DefaultMonsterCap = 1024
	DefaultObjectCap  = 1024
)

// PlacedMonster records one monster the spawner placed.
type PlacedMonster struct {
	ID         int
	X, Y       int
	TemplateID string
	Sleeping   bool
}

// PlacedObject records one object, gold pile, or trap.
type PlacedObject struct {
	X, Y       int
	TemplateID string // empty for gold and traps
	Gold       bool
	Trap       bool
}

// TemplateSpawner selects entities from weighted template tables and
// records their placements. It implements generation.Spawner.
type TemplateSpawner struct {
	templates *data.TemplateManager
	rng       *rng.Stream

	// Id-ordered snapshots so weighted picks replay under a fixed seed
	monsterList []*data.MonsterTemplate
	objectList  []*data.ObjectTemplate

	monsterCap int
	objectCap  int

	monsters   []PlacedMonster
	objects    []PlacedObject
	overflowed bool
	nextID     int
}

// NewTemplateSpawner creates a spawner over a template set with the
// default caps.
func NewTemplateSpawner(templates *data.TemplateManager, r *rng.Stream) *TemplateSpawner {
	return &TemplateSpawner{
		templates:   templates,
		rng:         r,
		monsterList: templates.MonsterList(),
		objectList:  templates.ObjectList(),
		monsterCap:  DefaultMonsterCap,
		objectCap:   DefaultObjectCap,
	}
}

// SetCaps overrides the entity caps.
func (s *TemplateSpawner) SetCaps(monsters, objects int) {
	s.monsterCap = monsters
	s.objectCap = objects
}

// Monsters returns the placements of the current level.
func (s *TemplateSpawner) Monsters() []PlacedMonster { return s.monsters }

// Objects returns the object, gold, and trap placements.
func (s *TemplateSpawner) Objects() []PlacedObject { return s.objects }

func (s *TemplateSpawner) MonsterCount() int { return len(s.monsters) }

func (s *TemplateSpawner) ObjectCount() int {
	n := 0
	for _, o := range s.objects {
		if !o.Trap {
			n++
		}
	}
	return n
}

func (s *TemplateSpawner) Overflowed() bool { return s.overflowed }

// Reset clears all placements before a fresh generation attempt.
func (s *TemplateSpawner) Reset() {
	s.monsters = s.monsters[:0]
	s.objects = s.objects[:0]
	s.overflowed = false
	s.nextID = 0
}

// pickMonster rolls a weighted selection among templates whose native
// depth fits, optionally restricted by theme or glyph. Shallow templates
// lose weight so deep levels stay dangerous.
func (s *TemplateSpawner) pickMonster(depth int, theme string, glyph byte) *data.MonsterTemplate {
	total := 0
	var cands []*data.MonsterTemplate
	var weights []int
	for _, t := range s.monsterList {
		if t.Depth > depth+4 {
			continue
		}
		if theme != "" && !t.HasTheme(theme) {
			continue
		}
		if glyph != 0 && t.GlyphByte() != glyph {
			continue
		}
		w := t.SpawnWeight
		if t.Depth < depth/2 {
			w /= 4
		}
		if w < 1 {
			w = 1
		}
		cands = append(cands, t)
		weights = append(weights, w)
		total += w
	}
	if total == 0 {
		return nil
	}
	roll := s.rng.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return cands[i]
		}
	}
	return cands[len(cands)-1]
}

// place records one monster, enforcing the cap.
func (s *TemplateSpawner) place(t *data.MonsterTemplate, x, y int, sleeping bool) (int, bool) {
	if len(s.monsters) >= s.monsterCap {
		s.overflowed = true
		return 0, false
	}
	s.nextID++
	s.monsters = append(s.monsters, PlacedMonster{
		ID: s.nextID, X: x, Y: y, TemplateID: t.ID, Sleeping: sleeping,
	})
	return s.nextID, true
}

func (s *TemplateSpawner) PlaceMonster(m *level.Map, x, y, depth int, opts generation.MonsterOptions) (int, bool) {
	t := s.pickMonster(depth, opts.Theme, 0)
	if t == nil {
		return 0, false
	}
	id, ok := s.place(t, x, y, opts.Sleeping)
	if !ok {
		return 0, false
	}

	// Group escorts scatter onto clear cells near the leader
	if opts.Group && t.GroupMax > 1 {
		n := s.rng.Intn(t.GroupMax)
		for i := 0; i < n; i++ {
			gx := s.rng.Spread(x, 2)
			gy := s.rng.Spread(y, 2)
			if m.InBounds(gx, gy) && m.Clear(gx, gy) {
				if _, ok := s.place(t, gx, gy, opts.Sleeping); !ok {
					break
				}
			}
		}
	}
	return id, true
}

func (s *TemplateSpawner) PlaceMonsterByID(m *level.Map, x, y int, templateID string) (int, bool) {
	t, ok := s.templates.Monster(templateID)
	if !ok {
		return 0, false
	}
	return s.place(t, x, y, true)
}

func (s *TemplateSpawner) PlaceMonsterByGlyph(m *level.Map, x, y, depth int, glyph byte) (int, bool) {
	t := s.pickMonster(depth, "", glyph)
	if t == nil {
		// No race matches the glyph at this depth; any monster beats an
		// empty vault cell
		t = s.pickMonster(depth, "", 0)
		if t == nil {
			return 0, false
		}
	}
	return s.place(t, x, y, true)
}

func (s *TemplateSpawner) PlaceObject(m *level.Map, x, y, depth int, good, great bool) bool {
	t := s.pickObject(depth, good, great, 0)
	if t == nil {
		return false
	}
	return s.placeObject(t, x, y)
}

func (s *TemplateSpawner) PlaceObjectByGlyph(m *level.Map, x, y, depth int, glyph byte) bool {
	t := s.pickObject(depth, false, false, glyph)
	if t == nil {
		t = s.pickObject(depth, false, false, 0)
		if t == nil {
			return false
		}
	}
	return s.placeObject(t, x, y)
}

func (s *TemplateSpawner) placeObject(t *data.ObjectTemplate, x, y int) bool {
	if s.ObjectCount() >= s.objectCap {
		s.overflowed = true
		return false
	}
	s.objects = append(s.objects, PlacedObject{X: x, Y: y, TemplateID: t.ID})
	return true
}

func (s *TemplateSpawner) PlaceGold(m *level.Map, x, y, depth int) bool {
	if s.ObjectCount() >= s.objectCap {
		s.overflowed = true
		return false
	}
	s.objects = append(s.objects, PlacedObject{X: x, Y: y, Gold: true})
	return true
}

func (s *TemplateSpawner) PlaceTrap(m *level.Map, x, y, depth int) bool {
	// Traps only arm on plain ground
	if !m.InBounds(x, y) || !m.Feat(x, y).Clear() {
		return false
	}
	s.objects = append(s.objects, PlacedObject{X: x, Y: y, Trap: true})
	return true
}
