package generation

import "stonehollow/level"

// NullSpawner counts placements without creating entities. It is the
// default spawner, useful for the map viewer and for tests that only
// care about terrain.
type NullSpawner struct {
	monsters int
	objects  int
	nextID   int

	// MonsterCap and ObjectCap trip Overflowed when exceeded; zero
	// means unlimited.
	MonsterCap int
	ObjectCap  int
}

// NewNullSpawner creates an unlimited counting spawner.
func NewNullSpawner() *NullSpawner {
	return &NullSpawner{}
}

func (s *NullSpawner) place(m *level.Map, x, y int) (int, bool) {
	if !m.InBounds(x, y) || !m.Feat(x, y).Passable() {
		return 0, false
	}
	s.monsters++
	s.nextID++
	return s.nextID, true
}

func (s *NullSpawner) PlaceMonster(m *level.Map, x, y, depth int, opts MonsterOptions) (int, bool) {
	return s.place(m, x, y)
}

func (s *NullSpawner) PlaceMonsterByID(m *level.Map, x, y int, templateID string) (int, bool) {
	return s.place(m, x, y)
}

func (s *NullSpawner) PlaceMonsterByGlyph(m *level.Map, x, y, depth int, glyph byte) (int, bool) {
	return s.place(m, x, y)
}

func (s *NullSpawner) PlaceObject(m *level.Map, x, y, depth int, good, great bool) bool {
	if !m.InBounds(x, y) {
		return false
	}
	s.objects++
	return true
}

func (s *NullSpawner) PlaceObjectByGlyph(m *level.Map, x, y, depth int, glyph byte) bool {
	return s.PlaceObject(m, x, y, depth, false, false)
}

func (s *NullSpawner) PlaceGold(m *level.Map, x, y, depth int) bool {
	return s.PlaceObject(m, x, y, depth, false, false)
}

func (s *NullSpawner) PlaceTrap(m *level.Map, x, y, depth int) bool {
	return m.InBounds(x, y)
}

func (s *NullSpawner) MonsterCount() int { return s.monsters }
func (s *NullSpawner) ObjectCount() int  { return s.objects }

func (s *NullSpawner) Overflowed() bool {
	if s.MonsterCap > 0 && s.monsters > s.MonsterCap {
		return true
	}
	return s.ObjectCap > 0 && s.objects > s.ObjectCap
}

func (s *NullSpawner) Reset() {
	s.monsters, s.objects, s.nextID = 0, 0, 0
}
