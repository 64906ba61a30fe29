package level

// CellFlag holds the per-cell state bits set during generation.
type CellFlag uint8

const (
	FlagRoom   CellFlag = 1 << iota // cell belongs to a room
	FlagVault                       // protected from tunneling and teleport
	FlagLit                         // permanently lit
	FlagMarked                      // pre-memorized for the player
)

// Elevation is the terrain tier of a cell. The zero value is ordinary
// ground.
type Elevation int8

const (
	ElevGround Elevation = iota
	ElevLow
	ElevHill
	ElevHigh
)

// SectorKind is the biome strategy assigned to a 2x2-block region. The
// zero value, ruins, is the default and is the only kind that later
// accepts ordinary room placement.
type SectorKind int

const (
	SectorRuins SectorKind = iota
	SectorCavern
	SectorHill
	SectorPit
	SectorCliff
	SectorDarkMaze
	SectorPlaza
)

// Cell is one grid position: terrain feature, flag bits, and elevation.
type Cell struct {
	Feat  Feature
	Flags CellFlag
	Elev  Elevation
}

// Map is the mutable level grid. It is exclusively owned by the active
// generation attempt and becomes read-mostly once committed.
type Map struct {
	Width  int
	Height int
	Cells  [][]Cell

	// Sector tags, one per 2x2-block region
	Sectors [][]SectorKind

	// Player start position
	PlayerX int
	PlayerY int

	// Altars stamped into the level, with their deity picks
	Altars []Altar
}

// Altar records a shrine cell and the deity it was dedicated to.
type Altar struct {
	X, Y  int
	Deity int
}

// NewMap creates a grid of the given cell dimensions filled with plain
// granite, with sectorRows x sectorCols ruins sectors.
func NewMap(width, height, sectorRows, sectorCols int) *Map {
	m := &Map{
		Width:  width,
		Height: height,
		Cells:  make([][]Cell, height),
	}
	for y := 0; y < height; y++ {
		m.Cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			m.Cells[y][x].Feat = FeatWallExtra
		}
	}
	m.Sectors = make([][]SectorKind, sectorRows)
	for i := range m.Sectors {
		m.Sectors[i] = make([]SectorKind, sectorCols)
	}
	return m
}

// InBounds reports whether (x, y) is on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// InBoundsFully reports whether (x, y) is on the map and not on the
// outermost border row or column.
func (m *Map) InBoundsFully(x, y int) bool {
	return x >= 1 && x < m.Width-1 && y >= 1 && y < m.Height-1
}

// Feat returns the feature at (x, y); out of bounds reads as permanent
// wall.
func (m *Map) Feat(x, y int) Feature {
	if !m.InBounds(x, y) {
		return FeatPermSolid
	}
	return m.Cells[y][x].Feat
}

// SetFeat sets the feature at (x, y). Out-of-bounds writes are dropped.
func (m *Map) SetFeat(x, y int, f Feature) {
	if m.InBounds(x, y) {
		m.Cells[y][x].Feat = f
	}
}

// HasFlag reports whether all bits in flag are set at (x, y).
func (m *Map) HasFlag(x, y int, flag CellFlag) bool {
	return m.InBounds(x, y) && m.Cells[y][x].Flags&flag == flag
}

// SetFlag sets flag bits at (x, y).
func (m *Map) SetFlag(x, y int, flag CellFlag) {
	if m.InBounds(x, y) {
		m.Cells[y][x].Flags |= flag
	}
}

// ClearFlag clears flag bits at (x, y).
func (m *Map) ClearFlag(x, y int, flag CellFlag) {
	if m.InBounds(x, y) {
		m.Cells[y][x].Flags &^= flag
	}
}

// Elev returns the elevation tier at (x, y).
func (m *Map) Elev(x, y int) Elevation {
	if !m.InBounds(x, y) {
		return ElevGround
	}
	return m.Cells[y][x].Elev
}

// SetElev sets the elevation tier at (x, y).
func (m *Map) SetElev(x, y int, e Elevation) {
	if m.InBounds(x, y) {
		m.Cells[y][x].Elev = e
	}
}

// Passable reports whether a walking creature can occupy (x, y).
func (m *Map) Passable(x, y int) bool {
	return m.InBounds(x, y) && m.Cells[y][x].Feat.Passable()
}

// Clear reports whether (x, y) is open ground free of vault protection,
// suitable for dropping something on.
func (m *Map) Clear(x, y int) bool {
	return m.InBounds(x, y) && m.Cells[y][x].Feat.Clear() &&
		m.Cells[y][x].Flags&FlagVault == 0
}

// Distance returns the approximate distance between two cells: the
// longer axis delta plus half the shorter.
func Distance(x1, y1, x2, y2 int) int {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx + dy/2
	}
	return dy + dx/2
}
