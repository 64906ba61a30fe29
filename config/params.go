package config

// Level layout configuration
const (
	// Block size in cells; rooms reserve whole blocks
	BlockHeight = 11
	BlockWidth  = 11

	// Level dimensions in blocks
	BlockRows = 6
	BlockCols = 18

	// Level dimensions in cells (derived from block dimensions)
	LevelHeight = BlockRows * BlockHeight
	LevelWidth  = BlockCols * BlockWidth

	// Sector size in blocks (sectors are square)
	SectorBlocks = 2
)

// Generation scratch capacities
const (
	MaxRoomCenters   = 1000
	MaxDoorCells     = 1000
	MaxWallPiercings = 2000
	MaxTunnelCells   = 9000
)

// Tunnel tuning
const (
	TunnelRandomPercent    = 10 // chance of a fully random direction per step
	TunnelBendPercent      = 30 // chance of re-deriving the direction on a bend
	TunnelEarlyEndPercent  = 15 // chance of stopping early once far from the start
	TunnelPiercePercent    = 25 // chance of a door where a tunnel pierces a room wall
	TunnelJunctionPercent  = 90 // chance of a door at a corridor junction
	TunnelStepCap          = 2000
	WindingStepCap         = 20000
	WindingBiasPercent     = 60 // chance a winding step heads toward the target
	TunnelEarlyEndDistance = 10
)

// Room generation tuning
const (
	RoomAttempts     = 400 // anchor/kind tries per level
	AlignSlideMod    = 3   // horizontal block slide for room alignment
	UnusualRoll      = 200 // unusual-room ceiling; a roll under the depth goes unusual
	ThemedVaultRolls = 70  // percent chance the first unusual roll may pick a themed vault
)

// Streamer tuning
const (
	StreamerDensity   = 5  // cells converted per advance
	StreamerSpread    = 2  // scatter radius around the streamer head
	MagmaStreams      = 2  // streamers of each mineral per reference area
	QuartzStreams     = 1
	MagmaTreasureInv  = 30 // inverse chance of a treasure cell in magma
	QuartzTreasureInv = 15
)

// Stair placement, per 64x64 reference area
const (
	DownStairsMin = 3
	DownStairsMax = 4
	UpStairsMin   = 1
	UpStairsMax   = 2
	StairWallPref = 3 // preferred adjacent wall count when siting stairs
)

// Destroyed-level pass
const (
	DestroyDepthMin  = 10
	DestroyChanceInv = 15
	DestroyRadius    = 16
)

// MaxDepth bounds plasma height values and depth-scaled rolls.
const MaxDepth = 100

// FeelingBand caps the acceptable feeling value at and below a depth.
// Larger feelings are more boring; a level whose feeling exceeds the cap
// for its depth is rejected when auto-scum is on.
type FeelingBand struct {
	MinDepth   int
	MaxFeeling int
}

// Params collects the tunable generation knobs. The zero value is not
// useful; use DefaultParams.
type Params struct {
	AutoScum      bool          // reject boring levels
	FeelingBands  []FeelingBand // checked from deepest matching band
	ForcedAccepts int           // attempts after which a loaded level is accepted
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		AutoScum: true,
		FeelingBands: []FeelingBand{
			{MinDepth: 0, MaxFeeling: 9},
			{MinDepth: 5, MaxFeeling: 8},
			{MinDepth: 10, MaxFeeling: 7},
			{MinDepth: 20, MaxFeeling: 6},
			{MinDepth: 40, MaxFeeling: 5},
		},
		ForcedAccepts: 100,
	}
}

// MaxFeelingAt returns the feeling cap for a depth.
func (p Params) MaxFeelingAt(depth int) int {
	cap := 9
	for _, band := range p.FeelingBands {
		if depth >= band.MinDepth {
			cap = band.MaxFeeling
		}
	}
	return cap
}
