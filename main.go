package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stonehollow/config"
	"stonehollow/data"
	"stonehollow/generation"
	"stonehollow/level"
	"stonehollow/rng"
	"stonehollow/spawners"
)

// Viewer implements ebiten.Game: it renders generated levels as colored
// cells and regenerates on demand, for eyeballing the pipeline output.
type Viewer struct {
	gen     *generation.Generator
	spawner *spawners.TemplateSpawner
	req     generation.Request
	result  generation.Result

	camX, camY int
}

// NewViewer wires a generator with the template spawner and builds the
// first level.
func NewViewer(req generation.Request, seed int64) *Viewer {
	stream := rng.New(seed)
	spawner := spawners.NewTemplateSpawner(data.NewTemplateManager(), stream)

	gen := generation.NewGenerator()
	gen.SetSeed(seed)
	gen.SetSpawner(spawner)
	gen.SetCoverBuilder(spawners.NewCoverSpawner())
	gen.SetPatrolDirector(spawners.NewPatrolBook())
	gen.SetHooks(spawners.NewArrivalHooks(spawner, stream))

	v := &Viewer{gen: gen, spawner: spawner, req: req}
	v.regenerate()
	return v
}

func (v *Viewer) regenerate() {
	result, err := v.gen.Generate(v.req)
	if err != nil {
		log.Fatal(err)
	}
	v.result = result
	ebiten.SetWindowTitle(fmt.Sprintf("stonehollow - %s depth %d, feeling %d, %d attempts",
		v.req.Mode, v.req.Depth, result.Feeling, result.Attempts))
}

func (v *Viewer) Update() error {
	moveSpeed := 3
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.camY -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.camY += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.camX -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.camX += moveSpeed
	}
	if v.camX < 0 {
		v.camX = 0
	}
	if v.camY < 0 {
		v.camY = 0
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.gen.SetSeed(time.Now().UnixNano())
		v.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	m := v.result.Map

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := featureColor(m.Cells[y][x].Feat)
			if m.HasFlag(x, y, level.FlagLit) {
				c = brighten(c)
			}
			vector.DrawFilledRect(screen,
				float32((x-v.camX)*config.ViewerCellSize), float32((y-v.camY)*config.ViewerCellSize),
				config.ViewerCellSize, config.ViewerCellSize, c, false)
		}
	}

	for _, pm := range v.spawner.Monsters() {
		vector.DrawFilledRect(screen,
			float32((pm.X-v.camX)*config.ViewerCellSize), float32((pm.Y-v.camY)*config.ViewerCellSize),
			config.ViewerCellSize, config.ViewerCellSize, color.RGBA{255, 0, 0, 255}, false)
	}
	for _, po := range v.spawner.Objects() {
		c := color.RGBA{0, 255, 255, 255}
		if po.Gold {
			c = color.RGBA{255, 215, 0, 255}
		}
		if po.Trap {
			c = color.RGBA{255, 0, 255, 255}
		}
		vector.DrawFilledRect(screen,
			float32((po.X-v.camX)*config.ViewerCellSize), float32((po.Y-v.camY)*config.ViewerCellSize),
			config.ViewerCellSize, config.ViewerCellSize, c, false)
	}

	vector.DrawFilledRect(screen,
		float32((m.PlayerX-v.camX)*config.ViewerCellSize), float32((m.PlayerY-v.camY)*config.ViewerCellSize),
		config.ViewerCellSize, config.ViewerCellSize, color.RGBA{255, 255, 255, 255}, false)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func featureColor(f level.Feature) color.RGBA {
	switch {
	case f == level.FeatFloor:
		return color.RGBA{60, 60, 60, 255}
	case f == level.FeatRubble:
		return color.RGBA{100, 90, 70, 255}
	case f.IsDoor():
		return color.RGBA{170, 120, 40, 255}
	case f == level.FeatStairsDown:
		return color.RGBA{230, 230, 60, 255}
	case f == level.FeatStairsUp:
		return color.RGBA{60, 230, 230, 255}
	case f == level.FeatAltar || f == level.FeatFountain || f == level.FeatQuestMarker:
		return color.RGBA{200, 200, 255, 255}
	case f == level.FeatGlyphWard || f == level.FeatBeacon:
		return color.RGBA{255, 255, 180, 255}
	case f == level.FeatMagma || f == level.FeatMagmaTreasure:
		return color.RGBA{120, 50, 30, 255}
	case f == level.FeatQuartz || f == level.FeatQuartzTreasure:
		return color.RGBA{190, 190, 200, 255}
	case f == level.FeatGoldSeam:
		return color.RGBA{180, 150, 40, 255}
	case f.IsPerm():
		return color.RGBA{30, 30, 50, 255}
	case f.IsGranite():
		return color.RGBA{110, 110, 110, 255}
	case f == level.FeatShallowWater:
		return color.RGBA{70, 110, 200, 255}
	case f == level.FeatDeepWater:
		return color.RGBA{30, 50, 150, 255}
	case f == level.FeatShallowLava:
		return color.RGBA{220, 110, 30, 255}
	case f == level.FeatDeepLava:
		return color.RGBA{180, 60, 10, 255}
	case f == level.FeatTree:
		return color.RGBA{20, 120, 30, 255}
	case f == level.FeatGrass:
		return color.RGBA{50, 160, 50, 255}
	case f == level.FeatTallGrass:
		return color.RGBA{40, 140, 40, 255}
	case f == level.FeatShrub:
		return color.RGBA{70, 130, 50, 255}
	case f == level.FeatMist || f == level.FeatFog:
		return color.RGBA{150, 150, 160, 255}
	case f == level.FeatSmoke:
		return color.RGBA{90, 90, 90, 255}
	case f == level.FeatPoisonCloud:
		return color.RGBA{130, 180, 60, 255}
	case f == level.FeatChaosFog:
		return color.RGBA{170, 80, 180, 255}
	case f == level.FeatMountain:
		return color.RGBA{140, 130, 120, 255}
	case f == level.FeatHillTerrain:
		return color.RGBA{120, 110, 70, 255}
	case f == level.FeatDirt:
		return color.RGBA{110, 85, 55, 255}
	case f == level.FeatSwamp:
		return color.RGBA{70, 90, 50, 255}
	case f.IsShopEntrance():
		return color.RGBA{230, 160, 60, 255}
	}
	return color.RGBA{80, 80, 80, 255}
}

func brighten(c color.RGBA) color.RGBA {
	bump := func(v uint8) uint8 {
		if v > 215 {
			return 255
		}
		return v + 40
	}
	return color.RGBA{bump(c.R), bump(c.G), bump(c.B), 255}
}

// featureRune maps terrain to the ASCII dump glyphs.
func featureRune(f level.Feature) byte {
	switch {
	case f == level.FeatFloor:
		return '.'
	case f == level.FeatRubble:
		return ':'
	case f.IsDoor():
		return '+'
	case f == level.FeatStairsDown:
		return '>'
	case f == level.FeatStairsUp:
		return '<'
	case f == level.FeatMagma || f == level.FeatMagmaTreasure:
		return '*'
	case f == level.FeatQuartz || f == level.FeatQuartzTreasure:
		return '%'
	case f.IsPerm():
		return 'X'
	case f.IsGranite():
		return '#'
	case f == level.FeatShallowWater || f == level.FeatDeepWater:
		return '~'
	case f == level.FeatShallowLava || f == level.FeatDeepLava:
		return '^'
	case f == level.FeatTree:
		return 'T'
	case f == level.FeatGrass || f == level.FeatTallGrass:
		return '"'
	}
	return ' '
}

func dumpASCII(m *level.Map) {
	for y := 0; y < m.Height; y++ {
		row := make([]byte, m.Width)
		for x := 0; x < m.Width; x++ {
			row[x] = featureRune(m.Cells[y][x].Feat)
		}
		if y == m.PlayerY && m.PlayerX >= 0 && m.PlayerX < m.Width {
			row[m.PlayerX] = '@'
		}
		fmt.Println(string(row))
	}
}

func parseMode(s string) (generation.Mode, error) {
	for m := generation.ModeDungeon; m <= generation.ModeDream; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func main() {
	depth := flag.Int("depth", 1, "dungeon depth to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "generation seed")
	modeName := flag.String("mode", "dungeon", "level mode: dungeon, wilderness, town, quest, arena, store, dream")
	wildX := flag.Int("wx", 0, "wilderness region x")
	wildY := flag.Int("wy", 0, "wilderness region y")
	daytime := flag.Bool("day", true, "daylight on outdoor levels")
	ascii := flag.Bool("ascii", false, "dump the level as ASCII and exit")
	flag.Parse()

	mode, err := parseMode(*modeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	req := generation.Request{
		Depth:    *depth,
		Mode:     mode,
		WildX:    *wildX,
		WildY:    *wildY,
		WildSeed: uint32(*seed),
		Daytime:  *daytime,
	}

	viewer := NewViewer(req, *seed)

	if *ascii {
		dumpASCII(viewer.result.Map)
		return
	}

	ebiten.SetWindowSize(config.GetWindowSize())
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
