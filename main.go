package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/fonts"
	"github.com/automoto/pathtrace/scenes"
	"github.com/automoto/pathtrace/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.UI.HUDFontSize)
	fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, config.UI.HUDFontSize-2)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewTraceScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func parseFlags() {
	flag.StringVar(&config.Debug.Preset, "preset", config.Debug.Preset, "preset path to play on startup")
	flag.BoolVar(&config.Debug.ShowPoints, "points", config.Debug.ShowPoints, "draw recorded points")
	fixed := flag.Bool("fixed-step", !config.Trace.VariableStep, "advance the marker by 1000/TPS ms per tick instead of wall clock time")
	flag.Float64Var(&config.Trace.MinPointSpacing, "spacing", config.Trace.MinPointSpacing, "minimum distance between recorded points")
	flag.Parse()

	config.Trace.VariableStep = !*fixed
	if config.Trace.MinPointSpacing <= 0 {
		log.Fatalf("-spacing must be positive, got %v", config.Trace.MinPointSpacing)
	}
}

func main() {
	parseFlags()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence; saved settings are read when the scene starts
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
