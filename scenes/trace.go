package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/systems"
	"github.com/automoto/pathtrace/systems/factory"
	"github.com/automoto/pathtrace/trace"
	"github.com/automoto/pathtrace/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TraceScene is the drawing board: freehand strokes, the travelling marker
// and the speed panel.
type TraceScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	speedUI      *ui.SpeedUI
	once         sync.Once
}

func NewTraceScene(sc SceneChanger) *TraceScene {
	return &TraceScene{sceneChanger: sc}
}

func (ts *TraceScene) Update() {
	ts.once.Do(ts.configure)
	ts.speedUI.Update()
	ts.ecs.Update()
}

func (ts *TraceScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Board.BackgroundColor)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.speedUI.Draw(screen)
}

func (ts *TraceScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input before the tick so a new gesture stops the marker in the same frame
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateKeys)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateFollower)
	ecs.AddSystem(systems.UpdateMarker)

	ecs.AddRenderer(cfg.Default, systems.DrawBoard)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPoints)
	ecs.AddRenderer(cfg.Overlay, systems.DrawMarker)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	ts.ecs = ecs

	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: ignoring saved settings: %v", err)
	}
	settings := systems.MergeSavedSettings(systems.DefaultSettings(), saved)
	factory.CreateBoard(ts.ecs, settings)

	ts.speedUI = ui.NewSpeedUI(settings.Speed, ts.onApplySpeed)

	if cfg.Debug.Preset != "" {
		if err := systems.PlayPreset(ts.ecs, cfg.Debug.Preset); err != nil {
			log.Printf("Warning: could not play preset %s: %v", cfg.Debug.Preset, err)
		}
	}
}

func (ts *TraceScene) onApplySpeed(src trace.SpeedSource) {
	err := systems.ApplySpeed(ts.ecs, src)
	settings := systems.GetSettings(ts.ecs)
	if settings == nil {
		return
	}
	ts.speedUI.SetStatus(settings.Status, settings.StatusIsError)
	if err != nil {
		ts.speedUI.SetSpeedText(settings.Speed)
	}
}
