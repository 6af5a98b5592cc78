package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/trace"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SpeedUI is the speed panel in the top-left corner. It is the trace
// SpeedSource: the text field is read only when Apply is pressed.
type SpeedUI struct {
	UI *ebitenui.UI

	OnApply func(src trace.SpeedSource)

	speedInput  *widget.TextInput
	statusLabel *widget.Label
	applyBtn    *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

func NewSpeedUI(initial float64, onApply func(src trace.SpeedSource)) *SpeedUI {
	ui := &SpeedUI{
		OnApply: onApply,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.SetSpeedText(initial)
	return ui
}

func (ui *SpeedUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.PanelFontSize}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.PanelFontSize - 2}
}

func (ui *SpeedUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.Panel.Dx(), cfg.UI.Panel.Dy()),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(ui.buildSpeedRow())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: cfg.UI.StatusColor,
		}),
	)
	panel.AddChild(ui.statusLabel)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SpeedUI) buildSpeedRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Speed (px/ms):", &ui.normalFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	))

	ui.speedInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(cfg.UI.InputColor),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.UI.TextColor,
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         cfg.UI.TextColor,
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(fmt.Sprintf("%g", cfg.Trace.DefaultSpeed)),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	row.AddChild(ui.speedInput)

	ui.applyBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Apply", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnApply != nil {
				ui.OnApply(ui)
			}
		}),
	)
	row.AddChild(ui.applyBtn)

	return row
}

// ConfiguredSpeed parses the text field.
func (ui *SpeedUI) ConfiguredSpeed() (float64, error) {
	return trace.ParseSpeed(ui.speedInput.GetText(), cfg.Trace.MinSpeed, cfg.Trace.MaxSpeed)
}

func (ui *SpeedUI) SetSpeedText(v float64) {
	if ui.speedInput != nil {
		ui.speedInput.SetText(fmt.Sprintf("%g", v))
	}
}

func (ui *SpeedUI) SetStatus(msg string, isError bool) {
	if ui.statusLabel == nil {
		return
	}
	if isError && msg != "" {
		msg = "! " + msg
	}
	ui.statusLabel.Label = msg
}

func (ui *SpeedUI) Update() {
	ui.UI.Update()
}

func (ui *SpeedUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
