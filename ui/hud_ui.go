package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	cfg "github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/fonts"
	"github.com/automoto/nightrain/systems"
)

// HUDUI is the status panel in the top-left corner.
type HUDUI struct {
	UI *ebitenui.UI

	stateLabel    *widget.Label
	frameLabel    *widget.Label
	dashLabel     *widget.Label
	slashLabel    *widget.Label
	shurikenLabel *widget.Label
	tuningLabel   *widget.Label
	controlsLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewHUDUI builds the panel. Fonts must be loaded first.
func NewHUDUI() *HUDUI {
	h := &HUDUI{
		titleFace:  fonts.Bold.Face(),
		normalFace: fonts.Regular.Face(),
		smallFace:  fonts.Small.Face(),
	}
	h.buildUI()
	return h
}

func (h *HUDUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.HUDPadding)),
		)),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.HUDPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.HUDPadding)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.stateLabel = h.addLabel(panel, &h.titleFace, cfg.UI.HUDTextColor)
	h.frameLabel = h.addLabel(panel, &h.normalFace, cfg.UI.HUDTextColor)
	h.dashLabel = h.addLabel(panel, &h.normalFace, cfg.UI.HUDTextColor)
	h.slashLabel = h.addLabel(panel, &h.normalFace, cfg.UI.HUDTextColor)
	h.shurikenLabel = h.addLabel(panel, &h.normalFace, cfg.UI.HUDTextColor)
	h.tuningLabel = h.addLabel(panel, &h.smallFace, cfg.BrightOrange)
	h.controlsLabel = h.addLabel(panel, &h.smallFace, cfg.LightBlue)

	rootContainer.AddChild(panel)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (h *HUDUI) addLabel(parent *widget.Container, face *text.Face, c color.Color) *widget.Label {
	label := widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{
			Idle: c,
		}),
	)
	parent.AddChild(label)
	return label
}

// Refresh copies the latest status into the labels.
func (h *HUDUI) Refresh(s systems.HUDStatus) {
	h.stateLabel.Label = s.State
	h.frameLabel.Label = "Frame: " + s.Frame
	h.dashLabel.Label = s.Dash
	h.slashLabel.Label = s.Slash
	h.shurikenLabel.Label = s.Shuriken
	h.tuningLabel.Label = s.Tuning
	h.controlsLabel.Label = s.Controls
}

func (h *HUDUI) Update() {
	h.UI.Update()
}

func (h *HUDUI) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
