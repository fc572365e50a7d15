package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/ledgehop/common"
	"golang.org/x/image/font/basicfont"
)

// Actions are the game-level callbacks the menus trigger.
type Actions struct {
	Play    func()
	Restart func()
	Quit    func()
}

var (
	white      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	btnColor   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	btnHover   = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

type menuKit struct {
	face      ebtext.Face
	panelImg  *imageui.NineSlice
	buttonImg *widget.ButtonImage
	textColor *widget.ButtonTextColor
}

func newMenuKit() *menuKit {
	btn := imageui.NewNineSliceColor(btnColor)
	return &menuKit{
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
		panelImg: imageui.NewNineSliceColor(panelColor),
		buttonImg: &widget.ButtonImage{
			Idle:    btn,
			Hover:   imageui.NewNineSliceColor(btnHover),
			Pressed: btn,
		},
		textColor: &widget.ButtonTextColor{Idle: white},
	}
}

func (k *menuKit) title(label string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &k.face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (k *menuKit) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(k.buttonImg),
		widget.ButtonOpts.Text(label, &k.face, k.textColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// panel wraps children in a centered vertical panel on a full-screen root.
func (k *menuKit) panel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	p := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(k.panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		p.AddChild(c)
	}
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(p)
	return &ebitenui.UI{Container: root}
}

func toggleLabel(name string, on bool) string {
	if on {
		return name + ": ON"
	}
	return name + ": OFF"
}

// BuildMenus attaches ebitenui content to the registered menu screens.
// Screens that are not registered are skipped.
func (m *Manager) BuildMenus(actions Actions) {
	k := newMenuKit()
	quit := func() {
		if actions.Quit != nil {
			actions.Quit()
		}
	}

	if s, ok := m.screens[MainMenu]; ok {
		s.UI = k.panel(
			k.title("LEDGEHOP"),
			k.button("Play", func() {
				_ = m.Hide(MainMenu)
				if actions.Play != nil {
					actions.Play()
				}
			}),
			k.button("Settings", func() { _ = m.TransitionTo(Settings) }),
			k.button("Quit", func() { m.transitionOr(Quit, quit) }),
		)
	}

	if s, ok := m.screens[Pause]; ok {
		s.UI = k.panel(
			k.title("Paused"),
			k.button("Resume", func() { m.Back() }),
			k.button("Settings", func() { _ = m.TransitionTo(Settings) }),
			k.button("Quit", func() { m.transitionOr(Quit, quit) }),
		)
	}

	if s, ok := m.screens[Settings]; ok {
		soundBtn := k.button(toggleLabel("Sound", m.soundOn), func() { m.SetSound(!m.soundOn) })
		musicBtn := k.button(toggleLabel("Music", m.musicOn), func() { m.SetMusic(!m.musicOn) })
		s.UI = k.panel(
			k.title("Settings"),
			soundBtn,
			musicBtn,
			k.button("Back", func() { m.Back() }),
		)
		prev := m.OnSettingsChanged
		m.OnSettingsChanged = func() {
			if t := soundBtn.Text(); t != nil {
				t.Label = toggleLabel("Sound", m.soundOn)
			}
			if t := musicBtn.Text(); t != nil {
				t.Label = toggleLabel("Music", m.musicOn)
			}
			if prev != nil {
				prev()
			}
		}
	}

	if s, ok := m.screens[Completed]; ok {
		s.UI = k.panel(
			k.title("Level complete!"),
			k.button("Play again", func() {
				_ = m.Hide(Completed)
				if actions.Restart != nil {
					actions.Restart()
				}
			}),
			k.button("Quit", func() { m.transitionOr(Quit, quit) }),
		)
	}

	if s, ok := m.screens[Quit]; ok {
		s.UI = k.panel(
			k.title("Quit?"),
			k.button("Yes", quit),
			k.button("No", func() { m.Back() }),
		)
	}
}

func (m *Manager) transitionOr(t ScreenType, fallback func()) {
	if err := m.TransitionTo(t); err != nil {
		fallback()
	}
}
