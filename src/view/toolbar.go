package view

import (
	"image"
	"image/color"

	"lifecanvas/src/universe"
)

//Action is the command behind a control
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionClear
	ActionRandom
)

const (
	ToolbarHeight = 40
	buttonWidth   = 120
	buttonMargin  = 6
)

var (
	buttonEnabled  = color.RGBA{0x30, 0x5f, 0xa8, 0xff}
	buttonDisabled = color.RGBA{0x44, 0x44, 0x44, 0xff}
	buttonBorder   = color.RGBA{0x99, 0x99, 0x99, 0xff}
)

//Button is one control placed on the toolbar
type Button struct {
	Action Action
	Rect   image.Rectangle
}

//Toolbar places the controls in the strip below the board
//top is the pixel row where the strip starts
func Toolbar(top int) []Button {
	actions := []Action{ActionToggle, ActionClear, ActionRandom}
	buttons := make([]Button, 0, len(actions))
	x := buttonMargin
	for _, a := range actions {
		buttons = append(buttons, Button{
			Action: a,
			Rect:   image.Rect(x, top+buttonMargin, x+buttonWidth, top+ToolbarHeight-buttonMargin),
		})
		x += buttonWidth + buttonMargin
	}
	return buttons
}

//HitButton returns the action of the enabled button under px, py
func HitButton(buttons []Button, bs universe.ButtonStates, px int, py int) Action {
	p := image.Pt(px, py)
	for _, b := range buttons {
		if p.In(b.Rect) && buttonState(bs, b.Action).Enabled {
			return b.Action
		}
	}
	return ActionNone
}

//DrawToolbar draws the buttons and the running mode indicator
func DrawToolbar(s Surface, buttons []Button, bs universe.ButtonStates, st universe.Status, width int) {
	for _, b := range buttons {
		bst := buttonState(bs, b.Action)
		if bst.Enabled {
			s.FillRect(b.Rect, buttonEnabled)
		} else {
			s.FillRect(b.Rect, buttonDisabled)
		}
		s.StrokeRect(b.Rect, buttonBorder)
		s.Label(bst.Label, b.Rect)
	}
	if len(buttons) == 0 {
		return
	}
	last := buttons[len(buttons)-1].Rect
	s.Label(st.RunningMode.String(), image.Rect(last.Max.X+buttonMargin, last.Min.Y, width-buttonMargin, last.Max.Y))
}

func buttonState(bs universe.ButtonStates, a Action) universe.ButtonState {
	switch a {
	case ActionToggle:
		return bs.Start
	case ActionClear:
		return bs.Clear
	case ActionRandom:
		return bs.Random
	}
	return universe.ButtonState{}
}

//Dispatch runs the action on the universe
func Dispatch(u universe.Universe, a Action) {
	switch a {
	case ActionToggle:
		u.Toggle()
	case ActionClear:
		u.Clear()
	case ActionRandom:
		u.SettleWithRandomData()
	}
}
