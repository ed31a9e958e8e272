package view

import "lifecanvas/src/universe"

//Pointer turns clicks on the canvas into universe commands
//it is created once and reads the current control states on every click
type Pointer struct {
	u        universe.Universe
	cellSize int
	buttons  []Button
}

//NewPointer creates the click handler for the board with the toolbar below it
func NewPointer(u universe.Universe, cellSize int) *Pointer {
	o := u.Options()
	return &Pointer{
		u:        u,
		cellSize: cellSize,
		buttons:  Toolbar(o.Height * cellSize),
	}
}

//Buttons returns the toolbar layout the pointer hit-tests against
func (p *Pointer) Buttons() []Button {
	return p.buttons
}

//Click handles the click at px, py
//a click on the board inverses the cell, a click on an enabled button runs its action
func (p *Pointer) Click(px int, py int) {
	o := p.u.Options()
	if x, y, ok := CellAt(px, py, p.cellSize, o.Width, o.Height); ok {
		p.u.InverseCell(x, y)
		return
	}
	Dispatch(p.u, HitButton(p.buttons, p.u.Controls(), px, py))
}
