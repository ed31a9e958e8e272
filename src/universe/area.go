package universe

import "sync"

//Cell is the state of one grid position: true is alive, false is dead
type Cell bool

//Area is a value snapshot of the field where cells are living
//Entities is indexed as Entities[y][x]
type Area struct {
	Width    int
	Height   int
	Entities [][]Cell
}

//createArea allocates the new area with all cells dead
func createArea(width int, height int) Area {

	area := Area{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}

//NewArea creates the empty area with the given dimensions
func NewArea(width int, height int) Area {
	return createArea(width, height)
}

//AreaOf builds the area and settles the cells at the listed [x,y] coordinates
//coordinates outside the area are skipped
func AreaOf(width int, height int, vc [][]int) Area {
	a := createArea(width, height)
	for _, v := range vc {
		if a.Contains(v[0], v[1]) {
			a.Entities[v[1]][v[0]] = true
		}
	}
	return a
}

//Contains reports whether x, y is inside the area
func (a Area) Contains(x int, y int) bool {
	return x >= 0 && y >= 0 && x < a.Width && y < a.Height
}

//Get returns the cell at x, y; positions outside the area are dead
func (a Area) Get(x int, y int) Cell {
	if !a.Contains(x, y) {
		return false
	}
	return a.Entities[y][x]
}

//Clone returns the deep copy of the area
func (a Area) Clone() Area {
	c := createArea(a.Width, a.Height)
	for y := range a.Entities {
		copy(c.Entities[y], a.Entities[y])
	}
	return c
}

//LiveCells calculates the count of live cells
func (a Area) LiveCells() int {
	n := 0
	for y := range a.Entities {
		for _, e := range a.Entities[y] {
			if e {
				n++
			}
		}
	}
	return n
}

//Equal reports whether both areas have the same dimensions and cells
func (a Area) Equal(b Area) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for y := range a.Entities {
		for x := range a.Entities[y] {
			if a.Entities[y][x] != b.Entities[y][x] {
				return false
			}
		}
	}
	return true
}

//Grid owns the current generation
//the dimensions are fixed on creation, all access is guarded by the mutex
//so the views can take snapshots while the universe loop mutates it
type Grid struct {
	mu   sync.Mutex
	area Area
}

//NewGrid creates the grid with all cells dead
func NewGrid(width int, height int) *Grid {
	return &Grid{area: createArea(width, height)}
}

//Width returns the number of columns
func (g *Grid) Width() int {
	return g.area.Width
}

//Height returns the number of rows
func (g *Grid) Height() int {
	return g.area.Height
}

//Get returns the cell at column i, row j; out of bounds is dead
func (g *Grid) Get(i int, j int) Cell {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.area.Get(i, j)
}

//Set places v at column i, row j; out of bounds is ignored
func (g *Grid) Set(i int, j int, v Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.area.Contains(i, j) {
		g.area.Entities[j][i] = v
	}
}

//Inverse flips the cell at column i, row j and returns the new state
func (g *Grid) Inverse(i int, j int) (Cell, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.area.Contains(i, j) {
		return false, false
	}
	g.area.Entities[j][i] = !g.area.Entities[j][i]
	return g.area.Entities[j][i], true
}

//Replace swaps the whole generation with a
//the area is refused when its dimensions differ from the grid's
func (g *Grid) Replace(a Area) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if a.Width != g.area.Width || a.Height != g.area.Height || len(a.Entities) != a.Height {
		return false
	}
	g.area = a.Clone()
	return true
}

//Snapshot returns the copy of the current generation
func (g *Grid) Snapshot() Area {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.area.Clone()
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.area.LiveCells()
}
