package universe

//LiveNeighbours counts the live cells among the 8 positions around x, y
//positions outside the area are counted as dead, the field does not wrap
func LiveNeighbours(a Area, x int, y int) int {
	n := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			if a.Get(x+i, y+j) {
				n++
			}
		}
	}
	return n
}

//NextState applies the Conway rule to the cell state s with n live neighbours
func NextState(s Cell, n int) Cell {
	switch {
	case n < 2:
		return false
	case n >= 4 && bool(s):
		return false
	case n == 3 && !bool(s):
		return true
	}
	return s
}

//Step calculates the next generation
//a is only read, the result is the newly allocated area of the same size
func Step(a Area) Area {
	next := createArea(a.Width, a.Height)
	for y := range a.Entities {
		for x := range a.Entities[y] {
			next.Entities[y][x] = NextState(a.Entities[y][x], LiveNeighbours(a, x, y))
		}
	}
	return next
}
