package universe

import "testing"

func TestNextState(t *testing.T) {
	tests := []struct {
		name string
		s    Cell
		n    int
		want Cell
	}{
		{"isolated dead", false, 0, false},
		{"isolated live", true, 0, false},
		{"lonely live", true, 1, false},
		{"survives with 2", true, 2, true},
		{"stays dead with 2", false, 2, false},
		{"survives with 3", true, 3, true},
		{"birth", false, 3, true},
		{"overcrowded", true, 4, false},
		{"overcrowded 8", true, 8, false},
		{"dead with 4", false, 4, false},
		{"dead with 6", false, 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextState(tt.s, tt.n); got != tt.want {
				t.Errorf("NextState(%v, %v) = %v, want %v", tt.s, tt.n, got, tt.want)
			}
		})
	}
}

func TestLiveNeighbours(t *testing.T) {
	full := AreaOf(3, 3, [][]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"center", 1, 1, 8},
		{"corner", 0, 0, 3},
		{"opposite corner", 2, 2, 3},
		{"edge", 1, 0, 5},
		{"outside", -1, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LiveNeighbours(full, tt.x, tt.y); got != tt.want {
				t.Errorf("LiveNeighbours(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLiveNeighboursDoesNotWrap(t *testing.T) {
	a := AreaOf(DefWidth, DefHeight, [][]int{{DefWidth - 1, 5}, {5, DefHeight - 1}})
	if n := LiveNeighbours(a, 0, 5); n != 0 {
		t.Errorf("left edge sees %v neighbours across the border", n)
	}
	if n := LiveNeighbours(a, 5, 0); n != 0 {
		t.Errorf("top edge sees %v neighbours across the border", n)
	}
}

func TestStepBlinker(t *testing.T) {
	vertical := AreaOf(DefWidth, DefHeight, Blinker.Coordinates)
	horizontal := AreaOf(DefWidth, DefHeight, [][]int{{0, 1}, {1, 1}, {2, 1}})

	next := Step(vertical)
	if !next.Equal(horizontal) {
		t.Fatalf("vertical blinker did not turn horizontal")
	}
	if !Step(next).Equal(vertical) {
		t.Fatalf("blinker period is not 2")
	}
}

func TestStepIsolatedCellDies(t *testing.T) {
	a := AreaOf(DefWidth, DefHeight, [][]int{{10, 10}})
	if n := Step(a).LiveCells(); n != 0 {
		t.Errorf("live cells after step = %v, want 0", n)
	}
}

func TestStepDeadFieldIsFixedPoint(t *testing.T) {
	a := NewArea(DefWidth, DefHeight)
	for i := 0; i < 10; i++ {
		a = Step(a)
		if n := a.LiveCells(); n != 0 {
			t.Fatalf("step %v: live cells = %v, want 0", i, n)
		}
	}
}

func TestStepBlock(t *testing.T) {
	block := AreaOf(DefWidth, DefHeight, [][]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}})
	if !Step(block).Equal(block) {
		t.Errorf("block still life changed")
	}
}

func TestStepDeterministicAndPure(t *testing.T) {
	a := AreaOf(DefWidth, DefHeight, append(Glider.Coordinates, [][]int{{20, 20}, {21, 20}, {22, 20}, {29, 29}}...))
	orig := a.Clone()

	first := Step(Step(a))
	second := Step(Step(a))
	if !first.Equal(second) {
		t.Errorf("same input produced different generations")
	}
	if !a.Equal(orig) {
		t.Errorf("Step mutated its input")
	}
	if first.Width != a.Width || first.Height != a.Height {
		t.Errorf("dimensions changed: %vx%v", first.Width, first.Height)
	}
}

func TestStepGliderMoves(t *testing.T) {
	a := AreaOf(DefWidth, DefHeight, Glider.Coordinates)
	for i := 0; i < 4; i++ {
		a = Step(a)
	}
	moved := make([][]int, 0, len(Glider.Coordinates))
	for _, c := range Glider.Coordinates {
		moved = append(moved, []int{c[0] + 1, c[1] + 1})
	}
	if !a.Equal(AreaOf(DefWidth, DefHeight, moved)) {
		t.Errorf("glider did not move by (1,1) in 4 generations")
	}
}
