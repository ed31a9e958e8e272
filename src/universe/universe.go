package universe

import "time"

//Universe is the simulation engine
//all commands return immediately, they are executed one by one on the universe's own loop
type Universe interface {
	Status() Status
	Options() Options
	Area() Area
	Controls() ButtonStates
	StateCh() chan Status
	AddTemplate(tmpl Template)
	SettleTemplate(name string) error
	SettleWithRandomData()
	Settle(vc [][]int)
	InverseCell(x int, y int)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Toggle()
	Step()
	Clear()
	Close()
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
//Refresh is called from the universe loop after every command
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start() error
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//The universe running status at the concrete moment
type RunningState int

const (
	RunningStateStopped RunningState = 0x0
	RunningStateRunning RunningState = 0x1
)

//String returns the indicator text for the running state
func (s RunningState) String() string {
	if s == RunningStateRunning {
		return "running"
	}
	return "stopped"
}

//built-in seeding templates
var (
	Blinker = Template{
		"blinker",
		"period 2 oscillator, vertical phase",
		[][]int{{1, 0}, {1, 1}, {1, 2}},
	}
	Glider = Template{
		"glider",
		"the smallest spaceship, moves to the bottom right",
		[][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	}
)
