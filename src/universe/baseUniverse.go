package universe

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
)

//BaseUniverse is the universe's engine
//implements Universe interface
//every mutation runs on the mainLoop goroutine, so the grid has the single writer
type BaseUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	grid      *Grid
	rnd       *rand.Rand
	stateCh   chan Status
	views     []Viewer
	templates map[string]Template
	controlCh chan func()
	closeCh   chan bool
	doneCh    chan struct{}
	closeOnce sync.Once

	//loop bookkeeping, touched only from mainLoop
	loopID     int
	cancelLoop func()
}

//NewBaseUniverse creates the BaseUniverse instance and starts its loop
//stateCh may be nil, otherwise one Status is written to it per executed command
func NewBaseUniverse(o *Options, stateCh chan Status) *BaseUniverse {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	u := BaseUniverse{
		options:   *o,
		grid:      NewGrid(o.Width, o.Height),
		rnd:       rand.New(rand.NewSource(seed)),
		controlCh: make(chan func()),
		closeCh:   make(chan bool, 1),
		doneCh:    make(chan struct{}),
		stateCh:   stateCh,
		templates: map[string]Template{},
	}
	go u.mainLoop()
	return &u
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (u *BaseUniverse) AddTemplate(tmpl Template) {
	u.templates[tmpl.Name] = tmpl
}

//Templates returns the names of registered templates
func (u *BaseUniverse) Templates() []string {
	names := make([]string, 0, len(u.templates))
	for k := range u.templates {
		names = append(names, k)
	}
	return names
}

//Settle settles the universe with data, returns immediately
//vc - array of x,y coordinates
func (u *BaseUniverse) Settle(vc [][]int) {
	u.exec(func() {
		u.settle(vc)
		u.commit()
	})
}

//SettleTemplate populates the universe with the seeding template, returns immediately
func (u *BaseUniverse) SettleTemplate(name string) error {
	tmpl, ok := u.templates[name]
	if !ok {
		return errors.Errorf("unknown template: %v", name)
	}
	u.Settle(tmpl.Coordinates)
	return nil
}

//SettleWithRandomData replaces the field with random data, returns immediately
//each cell is alive with Options.Density probability; ignored while running
func (u *BaseUniverse) SettleWithRandomData() {
	u.exec(func() {
		if u.running() {
			u.commit()
			return
		}
		a := createArea(u.grid.Width(), u.grid.Height())
		for y := range a.Entities {
			for x := range a.Entities[y] {
				a.Entities[y][x] = Cell(u.rnd.Float64() < u.options.Density)
			}
		}
		u.grid.Replace(a)
		u.state.Lock()
		u.state.IterationNum = 0
		u.state.Unlock()
		u.commit()
	})
}

//InverseCell inverses the cell state at point x, y, returns immediately
//allowed in any running state, positions outside the field are ignored
func (u *BaseUniverse) InverseCell(x int, y int) {
	u.exec(func() {
		u.grid.Inverse(x, y)
		u.commit()
	})
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
//the registration runs on the main loop, returns when the viewer is registered
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	done := make(chan struct{})
	if u.exec(func() {
		u.views = append(u.views, v)
		v.Register(u)
		close(done)
	}) {
		<-done
	}
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	return u.options
}

//Area returns the snapshot of the current universe area (field where cells is living)
func (u *BaseUniverse) Area() Area {
	return u.grid.Snapshot()
}

//Controls returns the control states for the current status
func (u *BaseUniverse) Controls() ButtonStates {
	return Controls(u.Status())
}

//Run starts the universe simulation, returns immediately
//ignored when already running or when no cell is alive
func (u *BaseUniverse) Run() {
	u.exec(u.run)
}

//Stop stops the universe simulation, returns immediately
func (u *BaseUniverse) Stop() {
	u.exec(u.stop)
}

//Toggle switches between running and stopped, returns immediately
func (u *BaseUniverse) Toggle() {
	u.exec(func() {
		if u.running() {
			u.stop()
		} else {
			u.run()
		}
	})
}

//Step does one simulation step, returns immediately; ignored while running
func (u *BaseUniverse) Step() {
	u.exec(func() {
		if !u.running() {
			u.advance()
		}
		u.commit()
	})
}

//Clear kills all cells and resets the counters, returns immediately; ignored while running
func (u *BaseUniverse) Clear() {
	u.exec(u.clear)
}

//Close stops the simulation and the main loop, returns immediately
func (u *BaseUniverse) Close() {
	u.closeOnce.Do(func() {
		u.closeCh <- true
	})
}

//exec passes the command to the main loop
//returns false when the loop is already closed
func (u *BaseUniverse) exec(cmd func()) bool {
	select {
	case u.controlCh <- cmd:
		return true
	case <-u.doneCh:
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseUniverse) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case c = <-u.closeCh:

		}
	}
	if u.cancelLoop != nil {
		u.cancelLoop()
		u.cancelLoop = nil
	}
	close(u.doneCh)
}

//running reports whether the simulation timer is active
func (u *BaseUniverse) running() bool {
	return u.cancelLoop != nil
}

//settle places live cells at the listed positions
func (u *BaseUniverse) settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 {
			continue
		}
		u.grid.Set(v[0], v[1], true)
	}
}

//commit refreshes the counters, publishes the status and redraws the views
func (u *BaseUniverse) commit() {
	u.state.Lock()
	u.state.LiveCells = u.grid.LiveCells()
	if u.running() {
		u.state.RunningMode = RunningStateRunning
	} else {
		u.state.RunningMode = RunningStateStopped
	}
	st := u.state.Status
	u.state.Unlock()
	u.refreshView()
	if u.stateCh != nil {
		u.stateCh <- st
	}
}

//run starts the simulation timer
func (u *BaseUniverse) run() {
	if u.running() || u.grid.LiveCells() == 0 {
		u.commit()
		return
	}
	u.loopID++
	id := u.loopID
	u.cancelLoop = Every(u.options.Interval, func() {
		done := make(chan struct{})
		if u.exec(func() {
			u.tick(id)
			close(done)
		}) {
			<-done
		}
	})
	u.commit()
}

//stop cancels the simulation timer
func (u *BaseUniverse) stop() {
	u.stopLoop()
	u.commit()
}

func (u *BaseUniverse) stopLoop() {
	if u.cancelLoop != nil {
		u.cancelLoop()
		u.cancelLoop = nil
	}
}

//tick is one timer period of the loop id
//the ticks queued before the loop was stopped are dropped
func (u *BaseUniverse) tick(id int) {
	if !u.running() || id != u.loopID {
		return
	}
	u.advance()
	if u.options.MaxSteps != 0 && u.Status().IterationNum >= u.options.MaxSteps {
		u.stopLoop()
	}
	u.commit()
}

//advance replaces the field with its next generation
func (u *BaseUniverse) advance() {
	start := time.Now()
	u.grid.Replace(Step(u.grid.Snapshot()))
	u.state.Lock()
	u.state.IterationNum++
	u.state.IterationTime = time.Since(start)
	u.state.Unlock()
}

//clear clears the universe data, resets all counters
func (u *BaseUniverse) clear() {
	if !u.running() {
		u.grid.Replace(createArea(u.grid.Width(), u.grid.Height()))
		u.state.Lock()
		u.state.IterationNum = 0
		u.state.IterationTime = 0
		u.state.Unlock()
	}
	u.commit()
}

//refreshView calls Refresh event for all registered views
func (u *BaseUniverse) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
