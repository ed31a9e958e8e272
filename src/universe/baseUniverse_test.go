package universe

import (
	"testing"
	"time"
)

func newTestUniverse(t *testing.T, o Options) (*BaseUniverse, chan Status) {
	t.Helper()
	stateCh := make(chan Status, 10)
	u := NewBaseUniverse(&o, stateCh)
	u.AddTemplate(Blinker)
	t.Cleanup(u.Close)
	return u, stateCh
}

func testOptions() Options {
	o := DefaultUniverseOptions
	o.Interval = time.Millisecond
	o.Seed = 42
	return o
}

//await returns the next published status
func await(t *testing.T, stateCh chan Status) Status {
	t.Helper()
	select {
	case st := <-stateCh:
		return st
	case <-time.After(2 * time.Second):
		t.Fatalf("no status published")
	}
	return Status{}
}

func TestRandomThenClear(t *testing.T) {
	u, stateCh := newTestUniverse(t, testOptions())

	u.SettleWithRandomData()
	st := await(t, stateCh)
	if st.LiveCells == 0 || st.LiveCells == DefWidth*DefHeight {
		t.Fatalf("random field has %v live cells", st.LiveCells)
	}
	if c := u.Controls(); !c.Start.Enabled || !c.Clear.Enabled {
		t.Errorf("controls after random = %+v", c)
	}

	u.Clear()
	st = await(t, stateCh)
	if st.LiveCells != 0 || u.Area().LiveCells() != 0 {
		t.Fatalf("live cells after clear = %v", st.LiveCells)
	}
	c := u.Controls()
	if c.Start.Enabled || c.Clear.Enabled {
		t.Errorf("Start and Clear must be disabled on the empty field: %+v", c)
	}
	if !c.Random.Enabled {
		t.Errorf("Random must stay enabled")
	}
}

func TestRandomIsReproducible(t *testing.T) {
	u1, ch1 := newTestUniverse(t, testOptions())
	u2, ch2 := newTestUniverse(t, testOptions())
	u1.SettleWithRandomData()
	u2.SettleWithRandomData()
	await(t, ch1)
	await(t, ch2)
	if !u1.Area().Equal(u2.Area()) {
		t.Errorf("the same seed produced different fields")
	}
}

func TestInverseCellTwice(t *testing.T) {
	u, stateCh := newTestUniverse(t, testOptions())
	if err := u.SettleTemplate("blinker"); err != nil {
		t.Fatal(err)
	}
	await(t, stateCh)
	before := u.Area()

	u.InverseCell(4, 9)
	if st := await(t, stateCh); st.LiveCells != 4 {
		t.Errorf("live cells after toggle = %v, want 4", st.LiveCells)
	}
	u.InverseCell(4, 9)
	await(t, stateCh)
	if !u.Area().Equal(before) {
		t.Errorf("double toggle changed the field")
	}

	//outside the field is ignored
	u.InverseCell(DefWidth, 0)
	if st := await(t, stateCh); st.LiveCells != 3 {
		t.Errorf("live cells after outside click = %v, want 3", st.LiveCells)
	}
}

func TestSettleUnknownTemplate(t *testing.T) {
	u, _ := newTestUniverse(t, testOptions())
	if err := u.SettleTemplate("nope"); err == nil {
		t.Errorf("unknown template accepted")
	}
}

func TestSingleStep(t *testing.T) {
	u, stateCh := newTestUniverse(t, testOptions())
	_ = u.SettleTemplate("blinker")
	await(t, stateCh)

	u.Step()
	st := await(t, stateCh)
	if st.IterationNum != 1 || st.RunningMode != RunningStateStopped {
		t.Fatalf("status after step = %+v", st)
	}
	if !u.Area().Equal(AreaOf(DefWidth, DefHeight, [][]int{{0, 1}, {1, 1}, {2, 1}})) {
		t.Errorf("blinker did not turn horizontal")
	}
}

func TestRunEmptyFieldIsIgnored(t *testing.T) {
	u, stateCh := newTestUniverse(t, testOptions())
	u.Run()
	if st := await(t, stateCh); st.RunningMode != RunningStateStopped {
		t.Errorf("empty field started running")
	}
}

func TestRunUntilMaxSteps(t *testing.T) {
	o := testOptions()
	o.MaxSteps = 2
	u, stateCh := newTestUniverse(t, o)
	_ = u.SettleTemplate("blinker")
	await(t, stateCh)
	start := u.Area()

	u.Run()
	st := await(t, stateCh)
	if st.RunningMode != RunningStateRunning {
		t.Fatalf("Run did not start the loop: %+v", st)
	}
	if c := u.Controls(); c.Start.Label != LabelStop || c.Clear.Enabled || c.Random.Enabled {
		t.Errorf("controls while running = %+v", c)
	}

	for st.RunningMode == RunningStateRunning {
		st = await(t, stateCh)
	}
	if st.IterationNum != 2 {
		t.Errorf("loop stopped at %v, want 2", st.IterationNum)
	}
	if !u.Area().Equal(start) {
		t.Errorf("blinker is not back in the vertical phase after 2 generations")
	}
}

func TestClearIgnoredWhileRunning(t *testing.T) {
	o := testOptions()
	o.Interval = time.Hour
	u, stateCh := newTestUniverse(t, o)
	_ = u.SettleTemplate("blinker")
	await(t, stateCh)

	u.Toggle()
	if st := await(t, stateCh); st.RunningMode != RunningStateRunning {
		t.Fatalf("Toggle did not start the loop")
	}
	u.Clear()
	if st := await(t, stateCh); st.LiveCells != 3 {
		t.Errorf("Clear worked while running")
	}
	u.SettleWithRandomData()
	if st := await(t, stateCh); st.LiveCells != 3 {
		t.Errorf("Random worked while running")
	}
	u.InverseCell(10, 10)
	if st := await(t, stateCh); st.LiveCells != 4 || st.RunningMode != RunningStateRunning {
		t.Errorf("click while running = %+v", st)
	}

	u.Toggle()
	if st := await(t, stateCh); st.RunningMode != RunningStateStopped {
		t.Fatalf("Toggle did not stop the loop")
	}
	if c := u.Controls(); c.Start.Label != LabelStart || !c.Clear.Enabled {
		t.Errorf("controls after stop = %+v", c)
	}
}

type countingViewer struct {
	refreshes chan struct{}
	u         Universe
}

func (v *countingViewer) Refresh()            { v.refreshes <- struct{}{} }
func (v *countingViewer) Register(u Universe) { v.u = u }
func (v *countingViewer) Start() error        { return nil }

func TestViewerRefreshedOnMutation(t *testing.T) {
	u, stateCh := newTestUniverse(t, testOptions())
	v := &countingViewer{refreshes: make(chan struct{}, 10)}
	u.RegisterViewer(v)
	if v.u != u {
		t.Fatalf("viewer is not registered")
	}

	u.InverseCell(0, 0)
	await(t, stateCh)
	select {
	case <-v.refreshes:
	default:
		t.Errorf("viewer was not refreshed")
	}
}

func TestRegisterViewerWhileRunning(t *testing.T) {
	o := testOptions()
	o.Interval = time.Hour
	u, stateCh := newTestUniverse(t, o)
	_ = u.SettleTemplate("blinker")
	await(t, stateCh)
	u.Run()
	await(t, stateCh)

	v := &countingViewer{refreshes: make(chan struct{}, 10)}
	u.RegisterViewer(v)
	if v.u != u {
		t.Fatalf("viewer is not registered on return")
	}
	u.InverseCell(10, 10)
	if st := await(t, stateCh); st.RunningMode != RunningStateRunning {
		t.Fatalf("loop stopped: %+v", st)
	}
	select {
	case <-v.refreshes:
	default:
		t.Errorf("viewer registered during the run was not refreshed")
	}
}

func TestCommandsAfterClose(t *testing.T) {
	u := NewBaseUniverse(nil, nil)
	u.Close()
	u.Close()

	done := make(chan struct{})
	go func() {
		u.Clear()
		u.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("commands blocked after Close")
	}
}
