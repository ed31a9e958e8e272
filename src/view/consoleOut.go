package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"lifecanvas/src/universe"
)

//ConsoleOut is the headless view: prints the progress of the running loop
type ConsoleOut struct {
	u         universe.Universe
	w         io.Writer
	startTime time.Time
	running   bool
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{w: os.Stdout}
}

//NewConsoleOutTo creates the headless view writing to w
func NewConsoleOutTo(w io.Writer) *ConsoleOut {
	return &ConsoleOut{w: w}
}

//Refresh prints every 10th generation while running and the summary when the loop stops
func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	switch {
	case st.RunningMode == universe.RunningStateRunning:
		if !c.running {
			c.running = true
			c.startTime = time.Now()
			_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
		}
		if st.IterationNum != 0 && st.IterationNum%10 == 0 {
			_, _ = fmt.Fprintf(c.w, "  Generations done: %v\n", st.IterationNum)
		}
	case c.running:
		c.running = false
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last generation": st.IterationNum,
			"Total time":      totalTime,
			"Live cells":      st.LiveCells,
		}
		_, _ = fmt.Fprintln(c.w, aurora.Red("\nFinished:"))
		c.printHashData(resultData)
	}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Width, o.Height),
		"Interval":       o.Interval,
		"Max iterations": fmt.Sprintf("%v steps", o.MaxSteps),
		"Density":        o.Density,
	})
}

func (c *ConsoleOut) Start() error {
	return nil
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", aurora.Green(propName), d[propName])
	}
}
