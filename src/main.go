package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"lifecanvas/src/universe"
	"lifecanvas/src/view"
	"lifecanvas/src/view/canvas"
)

var (
	templates = []universe.Template{universe.Blinker, universe.Glider}

	viewers = map[string]func(o *universe.Options) (universe.Viewer, error){
		"canvas": func(o *universe.Options) (universe.Viewer, error) {
			style := view.DefaultStyle
			style.CellSize = o.CellSize
			return canvas.NewCanvasView(style), nil
		},
		"console": func(_ *universe.Options) (universe.Viewer, error) {
			return view.NewViewTerminal()
		},
		"headless": func(_ *universe.Options) (universe.Viewer, error) {
			return view.NewConsoleOut(), nil
		},
	}
)

type EnvOptions struct {
	view       string
	randomData bool
	template   string
	config     string
}

func main() {
	eo, uo, err := initOptions()
	if err != nil {
		log.Fatalln(err)
	}

	var stateCh chan universe.Status
	if eo.view == "headless" {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the universe status
	}

	u := universe.NewBaseUniverse(uo, stateCh)
	for _, tmpl := range templates {
		u.AddTemplate(tmpl)
	}

	v, err := viewers[eo.view](uo)
	if err != nil {
		log.Fatalln(err)
	}
	u.RegisterViewer(v)

	if eo.view == "headless" {
		err = runHeadless(u, eo, stateCh)
	} else {
		err = seed(u, eo)
		if err == nil {
			err = v.Start()
		}
	}
	u.Close()
	if err != nil {
		log.Fatalln(err)
	}
}

//seed populates the field before the view starts
func seed(u *universe.BaseUniverse, eo *EnvOptions) error {
	if eo.randomData {
		u.SettleWithRandomData()
		return nil
	}
	if eo.template != "" {
		return u.SettleTemplate(eo.template)
	}
	return nil
}

//runHeadless runs the loop without the UI until it stops by itself or the process is interrupted
func runHeadless(u *universe.BaseUniverse, eo *EnvOptions, stateCh chan universe.Status) error {
	if !eo.randomData && eo.template == "" {
		eo.randomData = true
	}
	if err := seed(u, eo); err != nil {
		return err
	}
	st := <-stateCh
	if st.LiveCells == 0 {
		fmt.Println("Nothing alive, nothing to simulate")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		<-ctx.Done()
		u.Stop()
		return nil
	})
	eg.Go(func() error {
		defer cancel()
		u.Run()
		running := false
		for st := range stateCh {
			if st.RunningMode == universe.RunningStateRunning {
				running = true
			} else if running {
				return nil
			}
		}
		return nil
	})
	return eg.Wait()
}

func initOptions() (eo *EnvOptions, uo *universe.Options, err error) {

	o := universe.DefaultUniverseOptions
	uo = &o
	viewNames := make([]string, 0, len(viewers))
	for k := range viewers {
		viewNames = append(viewNames, k)
	}
	sort.Strings(viewNames)
	templateNames := make([]string, 0, len(templates))
	for _, t := range templates {
		templateNames = append(templateNames, t.Name)
	}

	eo = &EnvOptions{view: "canvas"}
	flaggy.SetName("lifecanvas")
	flaggy.SetDescription("Conway's Game of Life on the fixed 30x30 board")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.config, "c", "config", "JSON configuration file, the flags override its values")
	flaggy.String(&eo.view, "v", "view", "View to use ["+strings.Join(viewNames, "|")+"]")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.template, "t", "template", "Settle with the template ["+strings.Join(templateNames, "|")+"]")
	var (
		interval = uo.Interval
		maxSteps = uo.MaxSteps
		seedNum  = uo.Seed
	)
	flaggy.Duration(&interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 700ms")
	flaggy.Int(&maxSteps, "s", "maxSteps", "Stop the running simulation after maxSteps generations, 0 is unlimited")
	flaggy.Int64(&seedNum, "", "seed", "Random seed, 0 seeds from the clock")

	flaggy.Parse()

	if _, ok := viewers[eo.view]; !ok {
		flaggy.ShowHelpAndExit("unknown view")
	}

	if eo.config != "" {
		if o, err = universe.LoadOptions(eo.config, o); err != nil {
			return
		}
	}
	//only the flags given on the command line override the config file
	if flagSet("i", "interval") {
		o.Interval = interval
	}
	if flagSet("s", "maxSteps") {
		o.MaxSteps = maxSteps
	}
	if flagSet("", "seed") {
		o.Seed = seedNum
	}
	err = o.Validate()
	return
}

//flagSet reports whether the flag is present in the command line
func flagSet(short string, long string) bool {
	for _, a := range os.Args[1:] {
		name := strings.TrimLeft(strings.SplitN(a, "=", 2)[0], "-")
		if (short != "" && name == short) || name == long {
			return true
		}
	}
	return false
}
