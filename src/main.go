package main

import (
	"fmt"
	"log"
	"os"
	"simlife/src/universe"
	"simlife/src/view"
	"sort"
	"strings"

	"github.com/integrii/flaggy"
)

func main() {
	eo := initOptions()

	u := universe.Init()

	var stateCh chan universe.Status
	if !eo.Interactive {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the runner status
	}

	r := universe.NewRunner(eo.universeOptions(), u, stateCh)

	if err := settle(r, eo); err != nil {
		log.Fatal(err)
	}

	if eo.Interactive {
		v := view.NewViewTerminal(universe.C(eo.OriginX, eo.OriginY), eo.Seed)
		r.RegisterViewer(v)
		v.Start()
		r.Close()
		return
	}

	vp := view.Viewport{X: eo.OriginX, Y: eo.OriginY, Width: eo.Width, Height: eo.Height}
	out := view.NewConsoleOut(os.Stdout, vp, true)
	r.RegisterViewer(out)
	fmt.Printf("\"The Life\" game simulation started...\n")
	out.Start()
	r.Run()
	for st := range stateCh {
		if st.RunningMode == universe.RunningStateFinished {
			break
		}
	}
	r.Close()
}

//settle populates the universe: random data, the explicit cells or the template
func settle(r *universe.Runner, eo *EnvOptions) error {
	if eo.RandomData {
		r.SettleWithRandomData(eo.area(), eo.Seed)
		return nil
	}
	if len(eo.Cells) > 0 {
		cs, err := r.Universe().MakeAlive(cellBatch(eo.Cells))
		if err != nil {
			return fmt.Errorf("cells: %w", err)
		}
		log.Printf("settled %d cells", len(cs))
		return nil
	}
	return r.SettleTemplate(eo.Template)
}

//initOptions reads the environment defaults and then the command line flags
func initOptions() *EnvOptions {
	eo, err := loadEnvOptions()
	if err != nil {
		log.Fatal(err)
	}

	templateNames := make([]string, 0)
	for _, t := range universe.StandardTemplates() {
		templateNames = append(templateNames, t.Name)
	}
	sort.Strings(templateNames)

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&eo.Width, "x", "width", "Width of the viewing area")
	flaggy.Int(&eo.Height, "y", "height", "Height of the viewing area")
	flaggy.Int(&eo.OriginX, "ox", "originX", "X of the top-left corner of the viewing area")
	flaggy.Int(&eo.OriginY, "oy", "originY", "Y of the top-left corner of the viewing area")
	flaggy.Duration(&eo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&eo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 is unlimited")
	flaggy.Bool(&eo.Interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.RandomData, "r", "random", "Settle the viewing area with random data")
	flaggy.Int64(&eo.Seed, "", "seed", "Seed of the random data")
	flaggy.String(&eo.Template, "t", "template", "Template to settle ["+strings.Join(templateNames, "|")+"]")
	flaggy.StringSlice(&eo.Cells, "c", "cell", "Live cell as x,y, can be repeated; replaces the template")

	flaggy.Parse()

	if eo.Width <= 0 || eo.Height <= 0 {
		flaggy.ShowHelpAndExit("width and height must be positive")
	}
	if eo.MaxSteps < 0 {
		flaggy.ShowHelpAndExit("maxSteps must not be negative")
	}

	return eo
}
