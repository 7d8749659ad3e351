package view

import (
	"fmt"
	"io"
	"simlife/src/universe"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
)

//ConsoleOut prints the progress of a headless simulation
type ConsoleOut struct {
	c         universe.Controller
	w         io.Writer
	au        aurora.Aurora
	vp        Viewport
	every     uint64 //print the progress every N generations
	//Refresh runs on the runner's goroutine, Start on the caller's one
	mu        sync.Mutex
	startTime time.Time
	finished  bool
}

//NewConsoleOut creates the printer, the final state inside vp is drawn on finish
//colors are disabled when colored is false
func NewConsoleOut(w io.Writer, vp Viewport, colored bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colored), vp: vp, every: 10}
}

func (c *ConsoleOut) Refresh() {
	st := c.c.Status()
	c.mu.Lock()
	defer c.mu.Unlock()
	if st.RunningMode == universe.RunningStateFinished {
		if c.finished {
			return
		}
		c.finished = true
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last generation": st.Generation,
			"Total time":      totalTime,
			"Live cells":      st.LiveCells,
		}
		fmt.Fprintln(c.w, c.au.Red("\nFinished:"))
		c.printHashData(resultData)
		c.printField(c.c.Snapshot())
	} else if st.RunningMode == universe.RunningStateRun {
		c.finished = false
		if st.Generation%c.every == 0 {
			fmt.Fprintf(c.w, "  Generations done: %v, live cells: %v\n", st.Generation, st.LiveCells)
		}
	}
}

func (c *ConsoleOut) Register(ctrl universe.Controller) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.c = ctrl
	o := c.c.Options()
	fmt.Fprintln(c.w, c.au.Green("Running configuration:"))
	c.printHashData(map[string]interface{}{
		"Viewport":       fmt.Sprintf("%v x %v at (%v, %v)", c.vp.Width, c.vp.Height, c.vp.X, c.vp.Y),
		"Interval":       o.Interval,
		"Max iterations": fmt.Sprintf("%v steps", o.MaxSteps),
	})
}

func (c *ConsoleOut) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", c.au.Cyan(propName), d[propName])
	}
}

//printField draws the viewport, '#' for a live cell and '.' for a dead one
func (c *ConsoleOut) printField(cells []universe.CellState) {
	if c.vp.Width == 0 || c.vp.Height == 0 {
		return
	}
	var b strings.Builder
	for _, row := range c.vp.Grid(cells) {
		for _, age := range row {
			if age == Dead {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(c.w, b.String())
}
