package view

import (
	"bytes"
	"fmt"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"log"
	"simlife/src/universe"
	"strings"
	"time"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	c universe.Controller
	g *gocui.Gui
	k []keyBindings
	//the visible part of the plane, resized by the layout
	vp   Viewport
	seed int64
	//fillers by age: newborn, young, old
	liveFillers [3]string
	deadFiller  string
	dyingFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		universe.RunningStateStep:     "do the step",
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

//youngAge is the age from which a cell is drawn as old
const youngAge = 10

//panStep is the number of cells the viewport moves on an arrow key
const panStep = 5

//NewViewTerminal creates the interactive terminal view
//the top-left corner of the field shows the cell at origin, random settles start from seed
func NewViewTerminal(origin universe.Coordinate, seed int64) *ConsoleUI {

	var err error
	t := ConsoleUI{
		vp:   Viewport{X: origin.X, Y: origin.Y},
		seed: seed,
		liveFillers: [3]string{
			aurora.BrightGreen("█").BgBrightGreen().String(),
			aurora.Green("█").BgGreen().String(),
			aurora.Cyan("█").BgCyan().String(),
		},
		deadFiller:  "░",
		dyingFiller: aurora.Red("░").String(),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextRound,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Settle with random",
			t.cmdSettleWithRandom,
			""},
		{gocui.KeyArrowLeft,
			"←↑→↓",
			"Move",
			t.cmdPan(-panStep, 0),
			""},
		{gocui.KeyArrowRight,
			"",
			"",
			t.cmdPan(panStep, 0),
			""},
		{gocui.KeyArrowUp,
			"",
			"",
			t.cmdPan(0, -panStep),
			""},
		{gocui.KeyArrowDown,
			"",
			"",
			t.cmdPan(0, panStep),
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(c universe.Controller) {
	t.c = c
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderField(t.c.Snapshot(), t.c.Status().Changes.Died)
	t.renderConfiguration()
	t.renderStatus()
}

//renderField draws the live cells, the cells died on the last step are drawn dimmed red
func (t *ConsoleUI) renderField(cells []universe.CellState, died []universe.Coordinate) {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("battlefield")
		if e != nil {
			//the field is hidden while the terminal is too small
			return nil
		}
		//the entire field is redrawing at once now
		//this terminal driver allows to redraw only changed chars
		//there is an opportunity to speed up with a selective redraw
		v.Clear()

		maxW, maxH := v.Size()
		t.vp.Resize(maxW, maxH)

		var b bytes.Buffer

		grid := t.vp.Grid(cells)
		t.vp.MarkDied(grid, died)
		for i, l := range grid {
			//line feed char
			if i != 0 {
				b.WriteByte(10)
			}
			for _, age := range l {
				b.WriteString(t.filler(age))
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) filler(age int) string {
	switch {
	case age == Dead:
		return t.deadFiller
	case age == Dying:
		return t.dyingFiller
	case age == 0:
		return t.liveFillers[0]
	case age < youngAge:
		return t.liveFillers[1]
	}
	return t.liveFillers[2]
}

func (t *ConsoleUI) renderStatus() {
	s := t.c.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Born / Died", "%v / %v", s.Births, s.Deaths))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.c.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Origin", "%v, %v", t.vp.X, t.vp.Y))
			_, _ = fmt.Fprintln(v, t.renderProp("Viewport", "%v x %v", t.vp.Width, t.vp.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
		t.renderField(t.c.Snapshot(), nil)
	} else {
		t.renderField(t.c.Snapshot(), nil)
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			//the keys sharing the description of the previous one
			if k.name == "" {
				continue
			}
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.c.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.c.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.c.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.c.Clear()
	return nil
}

//cmdSettleWithRandom fills the visible part of the plane
func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.seed++
	t.c.SettleWithRandomData(universe.Rect{X: t.vp.X, Y: t.vp.Y, Width: t.vp.Width, Height: t.vp.Height}, t.seed)
	return nil
}

func (t *ConsoleUI) cmdPan(dx int, dy int) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		t.vp.Pan(dx, dy)
		t.Refresh()
		return nil
	}
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	c := t.vp.At(cx, cy)
	t.c.Toggle(c.X, c.Y)
	return nil
}
