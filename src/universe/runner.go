package universe

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

//Options represents the Runner's configurable options
type Options struct {
	Interval time.Duration //pause between the steps of a run
	MaxSteps int           //a run finishes at this generation, 0 means no limit
}

//Status represents the status of the Runner at concrete moment
type Status struct {
	Generation    uint64
	RunningMode   RunningState
	LiveCells     int
	Births        int //born on the last step
	Deaths        int //died on the last step
	IterationTime time.Duration
	//the cells changed by the last step
	Changes Changes
}

//Rect is a rectangular part of the plane, used to scatter random cells
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

//The universe running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
)

//MaxRandomCells limits the number of cells scattered by SettleWithRandomData
const MaxRandomCells = 1 << 18

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

var DefaultOptions = Options{
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
}

func (s RunningState) String() string {
	switch s {
	case RunningStateManual:
		return "waiting"
	case RunningStateStep:
		return "step"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return fmt.Sprintf("RunningState(%d)", int(s))
}

/*
	Runner drives a Universe for the hosts which animate it
	all the commands are executed one by one by the main loop goroutine,
	the universe itself stays synchronous and is never ticked in parallel
*/
type Runner struct {
	options Options
	u       *Universe
	state   struct {
		Status
		sync.Mutex
	}
	stateCh chan Status
	views   struct {
		list []Viewer
		sync.Mutex
	}
	templates struct {
		byName map[string]Template
		sync.Mutex
	}
	controlCh chan func()
	quit      chan struct{}
	closeOnce sync.Once
	//halt is closed when the current run ends, owned by the main loop
	halt      chan struct{}
	//the number of the live run loops
	loops     atomic.Int32
}

//NewRunner creates the Runner for u and starts its main loop
//the standard templates are added
//u == nil creates a new universe, stateCh may be nil when nobody listens to the state changes
func NewRunner(o *Options, u *Universe, stateCh chan Status) *Runner {
	if o == nil {
		o = &DefaultOptions
	}
	if u == nil {
		u = New()
	}
	r := Runner{
		options:   *o,
		u:         u,
		stateCh:   stateCh,
		controlCh: make(chan func(), 1),
		quit:      make(chan struct{}),
	}
	r.templates.byName = map[string]Template{}
	for _, tmpl := range StandardTemplates() {
		r.templates.byName[tmpl.Name] = tmpl
	}
	r.syncStatus()
	go r.mainLoop()
	return &r
}

//Universe returns the driven universe
func (r *Runner) Universe() *Universe {
	return r.u
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (r *Runner) AddTemplate(tmpl Template) {
	r.templates.Lock()
	r.templates.byName[tmpl.Name] = tmpl
	r.templates.Unlock()
}

//Templates returns the names of the added templates
func (r *Runner) Templates() []string {
	r.templates.Lock()
	defer r.templates.Unlock()
	names := make([]string, 0, len(r.templates.byName))
	for name := range r.templates.byName {
		names = append(names, name)
	}
	return names
}

//Settle makes the cells alive
//the views are refreshed by the main loop
func (r *Runner) Settle(cs []Coordinate) {
	r.u.MakeAliveAt(cs...)
	r.syncStatus()
	r.enqueue(r.refreshView)
}

//SettleTemplate populates the universe with the seeding template
func (r *Runner) SettleTemplate(name string) error {
	r.templates.Lock()
	tmpl, ok := r.templates.byName[name]
	r.templates.Unlock()
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownTemplate, name)
	}
	r.Settle(tmpl.Coordinates)
	return nil
}

//SettleWithRandomData clears the universe and scatters area.Width*area.Height random cells inside area,
//but not more than MaxRandomCells
//returns immediately, ignored while the simulation is running
func (r *Runner) SettleWithRandomData(area Rect, seed int64) {
	mode := r.Status().RunningMode
	if mode != RunningStateManual && mode != RunningStateFinished {
		return
	}
	if area.Width <= 0 || area.Height <= 0 {
		return
	}
	n := MaxRandomCells
	if area.Width <= MaxRandomCells/area.Height {
		n = area.Width * area.Height
	}
	r.enqueue(r.clear)
	r.enqueue(func() {
		rng := rand.New(rand.NewPCG(uint64(seed), 0))
		cs := make([]Coordinate, 0, n)
		for i := 0; i < n; i++ {
			cs = append(cs, Coordinate{area.X + rng.IntN(area.Width), area.Y + rng.IntN(area.Height)})
		}
		r.u.MakeAliveAt(cs...)
		r.syncStatus()
		r.refreshView()
	})
}

//Toggle inverses the cell state at point x, y
func (r *Runner) Toggle(x int, y int) {
	r.u.ToggleCell(x, y)
	r.syncStatus()
	r.enqueue(r.refreshView)
}

//RegisterViewer registers the viewer - the runner will call the viewer when the state is changed
//the viewer is refreshed only from the main loop goroutine
func (r *Runner) RegisterViewer(v Viewer) {
	v.Register(r)
	r.views.Lock()
	r.views.list = append(r.views.list, v)
	r.views.Unlock()
}

//StateCh returns the channel with the runner's status updates
func (r *Runner) StateCh() chan Status {
	return r.stateCh
}

//Status returns current runner status represented by Status struct
func (r *Runner) Status() Status {
	r.state.Lock()
	defer r.state.Unlock()
	return r.state.Status
}

//Options returns current runner configuration represented by Options struct
func (r *Runner) Options() Options {
	return r.options
}

//Snapshot returns the live cells of the universe
func (r *Runner) Snapshot() []CellState {
	return r.u.Snapshot()
}

//Run starts the simulation, returns immediately
func (r *Runner) Run() {
	r.enqueue(r.run)
}

//Stop stops the simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (r *Runner) Stop() {
	r.enqueue(r.stop)
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (r *Runner) Step() {
	r.enqueue(r.step)
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (r *Runner) Clear() {
	r.enqueue(r.clear)
}

//Close stops the main loop, returns immediately
//the stateCh is owned by the caller and is not closed
func (r *Runner) Close() {
	r.closeOnce.Do(func() { close(r.quit) })
}

//enqueue passes the command to the main loop, false if the runner is closed
func (r *Runner) enqueue(cmd func()) bool {
	select {
	case r.controlCh <- cmd:
		return true
	case <-r.quit:
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (r *Runner) mainLoop() {
	for {
		select {
		case cmd := <-r.controlCh:
			cmd()
		case <-r.quit:
			return
		}
	}
}

//syncStatus copies the universe counters to the status
func (r *Runner) syncStatus() {
	gen, live := r.u.Stats()
	r.state.Lock()
	r.state.Generation = gen
	r.state.LiveCells = live
	r.state.Unlock()
}

//switchRunningState switch the state of the runner to RunningState
//also writes the new state to the stateCh to signal upper control software
func (r *Runner) switchRunningState(to RunningState) {
	r.publish(r.setRunningState(to))
}

func (r *Runner) setRunningState(to RunningState) Status {
	r.state.Lock()
	defer r.state.Unlock()
	r.state.RunningMode = to
	return r.state.Status
}

//publish writes st to the stateCh, if any
func (r *Runner) publish(st Status) {
	if r.stateCh != nil {
		select {
		case r.stateCh <- st:
		case <-r.quit:
		}
	}
}

//run starts the simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (r *Runner) run() {
	if r.Status().RunningMode == RunningStateRun {
		return
	}
	//every run has its own halt, a loop of the previous run never steps again
	r.endRun()
	halt := make(chan struct{})
	r.halt = halt
	r.switchRunningState(RunningStateRun)
	r.loops.Add(1)
	go func() {
		defer r.loops.Add(-1)
		for {
			done := make(chan struct{})
			if !r.enqueue(func() {
				//Stop may be executed before this step
				select {
				case <-halt:
				default:
					r.step()
				}
				close(done)
			}) {
				return
			}
			select {
			case <-done:
			case <-r.quit:
				return
			}
			select {
			case <-halt:
				return
			default:
			}
			if r.options.Interval > 0 {
				select {
				case <-time.After(r.options.Interval):
				case <-halt:
					return
				case <-r.quit:
					return
				}
			}
		}
	}()
}

//endRun releases the loop of the current run, if any
func (r *Runner) endRun() {
	if r.halt != nil {
		close(r.halt)
		r.halt = nil
	}
}

//stop stops the running cycle
func (r *Runner) stop() {
	if r.Status().RunningMode == RunningStateRun {
		r.endRun()
		r.switchRunningState(RunningStateManual)
	}
}

//step does one generation
//finishes the simulation when the population died out, nothing changed or MaxSteps is reached
func (r *Runner) step() {
	rm := r.Status().RunningMode
	if rm == RunningStateFinished {
		rm = RunningStateManual
	}
	r.switchRunningState(RunningStateStep)
	st := r.u.Tick()

	r.state.Lock()
	r.state.Generation = st.Generation
	r.state.LiveCells = st.LiveCells
	r.state.Births = st.Births
	r.state.Deaths = st.Deaths
	r.state.IterationTime = st.Duration
	r.state.Changes = st.Changes
	r.state.Unlock()

	maxSteps := r.options.MaxSteps
	if st.LiveCells == 0 || !st.Changed || (maxSteps > 0 && st.Generation >= uint64(maxSteps)) {
		rm = RunningStateFinished
		r.endRun()
	}
	//the views are up to date when the listeners of stateCh get the new state
	status := r.setRunningState(rm)
	r.refreshView()
	r.publish(status)
}

//clear clears the universe data, reset all counters
func (r *Runner) clear() {
	r.endRun()
	r.u.Clear()
	r.state.Lock()
	r.state.Status = Status{}
	r.state.Unlock()
	status := r.setRunningState(RunningStateManual)
	r.refreshView()
	r.publish(status)
}

//refreshView calls Refresh event for all registered views
func (r *Runner) refreshView() {
	r.views.Lock()
	views := append([]Viewer(nil), r.views.list...)
	r.views.Unlock()
	for _, v := range views {
		v.Refresh()
	}
}
