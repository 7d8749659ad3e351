package universe

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

//CellState is one live cell as seen by the readers of the universe
type CellState struct {
	Coordinate
	Age uint
}

//Changes is the set of cells which changed their state, both lists are ordered by Y, then X
//a renderer can redraw only these cells instead of the whole snapshot
type Changes struct {
	Born []Coordinate
	Died []Coordinate
}

//TickStats describes the transition done by one Tick
type TickStats struct {
	Changes
	Generation uint64
	LiveCells  int
	Births     int
	Deaths     int
	Changed    bool
	Duration   time.Duration
}

/*
	Universe is the sparse Game of Life engine
	only live cells are stored, so a tick costs O(live cells) regardless of the plane size
	every method holds the universe lock for its whole duration,
	concurrent callers observe either the state before or after an operation
*/
type Universe struct {
	mu         sync.Mutex
	cells      *Registry
	generation uint64
}

//New creates an empty universe at generation 0
func New() *Universe {
	return &Universe{cells: NewRegistry(0)}
}

//Reset kills every cell and sets the generation to 0
func (u *Universe) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.reset()
}

//Clear is the same as Reset
func (u *Universe) Clear() {
	u.Reset()
}

func (u *Universe) reset() {
	u.cells.Clear()
	u.generation = 0
}

//Tick advances the universe by exactly one generation
func (u *Universe) Tick() TickStats {
	u.mu.Lock()
	defer u.mu.Unlock()
	start := time.Now()
	st := u.nextGeneration()
	st.Duration = time.Since(start)
	return st
}

//nextGeneration computes the next registry and replaces the current one
func (u *Universe) nextGeneration() (st TickStats) {
	cur := u.cells

	//live neighbours for every cell adjacent to a live one
	counts := make(map[Coordinate]int, cur.Len()*8)
	cur.Walk(func(c Coordinate, _ uint) {
		for _, n := range NeighborsOf(c) {
			counts[n]++
		}
	})

	next := NewRegistry(cur.Len())
	//live cells first: an isolated cell has no entry in counts and has to die
	cur.Walk(func(c Coordinate, age uint) {
		if n := counts[c]; n == 2 || n == 3 {
			next.set(c, Cell{Age: age + 1})
		} else {
			st.Died = append(st.Died, c)
		}
	})
	for c, n := range counts {
		if n == 3 && !cur.Contains(c) {
			next.set(c, Cell{})
			st.Born = append(st.Born, c)
		}
	}
	sortCoordinates(st.Born)
	sortCoordinates(st.Died)

	u.cells = next
	u.generation++
	st.Generation = u.generation
	st.LiveCells = next.Len()
	st.Births = len(st.Born)
	st.Deaths = len(st.Died)
	st.Changed = st.Births > 0 || st.Deaths > 0
	return
}

//AddCell makes the cell at x, y alive
//a living cell keeps its age: adding is not a birth
func (u *Universe) AddCell(x int, y int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cells.Insert(Coordinate{x, y})
}

//KillCell kills the cell at x, y, no-op when it is dead
func (u *Universe) KillCell(x int, y int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cells.Remove(Coordinate{x, y})
}

//ToggleCell kills a living cell or gives birth (age 0) to a dead one
func (u *Universe) ToggleCell(x int, y int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c := Coordinate{x, y}
	if u.cells.Contains(c) {
		u.cells.Remove(c)
	} else {
		u.cells.Insert(c)
	}
}

//MakeAlive adds the cell at every element of coords in order
//it stops at the first element which is not a coordinate pair and returns ErrInvalidInput,
//the edits already done stay applied
//processed holds the coordinates edited before returning
func (u *Universe) MakeAlive(coords []any) (processed []Coordinate, err error) {
	return u.batch(coords, func(r *Registry, c Coordinate) { r.Insert(c) })
}

//KillCells kills the cell at every element of coords, see MakeAlive for the error contract
func (u *Universe) KillCells(coords []any) (processed []Coordinate, err error) {
	return u.batch(coords, (*Registry).Remove)
}

func (u *Universe) batch(coords []any, edit func(r *Registry, c Coordinate)) ([]Coordinate, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	processed := make([]Coordinate, 0, len(coords))
	for i, v := range coords {
		c, err := ParseCoordinate(v)
		if err != nil {
			return processed, invalidInput(i, err)
		}
		edit(u.cells, c)
		processed = append(processed, c)
	}
	return processed, nil
}

//MakeAliveAt adds the cells at the given coordinates
func (u *Universe) MakeAliveAt(coords ...Coordinate) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, c := range coords {
		u.cells.Insert(c)
	}
}

//KillAt kills the cells at the given coordinates
func (u *Universe) KillAt(coords ...Coordinate) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, c := range coords {
		u.cells.Remove(c)
	}
}

//Alive reports whether the cell at x, y is alive
func (u *Universe) Alive(x int, y int) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cells.Contains(Coordinate{x, y})
}

//Age returns the age of the cell at x, y and whether it is alive
func (u *Universe) Age(x int, y int) (uint, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cells.Age(Coordinate{x, y})
}

func (u *Universe) Generation() uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.generation
}

//Len returns the number of live cells
func (u *Universe) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cells.Len()
}

//Stats returns the generation and the live cell count read together
func (u *Universe) Stats() (generation uint64, liveCells int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.generation, u.cells.Len()
}

//Snapshot returns a copy of the live cells ordered by Y, then X
//this is the only state a renderer should read
func (u *Universe) Snapshot() []CellState {
	u.mu.Lock()
	cells := make([]CellState, 0, u.cells.Len())
	u.cells.Walk(func(c Coordinate, age uint) {
		cells = append(cells, CellState{c, age})
	})
	u.mu.Unlock()
	slices.SortFunc(cells, func(a, b CellState) int {
		return compareCoordinates(a.Coordinate, b.Coordinate)
	})
	return cells
}

//compareCoordinates orders by Y, then X
func compareCoordinates(a Coordinate, b Coordinate) int {
	if a.Y != b.Y {
		return cmp.Compare(a.Y, b.Y)
	}
	return cmp.Compare(a.X, b.X)
}

func sortCoordinates(cs []Coordinate) {
	slices.SortFunc(cs, compareCoordinates)
}
