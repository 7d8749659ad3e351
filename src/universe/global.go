package universe

import "sync"

//the process-wide universe, created by Init
var global struct {
	sync.Mutex
	u *Universe
}

//Init creates the process-wide universe on the first call and resets it
//it must be called before any of the package level functions
func Init() *Universe {
	global.Lock()
	defer global.Unlock()
	if global.u == nil {
		global.u = New()
	}
	global.u.Reset()
	return global.u
}

//Default returns the process-wide universe, panics when Init was not called
func Default() *Universe {
	global.Lock()
	defer global.Unlock()
	if global.u == nil {
		panic("universe: Init must be called before using the process-wide universe")
	}
	return global.u
}

//Reset clears the process-wide universe back to generation 0
func Reset() {
	Default().Reset()
}

func AddCell(x int, y int) {
	Default().AddCell(x, y)
}

func KillCell(x int, y int) {
	Default().KillCell(x, y)
}

func ToggleCell(x int, y int) {
	Default().ToggleCell(x, y)
}

func MakeAlive(coords []any) ([]Coordinate, error) {
	return Default().MakeAlive(coords)
}

func KillCells(coords []any) ([]Coordinate, error) {
	return Default().KillCells(coords)
}

func Clear() {
	Default().Clear()
}

func Tick() TickStats {
	return Default().Tick()
}

func Snapshot() []CellState {
	return Default().Snapshot()
}
