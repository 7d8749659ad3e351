package universe

//Controller is what the views see of a running universe
type Controller interface {
	Status() Status
	Options() Options
	StateCh() chan Status
	Snapshot() []CellState
	AddTemplate(tmpl Template)
	SettleTemplate(name string) error
	SettleWithRandomData(area Rect, seed int64)
	Settle(cs []Coordinate)
	Toggle(x int, y int)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(c Controller)
	Start()
}
