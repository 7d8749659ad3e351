package universe

//Cell is the state of a live location
type Cell struct {
	Age uint //generations survived
}

//Registry is the sparse set of live cells
//a coordinate is present if and only if the cell is alive
type Registry struct {
	cells map[Coordinate]Cell
}

//NewRegistry creates an empty registry with room for size cells
func NewRegistry(size int) *Registry {
	return &Registry{cells: make(map[Coordinate]Cell, size)}
}

func (r *Registry) Contains(c Coordinate) bool {
	_, ok := r.cells[c]
	return ok
}

//Insert makes c alive and returns its cell
//an already living cell keeps its age
func (r *Registry) Insert(c Coordinate) Cell {
	if cell, ok := r.cells[c]; ok {
		return cell
	}
	cell := Cell{}
	r.cells[c] = cell
	return cell
}

//Remove kills c, no-op when it is dead
func (r *Registry) Remove(c Coordinate) {
	delete(r.cells, c)
}

//Age returns the age of c and whether it is alive
func (r *Registry) Age(c Coordinate) (uint, bool) {
	cell, ok := r.cells[c]
	return cell.Age, ok
}

//Clear removes all cells
func (r *Registry) Clear() {
	clear(r.cells)
}

func (r *Registry) Len() int {
	return len(r.cells)
}

//Walk calls cb for every live cell, in no particular order
//the registry must not be changed by cb
func (r *Registry) Walk(cb func(c Coordinate, age uint)) {
	for c, cell := range r.cells {
		cb(c, cell.Age)
	}
}

//set stores the cell as is, used to carry the ages over a generation
func (r *Registry) set(c Coordinate, cell Cell) {
	r.cells[c] = cell
}
