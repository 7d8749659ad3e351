package view

import "simlife/src/universe"

//Viewport is the visible window of the plane
//X, Y is the top-left corner, offsets wrap like the plane does
type Viewport struct {
	X      int
	Y      int
	Width  int
	Height int
}

//Dead marks an empty position in the Grid
const Dead = -1

//Dying marks an empty position where a cell died on the last step
const Dying = -2

//Pan moves the viewport by dx, dy
func (vp *Viewport) Pan(dx int, dy int) {
	vp.X += dx
	vp.Y += dy
}

//Resize changes the visible size, negative sizes are treated as 0
func (vp *Viewport) Resize(width int, height int) {
	vp.Width = max(width, 0)
	vp.Height = max(height, 0)
}

//Contains reports whether c is visible and returns its position inside the viewport
func (vp Viewport) Contains(c universe.Coordinate) (col int, row int, ok bool) {
	//subtraction wraps, so the window may span the edge of the plane
	dx := uint(c.X - vp.X)
	dy := uint(c.Y - vp.Y)
	if dx >= uint(vp.Width) || dy >= uint(vp.Height) {
		return 0, 0, false
	}
	return int(dx), int(dy), true
}

//At returns the plane coordinate shown at col, row
func (vp Viewport) At(col int, row int) universe.Coordinate {
	return universe.Coordinate{X: vp.X + col, Y: vp.Y + row}
}

//Grid projects the cells onto the viewport
//every position holds the cell age or Dead
func (vp Viewport) Grid(cells []universe.CellState) [][]int {
	grid := make([][]int, vp.Height)
	b := make([]int, vp.Width*vp.Height)
	for i := range b {
		b[i] = Dead
	}
	for i := range grid {
		start := vp.Width * i
		grid[i] = b[start : start+vp.Width : start+vp.Width]
	}
	for _, cs := range cells {
		if col, row, ok := vp.Contains(cs.Coordinate); ok {
			grid[row][col] = int(cs.Age)
		}
	}
	return grid
}

//MarkDied sets Dying on the empty grid positions of the died cells
func (vp Viewport) MarkDied(grid [][]int, died []universe.Coordinate) {
	for _, c := range died {
		if col, row, ok := vp.Contains(c); ok && grid[row][col] == Dead {
			grid[row][col] = Dying
		}
	}
}

//Visible counts the cells inside the viewport
func (vp Viewport) Visible(cells []universe.CellState) int {
	n := 0
	for _, cs := range cells {
		if _, _, ok := vp.Contains(cs.Coordinate); ok {
			n++
		}
	}
	return n
}
