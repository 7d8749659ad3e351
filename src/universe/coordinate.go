package universe

//Coordinate is a point of the plane
//both components are fixed-width ints: arithmetic wraps at the extremes,
//so the plane is a torus over the whole int range
type Coordinate struct {
	X int
	Y int
}

//C is a short constructor for Coordinate
func C(x int, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

//NeighborsOf returns the 8 Moore neighbours of c
//order: the row above, the two lateral cells, the row below
func NeighborsOf(c Coordinate) [8]Coordinate {
	//signed overflow wraps in Go, MinInt-1 == MaxInt
	prevX, nextX := c.X-1, c.X+1
	prevY, nextY := c.Y-1, c.Y+1
	return [8]Coordinate{
		{prevX, prevY}, {c.X, prevY}, {nextX, prevY},
		{prevX, c.Y}, {nextX, c.Y},
		{prevX, nextY}, {c.X, nextY}, {nextX, nextY},
	}
}
