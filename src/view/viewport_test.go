package view

import (
	"bytes"
	"math"
	"simlife/src/universe"
	"strings"
	"testing"
)

func TestViewportGrid(t *testing.T) {
	vp := Viewport{X: -1, Y: -1, Width: 3, Height: 3}
	cells := []universe.CellState{
		{Coordinate: universe.C(0, 0), Age: 4},
		{Coordinate: universe.C(-1, 1), Age: 0},
		{Coordinate: universe.C(2, 0), Age: 1}, //outside
	}
	want := [][]int{
		{Dead, Dead, Dead},
		{Dead, 4, Dead},
		{0, Dead, Dead},
	}
	got := vp.Grid(cells)
	for row := range want {
		for col := range want[row] {
			if got[row][col] != want[row][col] {
				t.Fatalf("grid[%d][%d] = %d, want %d", row, col, got[row][col], want[row][col])
			}
		}
	}
	if n := vp.Visible(cells); n != 2 {
		t.Fatalf("Visible = %d, want 2", n)
	}
}

func TestViewportMarkDied(t *testing.T) {
	u := universe.New()
	u.MakeAliveAt(universe.C(0, 1), universe.C(1, 1), universe.C(2, 1))
	st := u.Tick()

	vp := Viewport{Width: 3, Height: 3}
	grid := vp.Grid(u.Snapshot())
	vp.MarkDied(grid, append(st.Died, universe.C(50, 50)))
	want := [][]int{
		{Dead, 0, Dead},
		{Dying, 1, Dying},
		{Dead, 0, Dead},
	}
	for row := range want {
		for col := range want[row] {
			if grid[row][col] != want[row][col] {
				t.Fatalf("grid[%d][%d] = %d, want %d", row, col, grid[row][col], want[row][col])
			}
		}
	}
}

func TestViewportAcrossTheEdge(t *testing.T) {
	vp := Viewport{X: math.MaxInt, Y: 0, Width: 2, Height: 1}
	col, row, ok := vp.Contains(universe.C(math.MinInt, 0))
	if !ok || col != 1 || row != 0 {
		t.Fatalf("Contains(MinInt, 0) = %d, %d, %v", col, row, ok)
	}
	if c := vp.At(1, 0); c != universe.C(math.MinInt, 0) {
		t.Fatalf("At(1, 0) = %v", c)
	}
}

func TestViewportPanAndResize(t *testing.T) {
	vp := Viewport{}
	vp.Pan(5, -3)
	vp.Resize(-1, 4)
	if vp.X != 5 || vp.Y != -3 || vp.Width != 0 || vp.Height != 4 {
		t.Fatalf("viewport = %+v", vp)
	}
	if _, _, ok := vp.Contains(universe.C(5, -3)); ok {
		t.Fatal("a zero width viewport shows nothing")
	}
}

func TestConsoleOut(t *testing.T) {
	var b bytes.Buffer
	stateCh := make(chan universe.Status, 10)
	o := universe.DefaultOptions
	o.Interval = 0
	r := universe.NewRunner(&o, nil, stateCh)
	defer r.Close()

	out := NewConsoleOut(&b, Viewport{Width: 2, Height: 2}, false)
	r.RegisterViewer(out)
	out.Start()
	if err := r.SettleTemplate("block"); err != nil {
		t.Fatal(err)
	}
	r.Run()
	for st := range stateCh {
		if st.RunningMode == universe.RunningStateFinished {
			break
		}
	}
	r.Close()

	got := b.String()
	for _, s := range []string{"Running configuration:", "Interval: 0s", "Finished:", "Live cells: 4", "##\n##\n"} {
		if !strings.Contains(got, s) {
			t.Fatalf("output %q does not contain %q", got, s)
		}
	}
}
