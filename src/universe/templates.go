package universe

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string       //template name
	Descr       string       //template descr
	Coordinates []Coordinate //cells to make alive
}

//Translate returns the template coordinates moved by dx, dy
func (t Template) Translate(dx int, dy int) []Coordinate {
	cs := make([]Coordinate, len(t.Coordinates))
	for i, c := range t.Coordinates {
		cs[i] = Coordinate{c.X + dx, c.Y + dy}
	}
	return cs
}

//StandardTemplates returns the built-in patterns
func StandardTemplates() []Template {
	return []Template{
		{"testSample1", "the test sample with 3 stable patterns", []Coordinate{
			{1, 1}, {1, 2},
			{2, 1}, {2, 2},
			{3, 3},
			{4, 2},
			{4, 3},
			{5, 3},
		}},
		{"block", "2x2 still life", []Coordinate{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{"beehive", "6 cell still life", []Coordinate{{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}}},
		{"blinker", "period 2 oscillator", []Coordinate{{0, 1}, {1, 1}, {2, 1}}},
		{"toad", "period 2 oscillator", []Coordinate{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{"beacon", "period 2 oscillator", []Coordinate{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}},
		{"glider", "moves by (1,1) every 4 generations", []Coordinate{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
		{"rpentomino", "methuselah, stabilizes after 1103 generations", []Coordinate{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}},
	}
}
