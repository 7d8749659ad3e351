package universe

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Coordinate
		ok   bool
	}{
		{"coordinate", C(1, 2), C(1, 2), true},
		{"pointer", &Coordinate{3, 4}, C(3, 4), true},
		{"nil pointer", (*Coordinate)(nil), Coordinate{}, false},
		{"int array", [2]int{-1, 5}, C(-1, 5), true},
		{"int64 array", [2]int64{7, 8}, C(7, 8), true},
		{"float array", [2]float64{1, -2}, C(1, -2), true},
		{"int slice", []int{9, 10}, C(9, 10), true},
		{"int32 array", [2]int32{-3, 3}, C(-3, 3), true},
		{"int16 slice", []int16{-7, 7}, C(-7, 7), true},
		{"uint8 array", [2]uint8{1, 255}, C(1, 255), true},
		{"uint64 slice", []uint64{11, 12}, C(11, 12), true},
		{"float32 slice", []float32{4, -4}, C(4, -4), true},
		{"float32 array", [2]float32{-6, 6}, C(-6, 6), true},
		{"json number array", [2]json.Number{"13", "-14"}, C(13, -14), true},
		{"json number slice", []json.Number{"15", "1.6e1"}, C(15, 16), true},
		{"any array", [2]any{int8(1), uint16(2)}, C(1, 2), true},
		{"host values", []any{float64(3), int8(-4)}, C(3, -4), true},
		{"json numbers", []any{json.Number("12"), json.Number("1e3")}, C(12, 1000), true},
		{"uint fits", []any{uint64(5), uint32(6)}, C(5, 6), true},
		{"max int", []any{math.MaxInt, math.MinInt}, C(math.MaxInt, math.MinInt), true},
		{"string", "bad", Coordinate{}, false},
		{"short slice", []int{1}, Coordinate{}, false},
		{"short float32 slice", []float32{1}, Coordinate{}, false},
		{"nil slice", []uint32(nil), Coordinate{}, false},
		{"fraction float32", [2]float32{0.5, 1}, Coordinate{}, false},
		{"json number not a number", [2]json.Number{"1", "x"}, Coordinate{}, false},
		{"string array", [2]string{"1", "2"}, Coordinate{}, false},
		{"map", map[string]int{"x": 1, "y": 2}, Coordinate{}, false},
		{"long slice", []any{1, 2, 3}, Coordinate{}, false},
		{"string component", []any{1, "2"}, Coordinate{}, false},
		{"nil component", []any{nil, 2}, Coordinate{}, false},
		{"fraction", []float64{1.5, 2}, Coordinate{}, false},
		{"nan", []float64{math.NaN(), 2}, Coordinate{}, false},
		{"inf", []any{1, math.Inf(-1)}, Coordinate{}, false},
		{"float out of range", []float64{1e19, 0}, Coordinate{}, false},
		{"uint out of range", []any{uint64(math.MaxUint64), 0}, Coordinate{}, false},
		{"json out of range", []json.Number{"9223372036854775808", "0"}, Coordinate{}, false},
		{"nil", nil, Coordinate{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseCoordinate(%v) error: %v", tt.in, err)
				}
				if got != tt.want {
					t.Fatalf("ParseCoordinate(%v) = %v, want %v", tt.in, got, tt.want)
				}
				return
			}
			if err == nil {
				t.Fatalf("ParseCoordinate(%v) = %v, expected an error", tt.in, got)
			}
		})
	}
}

func TestMakeAliveFailsFast(t *testing.T) {
	u := New()
	processed, err := u.MakeAlive([]any{[2]int{0, 0}, [2]int{1, 1}, "bad", [2]int{2, 2}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want InvalidInput", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Metadata["index"] != "2" {
		t.Fatalf("error %v does not point at index 2", err)
	}
	if len(processed) != 2 || processed[0] != C(0, 0) || processed[1] != C(1, 1) {
		t.Fatalf("processed = %v", processed)
	}
	if !u.Alive(0, 0) || !u.Alive(1, 1) {
		t.Fatal("edits before the bad element were rolled back")
	}
	if u.Alive(2, 2) {
		t.Fatal("edit after the bad element was applied")
	}

	//the universe is still usable and not locked
	u.AddCell(5, 5)
	if u.Len() != 3 {
		t.Fatalf("Len = %d, want 3", u.Len())
	}
}

func TestKillCells(t *testing.T) {
	u := New()
	u.MakeAliveAt(C(0, 0), C(1, 1), C(2, 2))
	processed, err := u.KillCells([]any{[]int{0, 0}, []float64{2, 2}, []int{9, 9}})
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 3 {
		t.Fatalf("processed = %v", processed)
	}
	if u.Len() != 1 || !u.Alive(1, 1) {
		t.Fatalf("cells left: %v", cellsOf(u))
	}

	_, err = u.KillCells([]any{[]int{1, 1}, []any{"x", 1}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want InvalidInput", err)
	}
	if u.Len() != 0 {
		t.Fatal("kill before the bad element was not applied")
	}
}

func TestEmptyBatch(t *testing.T) {
	u := New()
	processed, err := u.MakeAlive(nil)
	if err != nil || len(processed) != 0 {
		t.Fatalf("MakeAlive(nil) = %v, %v", processed, err)
	}
}
