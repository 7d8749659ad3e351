package main

import (
	"errors"
	"simlife/src/universe"
	"testing"
	"time"
)

func TestLoadEnvOptionsDefaults(t *testing.T) {
	eo, err := loadEnvOptions()
	if err != nil {
		t.Fatal(err)
	}
	if eo.Width != 40 || eo.Height != 15 || eo.Interval != 100*time.Millisecond || eo.MaxSteps != 1000 {
		t.Fatalf("unexpected defaults %+v", eo)
	}
	if eo.Template != "testSample1" || eo.Interactive || eo.RandomData {
		t.Fatalf("unexpected defaults %+v", eo)
	}
}

func TestLoadEnvOptions(t *testing.T) {
	t.Setenv("SIMLIFE_WIDTH", "80")
	t.Setenv("SIMLIFE_INTERVAL", "15ms")
	t.Setenv("SIMLIFE_MAX_STEPS", "0")
	t.Setenv("SIMLIFE_ORIGIN_X", "-20")
	t.Setenv("SIMLIFE_CELLS", "0,0;1,1")
	eo, err := loadEnvOptions()
	if err != nil {
		t.Fatal(err)
	}
	if eo.Width != 80 || eo.Interval != 15*time.Millisecond || eo.MaxSteps != 0 || eo.OriginX != -20 {
		t.Fatalf("unexpected options %+v", eo)
	}
	if len(eo.Cells) != 2 || eo.Cells[1] != "1,1" {
		t.Fatalf("cells = %q", eo.Cells)
	}
	if a := eo.area(); a.X != -20 || a.Width != 80 {
		t.Fatalf("area = %+v", a)
	}
}

func TestLoadEnvOptionsInvalid(t *testing.T) {
	t.Setenv("SIMLIFE_INTERVAL", "soon")
	if _, err := loadEnvOptions(); err == nil {
		t.Fatal("expected an error for a malformed duration")
	}
}

func TestCellBatch(t *testing.T) {
	u := universe.New()
	processed, err := u.MakeAlive(cellBatch([]string{"1,2", " -3 , 4", "5;6", "7,8"}))
	if !errors.Is(err, universe.ErrInvalidInput) {
		t.Fatalf("error = %v, want InvalidInput", err)
	}
	if len(processed) != 2 || !u.Alive(1, 2) || !u.Alive(-3, 4) || u.Alive(7, 8) {
		t.Fatalf("processed = %v", processed)
	}
}

func TestSettle(t *testing.T) {
	eo, err := loadEnvOptions()
	if err != nil {
		t.Fatal(err)
	}
	r := universe.NewRunner(eo.universeOptions(), nil, nil)
	defer r.Close()

	eo.Template = "glider"
	if err := settle(r, eo); err != nil {
		t.Fatal(err)
	}
	if r.Universe().Len() != 5 {
		t.Fatalf("Len = %d after settling the glider", r.Universe().Len())
	}

	eo.Cells = []string{"100,100", "bad"}
	if err := settle(r, eo); !errors.Is(err, universe.ErrInvalidInput) {
		t.Fatalf("error = %v", err)
	}
	if !r.Universe().Alive(100, 100) {
		t.Fatal("the cell before the malformed one was not settled")
	}

	eo.Cells = nil
	eo.Template = "nope"
	if err := settle(r, eo); !errors.Is(err, universe.ErrUnknownTemplate) {
		t.Fatalf("error = %v", err)
	}
}
