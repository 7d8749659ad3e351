package universe

import (
	"errors"
	"testing"
)

func TestDefaultPanicsBeforeInit(t *testing.T) {
	global.Lock()
	saved := global.u
	global.u = nil
	global.Unlock()
	defer func() {
		global.Lock()
		global.u = saved
		global.Unlock()
	}()

	defer func() {
		if recover() == nil {
			t.Fatal("Default did not panic before Init")
		}
	}()
	Default()
}

func TestProcessWideUniverse(t *testing.T) {
	u := Init()
	if Default() != u {
		t.Fatal("Default returned another universe")
	}

	AddCell(0, 1)
	AddCell(1, 1)
	AddCell(2, 1)
	Tick()
	if got := Snapshot(); len(got) != 3 || got[0].Coordinate != C(1, 0) {
		t.Fatalf("snapshot after tick = %v", got)
	}

	ToggleCell(1, 0)
	KillCell(1, 1)
	if u.Len() != 1 {
		t.Fatalf("Len = %d, want 1", u.Len())
	}

	if _, err := MakeAlive([]any{[2]int{4, 4}, 17}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("MakeAlive error = %v", err)
	}
	if _, err := KillCells([]any{[2]int{4, 4}}); err != nil {
		t.Fatal(err)
	}

	Clear()
	if u.Generation() != 0 || u.Len() != 0 {
		t.Fatal("Clear did not reset the universe")
	}

	AddCell(9, 9)
	Tick()
	Reset()
	if again := Init(); again != u || again.Len() != 0 || again.Generation() != 0 {
		t.Fatal("Init must reuse and reset the process-wide universe")
	}
}
