package levels

import (
	"errors"
	"testing"

	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
)

func TestMergeRects(t *testing.T) {
	lvl, err := FromRows(
		"#..|",
		"#P.|",
		"####",
	)
	if err != nil {
		t.Fatalf("from rows: %v", err)
	}
	got := lvl.Colliders()
	want := []physics.Rect{
		{X: 0, Y: 0, Width: 1, Height: 3, Layer: movement.LayerGround | movement.LayerWall},
		{X: 1, Y: 0, Width: 3, Height: 1, Layer: movement.LayerGround | movement.LayerWall},
		{X: 3, Y: 1, Width: 1, Height: 2, Layer: movement.LayerWall},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rects, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rect %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSpawnAndGoal(t *testing.T) {
	lvl, err := FromRows(
		"....",
		".P.G",
		"####",
	)
	if err != nil {
		t.Fatalf("from rows: %v", err)
	}
	if sp := lvl.Spawn(); sp != (movement.Vec2{X: 1.5, Y: 1}) {
		t.Fatalf("unexpected spawn %+v", sp)
	}
	goals := lvl.Goals()
	if len(goals) != 1 || goals[0] != (physics.Rect{X: 3, Y: 1, Width: 1, Height: 1}) {
		t.Fatalf("unexpected goals %+v", goals)
	}
	for _, r := range lvl.Colliders() {
		if r.Intersects(goals[0]) {
			t.Fatalf("goal should not be solid")
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		is   error
	}{
		{"empty", nil, nil},
		{"no spawn", []string{"..", "##"}, ErrNoSpawn},
		{"two spawns", []string{"PP", "##"}, nil},
		{"unknown tile", []string{"P?", "##"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows...)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestRaggedRowsPad(t *testing.T) {
	lvl, err := FromRows("P", "###")
	if err != nil {
		t.Fatalf("from rows: %v", err)
	}
	if lvl.Width != 3 || lvl.TileAt(2, 0) != TileEmpty {
		t.Fatalf("expected padded width 3, got %d", lvl.Width)
	}
	if lvl.TileAt(-1, 0) != TileEmpty || lvl.TileAt(0, 9) != TileEmpty {
		t.Fatalf("out of range tiles should read empty")
	}
}

func TestEmbeddedLevelsLoad(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("no embedded levels")
	}
	for _, n := range names {
		t.Run(n, func(t *testing.T) {
			lvl, err := Load(n)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(lvl.Colliders()) == 0 {
				t.Fatalf("level has no colliders")
			}
			if len(lvl.Goals()) == 0 {
				t.Fatalf("level has no goal")
			}
			sp := lvl.Spawn()
			w, h := lvl.Size()
			if sp.X <= 0 || sp.X >= w || sp.Y <= 0 || sp.Y >= h {
				t.Fatalf("spawn %+v outside %gx%g", sp, w, h)
			}
		})
	}
}
